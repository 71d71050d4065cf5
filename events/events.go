// Package events publishes booking and review activity to a message broker.
// Delivery is best effort: a failed publish is logged, never returned to the
// HTTP caller.
package events

import (
	"context"
	"time"
)

const (
	BookingCreated   = "booking.created"
	BookingUpdated   = "booking.updated"
	BookingCancelled = "booking.cancelled"
	ReviewCreated    = "review.created"
)

type Event struct {
	Type       string      `json:"type"`
	ID         interface{} `json:"id,omitempty"`
	RoomID     string      `json:"room_id,omitempty"`
	Email      string      `json:"email,omitempty"`
	OccurredAt time.Time   `json:"occurred_at"`
}

type Publisher interface {
	Publish(ctx context.Context, event Event)
	Close() error
}

type Noop struct{}

func (Noop) Publish(context.Context, Event) {}

func (Noop) Close() error { return nil }
