package services

import (
	"context"
	"fmt"
	"time"

	"hotel-booking/errors"
	"hotel-booking/events"
	"hotel-booking/model"
)

type BookingRepository interface {
	Find(ctx context.Context, email string) ([]model.Document, error)
	FindByRoom(ctx context.Context, roomID string) ([]model.Document, error)
	Insert(ctx context.Context, booking model.Document) (model.InsertResult, error)
	DeleteByID(ctx context.Context, id string) (model.DeleteResult, error)
	UpdateFirstByRoom(ctx context.Context, roomID string, update model.BookingUpdate) (model.UpdateResult, error)
}

// BookingService does not check that a booking's room exists, nor does it
// serialize concurrent bookings for the same room.
type BookingService struct {
	bookings  BookingRepository
	publisher events.Publisher
}

func NewBookingService(bookings BookingRepository, publisher events.Publisher) *BookingService {
	if publisher == nil {
		publisher = events.Noop{}
	}
	return &BookingService{bookings: bookings, publisher: publisher}
}

// ListBookings returns all bookings when email is empty. Any caller may list
// any email's bookings.
func (s *BookingService) ListBookings(ctx context.Context, email string) ([]model.Document, error) {
	bookings, err := s.bookings.Find(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}
	return bookings, nil
}

func (s *BookingService) ListBookingsByRoom(ctx context.Context, roomID string) ([]model.Document, error) {
	bookings, err := s.bookings.FindByRoom(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}
	return bookings, nil
}

func (s *BookingService) CreateBooking(ctx context.Context, booking model.Document) (model.InsertResult, error) {
	res, err := s.bookings.Insert(ctx, booking)
	if err != nil {
		return model.InsertResult{}, fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}

	s.publisher.Publish(ctx, events.Event{
		Type:       events.BookingCreated,
		ID:         res.InsertedID,
		RoomID:     model.StringField(booking, model.RoomIDField),
		Email:      model.StringField(booking, model.EmailField),
		OccurredAt: time.Now().UTC(),
	})
	return res, nil
}

// CancelBooking deletes by booking id. Deleting nothing is not an error.
func (s *BookingService) CancelBooking(ctx context.Context, id string) (model.DeleteResult, error) {
	res, err := s.bookings.DeleteByID(ctx, id)
	if err != nil {
		return model.DeleteResult{}, fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}

	if res.DeletedCount > 0 {
		s.publisher.Publish(ctx, events.Event{
			Type:       events.BookingCancelled,
			ID:         id,
			OccurredAt: time.Now().UTC(),
		})
	}
	return res, nil
}

// UpdateBooking replaces the update field set on the first booking, by
// ascending _id, whose room_id equals roomID. Other bookings for the same
// room are left untouched.
func (s *BookingService) UpdateBooking(ctx context.Context, roomID string, payload model.Document) (model.UpdateResult, error) {
	res, err := s.bookings.UpdateFirstByRoom(ctx, roomID, model.BookingUpdateFromDocument(payload))
	if err != nil {
		return model.UpdateResult{}, fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}
	if res.MatchedCount == 0 {
		return model.UpdateResult{}, fmt.Errorf("booking for room %v: %w", roomID, errors.ErrNotFound)
	}

	if res.ModifiedCount > 0 {
		s.publisher.Publish(ctx, events.Event{
			Type:       events.BookingUpdated,
			RoomID:     roomID,
			OccurredAt: time.Now().UTC(),
		})
	}
	return res, nil
}
