package services

import (
	"context"
	"fmt"

	"hotel-booking/errors"
	"hotel-booking/model"
)

type RoomRepository interface {
	Find(ctx context.Context, price model.RangeFilter) ([]model.Document, error)
	FindByID(ctx context.Context, id string) (model.Document, error)
}

type RoomService struct {
	rooms RoomRepository
}

func NewRoomService(rooms RoomRepository) *RoomService {
	return &RoomService{rooms: rooms}
}

func (s *RoomService) ListRooms(ctx context.Context, price model.RangeFilter) ([]model.Document, error) {
	rooms, err := s.rooms.Find(ctx, price)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}
	return rooms, nil
}

func (s *RoomService) GetRoom(ctx context.Context, id string) (model.Document, error) {
	room, err := s.rooms.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}
	if room == nil {
		return nil, fmt.Errorf("room %v: %w", id, errors.ErrNotFound)
	}
	return room, nil
}
