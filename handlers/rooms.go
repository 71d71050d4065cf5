package handlers

import (
	"github.com/gofiber/fiber/v2"

	"hotel-booking/errors"
	"hotel-booking/model"
	"hotel-booking/services"
)

type RoomHandler struct {
	rooms *services.RoomService
}

func NewRoomHandler(rooms *services.RoomService) *RoomHandler {
	return &RoomHandler{rooms: rooms}
}

func (h *RoomHandler) GetRooms(c *fiber.Ctx) error {
	price := model.ParseRange(c.Query("minPrice"), c.Query("maxPrice"))

	rooms, err := h.rooms.ListRooms(c.UserContext(), price)
	if err != nil {
		return serverError(c, err, "Error fetching rooms")
	}
	return c.JSON(rooms)
}

func (h *RoomHandler) GetRoom(c *fiber.Ctx) error {
	room, err := h.rooms.GetRoom(c.UserContext(), c.Params("id"))
	if errors.Is(err, errors.ErrNotFound) {
		return errors.RaiseNotFoundError(c, "Room not found")
	}
	if err != nil {
		return serverError(c, err, "Internal server error")
	}
	return c.JSON(room)
}
