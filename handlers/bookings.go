package handlers

import (
	"github.com/gofiber/fiber/v2"

	"hotel-booking/errors"
	"hotel-booking/services"
)

type BookingHandler struct {
	bookings *services.BookingService
}

func NewBookingHandler(bookings *services.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

func (h *BookingHandler) GetBookings(c *fiber.Ctx) error {
	bookings, err := h.bookings.ListBookings(c.UserContext(), c.Query("email"))
	if err != nil {
		return serverError(c, err, "Error fetching bookings")
	}
	return c.JSON(bookings)
}

// GetBookingsByRoomLegacy serves GET /bookings/:id, which despite its path
// lists bookings by room. It behaves exactly like GetBookingsByRoom and
// stays for clients already calling it.
func (h *BookingHandler) GetBookingsByRoomLegacy(c *fiber.Ctx) error {
	bookings, err := h.bookings.ListBookingsByRoom(c.UserContext(), c.Params("id"))
	if err != nil {
		return serverError(c, err, "Error fetching booking")
	}
	return c.JSON(bookings)
}

func (h *BookingHandler) GetBookingsByRoom(c *fiber.Ctx) error {
	bookings, err := h.bookings.ListBookingsByRoom(c.UserContext(), c.Params("room_id"))
	if err != nil {
		return serverError(c, err, "Error fetching bookings by room")
	}
	return c.JSON(bookings)
}

func (h *BookingHandler) CreateBooking(c *fiber.Ctx) error {
	booking, err := parseDocument(c)
	if err != nil {
		return badBody(c)
	}

	res, err := h.bookings.CreateBooking(c.UserContext(), booking)
	if err != nil {
		return serverError(c, err, "Error creating booking")
	}
	return c.JSON(res)
}

func (h *BookingHandler) CancelBooking(c *fiber.Ctx) error {
	res, err := h.bookings.CancelBooking(c.UserContext(), c.Params("id"))
	if err != nil {
		return serverError(c, err, "Error cancelling booking")
	}
	return c.JSON(res)
}

// UpdateBooking matches on room_id, not booking id: :id is a room id.
func (h *BookingHandler) UpdateBooking(c *fiber.Ctx) error {
	payload, err := parseDocument(c)
	if err != nil {
		return badBody(c)
	}

	res, err := h.bookings.UpdateBooking(c.UserContext(), c.Params("id"), payload)
	if errors.Is(err, errors.ErrNotFound) {
		return errors.RaiseNotFoundError(c, "Booking not found")
	}
	if err != nil {
		return serverError(c, err, "Failed to update booking")
	}
	return c.JSON(fiber.Map{"message": "Booking updated successfully", "result": res})
}
