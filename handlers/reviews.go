package handlers

import (
	"github.com/gofiber/fiber/v2"

	"hotel-booking/model"
	"hotel-booking/services"
)

type ReviewHandler struct {
	reviews *services.ReviewService
}

func NewReviewHandler(reviews *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

func (h *ReviewHandler) GetReviews(c *fiber.Ctx) error {
	rating := model.ParseRange(c.Query("minRating"), c.Query("maxRating"))

	reviews, err := h.reviews.ListReviews(c.UserContext(), rating)
	if err != nil {
		return serverError(c, err, "Internal server error")
	}
	return c.JSON(reviews)
}

// GetReview answers 200 with a null body for an unknown review_id.
func (h *ReviewHandler) GetReview(c *fiber.Ctx) error {
	review, err := h.reviews.GetReview(c.UserContext(), c.Params("review_id"))
	if err != nil {
		return serverError(c, err, "Internal server error")
	}
	return c.JSON(review)
}

func (h *ReviewHandler) GetRoomReviews(c *fiber.Ctx) error {
	reviews, err := h.reviews.ListReviewsByRoom(c.UserContext(), c.Params("id"))
	if err != nil {
		return serverError(c, err, "Internal server error")
	}
	return c.JSON(reviews)
}

func (h *ReviewHandler) CreateReview(c *fiber.Ctx) error {
	review, err := parseDocument(c)
	if err != nil {
		return badBody(c)
	}

	res, err := h.reviews.CreateReview(c.UserContext(), review)
	if err != nil {
		return serverError(c, err, "Internal server error")
	}
	return c.JSON(res)
}
