package handlers

import (
	"github.com/gofiber/fiber/v2"

	"hotel-booking/services"
)

type ImageHandler struct {
	images *services.ImageService
}

func NewImageHandler(images *services.ImageService) *ImageHandler {
	return &ImageHandler{images: images}
}

func (h *ImageHandler) GetImages(c *fiber.Ctx) error {
	images, err := h.images.ListImages(c.UserContext())
	if err != nil {
		return serverError(c, err, "Error fetching images")
	}
	return c.JSON(images)
}
