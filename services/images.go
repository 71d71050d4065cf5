package services

import (
	"context"
	"fmt"

	"hotel-booking/errors"
	"hotel-booking/model"
)

type ImageRepository interface {
	Find(ctx context.Context) ([]model.Document, error)
}

type ImageService struct {
	images ImageRepository
}

func NewImageService(images ImageRepository) *ImageService {
	return &ImageService{images: images}
}

func (s *ImageService) ListImages(ctx context.Context) ([]model.Document, error) {
	images, err := s.images.Find(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}
	return images, nil
}
