package services

import (
	"context"
	"fmt"
	"time"

	"hotel-booking/errors"
	"hotel-booking/events"
	"hotel-booking/model"
)

type ReviewRepository interface {
	Find(ctx context.Context, rating model.RangeFilter) ([]model.Document, error)
	FindByReviewID(ctx context.Context, reviewID string) (model.Document, error)
	FindByRoom(ctx context.Context, roomID string) ([]model.Document, error)
	Insert(ctx context.Context, review model.Document) (model.InsertResult, error)
}

type ReviewService struct {
	reviews   ReviewRepository
	publisher events.Publisher
}

func NewReviewService(reviews ReviewRepository, publisher events.Publisher) *ReviewService {
	if publisher == nil {
		publisher = events.Noop{}
	}
	return &ReviewService{reviews: reviews, publisher: publisher}
}

func (s *ReviewService) ListReviews(ctx context.Context, rating model.RangeFilter) ([]model.Document, error) {
	reviews, err := s.reviews.Find(ctx, rating)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}
	return reviews, nil
}

// GetReview returns a nil document, not ErrNotFound, when no review has the
// given review_id. Existing clients expect a null body with status 200.
func (s *ReviewService) GetReview(ctx context.Context, reviewID string) (model.Document, error) {
	review, err := s.reviews.FindByReviewID(ctx, reviewID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}
	return review, nil
}

func (s *ReviewService) ListReviewsByRoom(ctx context.Context, roomID string) ([]model.Document, error) {
	reviews, err := s.reviews.FindByRoom(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}
	return reviews, nil
}

func (s *ReviewService) CreateReview(ctx context.Context, review model.Document) (model.InsertResult, error) {
	res, err := s.reviews.Insert(ctx, review)
	if err != nil {
		return model.InsertResult{}, fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}

	s.publisher.Publish(ctx, events.Event{
		Type:       events.ReviewCreated,
		ID:         res.InsertedID,
		RoomID:     model.StringField(review, model.RoomIDField),
		OccurredAt: time.Now().UTC(),
	})
	return res, nil
}
