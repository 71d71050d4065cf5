package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hotel-booking/model"
)

type Reviews struct {
	coll *mongo.Collection
}

func NewReviews(coll *mongo.Collection) *Reviews {
	return &Reviews{coll: coll}
}

// Find returns reviews whose rating lies within rating, newest first.
func (r *Reviews) Find(ctx context.Context, rating model.RangeFilter) ([]model.Document, error) {
	opts := options.Find().SetSort(bson.D{{Key: model.TimestampField, Value: -1}})
	reviews, err := findAll(ctx, r.coll, rangeFilter(model.RatingField, rating), opts)
	if err != nil {
		return nil, fmt.Errorf("find reviews: %v", err)
	}
	return reviews, nil
}

func (r *Reviews) FindByReviewID(ctx context.Context, reviewID string) (model.Document, error) {
	review, err := findOne(ctx, r.coll, bson.M{model.ReviewIDField: reviewID})
	if err != nil {
		return nil, fmt.Errorf("find review %v: %v", reviewID, err)
	}
	return review, nil
}

func (r *Reviews) FindByRoom(ctx context.Context, roomID string) ([]model.Document, error) {
	reviews, err := findAll(ctx, r.coll, bson.M{model.RoomIDField: roomID})
	if err != nil {
		return nil, fmt.Errorf("find reviews for room %v: %v", roomID, err)
	}
	return reviews, nil
}

func (r *Reviews) Insert(ctx context.Context, review model.Document) (model.InsertResult, error) {
	res, err := insertOne(ctx, r.coll, review)
	if err != nil {
		return model.InsertResult{}, fmt.Errorf("insert review: %v", err)
	}
	return res, nil
}
