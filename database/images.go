package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"hotel-booking/model"
)

type Images struct {
	coll *mongo.Collection
}

func NewImages(coll *mongo.Collection) *Images {
	return &Images{coll: coll}
}

func (i *Images) Find(ctx context.Context) ([]model.Document, error) {
	images, err := findAll(ctx, i.coll, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find images: %v", err)
	}
	return images, nil
}
