package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hotel-booking/model"
)

type Rooms struct {
	coll *mongo.Collection
}

func NewRooms(coll *mongo.Collection) *Rooms {
	return &Rooms{coll: coll}
}

// Find returns rooms whose pricePerNight lies within price, cheapest first.
func (r *Rooms) Find(ctx context.Context, price model.RangeFilter) ([]model.Document, error) {
	opts := options.Find().SetSort(bson.D{{Key: model.PricePerNightField, Value: 1}})
	rooms, err := findAll(ctx, r.coll, rangeFilter(model.PricePerNightField, price), opts)
	if err != nil {
		return nil, fmt.Errorf("find rooms: %v", err)
	}
	return rooms, nil
}

func (r *Rooms) FindByID(ctx context.Context, id string) (model.Document, error) {
	room, err := findOne(ctx, r.coll, idFilter(id))
	if err != nil {
		return nil, fmt.Errorf("find room %v: %v", id, err)
	}
	return room, nil
}
