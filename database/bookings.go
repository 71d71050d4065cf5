package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hotel-booking/model"
)

type Bookings struct {
	coll *mongo.Collection
}

func NewBookings(coll *mongo.Collection) *Bookings {
	return &Bookings{coll: coll}
}

// Find returns every booking, or only those for email when it is not empty.
func (b *Bookings) Find(ctx context.Context, email string) ([]model.Document, error) {
	filter := bson.M{}
	if email != "" {
		filter = bson.M{model.EmailField: email}
	}
	bookings, err := findAll(ctx, b.coll, filter)
	if err != nil {
		return nil, fmt.Errorf("find bookings: %v", err)
	}
	return bookings, nil
}

func (b *Bookings) FindByRoom(ctx context.Context, roomID string) ([]model.Document, error) {
	bookings, err := findAll(ctx, b.coll, bson.M{model.RoomIDField: roomID})
	if err != nil {
		return nil, fmt.Errorf("find bookings for room %v: %v", roomID, err)
	}
	return bookings, nil
}

func (b *Bookings) Insert(ctx context.Context, booking model.Document) (model.InsertResult, error) {
	res, err := insertOne(ctx, b.coll, booking)
	if err != nil {
		return model.InsertResult{}, fmt.Errorf("insert booking: %v", err)
	}
	return res, nil
}

func (b *Bookings) DeleteByID(ctx context.Context, id string) (model.DeleteResult, error) {
	res, err := b.coll.DeleteOne(ctx, idFilter(id))
	if err != nil {
		return model.DeleteResult{}, fmt.Errorf("delete booking %v: %v", id, err)
	}
	return model.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

// UpdateFirstByRoom sets the update fields on the oldest booking (lowest
// _id) for roomID. A zero MatchedCount means no booking matched; nothing is
// inserted in that case.
func (b *Bookings) UpdateFirstByRoom(ctx context.Context, roomID string, update model.BookingUpdate) (model.UpdateResult, error) {
	var first model.Document
	err := b.coll.FindOne(ctx,
		bson.M{model.RoomIDField: roomID},
		options.FindOne().
			SetSort(bson.D{{Key: "_id", Value: 1}}).
			SetProjection(bson.M{"_id": 1})).Decode(&first)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.UpdateResult{Acknowledged: true}, nil
	}
	if err != nil {
		return model.UpdateResult{}, fmt.Errorf("find booking for room %v: %v", roomID, err)
	}

	// a booking moved to another room meanwhile is left alone
	res, err := b.coll.UpdateOne(ctx,
		bson.M{"_id": first["_id"], model.RoomIDField: roomID},
		bson.M{"$set": update},
		options.Update().SetUpsert(false))
	if err != nil {
		return model.UpdateResult{}, fmt.Errorf("update booking for room %v: %v", roomID, err)
	}
	return model.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedID:    res.UpsertedID,
		UpsertedCount: res.UpsertedCount,
	}, nil
}
