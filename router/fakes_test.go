package router

import (
	"context"
	"errors"
	"reflect"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"hotel-booking/model"
)

var errBroken = errors.New("connection reset by peer")

func matchesID(doc model.Document, id string) bool {
	switch v := doc["_id"].(type) {
	case string:
		return v == id
	case primitive.ObjectID:
		return v.Hex() == id
	}
	return false
}

func copyDoc(doc model.Document) model.Document {
	out := model.Document{}
	for k, v := range doc {
		out[k] = v
	}
	return out
}

func withID(doc model.Document) (model.Document, interface{}) {
	stored := copyDoc(doc)
	if _, ok := stored["_id"]; !ok {
		stored["_id"] = primitive.NewObjectID()
	}
	return stored, stored["_id"]
}

type memRooms struct {
	docs   []model.Document
	broken bool
}

func (r *memRooms) Find(_ context.Context, price model.RangeFilter) ([]model.Document, error) {
	if r.broken {
		return nil, errBroken
	}
	out := []model.Document{}
	for _, doc := range r.docs {
		v, ok := model.NumberField(doc, model.PricePerNightField)
		if price.IsEmpty() || (ok && price.Contains(v)) {
			out = append(out, copyDoc(doc))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, _ := model.NumberField(out[i], model.PricePerNightField)
		b, _ := model.NumberField(out[j], model.PricePerNightField)
		return a < b
	})
	return out, nil
}

func (r *memRooms) FindByID(_ context.Context, id string) (model.Document, error) {
	if r.broken {
		return nil, errBroken
	}
	for _, doc := range r.docs {
		if matchesID(doc, id) {
			return copyDoc(doc), nil
		}
	}
	return nil, nil
}

// memBookings keeps insertion order, which matches ascending ObjectID order.
type memBookings struct {
	mu     sync.Mutex
	docs   []model.Document
	broken bool
}

func (b *memBookings) filter(keep func(model.Document) bool) ([]model.Document, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.broken {
		return nil, errBroken
	}
	out := []model.Document{}
	for _, doc := range b.docs {
		if keep(doc) {
			out = append(out, copyDoc(doc))
		}
	}
	return out, nil
}

func (b *memBookings) Find(_ context.Context, email string) ([]model.Document, error) {
	return b.filter(func(doc model.Document) bool {
		return email == "" || doc[model.EmailField] == email
	})
}

func (b *memBookings) FindByRoom(_ context.Context, roomID string) ([]model.Document, error) {
	return b.filter(func(doc model.Document) bool { return doc[model.RoomIDField] == roomID })
}

func (b *memBookings) Insert(_ context.Context, booking model.Document) (model.InsertResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.broken {
		return model.InsertResult{}, errBroken
	}
	stored, id := withID(booking)
	b.docs = append(b.docs, stored)
	return model.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

func (b *memBookings) DeleteByID(_ context.Context, id string) (model.DeleteResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.broken {
		return model.DeleteResult{}, errBroken
	}
	for i, doc := range b.docs {
		if matchesID(doc, id) {
			b.docs = append(b.docs[:i], b.docs[i+1:]...)
			return model.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return model.DeleteResult{Acknowledged: true}, nil
}

func (b *memBookings) UpdateFirstByRoom(_ context.Context, roomID string, update model.BookingUpdate) (model.UpdateResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.broken {
		return model.UpdateResult{}, errBroken
	}
	for _, doc := range b.docs {
		if doc[model.RoomIDField] != roomID {
			continue
		}
		res := model.UpdateResult{Acknowledged: true, MatchedCount: 1}
		for k, v := range update.Fields() {
			if old, ok := doc[k]; !ok || !reflect.DeepEqual(old, v) {
				res.ModifiedCount = 1
			}
			doc[k] = v
		}
		return res, nil
	}
	return model.UpdateResult{Acknowledged: true}, nil
}

type memReviews struct {
	docs   []model.Document
	broken bool
}

func (r *memReviews) Find(_ context.Context, rating model.RangeFilter) ([]model.Document, error) {
	if r.broken {
		return nil, errBroken
	}
	out := []model.Document{}
	for _, doc := range r.docs {
		v, ok := model.NumberField(doc, model.RatingField)
		if rating.IsEmpty() || (ok && rating.Contains(v)) {
			out = append(out, copyDoc(doc))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, _ := model.NumberField(out[i], model.TimestampField)
		b, _ := model.NumberField(out[j], model.TimestampField)
		return a > b
	})
	return out, nil
}

func (r *memReviews) FindByReviewID(_ context.Context, reviewID string) (model.Document, error) {
	if r.broken {
		return nil, errBroken
	}
	for _, doc := range r.docs {
		if doc[model.ReviewIDField] == reviewID {
			return copyDoc(doc), nil
		}
	}
	return nil, nil
}

func (r *memReviews) FindByRoom(_ context.Context, roomID string) ([]model.Document, error) {
	if r.broken {
		return nil, errBroken
	}
	out := []model.Document{}
	for _, doc := range r.docs {
		if doc[model.RoomIDField] == roomID {
			out = append(out, copyDoc(doc))
		}
	}
	return out, nil
}

func (r *memReviews) Insert(_ context.Context, review model.Document) (model.InsertResult, error) {
	if r.broken {
		return model.InsertResult{}, errBroken
	}
	stored, id := withID(review)
	r.docs = append(r.docs, stored)
	return model.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

type memImages struct {
	docs []model.Document
}

func (i *memImages) Find(context.Context) ([]model.Document, error) {
	return i.docs, nil
}
