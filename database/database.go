package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hotel-booking/model"
)

// Store owns the single client shared by every repository for the process
// lifetime.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

func Connect(ctx context.Context, connString, dbName string) (*Store, error) {
	clientOptions := options.Client().
		ApplyURI(connString).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1).
			SetStrict(true).
			SetDeprecationErrors(true))

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to the db: %v", err)
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("db is not available: %v", err)
	}

	return &Store{client: client, db: client.Database(dbName)}, nil
}

func NewStore(db *mongo.Database) *Store {
	return &Store{client: db.Client(), db: db}
}

func (s *Store) Collection(name string) *mongo.Collection {
	return s.db.Collection(name)
}

func (s *Store) Disconnect(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// rangeFilter turns a bound on field into a $gte/$lte predicate. An empty
// bound matches every document.
func rangeFilter(field string, bound model.RangeFilter) bson.M {
	cond := bson.M{}
	if bound.Min != nil {
		cond["$gte"] = *bound.Min
	}
	if bound.Max != nil {
		cond["$lte"] = *bound.Max
	}
	if len(cond) == 0 {
		return bson.M{}
	}
	return bson.M{field: cond}
}

// idFilter matches _id stored either as the raw string or, when id is valid
// hex, as the equivalent ObjectID.
func idFilter(id string) bson.M {
	objId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return bson.M{"_id": id}
	}
	return bson.M{"_id": bson.M{"$in": bson.A{id, objId}}}
}

func findAll(ctx context.Context, coll *mongo.Collection, filter bson.M, opts ...*options.FindOptions) ([]model.Document, error) {
	cur, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	docs := []model.Document{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	if docs == nil {
		docs = []model.Document{}
	}
	return docs, nil
}

// findOne returns nil without an error when nothing matches.
func findOne(ctx context.Context, coll *mongo.Collection, filter bson.M) (model.Document, error) {
	var doc model.Document
	err := coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func insertOne(ctx context.Context, coll *mongo.Collection, doc model.Document) (model.InsertResult, error) {
	if doc == nil {
		doc = model.Document{}
	}
	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return model.InsertResult{}, err
	}
	return model.InsertResult{Acknowledged: true, InsertedID: res.InsertedID}, nil
}
