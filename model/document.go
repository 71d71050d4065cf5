package model

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document is a schema-flexible record passed through to and from storage
// as-is.
type Document = bson.M

type InsertResult struct {
	Acknowledged bool        `json:"acknowledged"`
	InsertedID   interface{} `json:"insertedId"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// UpdateResult mirrors a single-document write acknowledgement. Upserts are
// never requested, so UpsertedID stays nil and UpsertedCount zero.
type UpdateResult struct {
	Acknowledged  bool        `json:"acknowledged"`
	MatchedCount  int64       `json:"matchedCount"`
	ModifiedCount int64       `json:"modifiedCount"`
	UpsertedID    interface{} `json:"upsertedId"`
	UpsertedCount int64       `json:"upsertedCount"`
}

// StringField returns doc[key] when it holds a string, or the hex form when
// it holds an ObjectID.
func StringField(doc Document, key string) string {
	switch v := doc[key].(type) {
	case string:
		return v
	case primitive.ObjectID:
		return v.Hex()
	}
	return ""
}

// NumberField returns doc[key] as a float64 when it holds any numeric bson
// type.
func NumberField(doc Document, key string) (float64, bool) {
	switch v := doc[key].(type) {
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}
