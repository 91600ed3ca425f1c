package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSlot keeps the override payload in a single document keyed by the
// slot name. The payload stays an opaque JSON string, so the layout and
// last-write-wins behavior match the other slot backends exactly.
type MongoSlot struct {
	collection *mongo.Collection
	key        string
}

type slotDocument struct {
	ID      string `bson:"_id"`
	Payload string `bson:"payload"`
}

func NewMongoSlot(collection *mongo.Collection, key string) *MongoSlot {
	return &MongoSlot{collection: collection, key: key}
}

func (s *MongoSlot) Load(ctx context.Context) ([]byte, error) {
	var doc slotDocument
	err := s.collection.FindOne(ctx, bson.M{"_id": s.key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []byte(doc.Payload), nil
}

func (s *MongoSlot) Save(ctx context.Context, payload []byte) error {
	_, err := s.collection.UpdateOne(ctx,
		bson.M{"_id": s.key},
		bson.M{"$set": bson.M{"payload": string(payload)}},
		options.Update().SetUpsert(true),
	)
	return err
}
