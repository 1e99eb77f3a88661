package mongostore

import (
	"context"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type slotDocument struct {
	Key   string `bson:"_id"`
	Value string `bson:"value"`
}

type mongoStore struct {
	Collection *mongo.Collection
}

// NewMongoStore keeps every slot as one document keyed by the slot name.
func NewMongoStore(db *mongo.Database) contracts.KeyValueStore {
	return &mongoStore{
		Collection: db.Collection(constvars.MongoCollectionKeyValues),
	}
}

func (s *mongoStore) Get(ctx context.Context, key string) (string, bool, error) {
	var document slotDocument
	err := s.Collection.FindOne(ctx, bson.M{"_id": key}).Decode(&document)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return "", false, nil
		}
		return "", false, exceptions.ErrStorageGet(err, key)
	}
	return document.Value, true, nil
}

func (s *mongoStore) Set(ctx context.Context, key, value string) error {
	_, err := s.Collection.UpdateOne(
		ctx,
		bson.M{"_id": key},
		bson.M{"$set": bson.M{constvars.MongoFieldValue: value}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return exceptions.ErrStorageSet(err, key)
	}
	return nil
}

func (s *mongoStore) Delete(ctx context.Context, key string) error {
	_, err := s.Collection.DeleteOne(ctx, bson.M{"_id": key})
	if err != nil {
		return exceptions.ErrStorageDelete(err, key)
	}
	return nil
}
