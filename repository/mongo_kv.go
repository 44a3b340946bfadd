package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tostreak/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore keeps one document per key: {_id: key, value: <json>, updated_at}.
type MongoStore struct {
	MongoCollection *mongo.Collection
}

type kvDocument struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func GetMongoStore(client *mongo.Client, dbName, collectionName string) *MongoStore {
	return &MongoStore{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

func (r *MongoStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	timer := utils.TrackStoreOperation("mongo", "get", key)
	defer timer.ObserveDuration()

	var doc kvDocument
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, false, nil
		}
		utils.TrackError("store", "mongo_get_failed")
		return nil, false, fmt.Errorf("failed to fetch %s from mongo: %w", key, err)
	}
	return []byte(doc.Value), true, nil
}

func (r *MongoStore) Set(ctx context.Context, key string, value []byte) error {
	timer := utils.TrackStoreOperation("mongo", "set", key)
	defer timer.ObserveDuration()

	update := bson.M{
		"$set": bson.M{
			"value":      string(value),
			"updated_at": time.Now(),
		},
	}

	_, err := r.MongoCollection.UpdateOne(ctx, bson.M{"_id": key}, update, options.Update().SetUpsert(true))
	if err != nil {
		utils.TrackError("store", "mongo_set_failed")
		return fmt.Errorf("failed to write %s to mongo: %w", key, err)
	}
	return nil
}
