package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SetupIndexes creates the indexes the key-value collection relies on.
// Re-running it is harmless.
func SetupIndexes(ctx context.Context, coll *mongo.Collection) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	kvIndexes := []mongo.IndexModel{
		// Most recently written keys first, for export/backup tooling
		{
			Keys: bson.D{{Key: "updated_at", Value: -1}},
			Options: options.Index().
				SetName("kv_updated_at"),
		},
	}

	if _, err := coll.Indexes().CreateMany(ctx, kvIndexes); err != nil {
		return fmt.Errorf("failed to create %s indexes: %w", coll.Name(), err)
	}

	slog.Info("ensured indexes", "collection", coll.Name())
	return nil
}
