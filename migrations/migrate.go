// Package migrations prepares the document store schema: the indexes every
// collection relies on are created idempotently at startup.
package migrations

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var errNilDB = errors.New("db is nil")

// collectionIndexes lists the indexes per collection. Creating an index that
// already exists with the same options is a no-op on the server.
var collectionIndexes = []struct {
	collection string
	indexes    []mongo.IndexModel
}{
	{
		collection: "allUsers",
		indexes: []mongo.IndexModel{{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("email_unique").SetUnique(true),
		}},
	},
	{
		collection: "allBookings",
		indexes: []mongo.IndexModel{{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("email"),
		}},
	},
	{
		collection: "allBanners",
		indexes: []mongo.IndexModel{{
			Keys:    bson.D{{Key: "status", Value: 1}},
			Options: options.Index().SetName("status"),
		}},
	},
	{
		collection: "districts",
		indexes: []mongo.IndexModel{{
			Keys:    bson.D{{Key: "division_id", Value: 1}},
			Options: options.Index().SetName("division_id"),
		}},
	},
}

// Migrate creates all indexes. The unique index on allUsers.email is what
// turns a duplicate registration into a duplicate-key write error.
func Migrate(ctx context.Context, db *mongo.Database) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", errNilDB)
	}

	for _, ci := range collectionIndexes {
		if _, err := db.Collection(ci.collection).Indexes().CreateMany(ctx, ci.indexes); err != nil {
			return fmt.Errorf("migration error creating indexes on %s: %w", ci.collection, err)
		}
	}

	return nil
}
