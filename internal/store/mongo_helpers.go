package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/ilm-med/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// findAll decodes every document matched by filter. The result is never nil,
// so an empty collection serializes as [].
func findAll[T any](ctx context.Context, coll *mongo.Collection, filter any) ([]T, error) {
	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w on %s: %w", ErrExecutingQuery, coll.Name(), err)
	}

	items := make([]T, 0)
	if err = cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("%w from %s: %w", ErrDecodingDocument, coll.Name(), err)
	}

	return items, nil
}

// findOne decodes the first document matched by filter. A missing document
// yields nil without error.
func findOne[T any](ctx context.Context, coll *mongo.Collection, filter any) (*T, error) {
	var item T
	err := coll.FindOne(ctx, filter).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w on %s: %w", ErrExecutingQuery, coll.Name(), err)
	}

	return &item, nil
}

func byID(id primitive.ObjectID) bson.M {
	return bson.M{"_id": id}
}

func insertResult(res *mongo.InsertOneResult) models.InsertResult {
	return models.InsertResult{Acknowledged: true, InsertedID: res.InsertedID}
}

func updateResult(res *mongo.UpdateResult) models.UpdateResult {
	return models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}
}

func deleteResult(res *mongo.DeleteResult) models.DeleteResult {
	return models.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}
}

func writeError(coll *mongo.Collection, err error) error {
	return fmt.Errorf("%w on %s: %w", ErrExecutingWrite, coll.Name(), err)
}
