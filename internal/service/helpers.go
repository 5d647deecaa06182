package service

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// parseID converts a 24-hex path id into an object id.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return oid, nil
}
