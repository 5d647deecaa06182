// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Division is a top-level administrative region used in user profiles.
type Division struct {
	ID   primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name string             `json:"name" bson:"name"`
}

// District belongs to a Division.
type District struct {
	ID         primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	DivisionID string             `json:"division_id" bson:"division_id"`
	Name       string             `json:"name" bson:"name"`
}

// Promotion is a read-only catalog-adjacent offer.
type Promotion struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Image       string             `json:"image,omitempty" bson:"image,omitempty"`
}

// Recommendation is a read-only health tip shown next to the catalog.
type Recommendation struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Image       string             `json:"image,omitempty" bson:"image,omitempty"`
}
