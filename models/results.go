// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// InsertResult mirrors the document store's insert acknowledgement and is
// returned verbatim by create routes.
type InsertResult struct {
	Acknowledged bool `json:"acknowledged"`

	// InsertedID is the id of the new document, or nil when the insert was a
	// no-op (see Message).
	InsertedID any `json:"insertedId"`

	// Message is set only on sentinel responses, e.g. a duplicate registration.
	Message string `json:"message,omitempty"`
}

// UpdateResult mirrors the document store's update acknowledgement.
type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
	UpsertedCount int64 `json:"upsertedCount"`
	UpsertedID    any   `json:"upsertedId"`
}

// DeleteResult mirrors the document store's delete acknowledgement.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// UserAlreadyExistsMessage is the sentinel message returned when a
// registration targets an email that is already present.
const UserAlreadyExistsMessage = "user already exists"

// UserAlreadyExists returns the sentinel result for a duplicate registration.
func UserAlreadyExists() InsertResult {
	return InsertResult{Message: UserAlreadyExistsMessage, InsertedID: nil}
}
