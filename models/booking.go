// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Booking links a user (by email) to a purchased diagnostic test.
type Booking struct {
	ID primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`

	// Email is the owner of the booking and must match the caller's token.
	Email string `json:"email" bson:"email"`
	Name  string `json:"name,omitempty" bson:"name,omitempty"`

	TestID   string  `json:"testId" bson:"testId"`
	TestName string  `json:"testName,omitempty" bson:"testName,omitempty"`
	Price    float64 `json:"price" bson:"price"`
	Date     string  `json:"date,omitempty" bson:"date,omitempty"`

	// TransactionID is the payment-intent reference returned by the payment provider.
	TransactionID string `json:"transactionId,omitempty" bson:"transactionId,omitempty"`
	Status        string `json:"status,omitempty" bson:"status,omitempty"`
}
