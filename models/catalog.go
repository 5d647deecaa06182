// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// DiagnosticTest is an entry of the test catalog that patients can book.
type DiagnosticTest struct {
	ID primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`

	Name     string `json:"name" bson:"name"`
	Category string `json:"category,omitempty" bson:"category,omitempty"`

	// Slots is the number of remaining booking slots.
	Slots int `json:"slots" bson:"slots"`

	// Price is expressed in major currency units (e.g. 50.00 USD).
	Price float64 `json:"price" bson:"price"`

	// Date is the day the test is held; Deadline is the last day to book it.
	Date     string `json:"date,omitempty" bson:"date,omitempty"`
	Deadline string `json:"deadline,omitempty" bson:"deadline,omitempty"`

	Description string `json:"description,omitempty" bson:"description,omitempty"`
	Image       string `json:"image,omitempty" bson:"image,omitempty"`
}

// DiagnosticTestUpdate is a partial catalog update.
// Only non-nil fields are written; fields left nil keep their stored value.
type DiagnosticTestUpdate struct {
	Name        *string  `json:"name,omitempty" bson:"name,omitempty"`
	Category    *string  `json:"category,omitempty" bson:"category,omitempty"`
	Slots       *int     `json:"slots,omitempty" bson:"slots,omitempty"`
	Price       *float64 `json:"price,omitempty" bson:"price,omitempty"`
	Date        *string  `json:"date,omitempty" bson:"date,omitempty"`
	Deadline    *string  `json:"deadline,omitempty" bson:"deadline,omitempty"`
	Description *string  `json:"description,omitempty" bson:"description,omitempty"`
	Image       *string  `json:"image,omitempty" bson:"image,omitempty"`
}
