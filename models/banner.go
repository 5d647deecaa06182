// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Banner statuses. At most one banner is expected to be active at a time;
// admins deactivate all banners before activating a new one.
const (
	BannerStatusActive = "active"
	BannerStatusBlock  = "block"
)

// Banner is a promotional banner shown on the landing page.
type Banner struct {
	ID primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`

	Title       string `json:"title" bson:"title"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	Image       string `json:"image,omitempty" bson:"image,omitempty"`

	CouponCode  string  `json:"couponCode,omitempty" bson:"couponCode,omitempty"`
	CouponRate  float64 `json:"couponRate,omitempty" bson:"couponRate,omitempty"`
	ButtonLabel string  `json:"buttonLabel,omitempty" bson:"buttonLabel,omitempty"`

	Status string `json:"status" bson:"status"`
}
