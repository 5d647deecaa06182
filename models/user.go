// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Roles a user can hold. Only RoleAdmin unlocks admin-gated routes.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// StatusActive marks a user account that is allowed to book tests. Any other
// status value (e.g. "blocked") is treated as inactive.
const StatusActive = "active"

// User is a patient or staff account of the booking platform.
// Users are keyed by email; a unique index on the email field guarantees
// that a single email maps to exactly one document.
type User struct {
	// ID is the store-assigned object id.
	ID primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`

	// Email is the unique identity carried in access tokens.
	Email string `json:"email" bson:"email"`

	Name   string `json:"name,omitempty" bson:"name,omitempty"`
	Avatar string `json:"avatar,omitempty" bson:"avatar,omitempty"`

	// Role is either RoleUser or RoleAdmin.
	Role string `json:"role" bson:"role"`

	// Status is StatusActive or a blocking status chosen by an admin.
	Status string `json:"status" bson:"status"`

	BloodType string `json:"bloodType,omitempty" bson:"bloodType,omitempty"`
	Division  string `json:"division,omitempty" bson:"division,omitempty"`
	District  string `json:"district,omitempty" bson:"district,omitempty"`
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsActive reports whether the user's status is StatusActive.
func (u User) IsActive() bool {
	return u.Status == StatusActive
}

// UserUpdate is a partial profile update.
// Only non-nil fields are written to the store. Email is the identity key
// that tokens resolve to, so it has no field here; role and status change
// only through the admin routes. Unknown JSON keys, email included, are
// dropped on decode.
type UserUpdate struct {
	Name      *string `json:"name,omitempty" bson:"name,omitempty"`
	Avatar    *string `json:"avatar,omitempty" bson:"avatar,omitempty"`
	BloodType *string `json:"bloodType,omitempty" bson:"bloodType,omitempty"`
	Division  *string `json:"division,omitempty" bson:"division,omitempty"`
	District  *string `json:"district,omitempty" bson:"district,omitempty"`
}

// AdminStatus is the body of GET /users/admin/{email}.
type AdminStatus struct {
	Admin bool `json:"admin"`
}

// ActiveStatus is the body of GET /users/status/{email}.
type ActiveStatus struct {
	Active bool `json:"active"`
}

// RoleChange is the body of PATCH /users/admin/{id}.
type RoleChange struct {
	Role string `json:"role"`
}

// StatusChange is the body of the status-toggle routes for users and banners.
type StatusChange struct {
	Status string `json:"status"`
}
