// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/golang-jwt/jwt/v5"

// Claims is the identity payload carried by an access token.
//
// Tokens carry identity only: the role is never embedded and is resolved from
// the store on every admin-gated request, so role changes apply immediately.
type Claims struct {
	// Email identifies the caller and is compared against email path
	// parameters by the identity-match guard.
	Email string `json:"email"`

	// Name is optional display data copied from the sign-in payload.
	Name string `json:"name,omitempty"`

	// RegisteredClaims provides the standard claim set (iss, sub, exp, iat).
	jwt.RegisteredClaims
}

// Token wraps a signed access token.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS form sent back to the client.
	SignedString string `json:"token"`

	// Claims are the decoded identity claims.
	Claims Claims `json:"-"`
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
