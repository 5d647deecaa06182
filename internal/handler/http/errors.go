// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("access forbidden: empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into at least two space-separated
	// parts (i.e. the token value is missing entirely).
	ErrInvalidAuthorizationHeader = errors.New("access forbidden: invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("access forbidden: empty token in `Authorization` header")
)

// Authorization errors, answered with 403 Forbidden.
var (
	// ErrForbiddenAccess is returned when an admin-only route is called by a
	// caller whose stored role is not admin.
	ErrForbiddenAccess = errors.New("forbidden access")

	// ErrIdentityMismatch is returned when a route scoped to an email is
	// called with an email other than the one carried in the token.
	ErrIdentityMismatch = errors.New("access unauthorized")
)

// errInvalidJSON is returned when a request body cannot be decoded.
var errInvalidJSON = errors.New("invalid JSON was passed")
