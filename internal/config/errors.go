package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrEmptyTokenSignKey indicates that no token signing key was provided.
	ErrEmptyTokenSignKey = errors.New("token sign key is not set")
	// ErrInvalidTokenDuration indicates a token lifetime that is not positive
	// or exceeds one day.
	ErrInvalidTokenDuration = errors.New("invalid token duration")
	// ErrInvalidStorageConfigs indicates a missing MongoDB URI or database name.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing HTTP listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
