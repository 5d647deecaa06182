package service

import "errors"

// Validation errors. Handlers map them to 400 Bad Request.
var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrEmptyEmail          = errors.New("email is required")
	ErrInvalidID           = errors.New("invalid id")
	ErrInvalidRole         = errors.New("role must be either user or admin")
	ErrInvalidStatus       = errors.New("invalid status")
	ErrEmptyUpdate         = errors.New("no fields to update")
	ErrInvalidPrice        = errors.New("price must be positive")
)

// Token errors. Handlers map them to 401 Unauthorized.
var (
	ErrTokenIsExpired      = errors.New("token is expired")
	ErrTokenIsInvalid      = errors.New("token is invalid")
	ErrTokenCreationFailed = errors.New("token creation failed")
)

// ErrPaymentFailed wraps any failure of the payment provider.
var ErrPaymentFailed = errors.New("payment intent creation failed")
