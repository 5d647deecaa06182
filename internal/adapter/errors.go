package adapter

import "errors"

// Errors returned by the payment adapter. Provider responses are mapped by
// status code; callers should use [errors.Is].
var (
	ErrBadRequest          = errors.New("payment provider rejected request")
	ErrUnauthorized        = errors.New("payment provider unauthorized")
	ErrPaymentDeclined     = errors.New("payment declined")
	ErrNotFound            = errors.New("payment provider resource not found")
	ErrTooManyRequests     = errors.New("payment provider rate limit exceeded")
	ErrInternalServerError = errors.New("payment provider internal error")

	// ErrEmptyClientSecret is returned when the provider answers 2xx without
	// a client secret.
	ErrEmptyClientSecret = errors.New("payment provider returned no client secret")

	// ErrMissingSecretKey is returned by the constructor when no provider
	// secret key is configured.
	ErrMissingSecretKey = errors.New("payment provider secret key is not set")
)
