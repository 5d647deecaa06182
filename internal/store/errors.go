package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when a registration violates the
	// unique index on the user email.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrNoUserWasFound is returned when a lookup by email matches no user.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrCacheMiss is returned by a [RoleCache] when no role is cached for
	// the email.
	ErrCacheMiss = errors.New("role cache miss")
)

// Low-level database operation errors. These wrap the driver error when a
// collection operation fails before any domain logic can be applied.
var (
	// ErrConnecting is returned when the client cannot connect to or ping
	// the deployment.
	ErrConnecting = errors.New("error connecting to document store")

	// ErrExecutingQuery is returned when a find or aggregate command fails.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrDecodingDocument is returned when decoding a document into a model
	// fails, typically because of a type mismatch in stored data.
	ErrDecodingDocument = errors.New("failed to decode document")

	// ErrExecutingWrite is returned when an insert, update or delete fails.
	ErrExecutingWrite = errors.New("failed to execute write")
)
