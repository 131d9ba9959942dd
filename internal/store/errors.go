package store

import "errors"

// Sentinel errors returned by [KeyValueStore] implementations. Callers
// should use [errors.Is] to match against these values.
var (
	// ErrKeyNotFound is returned when the requested key does not exist or
	// has expired.
	ErrKeyNotFound = errors.New("key not found")

	// ErrStoreUnavailable is returned (wrapped) when the backend cannot be
	// reached or fails to execute a command.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrInvalidTTL is returned when a non-positive expiry is requested.
	ErrInvalidTTL = errors.New("ttl must be positive")

	// ErrNotAnInteger is returned when IncrementReturning targets a key
	// holding a non-integer value.
	ErrNotAnInteger = errors.New("value is not an integer")
)
