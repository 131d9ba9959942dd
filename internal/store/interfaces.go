package store

import (
	"context"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValueStore is the persistence contract of the broker: a string
// key-value store with per-key expiry and an atomic counter.
//
// Implementations must be safe for concurrent use. Unreachable backends are
// reported as errors wrapping [ErrStoreUnavailable].
type KeyValueStore interface {
	// PutWithTTL stores value under key, replacing any previous value. The
	// key expires after ttl; a non-positive ttl is rejected.
	PutWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
	// Get returns the value under key or [ErrKeyNotFound].
	Get(ctx context.Context, key string) (string, error)
	// Delete removes key and reports whether it existed. Of several
	// concurrent deletes of the same key at most one observes true.
	Delete(ctx context.Context, key string) (bool, error)
	// IncrementReturning atomically increments the integer under key,
	// creating it at 1 when missing, and returns the new value.
	IncrementReturning(ctx context.Context, key string) (int64, error)
	// Expire sets the ttl of an existing key.
	Expire(ctx context.Context, key string, ttl time.Duration) error
	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error
	// Close releases the backend resources.
	Close() error
}
