package store

import (
	"context"
	"sync"
	"time"

	"github.com/pmylund/go-cache"
)

const memoryCleanupInterval = time.Minute

// memoryStore is an in-process [KeyValueStore] for development and tests.
// Entries expire lazily on read and are swept every memoryCleanupInterval.
//
// go-cache is safe for concurrent use on its own, but Delete must report
// existence and IncrementReturning must create-or-increment as one step, so
// every operation runs under mu.
type memoryStore struct {
	mu    sync.Mutex
	cache *cache.Cache
}

// NewMemoryStore constructs an empty in-memory store.
func NewMemoryStore() KeyValueStore {
	return &memoryStore{
		cache: cache.New(cache.NoExpiration, memoryCleanupInterval),
	}
}

func (m *memoryStore) PutWithTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	if ttl <= 0 {
		return ErrInvalidTTL
	}
	if err := ctx.Err(); err != nil {
		return unavailable(err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.cache.Set(key, value, ttl)
	return nil
}

func (m *memoryStore) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", unavailable(err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	value, found := m.cache.Get(key)
	if !found {
		return "", ErrKeyNotFound
	}

	s, ok := value.(string)
	if !ok {
		return "", ErrKeyNotFound
	}
	return s, nil
}

func (m *memoryStore) Delete(ctx context.Context, key string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, unavailable(err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, found := m.cache.Get(key); !found {
		return false, nil
	}
	m.cache.Delete(key)
	return true, nil
}

func (m *memoryStore) IncrementReturning(ctx context.Context, key string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, unavailable(err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.cache.Add(key, int64(1), cache.NoExpiration); err == nil {
		return 1, nil
	}

	n, err := m.cache.IncrementInt64(key, 1)
	if err != nil {
		return 0, ErrNotAnInteger
	}
	return n, nil
}

func (m *memoryStore) Expire(ctx context.Context, key string, ttl time.Duration) error {
	if ttl <= 0 {
		return ErrInvalidTTL
	}
	if err := ctx.Err(); err != nil {
		return unavailable(err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	value, found := m.cache.Get(key)
	if !found {
		return ErrKeyNotFound
	}
	m.cache.Set(key, value, ttl)
	return nil
}

func (m *memoryStore) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return unavailable(err)
	}
	return nil
}

func (m *memoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.cache.Flush()
	return nil
}
