// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-secret-broker/internal/config"
	"github.com/MKhiriev/go-secret-broker/internal/logger"
	"github.com/redis/go-redis/v9"
)

// redisStore is the production [KeyValueStore] backed by a single Redis
// server. Expiry and atomic increments are delegated to the server.
type redisStore struct {
	client *redis.Client
	logger *logger.Logger
}

// NewRedisStore creates a client for the configured Redis server. It does
// not contact the server; use Ping to check reachability.
func NewRedisStore(cfg config.Redis, log *logger.Logger) KeyValueStore {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Address(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.Timeout,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
		PoolSize:     cfg.PoolSize,
	})

	return &redisStore{
		client: client,
		logger: log,
	}
}

func (r *redisStore) PutWithTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	if ttl <= 0 {
		return ErrInvalidTTL
	}

	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		r.logger.Err(err).Str("func", "redisStore.PutWithTTL").Msg("error setting key")
		return unavailable(err)
	}

	return nil
}

func (r *redisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "redisStore.Get").Msg("error getting key")
		return "", unavailable(err)
	}

	return value, nil
}

func (r *redisStore) Delete(ctx context.Context, key string) (bool, error) {
	deleted, err := r.client.Del(ctx, key).Result()
	if err != nil {
		r.logger.Err(err).Str("func", "redisStore.Delete").Msg("error deleting key")
		return false, unavailable(err)
	}

	return deleted > 0, nil
}

func (r *redisStore) IncrementReturning(ctx context.Context, key string) (int64, error) {
	n, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		if strings.Contains(err.Error(), "not an integer") {
			return 0, ErrNotAnInteger
		}
		r.logger.Err(err).Str("func", "redisStore.IncrementReturning").Msg("error incrementing key")
		return 0, unavailable(err)
	}

	return n, nil
}

func (r *redisStore) Expire(ctx context.Context, key string, ttl time.Duration) error {
	if ttl <= 0 {
		return ErrInvalidTTL
	}

	ok, err := r.client.Expire(ctx, key, ttl).Result()
	if err != nil {
		r.logger.Err(err).Str("func", "redisStore.Expire").Msg("error setting expiry")
		return unavailable(err)
	}
	if !ok {
		return ErrKeyNotFound
	}

	return nil
}

func (r *redisStore) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return unavailable(err)
	}
	return nil
}

func (r *redisStore) Close() error {
	return r.client.Close()
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}
