package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-secret-broker/internal/config"
	"github.com/MKhiriev/go-secret-broker/internal/logger"
	"github.com/cenkalti/backoff"
)

// connectMaxRetries bounds the startup ping loop against Redis.
const connectMaxRetries = 5

// Storages aggregates the storage backends used by the services layer.
type Storages struct {
	KeyValueStore KeyValueStore
}

// NewStorages builds the configured backend. For Redis it pings the server
// with exponential backoff, retrying only errors the [RedisErrorClassifier]
// considers transient.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	switch cfg.Backend {
	case config.StorageBackendMemory:
		log.Info().Str("func", "NewStorages").Msg("using in-memory store")
		return &Storages{KeyValueStore: NewMemoryStore()}, nil
	case config.StorageBackendRedis:
		kv := NewRedisStore(cfg.Redis, log)
		if err := pingWithRetry(ctx, kv, NewRedisErrorClassifier(), log); err != nil {
			_ = kv.Close()
			log.Err(err).Str("func", "NewStorages").Str("addr", cfg.Redis.Address()).Msg("error connecting redis")
			return nil, fmt.Errorf("error connecting redis: %w", err)
		}
		log.Info().Str("func", "NewStorages").Str("addr", cfg.Redis.Address()).Msg("connected to redis successfully")
		return &Storages{KeyValueStore: kv}, nil
	default:
		return nil, fmt.Errorf("%w: unknown backend %q", config.ErrInvalidStorageConfigs, cfg.Backend)
	}
}

// Close releases all storage backends.
func (s *Storages) Close() error {
	return s.KeyValueStore.Close()
}

func pingWithRetry(ctx context.Context, kv KeyValueStore, classifier ErrorClassificator, log *logger.Logger) error {
	backOff := backoff.NewExponentialBackOff()
	backOff.InitialInterval = 200 * time.Millisecond
	backOff.MaxInterval = 2 * time.Second

	ping := func() error {
		err := kv.Ping(ctx)
		if err != nil && classifier.Classify(err) == NonRetryable {
			return backoff.Permanent(err)
		}
		return err
	}

	return backoff.RetryNotify(
		ping,
		backoff.WithContext(backoff.WithMaxRetries(backOff, connectMaxRetries), ctx),
		func(err error, d time.Duration) {
			log.Warn().Err(err).Dur("retry_in", d).Msg("store is not reachable yet")
		},
	)
}
