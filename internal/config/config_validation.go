// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.AutoDeleteDays < 1 {
		return fmt.Errorf("%w: auto delete days must be at least 1, got %d", ErrInvalidAppConfigs, cfg.App.AutoDeleteDays)
	}
	if cfg.App.MaxTries < 1 {
		return fmt.Errorf("%w: max tries must be at least 1, got %d", ErrInvalidAppConfigs, cfg.App.MaxTries)
	}
	if cfg.App.MaxMessageSize < 1 {
		return fmt.Errorf("%w: max message size must be positive, got %d", ErrInvalidAppConfigs, cfg.App.MaxMessageSize)
	}

	if cfg.Transport.URL == "" {
		return fmt.Errorf("%w: empty NATS url", ErrInvalidTransportConfigs)
	}
	if (cfg.Transport.User == "") != (cfg.Transport.Password == "") {
		return fmt.Errorf("%w: NATS user and password must be set together", ErrInvalidTransportConfigs)
	}
	if cfg.Transport.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidTransportConfigs)
	}

	switch cfg.Storage.Backend {
	case StorageBackendMemory:
	case StorageBackendRedis:
		if cfg.Storage.Redis.Host == "" || cfg.Storage.Redis.Port < 1 {
			return fmt.Errorf("%w: redis host and port are required", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidStorageConfigs, cfg.Storage.Backend)
	}

	if cfg.Workers.Count < 1 || cfg.Workers.BufferSize < 1 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Transport.URL == "" {
		return fmt.Errorf("%w: empty NATS url", ErrInvalidTransportConfigs)
	}
	if cfg.Transport.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidTransportConfigs)
	}

	return nil
}
