package config

import "time"

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			AutoDeleteDays: 7,
			MaxTries:       3,
			MaxMessageSize: 1 << 20,
			PasswordLength: 16,
			LogLevel:       "info",
			Version:        "dev",
		},
		Transport: Transport{
			URL:            "nats://127.0.0.1:4222",
			Name:           "go-secret-broker",
			RequestTimeout: 5 * time.Second,
		},
		Storage: Storage{
			Backend: StorageBackendRedis,
			Redis: Redis{
				Host:     "localhost",
				Port:     6379,
				Timeout:  3 * time.Second,
				PoolSize: 10,
			},
		},
		Server: Server{
			StatusAddress: ":8080",
		},
		Workers: Workers{
			Count:      8,
			BufferSize: 256,
		},
	}
}
