// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"strconv"
	"time"
)

// Storage backends supported by [Storage.Backend].
const (
	StorageBackendRedis  = "redis"
	StorageBackendMemory = "memory"
)

// StructuredConfig is the top-level configuration container for the
// broker. It aggregates all sub-configurations and is populated by merging
// defaults, environment variables, command-line flags and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the secret lifecycle settings: retention, attempt budget
	// and size limits.
	App App `envPrefix:"APP_"`

	// Transport holds the NATS connection settings.
	Transport Transport `envPrefix:"NATS_"`

	// Storage holds the key-value store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the liveness HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Workers controls how many messages are handled in parallel.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds the secret lifecycle settings.
type App struct {
	// AutoDeleteDays is the envelope TTL in whole days.
	// Env: APP_AUTO_DELETE_DAYS
	AutoDeleteDays int `env:"AUTO_DELETE_DAYS"`

	// MaxTries is the number of retrieval attempts allowed per message.
	// Env: APP_MAX_TRIES
	MaxTries int `env:"MAX_TRIES"`

	// MaxMessageSize is the largest accepted payload in bytes.
	// Env: APP_MAX_MESSAGE_SIZE
	MaxMessageSize int `env:"MAX_MESSAGE_SIZE"`

	// PasswordLength is the default length of generated passwords. The
	// broker itself does not use it.
	// Env: APP_PASSWORD_LENGTH
	PasswordLength int `env:"PASSWORD_LENGTH"`

	// LogLevel is a zerolog level name (debug, info, warn, error).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is reported by the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// MessageTTL converts AutoDeleteDays to a duration.
func (a App) MessageTTL() time.Duration {
	return time.Duration(a.AutoDeleteDays) * 24 * time.Hour
}

// Transport holds NATS connection settings.
type Transport struct {
	// URL is the NATS server URL (e.g. "nats://127.0.0.1:4222").
	// Env: NATS_URL
	URL string `env:"URL"`

	// User and Password enable user/password authentication when both are set.
	// Env: NATS_USER, NATS_PASS
	User     string `env:"USER"`
	Password string `env:"PASS"`

	// Name is the connection name reported to the NATS server.
	// Env: NATS_NAME
	Name string `env:"NAME"`

	// QueueGroup, when set, makes every broker instance join the same queue
	// group so each request is handled once across instances.
	// Env: NATS_QUEUE_GROUP
	QueueGroup string `env:"QUEUE_GROUP"`

	// RequestTimeout bounds the processing of a single request, store
	// operations included.
	// Env: NATS_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds key-value store settings.
type Storage struct {
	// Backend selects the store implementation: "redis" or "memory".
	// Env: STORAGE_BACKEND
	Backend string `env:"BACKEND"`

	// Redis holds the Redis connection settings.
	Redis Redis `envPrefix:"REDIS_"`
}

// Redis holds Redis connection settings.
type Redis struct {
	// Env: STORAGE_REDIS_HOST
	Host string `env:"HOST"`
	// Env: STORAGE_REDIS_PORT
	Port int `env:"PORT"`
	// Env: STORAGE_REDIS_PASSWORD
	Password string `env:"PASSWORD"`
	// Env: STORAGE_REDIS_DB
	DB int `env:"DB"`

	// Timeout is used as dial, read and write timeout.
	// Env: STORAGE_REDIS_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// PoolSize is the maximum number of pooled connections.
	// Env: STORAGE_REDIS_POOL_SIZE
	PoolSize int `env:"POOL_SIZE"`
}

// Address returns host:port.
func (r Redis) Address() string {
	return net.JoinHostPort(r.Host, strconv.Itoa(r.Port))
}

// Server holds the liveness HTTP listener settings.
type Server struct {
	// StatusAddress is the listen address of the /status endpoint
	// (e.g. ":8080"). Empty disables the HTTP server.
	// Env: SERVER_STATUS_ADDRESS
	StatusAddress string `env:"STATUS_ADDRESS"`
}

// Workers controls the message worker pool.
type Workers struct {
	// Count is the number of goroutines handling messages.
	// Env: WORKERS_COUNT
	Count int `env:"COUNT"`

	// BufferSize is the capacity of the channel subscriptions deliver into.
	// Env: WORKERS_BUFFER_SIZE
	BufferSize int `env:"BUFFER_SIZE"`
}

// GetStructuredConfig loads, merges, and validates the broker configuration
// from defaults, environment variables, the command-line args and an
// optional JSON file (path resolved from env and flags).
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
