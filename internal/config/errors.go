package config

import "errors"

// Validation errors returned when a configuration group is incomplete or
// invalid.
var (
	// ErrInvalidAppConfigs indicates invalid lifecycle settings (for example,
	// zero retention days or attempt budget).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidTransportConfigs indicates missing or inconsistent NATS settings.
	ErrInvalidTransportConfigs = errors.New("invalid transport configuration")
	// ErrInvalidStorageConfigs indicates an unknown backend or missing
	// Redis address.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates a non-positive worker count or buffer.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
