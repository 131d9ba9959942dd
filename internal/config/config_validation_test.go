package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *StructuredConfig)
		want   error
	}{
		{name: "defaults are valid", mutate: func(*StructuredConfig) {}},
		{name: "memory backend ignores redis host", mutate: func(cfg *StructuredConfig) {
			cfg.Storage.Backend = StorageBackendMemory
			cfg.Storage.Redis.Host = ""
		}},
		{name: "zero days", mutate: func(cfg *StructuredConfig) { cfg.App.AutoDeleteDays = 0 }, want: ErrInvalidAppConfigs},
		{name: "zero tries", mutate: func(cfg *StructuredConfig) { cfg.App.MaxTries = 0 }, want: ErrInvalidAppConfigs},
		{name: "zero size", mutate: func(cfg *StructuredConfig) { cfg.App.MaxMessageSize = 0 }, want: ErrInvalidAppConfigs},
		{name: "empty nats url", mutate: func(cfg *StructuredConfig) { cfg.Transport.URL = "" }, want: ErrInvalidTransportConfigs},
		{name: "user without password", mutate: func(cfg *StructuredConfig) { cfg.Transport.User = "u" }, want: ErrInvalidTransportConfigs},
		{name: "zero request timeout", mutate: func(cfg *StructuredConfig) { cfg.Transport.RequestTimeout = 0 }, want: ErrInvalidTransportConfigs},
		{name: "unknown backend", mutate: func(cfg *StructuredConfig) { cfg.Storage.Backend = "disk" }, want: ErrInvalidStorageConfigs},
		{name: "redis without host", mutate: func(cfg *StructuredConfig) { cfg.Storage.Redis.Host = "" }, want: ErrInvalidStorageConfigs},
		{name: "no workers", mutate: func(cfg *StructuredConfig) { cfg.Workers.Count = 0 }, want: ErrInvalidWorkerConfigs},
		{name: "no buffer", mutate: func(cfg *StructuredConfig) { cfg.Workers.BufferSize = 0 }, want: ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestGetClientConfig(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"NATS_URL":             "nats://client:4222",
		"SECRETCTL_STATUS_URL": "http://broker:8080",
	})

	// Act
	cfg, err := GetClientConfig()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "nats://client:4222", cfg.Transport.URL)
	assert.Equal(t, "http://broker:8080", cfg.StatusURL)
	assert.Equal(t, 16, cfg.PasswordLength)
	assert.Positive(t, cfg.Transport.RequestTimeout)
}

func TestClientConfig_Override(t *testing.T) {
	clearEnvVars(t)
	cfg, err := GetClientConfig()
	require.NoError(t, err)

	err = cfg.Override(ClientConfig{Transport: ClientTransport{URL: "nats://override:4222"}})

	require.NoError(t, err)
	assert.Equal(t, "nats://override:4222", cfg.Transport.URL)
	assert.Equal(t, "http://localhost:8080", cfg.StatusURL)
}
