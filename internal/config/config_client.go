package config

import (
	"fmt"
	"time"
)

// ClientConfig is the configuration of the secretctl client. It reads the
// same NATS_* variables as the broker plus the status endpoint URL.
type ClientConfig struct {
	// Transport holds the NATS connection settings.
	Transport ClientTransport `envPrefix:"NATS_"`

	// StatusURL is the broker liveness base URL (e.g. "http://localhost:8080").
	// Env: SECRETCTL_STATUS_URL
	StatusURL string `env:"SECRETCTL_STATUS_URL" envDefault:"http://localhost:8080"`

	// PasswordLength is the default length for generated passwords.
	// Env: APP_PASSWORD_LENGTH
	PasswordLength int `env:"APP_PASSWORD_LENGTH" envDefault:"16"`
}

// ClientTransport holds NATS settings used by the client.
type ClientTransport struct {
	URL            string        `env:"URL" envDefault:"nats://127.0.0.1:4222"`
	User           string        `env:"USER"`
	Password       string        `env:"PASS"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"5s"`
}

// GetClientConfig builds and validates the client configuration from the
// environment. Command-line flags are applied on top by the caller via
// [ClientConfig.Override].
func GetClientConfig() (*ClientConfig, error) {
	cfg := new(ClientConfig)
	if err := parseEnv(cfg); err != nil {
		return nil, fmt.Errorf("error get client config: %w", err)
	}

	return cfg, cfg.validate()
}

// Override merges non-zero fields of other into cfg and re-validates.
func (cfg *ClientConfig) Override(other ClientConfig) error {
	if err := mergeOverride(cfg, &other); err != nil {
		return err
	}
	return cfg.validate()
}
