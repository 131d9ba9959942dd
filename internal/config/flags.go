// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// parseFlags parses broker command-line flags from args (without the
// program name). Flags that are not given stay at their zero value so they
// do not override other sources during the merge.
func parseFlags(args []string) (*StructuredConfig, error) {
	cfg := new(StructuredConfig)

	fs := pflag.NewFlagSet("broker", pflag.ContinueOnError)

	fs.IntVar(&cfg.App.AutoDeleteDays, "auto-delete-days", 0, "Envelope TTL in days")
	fs.IntVar(&cfg.App.MaxTries, "max-tries", 0, "Retrieval attempts allowed per message")
	fs.IntVar(&cfg.App.MaxMessageSize, "max-message-size", 0, "Maximum payload size in bytes")
	fs.IntVar(&cfg.App.PasswordLength, "password-length", 0, "Default generated password length")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.App.Version, "version", "", "Application version reported by /api/version/")

	fs.StringVarP(&cfg.Transport.URL, "nats-url", "n", "", "NATS server URL")
	fs.StringVar(&cfg.Transport.User, "nats-user", "", "NATS user")
	fs.StringVar(&cfg.Transport.Password, "nats-pass", "", "NATS password")
	fs.StringVar(&cfg.Transport.QueueGroup, "queue-group", "", "NATS queue group")
	fs.DurationVar(&cfg.Transport.RequestTimeout, "request-timeout", 0, "Per-request timeout (e.g. 5s)")

	fs.StringVar(&cfg.Storage.Backend, "storage", "", "Storage backend: redis or memory")
	fs.StringVar(&cfg.Storage.Redis.Host, "redis-host", "", "Redis host")
	fs.IntVar(&cfg.Storage.Redis.Port, "redis-port", 0, "Redis port")
	fs.StringVar(&cfg.Storage.Redis.Password, "redis-password", "", "Redis password")
	fs.IntVar(&cfg.Storage.Redis.DB, "redis-db", 0, "Redis database index")

	fs.StringVarP(&cfg.Server.StatusAddress, "status-address", "a", "", "Liveness HTTP address host:port")
	fs.IntVar(&cfg.Workers.Count, "workers", 0, "Number of concurrent message handlers")

	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return cfg, nil
}
