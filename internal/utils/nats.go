// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-secret-broker/internal/logger"
	"github.com/nats-io/nats.go"
)

// NATSOptions describes how to reach the NATS server.
type NATSOptions struct {
	URL      string
	User     string
	Password string
	Name     string
	Timeout  time.Duration
}

// NewNATSConnection dials the NATS server with reconnect forever and logs
// disconnects, reconnects and close events through log. Credentials are
// sent only when both user and password are set.
func NewNATSConnection(opts NATSOptions, log *logger.Logger) (*nats.Conn, error) {
	natsOpts := []nats.Option{
		nats.MaxReconnects(-1),
		nats.ReconnectWait(time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Warn().Err(err).Msg("disconnected from NATS")
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info().Str("url", nc.ConnectedUrlRedacted()).Msg("reconnected to NATS")
		}),
		nats.ClosedHandler(func(_ *nats.Conn) {
			log.Info().Msg("NATS connection closed")
		}),
		nats.ErrorHandler(func(_ *nats.Conn, sub *nats.Subscription, err error) {
			ev := log.Error().Err(err)
			if sub != nil {
				ev = ev.Str("subject", sub.Subject)
			}
			ev.Msg("NATS async error")
		}),
	}
	if opts.Name != "" {
		natsOpts = append(natsOpts, nats.Name(opts.Name))
	}
	if opts.User != "" && opts.Password != "" {
		natsOpts = append(natsOpts, nats.UserInfo(opts.User, opts.Password))
	}
	if opts.Timeout > 0 {
		natsOpts = append(natsOpts, nats.Timeout(opts.Timeout))
	}

	nc, err := nats.Connect(opts.URL, natsOpts...)
	if err != nil {
		log.Err(err).Str("func", "NewNATSConnection").Msg("error connecting to NATS")
		return nil, fmt.Errorf("error connecting to NATS: %w", err)
	}
	log.Info().Str("func", "NewNATSConnection").Str("url", nc.ConnectedUrlRedacted()).Msg("connected to NATS successfully")

	return nc, nil
}
