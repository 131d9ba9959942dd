// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the secret broker.
//
// [BrokerAdapter] speaks the request/reply protocol over NATS and
// [StatusAdapter] queries the HTTP liveness endpoint. Error replies are
// mapped to the sentinel values in errors.go so that callers can use
// [errors.Is] (e.g. [ErrNotFound] for an unknown or consumed message).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-secret-broker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// BrokerAdapter sends requests to the broker and decodes its replies.
type BrokerAdapter interface {
	// Send stores plaintext and returns the identifier needed to read it
	// back exactly once.
	Send(ctx context.Context, plaintext string) (models.SecretMessageIdentifier, error)

	// Receive consumes the message. Once the attempt budget is exhausted it
	// returns [models.MaxAttemptsReachedMessage] with a nil error.
	Receive(ctx context.Context, id models.SecretMessageIdentifier) (string, error)

	// Close drains the underlying connection.
	Close()
}

// StatusAdapter queries the broker's liveness endpoint.
type StatusAdapter interface {
	Status(ctx context.Context) (string, error)
}
