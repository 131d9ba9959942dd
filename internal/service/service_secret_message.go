// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-secret-broker/internal/crypto"
	"github.com/MKhiriev/go-secret-broker/internal/logger"
	"github.com/MKhiriev/go-secret-broker/internal/store"
	"github.com/MKhiriev/go-secret-broker/internal/validators"
	"github.com/MKhiriev/go-secret-broker/models"
)

const (
	messageKeyPrefix = "messages:"
	attemptKeyPrefix = "attempts:"
)

func messageKey(messageID string) string { return messageKeyPrefix + messageID }
func attemptKey(messageID string) string { return attemptKeyPrefix + messageID }

// Options are the lifecycle parameters of [NewSecretMessageService].
type Options struct {
	// MessageTTL is the retention of envelopes and attempt counters.
	MessageTTL time.Duration
	// MaxAttempts is the number of retrieve calls allowed per message.
	MaxAttempts int64
}

type secretMessageService struct {
	store    store.KeyValueStore
	envelope crypto.EnvelopeService
	ids      IDGenerator
	opts     Options

	logger *logger.Logger
}

func NewSecretMessageService(kv store.KeyValueStore, envelope crypto.EnvelopeService, ids IDGenerator, opts Options, logger *logger.Logger) SecretMessageService {
	return &secretMessageService{
		store:    kv,
		envelope: envelope,
		ids:      ids,
		opts:     opts,
		logger:   logger,
	}
}

func (s *secretMessageService) CreateSecretMessage(ctx context.Context, plaintext string) (models.SecretMessageIdentifier, error) {
	messageID, err := s.ids.Generate()
	if err != nil {
		return models.SecretMessageIdentifier{}, fmt.Errorf("%w: %w", crypto.ErrRNGFailure, err)
	}

	key, err := s.envelope.GenerateKey()
	if err != nil {
		return models.SecretMessageIdentifier{}, err
	}

	envelope, err := s.envelope.Encrypt([]byte(plaintext), key)
	if err != nil {
		return models.SecretMessageIdentifier{}, err
	}

	if err = s.store.PutWithTTL(ctx, messageKey(messageID), envelope, s.opts.MessageTTL); err != nil {
		return models.SecretMessageIdentifier{}, fmt.Errorf("error saving message: %w", err)
	}

	return models.SecretMessageIdentifier{
		MessageID: messageID,
		AESKey:    base64.StdEncoding.EncodeToString(key),
		SecretKey: key,
	}, nil
}

// RetrieveSecretMessage counts the attempt first, then either destroys the
// envelope (budget exceeded) or tries to open it. Plaintext is returned only
// by the caller whose delete removed the envelope.
func (s *secretMessageService) RetrieveSecretMessage(ctx context.Context, messageID, aesKey string) (models.RetrievedMessage, error) {
	log := logger.FromContext(ctx)

	attempts, err := s.store.IncrementReturning(ctx, attemptKey(messageID))
	if err != nil {
		return models.RetrievedMessage{}, fmt.Errorf("error counting attempt: %w", err)
	}
	if attempts == 1 {
		if err = s.store.Expire(ctx, attemptKey(messageID), s.opts.MessageTTL); err != nil {
			log.Warn().Err(err).Str("message_id", messageID).Msg("error setting attempt counter expiry")
		}
	}

	if attempts > s.opts.MaxAttempts {
		if _, err = s.store.Delete(ctx, messageKey(messageID)); err != nil {
			return models.RetrievedMessage{}, fmt.Errorf("error destroying message: %w", err)
		}
		return models.RetrievedMessage{
			Plaintext:         models.MaxAttemptsReachedMessage,
			AttemptsExhausted: true,
		}, nil
	}

	envelope, err := s.store.Get(ctx, messageKey(messageID))
	if errors.Is(err, store.ErrKeyNotFound) {
		return models.RetrievedMessage{}, ErrMessageNotFound
	}
	if err != nil {
		return models.RetrievedMessage{}, fmt.Errorf("error loading message: %w", err)
	}

	key, err := base64.StdEncoding.DecodeString(aesKey)
	if err != nil {
		return models.RetrievedMessage{}, validators.ErrInvalidAESKey
	}

	plaintext, err := s.envelope.Decrypt(envelope, key)
	if err != nil {
		return models.RetrievedMessage{}, err
	}
	if !utf8.Valid(plaintext) {
		return models.RetrievedMessage{}, ErrInvalidPlaintext
	}

	deleted, err := s.store.Delete(ctx, messageKey(messageID))
	if err != nil {
		return models.RetrievedMessage{}, fmt.Errorf("error consuming message: %w", err)
	}
	if !deleted {
		return models.RetrievedMessage{}, ErrMessageNotFound
	}

	if _, err = s.store.Delete(ctx, attemptKey(messageID)); err != nil {
		log.Warn().Err(err).Str("message_id", messageID).Msg("error resetting attempt counter")
	}

	return models.RetrievedMessage{Plaintext: string(plaintext)}, nil
}
