package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-secret-broker/internal/logger"
	"github.com/MKhiriev/go-secret-broker/models"
)

// SecretMessageLoggingService records the outcome and duration of every
// call. Plaintexts and keys are never logged.
type SecretMessageLoggingService struct {
	inner SecretMessageService
}

func NewSecretMessageLoggingService() SecretMessageServiceWrapper {
	return &SecretMessageLoggingService{}
}

func (l *SecretMessageLoggingService) CreateSecretMessage(ctx context.Context, plaintext string) (models.SecretMessageIdentifier, error) {
	start := time.Now()
	id, err := l.inner.CreateSecretMessage(ctx, plaintext)

	log := logger.FromContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "CreateSecretMessage").Dur("duration", time.Since(start)).Msg("error creating secret message")
		return id, err
	}
	log.Info().
		Str("func", "CreateSecretMessage").
		Str("message_id", id.MessageID).
		Int("size", len(plaintext)).
		Dur("duration", time.Since(start)).
		Msg("secret message created")

	return id, nil
}

func (l *SecretMessageLoggingService) RetrieveSecretMessage(ctx context.Context, messageID, aesKey string) (models.RetrievedMessage, error) {
	start := time.Now()
	msg, err := l.inner.RetrieveSecretMessage(ctx, messageID, aesKey)

	log := logger.FromContext(ctx)
	if err != nil {
		log.Warn().Err(err).Str("func", "RetrieveSecretMessage").Str("message_id", messageID).Dur("duration", time.Since(start)).Msg("secret message not retrieved")
		return msg, err
	}
	if msg.AttemptsExhausted {
		log.Warn().Str("func", "RetrieveSecretMessage").Str("message_id", messageID).Dur("duration", time.Since(start)).Msg("attempt budget exhausted, message destroyed")
		return msg, nil
	}
	log.Info().Str("func", "RetrieveSecretMessage").Str("message_id", messageID).Dur("duration", time.Since(start)).Msg("secret message consumed")

	return msg, nil
}

func (l *SecretMessageLoggingService) Wrap(wrapper SecretMessageService) SecretMessageService {
	l.inner = wrapper
	return l
}
