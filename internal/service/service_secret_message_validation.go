package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-secret-broker/internal/validators"
	"github.com/MKhiriev/go-secret-broker/models"
)

type SecretMessageValidationService struct {
	inner     SecretMessageService
	validator validators.Validator
}

func NewSecretMessageValidationService(maxMessageSize int) SecretMessageServiceWrapper {
	return &SecretMessageValidationService{
		validator: validators.NewSecretMessageValidator(maxMessageSize),
	}
}

func (v *SecretMessageValidationService) CreateSecretMessage(ctx context.Context, plaintext string) (models.SecretMessageIdentifier, error) {
	if err := v.validator.Validate(ctx, validators.Plaintext(plaintext)); err != nil {
		return models.SecretMessageIdentifier{}, fmt.Errorf("error during message validation before saving: %w", err)
	}

	return v.inner.CreateSecretMessage(ctx, plaintext)
}

// RetrieveSecretMessage rejects malformed identifiers before the engine
// sees them, so they do not consume an attempt.
func (v *SecretMessageValidationService) RetrieveSecretMessage(ctx context.Context, messageID, aesKey string) (models.RetrievedMessage, error) {
	id := models.SecretMessageIdentifier{MessageID: messageID, AESKey: aesKey}
	if err := v.validator.Validate(ctx, id); err != nil {
		return models.RetrievedMessage{}, fmt.Errorf("error during identifier validation before retrieving: %w", err)
	}

	return v.inner.RetrieveSecretMessage(ctx, messageID, aesKey)
}

func (v *SecretMessageValidationService) Wrap(wrapper SecretMessageService) SecretMessageService {
	v.inner = wrapper
	return v
}
