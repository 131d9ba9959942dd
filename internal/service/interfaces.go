package service

import (
	"context"

	"github.com/MKhiriev/go-secret-broker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=SecretMessageServiceWrapper

// SecretMessageService owns the lifecycle of one-time secrets: create
// encrypts and stores, retrieve decrypts once and destroys.
type SecretMessageService interface {
	CreateSecretMessage(ctx context.Context, plaintext string) (models.SecretMessageIdentifier, error)
	RetrieveSecretMessage(ctx context.Context, messageID, aesKey string) (models.RetrievedMessage, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// IDGenerator produces message identifiers.
type IDGenerator interface {
	Generate() (string, error)
}

// SecretMessageServiceWrapper defines middleware composition for SecretMessageService.
// Implementations wrap an existing SecretMessageService to add behavior such as
// logging or validating.
type SecretMessageServiceWrapper interface {
	Wrap(SecretMessageService) SecretMessageService // returns a decorated SecretMessageService applying additional behavior
}
