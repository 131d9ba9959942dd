package service

import (
	"github.com/MKhiriev/go-secret-broker/internal/config"
	"github.com/MKhiriev/go-secret-broker/internal/crypto"
	"github.com/MKhiriev/go-secret-broker/internal/logger"
	"github.com/MKhiriev/go-secret-broker/internal/store"
	"github.com/MKhiriev/go-secret-broker/internal/utils"
)

type Services struct {
	SecretMessageService SecretMessageService
	AppInfoService       AppInfoService
}

// NewServices wires the engine behind its decorators:
// logging → validation → engine.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	engine := NewSecretMessageService(
		storages.KeyValueStore,
		crypto.NewEnvelopeService(),
		utils.NewUUIDGenerator(),
		Options{
			MessageTTL:  cfg.App.MessageTTL(),
			MaxAttempts: int64(cfg.App.MaxTries),
		},
		logger,
	)

	secretMessageService := NewSecretMessageLoggingService().Wrap(
		NewSecretMessageValidationService(cfg.App.MaxMessageSize).Wrap(engine),
	)

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		SecretMessageService: secretMessageService,
		AppInfoService:       appInfoService,
	}, nil
}
