package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-secret-broker/internal/config"
	"github.com/MKhiriev/go-secret-broker/internal/logger"
	"github.com/MKhiriev/go-secret-broker/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_Success(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, "1.0.0", svc.GetAppVersion(context.Background()))
}

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: ""}, logger.Nop())

	assert.Nil(t, svc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVersionIsNotSpecified))
}

// ─────────────────────────────────────────────
// NewServices
// ─────────────────────────────────────────────

func TestNewServices_WiresDecorators(t *testing.T) {
	cfg := &config.StructuredConfig{App: config.App{AutoDeleteDays: 1, MaxTries: 3, MaxMessageSize: 64, Version: "dev"}}
	storages := &store.Storages{KeyValueStore: store.NewMemoryStore()}
	ctx := context.Background()

	services, err := NewServices(storages, cfg, logger.Nop())
	require.NoError(t, err)

	_, err = services.SecretMessageService.CreateSecretMessage(ctx, "   ")
	assert.Error(t, err, "validation decorator must reject blank input")

	id, err := services.SecretMessageService.CreateSecretMessage(ctx, "hello")
	require.NoError(t, err)
	msg, err := services.SecretMessageService.RetrieveSecretMessage(ctx, id.MessageID, id.AESKey)
	require.NoError(t, err)
	assert.Equal(t, "hello", msg.Plaintext)
	assert.Equal(t, "dev", services.AppInfoService.GetAppVersion(ctx))
}

func TestNewServices_MissingVersion(t *testing.T) {
	cfg := &config.StructuredConfig{App: config.App{AutoDeleteDays: 1, MaxTries: 3, MaxMessageSize: 64}}

	_, err := NewServices(&store.Storages{KeyValueStore: store.NewMemoryStore()}, cfg, logger.Nop())

	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
