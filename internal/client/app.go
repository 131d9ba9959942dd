package client

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/MKhiriev/go-secret-broker/internal/adapter"
	"github.com/MKhiriev/go-secret-broker/internal/crypto"
	"github.com/MKhiriev/go-secret-broker/internal/logger"
	"github.com/MKhiriev/go-secret-broker/models"
)

type App struct {
	broker    adapter.BrokerAdapter
	status    adapter.StatusAdapter
	clipboard Clipboard

	logger *logger.Logger
}

// DerivedKey is the outcome of [App.DeriveKey]. Both fields are standard
// base64.
type DerivedKey struct {
	Key  string
	Salt string
}

func NewApp(broker adapter.BrokerAdapter, status adapter.StatusAdapter, clipboard Clipboard, logger *logger.Logger) *App {
	return &App{
		broker:    broker,
		status:    status,
		clipboard: clipboard,
		logger:    logger,
	}
}

// Send stores plaintext on the broker.
func (a *App) Send(ctx context.Context, plaintext string) (models.SecretMessageIdentifier, error) {
	if plaintext == "" {
		return models.SecretMessageIdentifier{}, ErrNoMessage
	}
	return a.broker.Send(ctx, plaintext)
}

// Receive consumes a message. With copyToClipboard the plaintext is copied
// as well; the max-attempts notice is never copied.
func (a *App) Receive(ctx context.Context, id models.SecretMessageIdentifier, copyToClipboard bool) (string, error) {
	plaintext, err := a.broker.Receive(ctx, id)
	if err != nil {
		return "", err
	}

	if copyToClipboard && plaintext != models.MaxAttemptsReachedMessage {
		if err = a.copy(plaintext); err != nil {
			return plaintext, err
		}
	}

	return plaintext, nil
}

// GeneratePassword returns a random password of length characters.
func (a *App) GeneratePassword(length int, copyToClipboard bool) (string, error) {
	password, err := crypto.GeneratePassword(length)
	if err != nil {
		return "", err
	}

	if copyToClipboard {
		if err = a.copy(password); err != nil {
			return password, err
		}
	}

	return password, nil
}

// DeriveKey derives an AES key from passphrase. An empty salt means a fresh
// random one.
func (a *App) DeriveKey(passphrase, salt string) (DerivedKey, error) {
	var (
		saltBytes []byte
		err       error
	)

	if salt == "" {
		saltBytes, err = crypto.GenerateSalt()
		if err != nil {
			return DerivedKey{}, err
		}
	} else {
		saltBytes, err = base64.StdEncoding.DecodeString(salt)
		if err != nil {
			return DerivedKey{}, fmt.Errorf("%w: %w", ErrInvalidSalt, err)
		}
	}

	key := crypto.DeriveKeyFromPassword(passphrase, saltBytes)

	return DerivedKey{
		Key:  base64.StdEncoding.EncodeToString(key),
		Salt: base64.StdEncoding.EncodeToString(saltBytes),
	}, nil
}

func (a *App) Status(ctx context.Context) (string, error) {
	return a.status.Status(ctx)
}

// Close releases the broker connection.
func (a *App) Close() {
	if a.broker != nil {
		a.broker.Close()
	}
}

func (a *App) copy(text string) error {
	if err := a.clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	a.logger.Debug().Msg("copied to clipboard")
	return nil
}
