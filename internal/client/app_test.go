package client

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/MKhiriev/go-secret-broker/internal/adapter"
	"github.com/MKhiriev/go-secret-broker/internal/crypto"
	"github.com/MKhiriev/go-secret-broker/internal/logger"
	"github.com/MKhiriev/go-secret-broker/internal/mock"
	"github.com/MKhiriev/go-secret-broker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	app       *App
	broker    *mock.MockBrokerAdapter
	status    *mock.MockStatusAdapter
	clipboard *mock.MockClipboard
}

func newTestApp(t *testing.T) testDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	d := testDeps{
		broker:    mock.NewMockBrokerAdapter(ctrl),
		status:    mock.NewMockStatusAdapter(ctrl),
		clipboard: mock.NewMockClipboard(ctrl),
	}
	d.app = NewApp(d.broker, d.status, d.clipboard, logger.Nop())
	return d
}

var testID = models.SecretMessageIdentifier{MessageID: "abc", AESKey: "key"}

// ─────────────────────────────────────────────
// Send
// ─────────────────────────────────────────────

func TestApp_Send(t *testing.T) {
	d := newTestApp(t)
	d.broker.EXPECT().Send(gomock.Any(), "hello").Return(testID, nil)

	got, err := d.app.Send(context.Background(), "hello")

	require.NoError(t, err)
	assert.Equal(t, testID, got)
}

func TestApp_Send_Empty(t *testing.T) {
	d := newTestApp(t)

	_, err := d.app.Send(context.Background(), "")

	assert.ErrorIs(t, err, ErrNoMessage)
}

func TestApp_Send_BrokerError(t *testing.T) {
	d := newTestApp(t)
	d.broker.EXPECT().Send(gomock.Any(), "hello").Return(models.SecretMessageIdentifier{}, adapter.ErrUnavailable)

	_, err := d.app.Send(context.Background(), "hello")

	assert.ErrorIs(t, err, adapter.ErrUnavailable)
}

// ─────────────────────────────────────────────
// Receive
// ─────────────────────────────────────────────

func TestApp_Receive_NoCopy(t *testing.T) {
	d := newTestApp(t)
	d.broker.EXPECT().Receive(gomock.Any(), testID).Return("secret", nil)

	got, err := d.app.Receive(context.Background(), testID, false)

	require.NoError(t, err)
	assert.Equal(t, "secret", got)
}

func TestApp_Receive_Copy(t *testing.T) {
	d := newTestApp(t)
	gomock.InOrder(
		d.broker.EXPECT().Receive(gomock.Any(), testID).Return("secret", nil),
		d.clipboard.EXPECT().WriteAll("secret").Return(nil),
	)

	got, err := d.app.Receive(context.Background(), testID, true)

	require.NoError(t, err)
	assert.Equal(t, "secret", got)
}

func TestApp_Receive_SentinelIsNotCopied(t *testing.T) {
	d := newTestApp(t)
	d.broker.EXPECT().Receive(gomock.Any(), testID).Return(models.MaxAttemptsReachedMessage, nil)
	d.clipboard.EXPECT().WriteAll(gomock.Any()).Times(0)

	got, err := d.app.Receive(context.Background(), testID, true)

	require.NoError(t, err)
	assert.Equal(t, models.MaxAttemptsReachedMessage, got)
}

func TestApp_Receive_CopyFailureKeepsPlaintext(t *testing.T) {
	d := newTestApp(t)
	d.broker.EXPECT().Receive(gomock.Any(), testID).Return("secret", nil)
	d.clipboard.EXPECT().WriteAll("secret").Return(ErrClipboardUnsupported)

	got, err := d.app.Receive(context.Background(), testID, true)

	require.ErrorIs(t, err, ErrClipboardUnsupported)
	assert.Equal(t, "secret", got, "consumed plaintext must still be returned")
}

func TestApp_Receive_BrokerError(t *testing.T) {
	d := newTestApp(t)
	d.broker.EXPECT().Receive(gomock.Any(), testID).Return("", adapter.ErrNotFound)

	_, err := d.app.Receive(context.Background(), testID, true)

	assert.ErrorIs(t, err, adapter.ErrNotFound)
}

// ─────────────────────────────────────────────
// GeneratePassword
// ─────────────────────────────────────────────

func TestApp_GeneratePassword(t *testing.T) {
	d := newTestApp(t)

	got, err := d.app.GeneratePassword(24, false)

	require.NoError(t, err)
	assert.Len(t, got, 24)
}

func TestApp_GeneratePassword_Copy(t *testing.T) {
	d := newTestApp(t)
	var copied string
	d.clipboard.EXPECT().WriteAll(gomock.Any()).DoAndReturn(func(text string) error {
		copied = text
		return nil
	})

	got, err := d.app.GeneratePassword(12, true)

	require.NoError(t, err)
	assert.Equal(t, got, copied)
}

func TestApp_GeneratePassword_InvalidLength(t *testing.T) {
	d := newTestApp(t)

	_, err := d.app.GeneratePassword(0, false)

	assert.ErrorIs(t, err, crypto.ErrInvalidPasswordLength)
}

// ─────────────────────────────────────────────
// DeriveKey
// ─────────────────────────────────────────────

func TestApp_DeriveKey_GivenSaltIsDeterministic(t *testing.T) {
	d := newTestApp(t)
	salt := base64.StdEncoding.EncodeToString([]byte("0123456789abcdef"))

	first, err := d.app.DeriveKey("passphrase", salt)
	require.NoError(t, err)
	second, err := d.app.DeriveKey("passphrase", salt)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, salt, first.Salt)

	key, err := base64.StdEncoding.DecodeString(first.Key)
	require.NoError(t, err)
	assert.Len(t, key, crypto.KeySize)
}

func TestApp_DeriveKey_RandomSalt(t *testing.T) {
	d := newTestApp(t)

	first, err := d.app.DeriveKey("passphrase", "")
	require.NoError(t, err)
	second, err := d.app.DeriveKey("passphrase", "")
	require.NoError(t, err)

	assert.NotEqual(t, first.Salt, second.Salt)
	assert.NotEqual(t, first.Key, second.Key)

	salt, err := base64.StdEncoding.DecodeString(first.Salt)
	require.NoError(t, err)
	assert.Len(t, salt, crypto.SaltSize)
}

func TestApp_DeriveKey_InvalidSalt(t *testing.T) {
	d := newTestApp(t)

	_, err := d.app.DeriveKey("passphrase", "not base64!")

	assert.ErrorIs(t, err, ErrInvalidSalt)
}

// ─────────────────────────────────────────────
// Status / Close
// ─────────────────────────────────────────────

func TestApp_Status(t *testing.T) {
	d := newTestApp(t)
	d.status.EXPECT().Status(gomock.Any()).Return("UP", nil)

	got, err := d.app.Status(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "UP", got)
}

func TestApp_Status_Error(t *testing.T) {
	d := newTestApp(t)
	statusErr := errors.New("connection refused")
	d.status.EXPECT().Status(gomock.Any()).Return("", statusErr)

	_, err := d.app.Status(context.Background())

	assert.ErrorIs(t, err, statusErr)
}

func TestApp_Close(t *testing.T) {
	d := newTestApp(t)
	d.broker.EXPECT().Close()

	d.app.Close()
}

func TestApp_Close_NoBroker(t *testing.T) {
	app := NewApp(nil, nil, nil, logger.Nop())

	// Should not panic without a broker adapter
	app.Close()
}
