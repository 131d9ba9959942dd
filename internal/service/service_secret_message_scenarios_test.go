package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-secret-broker/internal/crypto"
	"github.com/MKhiriev/go-secret-broker/internal/logger"
	"github.com/MKhiriev/go-secret-broker/internal/store"
	"github.com/MKhiriev/go-secret-broker/internal/utils"
	"github.com/MKhiriev/go-secret-broker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wrongKey is a well-formed 32-byte key that does not match any message.
var wrongKey = base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{'w'}, 32))

func newEngine(t *testing.T, ttl time.Duration) (SecretMessageService, store.KeyValueStore) {
	t.Helper()
	kv := store.NewMemoryStore()
	t.Cleanup(func() { _ = kv.Close() })

	svc := NewSecretMessageService(kv, crypto.NewEnvelopeService(), utils.NewUUIDGenerator(),
		Options{MessageTTL: ttl, MaxAttempts: 3}, logger.Nop())
	return svc, kv
}

func TestScenario_HappyPath(t *testing.T) {
	ctx := context.Background()
	svc, kv := newEngine(t, time.Hour)

	id, err := svc.CreateSecretMessage(ctx, "Super secret message!")
	require.NoError(t, err)
	assert.Len(t, id.AESKey, 44)

	msg, err := svc.RetrieveSecretMessage(ctx, id.MessageID, id.AESKey)
	require.NoError(t, err)
	assert.Equal(t, "Super secret message!", msg.Plaintext)

	// both keys are gone after consumption
	_, err = kv.Get(ctx, messageKey(id.MessageID))
	assert.ErrorIs(t, err, store.ErrKeyNotFound)
	_, err = kv.Get(ctx, attemptKey(id.MessageID))
	assert.ErrorIs(t, err, store.ErrKeyNotFound)

	_, err = svc.RetrieveSecretMessage(ctx, id.MessageID, id.AESKey)
	assert.ErrorIs(t, err, ErrMessageNotFound)
}

func TestScenario_WrongKeyKeepsEnvelope(t *testing.T) {
	ctx := context.Background()
	svc, kv := newEngine(t, time.Hour)

	id, err := svc.CreateSecretMessage(ctx, "Super secret message!")
	require.NoError(t, err)

	_, err = svc.RetrieveSecretMessage(ctx, id.MessageID, wrongKey)
	require.Error(t, err)
	assert.NotErrorIs(t, err, crypto.ErrInvalidKeySize, "a well-formed key must reach decryption")

	_, err = kv.Get(ctx, messageKey(id.MessageID))
	assert.NoError(t, err, "envelope must still be present")

	msg, err := svc.RetrieveSecretMessage(ctx, id.MessageID, id.AESKey)
	require.NoError(t, err)
	assert.Equal(t, "Super secret message!", msg.Plaintext)
}

func TestScenario_BudgetExhaustion(t *testing.T) {
	ctx := context.Background()
	svc, kv := newEngine(t, time.Hour)

	id, err := svc.CreateSecretMessage(ctx, "Super secret message!")
	require.NoError(t, err)

	for range 3 {
		_, err = svc.RetrieveSecretMessage(ctx, id.MessageID, wrongKey)
		require.Error(t, err)
	}

	msg, err := svc.RetrieveSecretMessage(ctx, id.MessageID, id.AESKey)
	require.NoError(t, err)
	assert.True(t, msg.AttemptsExhausted)
	assert.Equal(t, models.MaxAttemptsReachedMessage, msg.Plaintext)

	_, err = kv.Get(ctx, messageKey(id.MessageID))
	assert.ErrorIs(t, err, store.ErrKeyNotFound)

	// every later call keeps returning the sentinel
	msg, err = svc.RetrieveSecretMessage(ctx, id.MessageID, wrongKey)
	require.NoError(t, err)
	assert.True(t, msg.AttemptsExhausted)
}

func TestScenario_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	svc, _ := newEngine(t, 20*time.Millisecond)

	id, err := svc.CreateSecretMessage(ctx, "Super secret message!")
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)

	_, err = svc.RetrieveSecretMessage(ctx, id.MessageID, id.AESKey)
	assert.ErrorIs(t, err, ErrMessageNotFound)
}

func TestScenario_ConcurrentRetrieve(t *testing.T) {
	ctx := context.Background()

	for range 20 {
		svc, _ := newEngine(t, time.Hour)
		id, err := svc.CreateSecretMessage(ctx, "Super secret message!")
		require.NoError(t, err)

		var (
			wg        sync.WaitGroup
			results   [2]models.RetrievedMessage
			errs      [2]error
			startGate = make(chan struct{})
		)
		for i := range 2 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-startGate
				results[i], errs[i] = svc.RetrieveSecretMessage(ctx, id.MessageID, id.AESKey)
			}()
		}
		close(startGate)
		wg.Wait()

		plaintexts, notFound := 0, 0
		for i := range 2 {
			if errs[i] == nil {
				assert.Equal(t, "Super secret message!", results[i].Plaintext)
				plaintexts++
				continue
			}
			assert.ErrorIs(t, errs[i], ErrMessageNotFound)
			notFound++
		}
		assert.Equal(t, 1, plaintexts)
		assert.Equal(t, 1, notFound)
	}
}

func TestScenario_MalformedEnvelope(t *testing.T) {
	ctx := context.Background()
	svc, kv := newEngine(t, time.Hour)

	id, err := svc.CreateSecretMessage(ctx, "Super secret message!")
	require.NoError(t, err)
	require.NoError(t, kv.PutWithTTL(ctx, messageKey(id.MessageID), "0123456789", time.Hour))

	_, err = svc.RetrieveSecretMessage(ctx, id.MessageID, id.AESKey)
	assert.ErrorIs(t, err, crypto.ErrMalformedEnvelope)

	// the next increment observes the attempt made by the malformed read
	n, err := kv.IncrementReturning(ctx, attemptKey(id.MessageID))
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestScenario_RetrieveUnknownIDCountsAttempt(t *testing.T) {
	ctx := context.Background()
	svc, kv := newEngine(t, time.Hour)

	_, err := svc.RetrieveSecretMessage(ctx, "missing", wrongKey)
	assert.ErrorIs(t, err, ErrMessageNotFound)

	n, err := kv.IncrementReturning(ctx, attemptKey("missing"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestScenario_FreshIdentifiers(t *testing.T) {
	ctx := context.Background()
	svc, kv := newEngine(t, time.Hour)

	a, err := svc.CreateSecretMessage(ctx, "same")
	require.NoError(t, err)
	b, err := svc.CreateSecretMessage(ctx, "same")
	require.NoError(t, err)

	assert.NotEqual(t, a.MessageID, b.MessageID)
	assert.NotEqual(t, a.AESKey, b.AESKey)

	envA, err := kv.Get(ctx, messageKey(a.MessageID))
	require.NoError(t, err)
	envB, err := kv.Get(ctx, messageKey(b.MessageID))
	require.NoError(t, err)
	assert.NotEqual(t, envA, envB)
}
