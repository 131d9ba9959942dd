// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingReader always returns an error, simulating an exhausted RNG.
type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy exhausted")
}

func mustKey(t *testing.T, svc EnvelopeService) []byte {
	t.Helper()
	key, err := svc.GenerateKey()
	require.NoError(t, err)
	return key
}

func TestGenerateKey_LengthAndRandomness(t *testing.T) {
	svc := NewEnvelopeService()

	k1 := mustKey(t, svc)
	k2 := mustKey(t, svc)

	assert.Len(t, k1, KeySize)
	assert.Len(t, k2, KeySize)
	assert.False(t, bytes.Equal(k1, k2), "expected keys to differ")
}

func TestGenerateKey_RNGFailure(t *testing.T) {
	svc := NewEnvelopeServiceWithRand(failingReader{})

	key, err := svc.GenerateKey()

	assert.Nil(t, key)
	assert.ErrorIs(t, err, ErrRNGFailure)
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	svc := NewEnvelopeService()
	key := mustKey(t, svc)

	tests := []struct {
		name      string
		plaintext []byte
	}{
		{"short", []byte("Super secret message!")},
		{"single byte", []byte("x")},
		{"exact block", bytes.Repeat([]byte("a"), aes.BlockSize)},
		{"block plus one", bytes.Repeat([]byte("b"), aes.BlockSize+1)},
		{"unicode", []byte("пароль: 🤘 секрет")},
		{"one mebibyte", bytes.Repeat([]byte{'z'}, 1<<20)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			envelope, err := svc.Encrypt(tt.plaintext, key)
			require.NoError(t, err)

			got, err := svc.Decrypt(envelope, key)
			require.NoError(t, err)
			assert.Equal(t, tt.plaintext, got)
		})
	}
}

func TestEncrypt_EnvelopeLayout(t *testing.T) {
	svc := NewEnvelopeService()
	key := mustKey(t, svc)

	envelope, err := svc.Encrypt([]byte("hello"), key)
	require.NoError(t, err)

	blob, err := base64.StdEncoding.DecodeString(envelope)
	require.NoError(t, err)

	// 16 bytes IV followed by one padded block.
	assert.Len(t, blob, IVSize+aes.BlockSize)
}

func TestEncrypt_FreshIVPerCall(t *testing.T) {
	svc := NewEnvelopeService()
	key := mustKey(t, svc)

	e1, err := svc.Encrypt([]byte("same plaintext"), key)
	require.NoError(t, err)
	e2, err := svc.Encrypt([]byte("same plaintext"), key)
	require.NoError(t, err)

	b1, _ := base64.StdEncoding.DecodeString(e1)
	b2, _ := base64.StdEncoding.DecodeString(e2)

	assert.NotEqual(t, b1[:IVSize], b2[:IVSize], "expected different IVs")
	assert.NotEqual(t, e1, e2)
}

func TestEncrypt_RNGFailure(t *testing.T) {
	svc := NewEnvelopeServiceWithRand(failingReader{})

	envelope, err := svc.Encrypt([]byte("data"), bytes.Repeat([]byte{1}, KeySize))

	assert.Empty(t, envelope)
	assert.ErrorIs(t, err, ErrRNGFailure)
}

func TestEncrypt_InvalidKeySize(t *testing.T) {
	svc := NewEnvelopeService()

	for _, size := range []int{0, 16, 31, 33} {
		_, err := svc.Encrypt([]byte("data"), make([]byte, size))
		assert.ErrorIs(t, err, ErrInvalidKeySize, "size %d", size)
	}
}

func TestDecrypt_WrongKey(t *testing.T) {
	svc := NewEnvelopeService()
	key := mustKey(t, svc)

	envelope, err := svc.Encrypt([]byte("Super secret message!"), key)
	require.NoError(t, err)

	wrong := []byte("thisisawrongkey12345678901234567")
	got, err := svc.Decrypt(envelope, wrong)

	// A wrong key almost always breaks the padding. In the rare case it
	// does not, the output must still differ from the plaintext.
	if err == nil {
		assert.NotEqual(t, []byte("Super secret message!"), got)
		return
	}
	assert.ErrorIs(t, err, ErrBadKeyOrCorruption)
}

func TestDecrypt_MalformedEnvelopes(t *testing.T) {
	svc := NewEnvelopeService()
	key := mustKey(t, svc)

	tests := []struct {
		name     string
		envelope string
	}{
		{"not base64", "%%% not base64 %%%"},
		{"empty", ""},
		{"ten raw bytes", "0123456789"},
		{"ten decoded bytes", base64.StdEncoding.EncodeToString(make([]byte, 10))},
		{"iv only", base64.StdEncoding.EncodeToString(make([]byte, IVSize))},
		{"iv plus one byte", base64.StdEncoding.EncodeToString(make([]byte, IVSize+1))},
		{"unaligned", base64.StdEncoding.EncodeToString(make([]byte, IVSize+aes.BlockSize+3))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Decrypt(tt.envelope, key)
			assert.ErrorIs(t, err, ErrMalformedEnvelope)
		})
	}
}

func TestDecrypt_TamperedPadding(t *testing.T) {
	svc := NewEnvelopeService()
	key := mustKey(t, svc)

	envelope, err := svc.Encrypt([]byte("tamper me"), key)
	require.NoError(t, err)

	blob, _ := base64.StdEncoding.DecodeString(envelope)
	// single block: the last IV byte XORs straight into the padding byte
	blob[IVSize-1] ^= 0xFF

	_, err = svc.Decrypt(base64.StdEncoding.EncodeToString(blob), key)
	assert.ErrorIs(t, err, ErrBadKeyOrCorruption)
}

func TestPKCS7_PadUnpad(t *testing.T) {
	for n := 0; n <= 2*aes.BlockSize; n++ {
		data := []byte(strings.Repeat("q", n))
		padded := pkcs7Pad(data, aes.BlockSize)

		require.Zero(t, len(padded)%aes.BlockSize)
		require.Greater(t, len(padded), len(data))

		got, err := pkcs7Unpad(padded, aes.BlockSize)
		require.NoError(t, err)
		assert.Equal(t, data, got)
	}
}

func TestPKCS7_UnpadRejectsInvalid(t *testing.T) {
	tests := map[string][]byte{
		"empty":       {},
		"zero pad":    append(bytes.Repeat([]byte{'a'}, 15), 0),
		"pad too big": append(bytes.Repeat([]byte{'a'}, 15), 17),
		"mixed pad":   append(bytes.Repeat([]byte{'a'}, 13), 2, 3, 3),
		"unaligned":   {1, 1, 1},
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := pkcs7Unpad(data, aes.BlockSize)
			assert.ErrorIs(t, err, ErrBadKeyOrCorruption)
		})
	}
}
