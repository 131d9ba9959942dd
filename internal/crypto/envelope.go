// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

const (
	// KeySize is the length of an AES-256 key in bytes.
	KeySize = 32
	// IVSize is the length of the CBC initialization vector in bytes.
	IVSize = aes.BlockSize
)

// envelopeService is the default implementation of [EnvelopeService].
type envelopeService struct {
	random io.Reader
}

// NewEnvelopeService returns an [EnvelopeService] backed by the OS CSPRNG.
func NewEnvelopeService() EnvelopeService {
	return NewEnvelopeServiceWithRand(rand.Reader)
}

// NewEnvelopeServiceWithRand returns an [EnvelopeService] that draws keys and
// IVs from random. It exists so tests can inject a failing source.
func NewEnvelopeServiceWithRand(random io.Reader) EnvelopeService {
	return &envelopeService{random: random}
}

// GenerateKey implements [EnvelopeService].
func (e *envelopeService) GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(e.random, key); err != nil {
		return nil, fmt.Errorf("%w: generate key: %w", ErrRNGFailure, err)
	}
	return key, nil
}

// Encrypt implements [EnvelopeService].
func (e *envelopeService) Encrypt(plaintext, key []byte) (string, error) {
	block, err := newBlock(key)
	if err != nil {
		return "", err
	}

	blob := make([]byte, IVSize, IVSize+len(plaintext)+aes.BlockSize)
	if _, err := io.ReadFull(e.random, blob[:IVSize]); err != nil {
		return "", fmt.Errorf("%w: generate iv: %w", ErrRNGFailure, err)
	}

	padded := pkcs7Pad(plaintext, aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, blob[:IVSize]).CryptBlocks(ciphertext, padded)

	blob = append(blob, ciphertext...)
	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt implements [EnvelopeService].
func (e *envelopeService) Decrypt(envelope string, key []byte) ([]byte, error) {
	block, err := newBlock(key)
	if err != nil {
		return nil, err
	}

	blob, err := base64.StdEncoding.DecodeString(envelope)
	if err != nil {
		return nil, fmt.Errorf("%w: decode base64: %w", ErrMalformedEnvelope, err)
	}

	if len(blob) < IVSize+1 {
		return nil, fmt.Errorf("%w: got %d bytes, want at least %d", ErrMalformedEnvelope, len(blob), IVSize+1)
	}

	iv, ciphertext := blob[:IVSize], blob[IVSize:]
	if len(ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext is not a multiple of the block size", ErrMalformedEnvelope)
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)

	return pkcs7Unpad(plaintext, aes.BlockSize)
}

func newBlock(key []byte) (cipher.Block, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), KeySize)
	}
	return aes.NewCipher(key)
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+padLen)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(padLen)
	}
	return padded
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, ErrBadKeyOrCorruption
	}

	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize {
		return nil, ErrBadKeyOrCorruption
	}

	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, ErrBadKeyOrCorruption
		}
	}

	return data[:len(data)-padLen], nil
}
