// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"
	"math/big"

	"golang.org/x/crypto/pbkdf2"
)

const (
	passwordAlphabet = "abcdefghijklmnopqrstuvwxyz" +
		"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
		"0123456789" +
		"!@#$%&*()_+-=[]?"

	// PBKDF2Iterations is the iteration count used by [DeriveKeyFromPassword].
	PBKDF2Iterations = 65536
	// SaltSize is the length of salts produced by [GenerateSalt].
	SaltSize = 16
)

// GeneratePassword returns a random password of length characters drawn
// uniformly from lower and upper case letters, digits and "!@#$%&*()_+-=[]?".
func GeneratePassword(length int) (string, error) {
	if length < 1 {
		return "", ErrInvalidPasswordLength
	}

	limit := big.NewInt(int64(len(passwordAlphabet)))
	password := make([]byte, length)
	for i := range password {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrRNGFailure, err)
		}
		password[i] = passwordAlphabet[n.Int64()]
	}

	return string(password), nil
}

// GenerateSalt reads SaltSize random bytes for [DeriveKeyFromPassword].
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRNGFailure, err)
	}
	return salt, nil
}

// DeriveKeyFromPassword derives a KeySize AES key from password and salt
// with PBKDF2-HMAC-SHA256. The same password and salt always give the same key,
// so salt must be kept alongside whatever the key encrypts.
func DeriveKeyFromPassword(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, PBKDF2Iterations, KeySize, sha256.New)
}
