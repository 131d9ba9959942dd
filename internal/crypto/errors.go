// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrRNGFailure is returned when the random source cannot supply key or
	// IV material.
	ErrRNGFailure = errors.New("random number generator failure")

	// ErrInvalidKeySize is returned when a key is not exactly KeySize bytes.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrMalformedEnvelope is returned when an envelope is not valid base64,
	// is shorter than an IV plus one byte, or is not block aligned.
	ErrMalformedEnvelope = errors.New("malformed envelope")

	// ErrBadKeyOrCorruption is returned when the padding of a decrypted
	// envelope is invalid, which means the key is wrong or the ciphertext
	// was altered.
	ErrBadKeyOrCorruption = errors.New("bad key or corrupted envelope")

	// ErrInvalidPasswordLength is returned by [GeneratePassword] for
	// lengths below one.
	ErrInvalidPasswordLength = errors.New("password length must be at least 1")
)
