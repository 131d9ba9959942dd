package service

import "errors"

var (
	// ErrMessageNotFound is returned when the envelope is absent: never
	// created, already consumed, destroyed or expired.
	ErrMessageNotFound = errors.New("message not found")

	// ErrInvalidPlaintext is returned when a decrypted envelope is not
	// valid UTF-8, which only happens with a wrong key.
	ErrInvalidPlaintext = errors.New("decrypted message is not valid UTF-8")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
