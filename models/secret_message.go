// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Subjects the broker subscribes to.
const (
	// SaveSubject receives raw UTF-8 plaintext and replies with a
	// JSON-encoded [SecretMessageIdentifier].
	SaveSubject = "save.msg"

	// ReceiveSubject receives a JSON-encoded [SecretMessageIdentifier] and
	// replies with the JSON-encoded plaintext string.
	ReceiveSubject = "receive.msg"
)

// MaxAttemptsReachedMessage is returned as a successful reply once the
// retrieval budget of a message is exhausted and its envelope destroyed.
const MaxAttemptsReachedMessage = "Maximum attempts reached, the message has been deleted."

// SecretMessageIdentifier is the pair returned by create and required by
// retrieve.
//
// AESKey carries the standard base64 (with padding) of the raw 256-bit key.
// SecretKey holds the raw key bytes for in-process callers only and is never
// serialized. Unmarshalling is case-insensitive, so producers emitting the
// legacy "aeskey" field are accepted; a legacy "secretKey" field is ignored.
type SecretMessageIdentifier struct {
	MessageID string `json:"messageId"`
	AESKey    string `json:"aesKey"`

	SecretKey []byte `json:"-"`
}

// RetrievedMessage is the outcome of a successful retrieve call.
type RetrievedMessage struct {
	// Plaintext is the decrypted secret, or [MaxAttemptsReachedMessage]
	// when AttemptsExhausted is set.
	Plaintext string

	// AttemptsExhausted reports that the attempt budget was exceeded and
	// the envelope has been destroyed instead of decrypted.
	AttemptsExhausted bool
}

// ErrorResponse is the reply body published when a request fails.
type ErrorResponse struct {
	Error string `json:"error"`
}
