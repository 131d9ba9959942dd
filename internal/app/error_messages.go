// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the broker
// and its clients.
//
// All Msg* constants are the human-readable texts carried in the "error"
// field of a failed broker reply. The broker writes them, the client adapter
// maps them back to sentinel errors, so both sides share one wording.
package app

// Validation failures of a save.msg request.
const (
	// MsgEmptyMessage is returned when the plaintext is empty.
	MsgEmptyMessage = "Message must not be empty"

	// MsgBlankMessage is returned when the plaintext consists of whitespace
	// only.
	MsgBlankMessage = "Message must not be blank"

	// MsgMessageTooLarge is returned when the raw payload exceeds the
	// configured maximum message size.
	MsgMessageTooLarge = "Message is too large"

	// MsgInvalidUTF8 is returned when the plaintext is not valid UTF-8.
	MsgInvalidUTF8 = "Message must be valid UTF-8"
)

// Validation failures of a receive.msg request.
const (
	MsgMessageIDRequired    = "Message id is required"
	MsgMessageIDTooLong     = "Message id is too long"
	MsgAESKeyRequired       = "AES key is required"
	MsgAESKeyTooLong        = "AES key is too long"
	MsgInvalidAESKey        = "Invalid AES key"
	MsgInvalidRequestFormat = "Invalid request format"
)

const (
	// MsgMessageNotFound is returned when the message never existed, has
	// expired, or was already consumed.
	MsgMessageNotFound = "Message not found"

	// MsgUnableToDecrypt is returned for a wrong key and for a tampered or
	// truncated envelope alike.
	MsgUnableToDecrypt = "Unable to decrypt message"

	// MsgStorageUnavailable is returned when the key-value store cannot be
	// reached.
	MsgStorageUnavailable = "Storage unavailable"

	// MsgUnableToGenerateKey is returned when the random source fails while
	// creating a message.
	MsgUnableToGenerateKey = "Unable to generate message key"

	// MsgInternalServerError is returned when an unexpected failure occurs
	// that the client cannot resolve.
	MsgInternalServerError = "Internal server error"
)
