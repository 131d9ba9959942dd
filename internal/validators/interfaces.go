// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks broker input before it reaches the secret
// message engine.
//
// A rejected save or receive never touches the store: no ciphertext is
// written and no decryption attempt is counted. Each rejection is one of the
// sentinel errors in errors.go, which the NATS handler turns into a reply
// text.
package validators

import "context"

// Validator checks a plaintext or a receive identifier.
//
// When field names are passed only those fields of the identifier are
// checked.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
