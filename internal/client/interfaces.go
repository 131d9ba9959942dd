// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

//go:generate mockgen -source=interfaces.go -destination=../mock/clipboard_mock.go -package=mock

// Clipboard copies text to the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}
