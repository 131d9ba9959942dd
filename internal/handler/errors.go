// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoPublisher is returned by NewHandlers when no reply publisher is
// given. The broker cannot answer requests without one, so this is treated
// as a fatal misconfiguration at startup.
var errNoPublisher = errors.New("no reply publisher is given")
