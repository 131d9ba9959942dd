// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the secretctl client application runtime.
//
// It wires the broker and status adapters, the legacy password utilities and
// the system clipboard behind one App used by the command line.
package client
