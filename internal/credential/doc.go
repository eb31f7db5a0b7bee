// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package credential manages the API key lifecycle: load at startup if
// the key file exists, persist on every change, delete on request.
//
// The contract is a single plaintext file holding the raw key,
// whitespace-trimmed on load and written with 0600 permissions via an
// atomic rename.
package credential
