// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides shared helpers for the yamlpad application.
//
// It contains the crash-safe file writer used by the credential store and
// the save verbs, plus the rune-aware truncation helpers used when listing
// compile history.
package util
