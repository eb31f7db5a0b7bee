// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package history persists compile results to a local SQLite database
// so the history verb can list what the service returned in past
// sessions. Recording is best-effort: a storage failure never blocks
// the compile itself.
package history
