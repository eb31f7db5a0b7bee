// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli covers the pre-TUI part of startup: terminal detection
// and the first-run API key prompt, which both have to happen before
// the alternate screen takes over.
package cli
