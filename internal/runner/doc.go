// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package runner executes generated Python code in a subprocess.
//
// The code text is sanitized first: markdown fences are stripped,
// structured-reply header lines are commented out (not deleted, so the
// interpreter's own error line numbers stay meaningful), and the text
// is NFKC-normalized. Sanitation is idempotent.
//
// Each program instance writes to its own scratch file under the
// system temp directory, so concurrent instances never race on a
// shared path. The subprocess is bounded by a wall-clock timeout and
// its combined stdout/stderr is captured as one blob; launch and
// timeout failures are converted to text, never propagated.
package runner
