// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package buffer implements the editable document: an ordered slice of
// lines with a two-dimensional cursor and a scroll viewport.
//
// Invariants held by every operation:
//   - the document always contains at least one line (possibly empty)
//   - the cursor row is a valid index into the line slice
//   - the cursor column is within [0, rune length of the current line]
//
// All edit operations are total: at the document boundaries they degrade
// to no-ops or clamps instead of failing. Column positions count runes,
// not bytes, so multi-byte characters never split.
package buffer
