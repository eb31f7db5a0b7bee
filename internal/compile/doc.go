// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package compile defines the structured reply contract with the
// completion service: the fixed system instruction sent with every
// request and the tolerant parser that splits a reply into its
// Status / Desc / Next / Code sections.
//
// The parser never fails. Candidate grammars are tried in order and the
// last one accepts any input, so malformed replies degrade to a header
// with no code rather than an error.
package compile
