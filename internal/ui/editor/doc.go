// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package editor implements the yamlpad TUI: a modal YAML scratchpad
// whose command verbs compile the document through a chat-completion
// endpoint and run the returned Python locally.
//
// The Bubble Tea model is split across files the usual way:
//
//   - model.go    - the Model struct, constructor, and session state
//   - update.go   - key handling for insert mode, command mode, and
//     the full-screen overlay screens
//   - commands.go - the verb handler registry
//   - view.go     - rendering, line numbers, and the cursor overlay
//   - syntax.go   - line-local YAML highlighting
//   - help.go     - the glamour-rendered help screen
//
// Verb handlers run synchronously inside Update. The network call and
// the subprocess run block the event loop for their duration, which is
// the intended behavior: one session, one thread of control, no
// background execution.
package editor
