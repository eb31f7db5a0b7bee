// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package openai implements the chat-completion client used by the
// compile verbs.
//
// The client is a narrow collaborator: one blocking request carrying a
// system instruction and the document text, one plain-text reply.
// Before any network call it estimates the token count of the request
// and rejects prompts that already exceed the selected model's context
// window; otherwise the response budget is clamped to the remaining
// headroom minus a safety margin.
//
// Errors are typed so verb handlers can render a precise one-line
// message: authentication, rate limiting, context overflow, transport,
// and malformed-response failures are distinguished.
package openai
