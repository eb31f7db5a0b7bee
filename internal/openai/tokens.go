// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package openai

import "strings"

// =============================================================================
// TOKEN ESTIMATION
// =============================================================================

// EstimateTokens approximates the token count of text without a real
// tokenizer. GPT-style models average about four characters per token;
// blending the word and character estimates tracks short prompts
// better than either alone.
func EstimateTokens(text string) int {
	words := len(strings.Fields(text))
	chars := len(text)
	return (words + chars/4) / 2
}

// =============================================================================
// CONTEXT WINDOWS
// =============================================================================

// DefaultContextWindow is assumed for models not in the table. It is
// deliberately the smallest window of any selectable model so unknown
// models fail toward rejecting a prompt rather than overrunning.
const DefaultContextWindow = 4096

// contextWindows maps model identifiers to their context window sizes,
// per the service's published model documentation.
var contextWindows = map[string]int{
	"gpt-3.5-turbo":     16385,
	"gpt-3.5-turbo-16k": 16385,
	"gpt-4":             8192,
	"gpt-4-turbo":       128000,
	"gpt-4o":            128000,
	"gpt-4o-mini":       128000,
}

// ContextWindow returns the context window for a model, falling back
// to DefaultContextWindow for unknown identifiers.
func ContextWindow(model string) int {
	if w, ok := contextWindows[model]; ok {
		return w
	}
	return DefaultContextWindow
}

// safetyMargin is the number of tokens held back from the response
// budget to absorb estimation error and per-message overhead.
const safetyMargin = 64

// ResponseBudget computes the clamped max_tokens for a request whose
// input is estimated at inputTokens against the given model. Returns 0
// when no headroom remains after the safety margin.
func ResponseBudget(model string, inputTokens, requested int) int {
	headroom := ContextWindow(model) - inputTokens - safetyMargin
	if headroom <= 0 {
		return 0
	}
	if requested > 0 && requested < headroom {
		return requested
	}
	return headroom
}
