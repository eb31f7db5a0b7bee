// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package openai

import (
	"strings"
	"testing"
)

func TestEstimateTokens(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"single word", "beep", 1},                   // (1 + 4/4) / 2
		{"short sentence", "hello world example", 3}, // (3 + 19/4) / 2
		{"whitespace only", "   \n\t ", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EstimateTokens(tt.text); got != tt.want {
				t.Errorf("EstimateTokens(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestEstimateTokensScalesWithLength(t *testing.T) {
	small := EstimateTokens(strings.Repeat("word ", 10))
	large := EstimateTokens(strings.Repeat("word ", 1000))
	if large <= small {
		t.Errorf("estimate did not grow: small=%d large=%d", small, large)
	}
}

func TestContextWindow(t *testing.T) {
	tests := []struct {
		model string
		want  int
	}{
		{"gpt-3.5-turbo", 16385},
		{"gpt-4", 8192},
		{"gpt-4o", 128000},
		{"some-unknown-model", DefaultContextWindow},
		{"", DefaultContextWindow},
	}

	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			if got := ContextWindow(tt.model); got != tt.want {
				t.Errorf("ContextWindow(%q) = %d, want %d", tt.model, got, tt.want)
			}
		})
	}
}

func TestResponseBudget(t *testing.T) {
	tests := []struct {
		name      string
		model     string
		input     int
		requested int
		want      int
	}{
		{"requested fits headroom", "gpt-4", 1000, 512, 512},
		{"requested clamped to headroom", "gpt-4", 8000, 512, 128}, // 8192-8000-64
		{"no headroom", "gpt-4", 8192, 512, 0},
		{"input past window", "gpt-4", 9000, 512, 0},
		{"zero request takes full headroom", "gpt-4", 1000, 0, 8192 - 1000 - 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResponseBudget(tt.model, tt.input, tt.requested); got != tt.want {
				t.Errorf("ResponseBudget = %d, want %d", got, tt.want)
			}
		})
	}
}
