// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the yamlpad TUI.
// All colors use Lip Gloss AdaptiveColor for automatic light/dark detection.
package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// SYNTAX COLORS
// =============================================================================

// Blue - YAML keys in the edit buffer
var Blue = lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#60A5FA"}

// Green - comments in the edit buffer
var Green = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}

// =============================================================================
// SEMANTIC COLORS
// =============================================================================

// Yellow - instructions, the command bar, mode hints
var Yellow = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

// Red - error messages
var Red = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}

// Cyan - screen titles, success notices
var Cyan = lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"}

// =============================================================================
// SURFACE COLORS
// =============================================================================

// Gray - line numbers and other muted chrome
var Gray = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}
