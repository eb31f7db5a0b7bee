// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds the styled components for the application. It detects
// the terminal's color capability once at startup.
type Theme struct {
	IsDark       bool
	ColorProfile termenv.Profile

	// Edit buffer
	LineNumber lipgloss.Style
	YamlKey    lipgloss.Style
	Comment    lipgloss.Style
	CursorCell lipgloss.Style

	// Chrome
	Title      lipgloss.Style
	CommandBar lipgloss.Style
	ModeHint   lipgloss.Style
	ErrorText  lipgloss.Style
	InfoText   lipgloss.Style

	// Full-screen overlays
	HelpHint lipgloss.Style
}

// NewTheme builds the theme for the current terminal.
func NewTheme() Theme {
	return Theme{
		IsDark:       termenv.HasDarkBackground(),
		ColorProfile: termenv.ColorProfile(),

		LineNumber: lipgloss.NewStyle().Foreground(Gray),
		YamlKey:    lipgloss.NewStyle().Foreground(Blue),
		Comment:    lipgloss.NewStyle().Foreground(Green),
		CursorCell: lipgloss.NewStyle().Reverse(true),

		Title:      lipgloss.NewStyle().Foreground(Cyan).Bold(true),
		CommandBar: lipgloss.NewStyle().Foreground(Yellow),
		ModeHint:   lipgloss.NewStyle().Foreground(Yellow),
		ErrorText:  lipgloss.NewStyle().Foreground(Red),
		InfoText:   lipgloss.NewStyle().Foreground(Cyan),

		HelpHint: lipgloss.NewStyle().Foreground(Yellow),
	}
}
