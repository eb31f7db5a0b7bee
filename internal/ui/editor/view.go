// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package editor

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/mattn/go-runewidth"
)

// lineNumberWidth is the gutter width, excluding the separating
// space. Document content starts at column lineNumberWidth+1.
const lineNumberWidth = 5

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case ScreenKeyPrompt:
		return m.viewKeyPrompt()
	case ScreenEditor:
		return m.viewEditor()
	default:
		return m.viewOverlay()
	}
}

// ============================================================================
// Editor screen
// ============================================================================

func (m *Model) viewEditor() string {
	var b strings.Builder

	row, col := m.buf.Cursor()
	avail := m.width - lineNumberWidth - 1
	if avail < 1 {
		avail = 1
	}

	for i := 0; i < m.view.Height; i++ {
		n := m.view.Offset + i
		if n < m.buf.LineCount() {
			b.WriteString(m.theme.LineNumber.Render(fmt.Sprintf("%*d ", lineNumberWidth, n+1)))

			line := m.buf.Line(n)
			if runewidth.StringWidth(line) > avail {
				line = runewidth.Truncate(line, avail, "")
			}

			cursorCol := -1
			if n == row && m.mode == ModeInsert {
				cursorCol = col
			}
			b.WriteString(renderLine(m.theme, line, cursorCol))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.viewCommandBar())
	return b.String()
}

func (m *Model) viewCommandBar() string {
	if m.mode == ModeCommand {
		return m.theme.CommandBar.Render(m.command)
	}
	if m.status != "" {
		if m.statusIsErr {
			return m.theme.ErrorText.Render(m.status)
		}
		return m.theme.InfoText.Render(m.status)
	}
	return m.theme.ModeHint.Render("-- INSERT --  ;help for commands")
}

// ============================================================================
// Overlay screens
// ============================================================================

func (m *Model) viewOverlay() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render(m.overlayTitle))
	b.WriteString("\n")
	b.WriteString(m.overlay.View())
	b.WriteString("\n")
	b.WriteString(m.theme.HelpHint.Render(m.overlayHint()))
	return b.String()
}

func (m *Model) overlayHint() string {
	switch m.screen {
	case ScreenOutput:
		return "press ; to return to the editor"
	case ScreenResult:
		if m.pendingExecute {
			return "press any key to execute the code"
		}
		return "press any key to return"
	default:
		return "press any key to return"
	}
}

func (m *Model) viewKeyPrompt() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("API key"))
	b.WriteString("\n\n")
	b.WriteString(m.keyInput.View())
	b.WriteString("\n\n")
	b.WriteString(m.theme.HelpHint.Render("enter to save, esc to keep the current key"))
	return b.String()
}

// ============================================================================
// Code highlighting
// ============================================================================

// highlightPython renders Python source with ANSI colors for the
// result screen. On any highlighter error it falls back to the plain
// source.
func highlightPython(code string) string {
	var buf bytes.Buffer
	if err := quick.Highlight(&buf, code, "python", "terminal256", "monokai"); err != nil {
		return code
	}
	return buf.String()
}
