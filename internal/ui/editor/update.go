// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package editor

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/grabercn/YAML2Python/internal/buffer"
)

// Update implements tea.Model. All verb work happens synchronously in
// here; a compile or a subprocess run blocks the loop until it
// finishes.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Overlay screens capture every key.
	if m.screen != ScreenEditor {
		return m.handleOverlayKey(msg)
	}

	m.clearStatus()

	switch m.mode {
	case ModeCommand:
		return m.handleCommandKey(msg)
	default:
		return m.handleInsertKey(msg)
	}
}

// ============================================================================
// Insert mode
// ============================================================================

func (m *Model) handleInsertKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp:
		m.buf.Move(buffer.Up)
	case tea.KeyDown:
		m.buf.Move(buffer.Down)
	case tea.KeyLeft:
		m.buf.Move(buffer.Left)
	case tea.KeyRight:
		m.buf.Move(buffer.Right)
	case tea.KeyEnter:
		m.buf.InsertNewline()
	case tea.KeyBackspace:
		m.buf.DeleteBack()
	case tea.KeyTab:
		// YAML indentation is spaces; expand the tab.
		m.buf.InsertRune(' ')
		m.buf.InsertRune(' ')
	case tea.KeySpace:
		m.buf.InsertRune(' ')
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if string(r) == commandPrefix {
				m.mode = ModeCommand
				m.command = commandPrefix
				return m, nil
			}
			m.buf.InsertRune(r)
		}
	}

	row, _ := m.buf.Cursor()
	m.view.Follow(row)
	return m, nil
}

// ============================================================================
// Command mode
// ============================================================================

func (m *Model) handleCommandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = ModeInsert
		m.command = ""
		return m, nil

	case tea.KeyBackspace:
		// The prefix itself is not erasable; esc is the way out.
		if len(m.command) > len(commandPrefix) {
			m.command = m.command[:len(m.command)-1]
		}
		return m, nil

	case tea.KeyEnter:
		line := strings.TrimPrefix(m.command, commandPrefix)
		m.mode = ModeInsert
		m.command = ""
		return m.dispatch(line)

	case tea.KeySpace:
		m.command += " "
		return m, nil

	case tea.KeyRunes:
		m.command += string(msg.Runes)
		return m, nil
	}

	return m, nil
}

// ============================================================================
// Overlay screens
// ============================================================================

func (m *Model) handleOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.screen == ScreenKeyPrompt {
		return m.handleKeyPromptKey(msg)
	}

	// Arrow keys scroll long overlays instead of dismissing them.
	switch msg.Type {
	case tea.KeyUp, tea.KeyPgUp:
		m.overlay.LineUp(1)
		return m, nil
	case tea.KeyDown, tea.KeyPgDown:
		m.overlay.LineDown(1)
		return m, nil
	}

	switch m.screen {
	case ScreenOutput:
		// Output stays on screen until the command prefix is pressed,
		// so a stray keystroke cannot wipe a long trace.
		if msg.Type == tea.KeyRunes && string(msg.Runes) == commandPrefix {
			m.screen = ScreenEditor
		}
		return m, nil

	case ScreenResult:
		if m.pendingExecute {
			m.pendingExecute = false
			m.screen = ScreenEditor
			return m.runLastResult()
		}
		m.screen = ScreenEditor
		return m, nil

	default:
		// Help and history dismiss on any key.
		m.screen = ScreenEditor
		return m, nil
	}
}

func (m *Model) handleKeyPromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.screen = ScreenEditor
		m.keyInput.Reset()
		m.setStatus("key unchanged", false)
		return m, nil

	case tea.KeyEnter:
		key := strings.TrimSpace(m.keyInput.Value())
		m.screen = ScreenEditor
		m.keyInput.Reset()
		if key == "" {
			m.setStatus("key unchanged", false)
			return m, nil
		}
		if err := m.keys.Save(key); err != nil {
			m.setStatus("saving key: "+err.Error(), true)
			return m, nil
		}
		m.client.SetAPIKey(key)
		m.setStatus("API key updated", false)
		return m, nil
	}

	var cmd tea.Cmd
	m.keyInput, cmd = m.keyInput.Update(msg)
	return m, cmd
}
