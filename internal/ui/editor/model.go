// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package editor

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/grabercn/YAML2Python/internal/buffer"
	"github.com/grabercn/YAML2Python/internal/compile"
	"github.com/grabercn/YAML2Python/internal/config"
	"github.com/grabercn/YAML2Python/internal/credential"
	"github.com/grabercn/YAML2Python/internal/history"
	"github.com/grabercn/YAML2Python/internal/openai"
	"github.com/grabercn/YAML2Python/internal/runner"
	"github.com/grabercn/YAML2Python/internal/ui/styles"
)

// ============================================================================
// Modes and screens
// ============================================================================

// Mode is the editor's input mode.
type Mode int

const (
	// ModeInsert routes keystrokes into the document buffer.
	ModeInsert Mode = iota
	// ModeCommand accumulates a ";verb arg" line in the command bar.
	ModeCommand
)

// Screen selects what the terminal currently shows. The editor screen
// is the default; the others are full-screen overlays that swallow
// input until dismissed.
type Screen int

const (
	ScreenEditor Screen = iota
	// ScreenResult shows the parsed compile reply (header plus code).
	ScreenResult
	// ScreenOutput shows captured subprocess output. Dismissed with ';'.
	ScreenOutput
	// ScreenHelp shows the verb reference.
	ScreenHelp
	// ScreenHistory lists recent compile records.
	ScreenHistory
	// ScreenKeyPrompt collects a replacement API key.
	ScreenKeyPrompt
)

const commandPrefix = ";"

// ============================================================================
// Model
// ============================================================================

// Model is the top-level Bubble Tea model. It owns the document
// buffer, the session's credential and completion client, and the
// result of the most recent compile.
type Model struct {
	cfg   *config.Config
	theme styles.Theme

	buf  *buffer.Buffer
	view buffer.Viewport

	width  int
	height int

	mode    Mode
	command string

	screen Screen
	// overlay backs the result, output, help, and history screens.
	overlay viewport.Model
	// overlayTitle is drawn above the overlay content.
	overlayTitle string

	keyInput textinput.Model

	client *openai.Client
	runner *runner.Runner
	keys   *credential.Store
	hist   *history.Store // nil when history is disabled

	// last holds the most recent parsed compile result. run and
	// savepy operate on it.
	last *compile.Result
	// pendingExecute arms the result screen: the next keystroke runs
	// the code instead of just dismissing the overlay.
	pendingExecute bool

	status      string
	statusIsErr bool

	quitting bool
}

// New assembles a Model from its collaborators. hist may be nil.
func New(cfg *config.Config, client *openai.Client, run *runner.Runner, keys *credential.Store, hist *history.Store) *Model {
	ti := textinput.New()
	ti.Placeholder = "sk-..."
	ti.EchoMode = textinput.EchoPassword
	ti.CharLimit = 256

	return &Model{
		cfg:      cfg,
		theme:    styles.NewTheme(),
		buf:      buffer.New(),
		view:     buffer.Viewport{},
		mode:     ModeInsert,
		screen:   ScreenEditor,
		overlay:  viewport.New(0, 0),
		keyInput: ti,
		client:   client,
		runner:   run,
		keys:     keys,
		hist:     hist,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Buffer exposes the document buffer, mainly for tests.
func (m *Model) Buffer() *buffer.Buffer { return m.buf }

// LastResult returns the most recent parsed compile result, or nil.
func (m *Model) LastResult() *compile.Result { return m.last }

// setStatus records a one-shot message for the command bar. It is
// cleared by the next keystroke.
func (m *Model) setStatus(msg string, isErr bool) {
	m.status = msg
	m.statusIsErr = isErr
}

func (m *Model) clearStatus() {
	m.status = ""
	m.statusIsErr = false
}

// resize propagates a new terminal size to the editor viewport and
// the overlay. One row is reserved for the command bar.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	rows := height - 1
	if rows < 1 {
		rows = 1
	}
	m.view.Height = rows

	m.overlay.Width = width
	// Overlay screens keep a title row and a hint row.
	overlayRows := height - 2
	if overlayRows < 1 {
		overlayRows = 1
	}
	m.overlay.Height = overlayRows
}
