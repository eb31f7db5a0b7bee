// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package editor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/grabercn/YAML2Python/internal/compile"
	"github.com/grabercn/YAML2Python/internal/credential"
	"github.com/grabercn/YAML2Python/internal/history"
	"github.com/grabercn/YAML2Python/internal/openai"
	"github.com/grabercn/YAML2Python/internal/runner"
	"github.com/grabercn/YAML2Python/internal/util"
)

// verbHandler executes one command-bar verb. args excludes the verb
// itself.
type verbHandler func(m *Model, args []string) (tea.Model, tea.Cmd)

// verbs is the command registry. dispatch falls through to an
// unknown-verb notice for anything not listed here.
var verbs = map[string]verbHandler{
	"compile":   (*Model).cmdCompile,
	"execute":   (*Model).cmdExecute,
	"run":       (*Model).cmdRun,
	"savepy":    (*Model).cmdSavePy,
	"open":      (*Model).cmdOpen,
	"save":      (*Model).cmdSave,
	"deletekey": (*Model).cmdDeleteKey,
	"rekey":     (*Model).cmdRekey,
	"help":      (*Model).cmdHelp,
	"history":   (*Model).cmdHistory,
	"model":     (*Model).cmdModel,
	"exit":      (*Model).cmdExit,
}

// dispatch parses and runs a command line with the ';' prefix already
// stripped.
func (m *Model) dispatch(line string) (tea.Model, tea.Cmd) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return m, nil
	}

	verb := strings.ToLower(fields[0])
	handler, ok := verbs[verb]
	if !ok {
		m.setStatus(fmt.Sprintf("unknown command %q, try ;help", verb), true)
		return m, nil
	}
	return handler(m, fields[1:])
}

// ============================================================================
// Compile and execute
// ============================================================================

func (m *Model) cmdCompile(_ []string) (tea.Model, tea.Cmd) {
	return m.compileDocument(false)
}

// cmdExecute compiles and arms the result screen so the next
// keystroke runs the returned code.
func (m *Model) cmdExecute(_ []string) (tea.Model, tea.Cmd) {
	return m.compileDocument(true)
}

func (m *Model) compileDocument(andExecute bool) (tea.Model, tea.Cmd) {
	doc := m.buf.Text()

	ctx, cancel := context.WithTimeout(context.Background(), m.cfg.CompletionTimeout())
	defer cancel()

	reply, err := m.client.Complete(ctx, compile.SystemPrompt, doc)
	if err != nil {
		m.setStatus(compileErrorText(err), true)
		return m, nil
	}

	res := compile.Parse(reply)
	m.last = &res
	m.recordHistory(&res, len(doc))

	m.pendingExecute = andExecute && res.HasCode()
	if andExecute && !res.HasCode() {
		m.setStatus("reply contained no code to execute", true)
	}
	m.showResult(&res)
	return m, nil
}

func (m *Model) showResult(res *compile.Result) {
	var b strings.Builder
	b.WriteString(res.Header())
	if res.HasCode() {
		b.WriteString("\n\nCode:\n")
		b.WriteString(highlightPython(res.Code))
	}
	m.overlayTitle = "Compile result"
	m.overlay.SetContent(b.String())
	m.overlay.GotoTop()
	m.screen = ScreenResult
}

// compileErrorText maps client errors onto one-line command bar
// notices.
func compileErrorText(err error) string {
	switch {
	case errors.Is(err, openai.ErrMissingKey):
		return "no API key configured, use ;rekey"
	case openai.IsAuthFailure(err):
		return "API key rejected, use ;rekey"
	case errors.Is(err, openai.ErrRateLimited):
		return "rate limited by the completion service, try again shortly"
	case openai.IsContextExceeded(err):
		return "document too large for the model's context window"
	case errors.Is(err, context.DeadlineExceeded):
		return "completion request timed out"
	default:
		return "compile failed: " + err.Error()
	}
}

func (m *Model) recordHistory(res *compile.Result, promptChars int) {
	if m.hist == nil {
		return
	}
	// History is best effort; a write failure never interrupts the
	// session.
	_, _ = m.hist.Record(context.Background(), history.Entry{
		Model:       m.client.Model(),
		Status:      res.Status,
		Desc:        res.Desc,
		Next:        res.Next,
		Code:        res.Code,
		PromptChars: promptChars,
	})
}

// ============================================================================
// Run
// ============================================================================

func (m *Model) cmdRun(_ []string) (tea.Model, tea.Cmd) {
	return m.runLastResult()
}

func (m *Model) runLastResult() (tea.Model, tea.Cmd) {
	if m.last == nil || !m.last.HasCode() {
		m.setStatus("no code available, compile first", true)
		return m, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), m.cfg.RunnerTimeout()+time.Second)
	defer cancel()

	output, err := m.runner.Run(ctx, m.last.Code)
	if err != nil {
		m.setStatus("run failed: "+err.Error(), true)
		return m, nil
	}
	if strings.TrimSpace(output) == "" {
		output = "(no output)"
	}

	m.overlayTitle = "Output"
	m.overlay.SetContent(output)
	m.overlay.GotoTop()
	m.screen = ScreenOutput
	return m, nil
}

// ============================================================================
// Files
// ============================================================================

// filenameArg rejoins the argument tail so filenames containing
// spaces survive the whitespace tokenizer.
func filenameArg(args []string) string {
	return strings.Join(args, " ")
}

func (m *Model) cmdSavePy(args []string) (tea.Model, tea.Cmd) {
	if len(args) == 0 {
		m.setStatus("usage: ;savepy <file>", true)
		return m, nil
	}
	if m.last == nil || !m.last.HasCode() {
		m.setStatus("no code available, compile first", true)
		return m, nil
	}
	path := filenameArg(args)

	// Saved files get fences and leaked labels removed, not commented:
	// the comment-out treatment exists only to keep traceback line
	// numbers stable during execution.
	code := runner.Strip(m.last.Code)
	if !strings.HasSuffix(code, "\n") {
		code += "\n"
	}
	if err := util.AtomicWriteFile(path, []byte(code), 0o644); err != nil {
		m.setStatus("saving code: "+err.Error(), true)
		return m, nil
	}
	m.setStatus("code saved to "+path, false)
	return m, nil
}

func (m *Model) cmdOpen(args []string) (tea.Model, tea.Cmd) {
	if len(args) == 0 {
		m.setStatus("usage: ;open <file>", true)
		return m, nil
	}
	path := filenameArg(args)
	if err := m.buf.Load(path); err != nil {
		m.setStatus("opening file: "+err.Error(), true)
		return m, nil
	}
	m.view.Offset = 0
	m.setStatus("opened "+path, false)
	return m, nil
}

func (m *Model) cmdSave(args []string) (tea.Model, tea.Cmd) {
	if len(args) == 0 {
		m.setStatus("usage: ;save <file>", true)
		return m, nil
	}
	path := filenameArg(args)
	if err := m.buf.Save(path); err != nil {
		m.setStatus("saving file: "+err.Error(), true)
		return m, nil
	}
	m.setStatus("saved "+path, false)
	return m, nil
}

// ============================================================================
// Credentials
// ============================================================================

func (m *Model) cmdDeleteKey(_ []string) (tea.Model, tea.Cmd) {
	if err := m.keys.Delete(); err != nil {
		if errors.Is(err, credential.ErrNoKeyFile) {
			m.setStatus("no key file to delete", true)
		} else {
			m.setStatus("deleting key: "+err.Error(), true)
		}
		return m, nil
	}
	m.client.SetAPIKey("")
	m.setStatus("API key deleted", false)
	return m, nil
}

func (m *Model) cmdRekey(_ []string) (tea.Model, tea.Cmd) {
	m.keyInput.Reset()
	m.keyInput.Focus()
	m.screen = ScreenKeyPrompt
	return m, nil
}

// ============================================================================
// Session
// ============================================================================

func (m *Model) cmdHelp(_ []string) (tea.Model, tea.Cmd) {
	m.overlayTitle = "Help"
	m.overlay.SetContent(renderHelp(m.width))
	m.overlay.GotoTop()
	m.screen = ScreenHelp
	return m, nil
}

func (m *Model) cmdHistory(_ []string) (tea.Model, tea.Cmd) {
	if m.hist == nil {
		m.setStatus("history is disabled", true)
		return m, nil
	}

	limit := m.cfg.History.MaxEntries
	if limit <= 0 {
		limit = 20
	}
	entries, err := m.hist.Recent(context.Background(), limit)
	if err != nil {
		m.setStatus("reading history: "+err.Error(), true)
		return m, nil
	}
	if len(entries) == 0 {
		m.setStatus("history is empty", false)
		return m, nil
	}

	var b strings.Builder
	for _, e := range entries {
		ts := e.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(&b, "%s  %-14s  %s\n", ts, e.Model, util.FirstLine(e.Status))
		if e.Desc != "" {
			fmt.Fprintf(&b, "      %s\n", util.TruncateRunes(util.FirstLine(e.Desc), 72))
		}
	}
	m.overlayTitle = "History"
	m.overlay.SetContent(b.String())
	m.overlay.GotoTop()
	m.screen = ScreenHistory
	return m, nil
}

func (m *Model) cmdModel(args []string) (tea.Model, tea.Cmd) {
	if len(args) == 0 {
		m.setStatus("model: "+m.client.Model(), false)
		return m, nil
	}
	m.client.SetModel(args[0])
	m.cfg.Completion.Model = args[0]
	m.setStatus("model set to "+args[0], false)
	return m, nil
}

func (m *Model) cmdExit(_ []string) (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}
