// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package runner

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// RUNNER
// =============================================================================

// DefaultTimeout bounds the child process's wall-clock time.
const DefaultTimeout = 10 * time.Second

// Runner executes sanitized code fragments as python3 subprocesses.
type Runner struct {
	// Interpreter is the executable used to run the code
	// (default: "python3").
	Interpreter string

	// Timeout bounds each run (default: DefaultTimeout).
	Timeout time.Duration

	// ScratchDir is where the scratch file lives (default: os.TempDir()).
	ScratchDir string

	// scratchName is fixed per Runner so a single session reuses one
	// file, while separate program instances never collide.
	scratchName string
}

// New creates a runner with a process-unique scratch file name.
func New() *Runner {
	return &Runner{
		Interpreter: "python3",
		Timeout:     DefaultTimeout,
		ScratchDir:  os.TempDir(),
		scratchName: "yamlpad-" + uuid.NewString() + ".py",
	}
}

// ScratchPath returns the path the next run will write to.
func (r *Runner) ScratchPath() string {
	dir := r.ScratchDir
	if dir == "" {
		dir = os.TempDir()
	}
	name := r.scratchName
	if name == "" {
		name = "yamlpad-" + uuid.NewString() + ".py"
		r.scratchName = name
	}
	return filepath.Join(dir, name)
}

// Run sanitizes code, writes it to the scratch file, executes it, and
// returns the combined stdout/stderr. Launch errors, non-zero exits,
// and timeouts are all folded into the returned text; the error return
// is reserved for failures writing the scratch file itself.
//
// The scratch file is removed after capture.
func (r *Runner) Run(ctx context.Context, code string) (string, error) {
	interpreter := r.Interpreter
	if interpreter == "" {
		interpreter = "python3"
	}
	timeout := r.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	path := r.ScratchPath()
	if err := os.WriteFile(path, []byte(Sanitize(code)), 0600); err != nil {
		return "", fmt.Errorf("failed to write scratch file: %w", err)
	}
	defer os.Remove(path)

	cmdCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(cmdCtx, interpreter, path)
	setProcAttributes(cmd)

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	err := cmd.Run()

	if cmdCtx.Err() == context.DeadlineExceeded {
		return output.String() + fmt.Sprintf("\nError executing code: timed out after %s", timeout), nil
	}
	if err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			// Non-zero exit: the interpreter's own traceback is
			// already in the captured output.
			return output.String(), nil
		}
		return fmt.Sprintf("Error executing code: %v", err), nil
	}

	return output.String(), nil
}
