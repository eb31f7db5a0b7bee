// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

//go:build windows

package runner

import "os/exec"

// setProcAttributes is a no-op on Windows; CommandContext's default
// Kill terminates the child directly.
func setProcAttributes(cmd *exec.Cmd) {}
