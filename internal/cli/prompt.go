// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
)

// ErrPromptAborted is returned when the user cancels the key prompt
// with ctrl-c or EOF.
var ErrPromptAborted = errors.New("prompt aborted")

// PromptAPIKey asks for an API key on the real terminal, with echo
// suppressed. It keeps asking until a non-empty key is entered or the
// user aborts.
func PromptAPIKey() (string, error) {
	if err := RequireTTY("enter an API key"); err != nil {
		return "", err
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	fmt.Println("No API key found. One is required to compile documents.")
	for {
		key, err := line.PasswordPrompt("API key: ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				return "", ErrPromptAborted
			}
			return "", fmt.Errorf("reading key: %w", err)
		}
		key = strings.TrimSpace(key)
		if key != "" {
			return key, nil
		}
		fmt.Println("Key cannot be empty. Press ctrl-c to abort.")
	}
}
