// yamlpad - a terminal scratchpad that compiles YAML to Python
// through a chat-completion endpoint and runs the result locally.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/grabercn/YAML2Python/internal/cli"
	"github.com/grabercn/YAML2Python/internal/config"
	"github.com/grabercn/YAML2Python/internal/credential"
	"github.com/grabercn/YAML2Python/internal/history"
	"github.com/grabercn/YAML2Python/internal/openai"
	"github.com/grabercn/YAML2Python/internal/runner"
	"github.com/grabercn/YAML2Python/internal/ui/editor"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "yamlpad:", err)
		os.Exit(1)
	}
}

func run() error {
	for _, arg := range os.Args[1:] {
		switch arg {
		case "--version", "-v":
			fmt.Printf("yamlpad %s (%s, built %s)\n", Version, GitCommit, BuildDate)
			return nil
		}
	}

	if err := cli.RequireTTY("run the editor"); err != nil {
		return err
	}

	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	keys := credential.NewStore(cfg.KeyFile)
	apiKey, err := keys.Load()
	switch {
	case errors.Is(err, credential.ErrNoKeyFile):
		// Fall back to the environment before bothering the user.
		apiKey = os.Getenv(openai.EnvAPIKey)
		if apiKey == "" {
			apiKey, err = cli.PromptAPIKey()
			if err != nil {
				return err
			}
			if err := keys.Save(apiKey); err != nil {
				return fmt.Errorf("saving key: %w", err)
			}
		}
	case err != nil:
		return fmt.Errorf("reading key file: %w", err)
	}

	clientCfg := openai.DefaultConfig()
	clientCfg.APIKey = apiKey
	clientCfg.BaseURL = cfg.Completion.BaseURL
	clientCfg.Model = cfg.Completion.Model
	clientCfg.MaxResponseTokens = cfg.Completion.MaxResponseTokens
	clientCfg.Timeout = cfg.CompletionTimeout()
	client := openai.NewClient(clientCfg)

	runr := runner.New()
	runr.Interpreter = cfg.Runner.Interpreter
	runr.Timeout = cfg.RunnerTimeout()

	var hist *history.Store
	if cfg.History.Enabled {
		// History is optional; the editor runs fine without it.
		if h, err := history.Open(cfg.HistoryPath()); err == nil {
			hist = h
			defer hist.Close()
		} else {
			fmt.Fprintln(os.Stderr, "yamlpad: history disabled:", err)
		}
	}

	m := editor.New(cfg, client, runr, keys, hist)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running editor: %w", err)
	}
	return nil
}
