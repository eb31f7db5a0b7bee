// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/grabercn/YAML2Python/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config is the complete yamlpad configuration.
type Config struct {
	// Completion holds the completion-endpoint settings.
	Completion CompletionConfig `toml:"completion"`

	// Runner holds the code-execution settings.
	Runner RunnerConfig `toml:"runner"`

	// History holds the compile-history settings.
	History HistoryConfig `toml:"history"`

	// KeyFile is the path of the plaintext API key file
	// (default: "apikey.txt" in the working directory).
	KeyFile string `toml:"key_file"`
}

// CompletionConfig configures the completion client.
type CompletionConfig struct {
	// BaseURL of the completion service.
	BaseURL string `toml:"base_url"`
	// Model identifier sent with each request.
	Model string `toml:"model"`
	// MaxResponseTokens requested per reply, before headroom clamping.
	MaxResponseTokens int `toml:"max_response_tokens"`
	// TimeoutSecs bounds each HTTP request.
	TimeoutSecs int `toml:"timeout_secs"`
}

// RunnerConfig configures generated-code execution.
type RunnerConfig struct {
	// Interpreter runs the scratch file.
	Interpreter string `toml:"interpreter"`
	// TimeoutSecs bounds each run's wall-clock time.
	TimeoutSecs int `toml:"timeout_secs"`
}

// HistoryConfig configures compile-history persistence.
type HistoryConfig struct {
	// Enabled toggles recording of compile results.
	Enabled bool `toml:"enabled"`
	// Path of the SQLite database (default: ~/.yamlpad/history.db).
	Path string `toml:"path"`
	// MaxEntries caps the rows listed by the history verb.
	MaxEntries int `toml:"max_entries"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Completion: CompletionConfig{
			BaseURL:           "https://api.openai.com/v1",
			Model:             "gpt-3.5-turbo",
			MaxResponseTokens: 1024,
			TimeoutSecs:       60,
		},
		Runner: RunnerConfig{
			Interpreter: "python3",
			TimeoutSecs: 10,
		},
		History: HistoryConfig{
			Enabled:    true,
			Path:       "", // resolved lazily against the home dir
			MaxEntries: 20,
		},
		KeyFile: "apikey.txt",
	}
}

// DefaultPath returns ~/.yamlpad/config.toml, or "" when the home
// directory cannot be resolved.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".yamlpad", "config.toml")
}

// DefaultHistoryPath returns ~/.yamlpad/history.db, falling back to
// the working directory when the home directory cannot be resolved.
func DefaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "history.db"
	}
	return filepath.Join(home, ".yamlpad", "history.db")
}

// =============================================================================
// LOAD / SAVE
// =============================================================================

// Load reads the configuration at path (DefaultPath when empty). A
// missing file yields the defaults without error; a malformed file is
// an error. Loaded values are validated and bad ones reset to their
// defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	config := Default()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	config.validate()
	return config, nil
}

// Save writes the configuration as TOML.
func (c *Config) Save(path string) error {
	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		return fmt.Errorf("no config path available")
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return util.AtomicWriteFile(path, data, 0644)
}

// validate resets out-of-range values to their defaults.
func (c *Config) validate() {
	d := Default()
	if c.Completion.BaseURL == "" {
		c.Completion.BaseURL = d.Completion.BaseURL
	}
	if c.Completion.Model == "" {
		c.Completion.Model = d.Completion.Model
	}
	if c.Completion.MaxResponseTokens <= 0 {
		c.Completion.MaxResponseTokens = d.Completion.MaxResponseTokens
	}
	if c.Completion.TimeoutSecs <= 0 {
		c.Completion.TimeoutSecs = d.Completion.TimeoutSecs
	}
	if c.Runner.Interpreter == "" {
		c.Runner.Interpreter = d.Runner.Interpreter
	}
	if c.Runner.TimeoutSecs <= 0 {
		c.Runner.TimeoutSecs = d.Runner.TimeoutSecs
	}
	if c.History.MaxEntries <= 0 {
		c.History.MaxEntries = d.History.MaxEntries
	}
	if c.KeyFile == "" {
		c.KeyFile = d.KeyFile
	}
}

// CompletionTimeout returns the request timeout as a duration.
func (c *Config) CompletionTimeout() time.Duration {
	return time.Duration(c.Completion.TimeoutSecs) * time.Second
}

// RunnerTimeout returns the execution timeout as a duration.
func (c *Config) RunnerTimeout() time.Duration {
	return time.Duration(c.Runner.TimeoutSecs) * time.Second
}

// HistoryPath resolves the history database location.
func (c *Config) HistoryPath() string {
	if c.History.Path != "" {
		return c.History.Path
	}
	return DefaultHistoryPath()
}
