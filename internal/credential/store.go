// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package credential

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/grabercn/YAML2Python/internal/util"
)

// DefaultFilename is the key file consulted in the working directory
// when no explicit path is configured.
const DefaultFilename = "apikey.txt"

// ErrNoKeyFile indicates the key file does not exist.
var ErrNoKeyFile = errors.New("no API key file")

// Store persists a single API key at a fixed path.
type Store struct {
	path string
}

// NewStore creates a store for the given path, defaulting to
// DefaultFilename in the working directory.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultFilename
	}
	return &Store{path: path}
}

// Path returns the key file location.
func (s *Store) Path() string { return s.path }

// Exists reports whether the key file is present.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Load reads and trims the persisted key. Returns ErrNoKeyFile when
// the file is absent and an empty string (no error) when the file
// exists but holds only whitespace.
func (s *Store) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoKeyFile
		}
		return "", fmt.Errorf("failed to read key file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Save persists the trimmed key with owner-only permissions.
func (s *Store) Save(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("refusing to save empty key")
	}
	if err := util.AtomicWriteFile(s.path, []byte(key), 0600); err != nil {
		return fmt.Errorf("failed to save key file: %w", err)
	}
	return nil
}

// Delete removes the key file. Returns ErrNoKeyFile when there is
// nothing to delete.
func (s *Store) Delete() error {
	err := os.Remove(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNoKeyFile
		}
		return fmt.Errorf("failed to delete key file: %w", err)
	}
	return nil
}
