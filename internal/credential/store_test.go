// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package credential

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "apikey.txt"))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Save("sk-test-123"))
	key, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "sk-test-123", key)
	assert.True(t, s.Exists())
}

func TestLoadTrimsWhitespace(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte("  sk-padded \n"), 0600))

	key, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "sk-padded", key)
}

func TestLoadMissingFile(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Load()
	assert.ErrorIs(t, err, ErrNoKeyFile)
}

func TestSaveRejectsEmptyKey(t *testing.T) {
	s := newTestStore(t)
	assert.Error(t, s.Save("   "))
	assert.False(t, s.Exists())
}

func TestSavePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permission bits")
	}
	s := newTestStore(t)
	require.NoError(t, s.Save("sk-secret"))

	info, err := os.Stat(s.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save("sk-gone"))
	require.NoError(t, s.Delete())
	assert.False(t, s.Exists())

	// Second delete reports the absence.
	assert.ErrorIs(t, s.Delete(), ErrNoKeyFile)
}

func TestDefaultPath(t *testing.T) {
	s := NewStore("")
	assert.Equal(t, DefaultFilename, s.Path())
}
