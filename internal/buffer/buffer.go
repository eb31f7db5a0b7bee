// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package buffer

import (
	"os"
	"strings"
)

// =============================================================================
// BUFFER
// =============================================================================

// Buffer holds the document as a slice of hard lines (split on \n) plus
// the cursor position. The zero value is not usable; call New.
type Buffer struct {
	lines []string

	// Cursor position: row indexes lines, col counts runes into the
	// current line. col == len(line) means "after the last rune".
	row int
	col int
}

// New returns a buffer containing a single empty line with the cursor
// at the origin.
func New() *Buffer {
	return &Buffer{lines: []string{""}}
}

// Lines returns a copy of the document's lines.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// LineCount returns the number of lines in the document.
func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the line at row, or "" if row is out of range.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return b.lines[row]
}

// Cursor returns the current cursor position as (row, col).
func (b *Buffer) Cursor() (row, col int) { return b.row, b.col }

// Text returns the document joined with newlines, exactly as the
// compile verbs send it to the completion endpoint.
func (b *Buffer) Text() string {
	return strings.Join(b.lines, "\n")
}

// SetLines replaces the document and resets the cursor to the origin.
// An empty slice becomes a single empty line.
func (b *Buffer) SetLines(lines []string) {
	if len(lines) == 0 {
		lines = []string{""}
	}
	b.lines = make([]string, len(lines))
	copy(b.lines, lines)
	b.row, b.col = 0, 0
}

// =============================================================================
// EDIT OPERATIONS
// =============================================================================

// InsertRune inserts ch at the cursor and advances the column.
func (b *Buffer) InsertRune(ch rune) {
	runes := []rune(b.lines[b.row])
	out := make([]rune, 0, len(runes)+1)
	out = append(out, runes[:b.col]...)
	out = append(out, ch)
	out = append(out, runes[b.col:]...)
	b.lines[b.row] = string(out)
	b.col++
}

// DeleteBack removes the rune before the cursor. At column zero it
// joins the current line onto the previous one; at the document origin
// it is a no-op.
func (b *Buffer) DeleteBack() {
	if b.col > 0 {
		runes := []rune(b.lines[b.row])
		out := make([]rune, 0, len(runes)-1)
		out = append(out, runes[:b.col-1]...)
		out = append(out, runes[b.col:]...)
		b.lines[b.row] = string(out)
		b.col--
		return
	}
	if b.row == 0 {
		return
	}
	prev := b.lines[b.row-1]
	current := b.lines[b.row]
	b.lines = append(b.lines[:b.row], b.lines[b.row+1:]...)
	b.row--
	b.col = len([]rune(prev))
	b.lines[b.row] = prev + current
}

// InsertNewline splits the current line at the cursor, moving the tail
// onto a new line and placing the cursor at its start.
func (b *Buffer) InsertNewline() {
	runes := []rune(b.lines[b.row])
	head := string(runes[:b.col])
	tail := string(runes[b.col:])
	b.lines[b.row] = head
	b.lines = append(b.lines[:b.row+1], append([]string{tail}, b.lines[b.row+1:]...)...)
	b.row++
	b.col = 0
}

// =============================================================================
// CURSOR MOVEMENT
// =============================================================================

// Direction identifies a cursor movement.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Move moves the cursor one step in the given direction.
//
// Left at column zero wraps to the end of the previous line; Right at
// the end of a line wraps to the start of the next. Up and Down keep
// the column where possible, clamped to the destination line's length
// (the column is re-clamped on every move, not remembered).
func (b *Buffer) Move(d Direction) {
	switch d {
	case Left:
		if b.col > 0 {
			b.col--
		} else if b.row > 0 {
			b.row--
			b.col = len([]rune(b.lines[b.row]))
		}
	case Right:
		if b.col < len([]rune(b.lines[b.row])) {
			b.col++
		} else if b.row < len(b.lines)-1 {
			b.row++
			b.col = 0
		}
	case Up:
		if b.row > 0 {
			b.row--
			b.col = min(b.col, len([]rune(b.lines[b.row])))
		}
	case Down:
		if b.row < len(b.lines)-1 {
			b.row++
			b.col = min(b.col, len([]rune(b.lines[b.row])))
		}
	}
}

// =============================================================================
// FILE I/O
// =============================================================================

// Load replaces the document with the contents of the named file and
// resets the cursor. An empty file yields a single empty line.
func (b *Buffer) Load(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	text := strings.TrimSuffix(string(data), "\n")
	if text == "" {
		b.SetLines([]string{""})
		return nil
	}
	b.SetLines(strings.Split(text, "\n"))
	return nil
}

// Save writes the document to the named file, lines joined by newlines.
// The written form round-trips through Load without line loss or
// trailing-newline duplication.
func (b *Buffer) Save(filename string) error {
	return os.WriteFile(filename, []byte(b.Text()+"\n"), 0644)
}
