// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package buffer

import (
	"math/rand"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// typeString inserts each rune of s at the cursor.
func typeString(b *Buffer, s string) {
	for _, ch := range s {
		if ch == '\n' {
			b.InsertNewline()
			continue
		}
		b.InsertRune(ch)
	}
}

func TestNewBufferStartsWithOneEmptyLine(t *testing.T) {
	b := New()
	if b.LineCount() != 1 || b.Line(0) != "" {
		t.Fatalf("new buffer = %v, want one empty line", b.Lines())
	}
	row, col := b.Cursor()
	if row != 0 || col != 0 {
		t.Errorf("cursor = (%d,%d), want origin", row, col)
	}
}

func TestInsertAndSplit(t *testing.T) {
	b := New()
	typeString(b, "key: value")
	if b.Text() != "key: value" {
		t.Fatalf("Text() = %q", b.Text())
	}

	// Split in the middle of the line.
	b.SetLines([]string{"key: value"})
	for i := 0; i < 4; i++ {
		b.Move(Right)
	}
	b.InsertNewline()
	if got := b.Lines(); !reflect.DeepEqual(got, []string{"key:", " value"}) {
		t.Errorf("lines after split = %v", got)
	}
	row, col := b.Cursor()
	if row != 1 || col != 0 {
		t.Errorf("cursor after split = (%d,%d), want (1,0)", row, col)
	}
}

func TestDeleteBackJoinsLines(t *testing.T) {
	b := New()
	b.SetLines([]string{"abc", "def"})
	b.Move(Down) // (1,0)
	b.DeleteBack()
	if got := b.Lines(); !reflect.DeepEqual(got, []string{"abcdef"}) {
		t.Errorf("lines after join = %v", got)
	}
	row, col := b.Cursor()
	if row != 0 || col != 3 {
		t.Errorf("cursor after join = (%d,%d), want (0,3)", row, col)
	}
}

func TestBoundaryNoOps(t *testing.T) {
	b := New()
	b.SetLines([]string{"ab", "cd"})

	// Backspace and left at the origin are no-ops.
	b.DeleteBack()
	b.Move(Left)
	if row, col := b.Cursor(); row != 0 || col != 0 {
		t.Errorf("cursor moved from origin: (%d,%d)", row, col)
	}
	if !reflect.DeepEqual(b.Lines(), []string{"ab", "cd"}) {
		t.Errorf("document changed by boundary no-op: %v", b.Lines())
	}

	// Right at the last line's last column is a no-op.
	b.SetLines([]string{"ab", "cd"})
	for i := 0; i < 10; i++ {
		b.Move(Right)
	}
	row, col := b.Cursor()
	if row != 1 || col != 2 {
		t.Fatalf("cursor = (%d,%d), want clamped to (1,2)", row, col)
	}
	b.Move(Right)
	if r2, c2 := b.Cursor(); r2 != row || c2 != col {
		t.Errorf("right at end moved cursor to (%d,%d)", r2, c2)
	}
}

func TestHorizontalWrap(t *testing.T) {
	b := New()
	b.SetLines([]string{"ab", "cd"})

	// Right at end of line wraps to the next line's start.
	b.Move(Right)
	b.Move(Right)
	b.Move(Right)
	if row, col := b.Cursor(); row != 1 || col != 0 {
		t.Errorf("right wrap: cursor = (%d,%d), want (1,0)", row, col)
	}

	// Left at column zero wraps to the previous line's end.
	b.Move(Left)
	if row, col := b.Cursor(); row != 0 || col != 2 {
		t.Errorf("left wrap: cursor = (%d,%d), want (0,2)", row, col)
	}
}

func TestVerticalClampReclampsEveryMove(t *testing.T) {
	b := New()
	b.SetLines([]string{"longline", "ab", "alsolong"})
	for i := 0; i < 6; i++ {
		b.Move(Right)
	}

	b.Move(Down) // onto "ab", col clamps to 2
	if _, col := b.Cursor(); col != 2 {
		t.Fatalf("col after down = %d, want 2", col)
	}
	b.Move(Down) // onto "alsolong": no sticky column, stays at 2
	if _, col := b.Cursor(); col != 2 {
		t.Errorf("col after second down = %d, want 2 (column is not remembered)", col)
	}
}

func TestMultibyteRuneEditing(t *testing.T) {
	b := New()
	typeString(b, "héllo")
	b.DeleteBack()
	b.DeleteBack()
	if b.Text() != "hél" {
		t.Errorf("Text() = %q, want %q", b.Text(), "hél")
	}
	if _, col := b.Cursor(); col != 3 {
		t.Errorf("col = %d, want 3", col)
	}
}

// TestInvariantsUnderRandomOps drives the buffer with a random edit
// sequence and checks the document/cursor invariants after every step.
func TestInvariantsUnderRandomOps(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	b := New()

	check := func(step int) {
		t.Helper()
		if b.LineCount() < 1 {
			t.Fatalf("step %d: document has no lines", step)
		}
		row, col := b.Cursor()
		if row < 0 || row >= b.LineCount() {
			t.Fatalf("step %d: row %d out of range [0,%d)", step, row, b.LineCount())
		}
		if col < 0 || col > len([]rune(b.Line(row))) {
			t.Fatalf("step %d: col %d out of range [0,%d]", step, col, len([]rune(b.Line(row))))
		}
	}

	for i := 0; i < 5000; i++ {
		switch rng.Intn(8) {
		case 0:
			b.InsertRune(rune('a' + rng.Intn(26)))
		case 1:
			b.DeleteBack()
		case 2:
			b.InsertNewline()
		case 3:
			b.Move(Left)
		case 4:
			b.Move(Right)
		case 5:
			b.Move(Up)
		case 6:
			b.Move(Down)
		case 7:
			b.InsertRune(':')
		}
		check(i)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{"plain document", []string{"name: demo", "steps:", "  - run"}},
		{"empty document", []string{""}},
		{"trailing blank line", []string{"a", ""}},
		{"embedded blanks", []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "doc.yaml")
			b := New()
			b.SetLines(tt.lines)
			if err := b.Save(path); err != nil {
				t.Fatalf("Save: %v", err)
			}

			loaded := New()
			if err := loaded.Load(path); err != nil {
				t.Fatalf("Load: %v", err)
			}
			if !reflect.DeepEqual(loaded.Lines(), tt.lines) {
				t.Errorf("round-trip = %v, want %v", loaded.Lines(), tt.lines)
			}
			if row, col := loaded.Cursor(); row != 0 || col != 0 {
				t.Errorf("cursor after load = (%d,%d), want origin", row, col)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	b := New()
	b.SetLines([]string{"keep", "me"})
	err := b.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if !os.IsNotExist(err) {
		t.Fatalf("Load missing file: err = %v, want IsNotExist", err)
	}
	// Document is untouched on failure.
	if !reflect.DeepEqual(b.Lines(), []string{"keep", "me"}) {
		t.Errorf("document changed on failed load: %v", b.Lines())
	}
}
