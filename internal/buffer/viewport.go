// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package buffer

// Viewport tracks which band of the document is visible. It is derived
// state: the buffer is authoritative and the viewport chases the cursor.
type Viewport struct {
	// Offset is the first visible document row.
	Offset int

	// Height is the number of visible rows.
	Height int
}

// Follow adjusts the offset by the minimum amount needed to bring
// cursorRow into view (jump-scroll). Rows already visible leave the
// offset untouched.
func (v *Viewport) Follow(cursorRow int) {
	if v.Height <= 0 {
		return
	}
	if cursorRow < v.Offset {
		v.Offset = cursorRow
	} else if cursorRow >= v.Offset+v.Height {
		v.Offset = cursorRow - v.Height + 1
	}
}

// Visible returns the slice of lines currently in view.
func (v *Viewport) Visible(lines []string) []string {
	if v.Offset >= len(lines) {
		return nil
	}
	end := v.Offset + v.Height
	if end > len(lines) {
		end = len(lines)
	}
	return lines[v.Offset:end]
}
