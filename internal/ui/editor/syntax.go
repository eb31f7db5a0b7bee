// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package editor

import (
	"regexp"
	"strings"

	"github.com/grabercn/YAML2Python/internal/ui/styles"
)

// keyPattern matches a leading "key:" token, indentation included.
var keyPattern = regexp.MustCompile(`^\s*\S+:`)

type styleClass int

const (
	classPlain styleClass = iota
	classKey
	classComment
)

// scanLine classifies one line of YAML. It returns the rune index
// where the leading key (if any) ends and the rune index where a
// trailing comment begins, or -1 when absent. The comment region wins
// where the two overlap.
func scanLine(line string) (keyEnd, commentStart int) {
	commentStart = -1
	code := line
	if i := strings.IndexRune(line, '#'); i >= 0 {
		commentStart = len([]rune(line[:i]))
		code = line[:i]
	}

	// The key token is only looked for in the text before the comment.
	keyEnd = 0
	if loc := keyPattern.FindStringIndex(code); loc != nil {
		keyEnd = len([]rune(code[:loc[1]]))
	}
	return keyEnd, commentStart
}

func classAt(i, keyEnd, commentStart int) styleClass {
	switch {
	case commentStart >= 0 && i >= commentStart:
		return classComment
	case i < keyEnd:
		return classKey
	default:
		return classPlain
	}
}

// renderLine highlights one document line and, when cursorCol >= 0,
// overlays an inverse-video cell at that column. A cursor sitting
// past the last rune renders as an appended reverse space.
func renderLine(theme styles.Theme, line string, cursorCol int) string {
	runes := []rune(line)
	keyEnd, commentStart := scanLine(line)

	var b strings.Builder
	var run []rune
	runClass := classPlain

	flush := func() {
		if len(run) == 0 {
			return
		}
		switch runClass {
		case classKey:
			b.WriteString(theme.YamlKey.Render(string(run)))
		case classComment:
			b.WriteString(theme.Comment.Render(string(run)))
		default:
			b.WriteString(string(run))
		}
		run = run[:0]
	}

	for i, r := range runes {
		if i == cursorCol {
			flush()
			b.WriteString(theme.CursorCell.Render(" "))
			continue
		}
		c := classAt(i, keyEnd, commentStart)
		if len(run) > 0 && c != runClass {
			flush()
		}
		runClass = c
		run = append(run, r)
	}
	flush()

	if cursorCol >= len(runes) && cursorCol >= 0 {
		b.WriteString(theme.CursorCell.Render(" "))
	}
	return b.String()
}
