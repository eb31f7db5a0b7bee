// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package runner

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// headerLine matches a structured-reply label leaking into the code
// section. Such lines are neutralized with a comment prefix instead of
// being removed, preserving line numbers in interpreter tracebacks.
var headerLine = regexp.MustCompile(`^\s*#?\s*(Status:|Desc:|Next:|Code:)`)

// alreadyCommented matches a header line that a previous sanitation
// pass has commented out.
var alreadyCommented = regexp.MustCompile(`^\s*#\s*(Status:|Desc:|Next:|Code:)`)

// fenceLine matches a markdown code fence with an optional language tag.
var fenceLine = regexp.MustCompile("^\\s*```[a-zA-Z0-9]*\\s*$")

// Sanitize prepares a code blob for execution. It is idempotent:
// sanitizing already-sanitized text returns it unchanged.
func Sanitize(code string) string {
	code = norm.NFKC.String(code)

	lines := strings.Split(code, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		// Fence lines are blanked, not dropped, to keep line numbers.
		if fenceLine.MatchString(line) {
			out = append(out, "")
			continue
		}
		if headerLine.MatchString(line) && !alreadyCommented.MatchString(line) {
			out = append(out, "#"+line)
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// Strip prepares a code blob for saving to a source file. Unlike
// Sanitize, fence lines and leaked reply labels are removed outright:
// a saved file has no tracebacks whose line numbers need preserving.
func Strip(code string) string {
	code = norm.NFKC.String(code)

	lines := strings.Split(code, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if fenceLine.MatchString(line) || headerLine.MatchString(line) {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
