// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package compile

import (
	"regexp"
	"strings"
)

// =============================================================================
// RESULT
// =============================================================================

// Result holds the four sections of a structured reply. Fields are
// empty when the corresponding section was absent.
type Result struct {
	Status string
	Desc   string
	Next   string
	Code   string
}

// HasCode reports whether the reply carried a non-empty code section.
func (r *Result) HasCode() bool {
	return r != nil && strings.TrimSpace(r.Code) != ""
}

// Header returns the three non-code sections re-joined in the reply's
// label format, for display on the compile-result screen.
func (r *Result) Header() string {
	if r.Status == "" && r.Desc == "" && r.Next == "" {
		return ""
	}
	return "Status: " + r.Status + "\nDesc: " + r.Desc + "\nNext: " + r.Next
}

// =============================================================================
// TOLERANT PARSER
// =============================================================================

// strictReply matches the full four-label reply with each label at a
// line start, in order. (?s) lets the code section span lines.
var strictReply = regexp.MustCompile(`(?s)(?m)^Status:[ \t]*(.*?)\n^Desc:[ \t]*(.*?)\n^Next:[ \t]*(.*?)\n^Code:[ \t]*(.*)`)

// codeLabel is the literal marker used by the fallback split.
const codeLabel = "Code:"

// Parse splits a reply into its sections. Grammars are tried in order;
// the first that matches wins and the final fallback accepts anything,
// so Parse is total.
//
//  1. Strict: all four labels present, in order, each on its own line.
//  2. Code split: everything before the first literal "Code:" is header
//     text (kept verbatim in Status), everything after is code.
//  3. Header only: the whole reply is header text, no code.
func Parse(reply string) Result {
	if m := strictReply.FindStringSubmatch(reply); m != nil {
		return Result{
			Status: strings.TrimSpace(m[1]),
			Desc:   strings.TrimSpace(m[2]),
			Next:   strings.TrimSpace(m[3]),
			Code:   strings.TrimSpace(m[4]),
		}
	}

	if i := strings.Index(reply, codeLabel); i >= 0 {
		return Result{
			Status: strings.TrimSpace(reply[:i]),
			Code:   strings.TrimSpace(reply[i+len(codeLabel):]),
		}
	}

	return Result{Status: strings.TrimSpace(reply)}
}
