// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package compile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStrictReply(t *testing.T) {
	reply := "Status: ok\nDesc: prints hi\nNext: None\nCode: print('hi')"
	r := Parse(reply)

	assert.Equal(t, "ok", r.Status)
	assert.Equal(t, "prints hi", r.Desc)
	assert.Equal(t, "None", r.Next)
	assert.Equal(t, "print('hi')", r.Code)
	assert.True(t, r.HasCode())
}

func TestParseStrictMultilineCode(t *testing.T) {
	reply := "Status: YAML correct, code generated\n" +
		"Desc: counts to three\n" +
		"Next: None\n" +
		"Code:\n" +
		"for i in range(3):\n" +
		"    print(i)\n"
	r := Parse(reply)

	assert.Equal(t, "YAML correct, code generated", r.Status)
	assert.Equal(t, "for i in range(3):\n    print(i)", r.Code)
}

func TestParseFallbackCodeSplit(t *testing.T) {
	// Desc label missing: the strict grammar fails, the Code: split
	// takes over and the whole preamble lands in Status.
	reply := "Status: ok\nNext: None\nCode: print(1)"
	r := Parse(reply)

	assert.Equal(t, "Status: ok\nNext: None", r.Status)
	assert.Empty(t, r.Desc)
	assert.Empty(t, r.Next)
	assert.Equal(t, "print(1)", r.Code)
}

func TestParseFallbackNoCodeMarker(t *testing.T) {
	reply := "Status: YAML error on line 3\nDesc: nothing generated"
	r := Parse(reply)

	assert.Equal(t, reply, r.Status)
	assert.Empty(t, r.Code)
	assert.False(t, r.HasCode())
}

func TestParseNeverFails(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{"empty", ""},
		{"whitespace only", "  \n\t\n"},
		{"labels out of order", "Code: x\nStatus: y"},
		{"garbage", "%%%###!!!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Any input must produce a deterministic Result.
			r := Parse(tt.reply)
			r2 := Parse(tt.reply)
			assert.Equal(t, r, r2)
		})
	}
}

func TestParseLabelsOutOfOrderUsesCodeSplit(t *testing.T) {
	r := Parse("Code: x\nStatus: y")
	assert.Empty(t, r.Status)
	assert.Equal(t, "x\nStatus: y", r.Code)
}

func TestResultHeader(t *testing.T) {
	r := Result{Status: "ok", Desc: "demo", Next: "None"}
	assert.Equal(t, "Status: ok\nDesc: demo\nNext: None", r.Header())

	empty := Result{}
	assert.Empty(t, empty.Header())
}

func TestHasCodeNilReceiver(t *testing.T) {
	var r *Result
	assert.False(t, r.HasCode())
}
