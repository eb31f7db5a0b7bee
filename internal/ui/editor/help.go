// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package editor

import "github.com/charmbracelet/glamour"

const helpText = `# yamlpad

Type YAML in the editor. Press ` + "`;`" + ` to open the command bar.

## Commands

| Verb | Action |
|------|--------|
| ` + "`;compile`" + ` | Send the document for conversion and show the result |
| ` + "`;execute`" + ` | Compile, then run the returned code on keypress |
| ` + "`;run`" + ` | Run the code from the last compile again |
| ` + "`;savepy <file>`" + ` | Save the last compiled code to a file |
| ` + "`;open <file>`" + ` | Replace the document with a file's contents |
| ` + "`;save <file>`" + ` | Save the document to a file |
| ` + "`;history`" + ` | Show recent compiles |
| ` + "`;model [name]`" + ` | Show or change the completion model |
| ` + "`;rekey`" + ` | Enter a new API key |
| ` + "`;deletekey`" + ` | Delete the stored API key |
| ` + "`;help`" + ` | This screen |
| ` + "`;exit`" + ` | Quit |

Esc leaves the command bar without running anything.
`

// renderHelp produces the help screen body. Markdown rendering is
// cosmetic, so any renderer failure falls back to the raw text.
func renderHelp(width int) string {
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return helpText
	}
	out, err := r.Render(helpText)
	if err != nil {
		return helpText
	}
	return out
}
