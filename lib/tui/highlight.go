// Copyright 2026 The AdminTUI Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/muesli/termenv"
)

// HighlightShell syntax-highlights a shell command line for display
// in a table cell. The Chroma formatter follows profile; Ascii (no
// color support) and highlighting failures return the command as is.
func HighlightShell(command string, profile termenv.Profile) string {
	if command == "" {
		return ""
	}
	var formatter string
	switch profile {
	case termenv.TrueColor:
		formatter = "terminal16m"
	case termenv.ANSI256:
		formatter = "terminal256"
	case termenv.ANSI:
		formatter = "terminal16"
	default:
		return command
	}

	var buffer strings.Builder
	if err := quick.Highlight(&buffer, command, "bash", formatter, "monokai"); err != nil {
		return command
	}
	// The lexer terminates its input with a newline, which may come
	// back wrapped in color escapes. Commands are single lines.
	return strings.ReplaceAll(buffer.String(), "\n", "")
}
