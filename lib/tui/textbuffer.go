// Copyright 2026 The AdminTUI Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// TextBuffer is a small multi-line text editor with cursor tracking.
// Editor forms hold one per field. The zero value is not usable; call
// [NewTextBuffer].
//
// Enter is not handled: forms use it to submit. New lines only appear
// through pasted text.
type TextBuffer struct {
	lines   [][]rune // Never empty.
	cursorY int      // Current line index.
	cursorX int      // Cursor position within the current line.
}

// NewTextBuffer returns an empty buffer.
func NewTextBuffer() TextBuffer {
	return TextBuffer{lines: [][]rune{{}}}
}

// Value returns the full content, lines joined with "\n".
func (buffer TextBuffer) Value() string {
	parts := make([]string, len(buffer.lines))
	for index, line := range buffer.lines {
		parts[index] = string(line)
	}
	return strings.Join(parts, "\n")
}

// FirstLine returns the content of the first line.
func (buffer TextBuffer) FirstLine() string {
	return string(buffer.lines[0])
}

// LineCount returns the number of lines, at least 1.
func (buffer TextBuffer) LineCount() int {
	return len(buffer.lines)
}

// Cursor returns the cursor's line and column.
func (buffer TextBuffer) Cursor() (int, int) {
	return buffer.cursorY, buffer.cursorX
}

// SetValue replaces the content and puts the cursor at the end.
func (buffer *TextBuffer) SetValue(value string) {
	buffer.Reset()
	buffer.AppendString(value)
}

// Reset empties the buffer.
func (buffer *TextBuffer) Reset() {
	buffer.lines = [][]rune{{}}
	buffer.cursorY = 0
	buffer.cursorX = 0
}

// AppendString adds text at the end of the buffer regardless of the
// cursor position and moves the cursor to the end. "\r\n" and "\n"
// start new lines.
func (buffer *TextBuffer) AppendString(text string) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	buffer.cursorY = len(buffer.lines) - 1
	buffer.cursorX = len(buffer.lines[buffer.cursorY])
	for _, character := range text {
		if character == '\n' || character == '\r' {
			buffer.splitLine()
			continue
		}
		buffer.insertRune(character)
	}
}

// Update applies an editing or cursor key. It reports whether the
// content changed; cursor-only movement returns false.
func (buffer *TextBuffer) Update(message tea.KeyMsg) bool {
	switch message.Type {
	case tea.KeyRunes, tea.KeySpace:
		if len(message.Runes) == 0 {
			return false
		}
		for _, character := range message.Runes {
			if character == '\n' || character == '\r' {
				buffer.splitLine()
				continue
			}
			buffer.insertRune(character)
		}
		return true

	case tea.KeyBackspace:
		if buffer.cursorX > 0 {
			line := buffer.lines[buffer.cursorY]
			buffer.lines[buffer.cursorY] = append(line[:buffer.cursorX-1], line[buffer.cursorX:]...)
			buffer.cursorX--
			return true
		}
		if buffer.cursorY > 0 {
			previousLine := buffer.lines[buffer.cursorY-1]
			currentLine := buffer.lines[buffer.cursorY]
			buffer.cursorX = len(previousLine)
			buffer.lines[buffer.cursorY-1] = append(previousLine, currentLine...)
			buffer.lines = append(buffer.lines[:buffer.cursorY], buffer.lines[buffer.cursorY+1:]...)
			buffer.cursorY--
			return true
		}

	case tea.KeyDelete:
		line := buffer.lines[buffer.cursorY]
		if buffer.cursorX < len(line) {
			buffer.lines[buffer.cursorY] = append(line[:buffer.cursorX], line[buffer.cursorX+1:]...)
			return true
		}
		if buffer.cursorY < len(buffer.lines)-1 {
			nextLine := buffer.lines[buffer.cursorY+1]
			buffer.lines[buffer.cursorY] = append(line, nextLine...)
			buffer.lines = append(buffer.lines[:buffer.cursorY+1], buffer.lines[buffer.cursorY+2:]...)
			return true
		}

	case tea.KeyCtrlU:
		if buffer.cursorX == 0 {
			return false
		}
		buffer.lines[buffer.cursorY] = append([]rune{}, buffer.lines[buffer.cursorY][buffer.cursorX:]...)
		buffer.cursorX = 0
		return true

	case tea.KeyLeft:
		if buffer.cursorX > 0 {
			buffer.cursorX--
		} else if buffer.cursorY > 0 {
			buffer.cursorY--
			buffer.cursorX = len(buffer.lines[buffer.cursorY])
		}

	case tea.KeyRight:
		if buffer.cursorX < len(buffer.lines[buffer.cursorY]) {
			buffer.cursorX++
		} else if buffer.cursorY < len(buffer.lines)-1 {
			buffer.cursorY++
			buffer.cursorX = 0
		}

	case tea.KeyUp:
		if buffer.cursorY > 0 {
			buffer.cursorY--
			buffer.cursorX = min(buffer.cursorX, len(buffer.lines[buffer.cursorY]))
		}

	case tea.KeyDown:
		if buffer.cursorY < len(buffer.lines)-1 {
			buffer.cursorY++
			buffer.cursorX = min(buffer.cursorX, len(buffer.lines[buffer.cursorY]))
		}

	case tea.KeyHome, tea.KeyCtrlA:
		buffer.cursorX = 0

	case tea.KeyEnd, tea.KeyCtrlE:
		buffer.cursorX = len(buffer.lines[buffer.cursorY])
	}
	return false
}

// insertRune inserts a single rune at the cursor position.
func (buffer *TextBuffer) insertRune(character rune) {
	line := buffer.lines[buffer.cursorY]
	newLine := make([]rune, len(line)+1)
	copy(newLine, line[:buffer.cursorX])
	newLine[buffer.cursorX] = character
	copy(newLine[buffer.cursorX+1:], line[buffer.cursorX:])
	buffer.lines[buffer.cursorY] = newLine
	buffer.cursorX++
}

// splitLine breaks the current line at the cursor.
func (buffer *TextBuffer) splitLine() {
	line := buffer.lines[buffer.cursorY]
	before := append([]rune{}, line[:buffer.cursorX]...)
	after := append([]rune{}, line[buffer.cursorX:]...)

	newLines := make([][]rune, 0, len(buffer.lines)+1)
	newLines = append(newLines, buffer.lines[:buffer.cursorY]...)
	newLines = append(newLines, before, after)
	newLines = append(newLines, buffer.lines[buffer.cursorY+1:]...)
	buffer.lines = newLines
	buffer.cursorY++
	buffer.cursorX = 0
}

// Render returns one line per buffer line, each padded to width and
// styled with textStyle. When focused the cursor cell is drawn in
// reverse video. Lines wider than width are truncated from the left
// on the cursor line so the cursor stays visible.
func (buffer TextBuffer) Render(width int, focused bool, textStyle lipgloss.Style) []string {
	cursorStyle := lipgloss.NewStyle().Reverse(true)
	rendered := make([]string, len(buffer.lines))

	for lineIndex, line := range buffer.lines {
		var renderedLine string
		if focused && lineIndex == buffer.cursorY {
			visible := line
			cursorX := buffer.cursorX
			if overflow := cursorX + 1 - width; width > 0 && overflow > 0 {
				visible = line[overflow:]
				cursorX -= overflow
			}
			if cursorX >= len(visible) {
				renderedLine = textStyle.Render(string(visible)) + cursorStyle.Render(" ")
			} else {
				renderedLine = textStyle.Render(string(visible[:cursorX])) +
					cursorStyle.Render(string(visible[cursorX:cursorX+1])) +
					textStyle.Render(string(visible[cursorX+1:]))
			}
		} else {
			renderedLine = textStyle.Render(string(line))
		}

		if ansi.StringWidth(renderedLine) > width {
			renderedLine = ansi.Truncate(renderedLine, width, "")
		}
		rendered[lineIndex] = PadLine(renderedLine, width, textStyle)
	}
	return rendered
}
