// Copyright 2026 The AdminTUI Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// SpliceOverlay replaces a rectangular region of a rendered view with
// overlay content. The overlay lines are placed starting at (anchorX,
// anchorY) in screen coordinates. Uses ANSI-aware truncation so escape
// sequences in the original view are preserved on both sides of the
// overlay. View lines shorter than anchorX are padded with spaces so
// the overlay lands in the right column.
func SpliceOverlay(view string, overlayLines []string, anchorX, anchorY int) string {
	if len(overlayLines) == 0 {
		return view
	}
	if anchorX < 0 {
		anchorX = 0
	}

	viewLines := strings.Split(view, "\n")
	for len(viewLines) < anchorY+len(overlayLines) {
		viewLines = append(viewLines, "")
	}

	for index, overlayLine := range overlayLines {
		viewLineIndex := anchorY + index
		if viewLineIndex < 0 {
			continue
		}

		viewLine := viewLines[viewLineIndex]
		viewLineWidth := ansi.StringWidth(viewLine)
		overlayWidth := ansi.StringWidth(overlayLine)

		var result strings.Builder
		if viewLineWidth >= anchorX {
			result.WriteString(ansi.Truncate(viewLine, anchorX, ""))
		} else {
			result.WriteString(viewLine)
			result.WriteString(strings.Repeat(" ", anchorX-viewLineWidth))
		}
		result.WriteString("\x1b[0m")
		result.WriteString(overlayLine)
		result.WriteString("\x1b[0m")

		if suffixStart := anchorX + overlayWidth; suffixStart < viewLineWidth {
			result.WriteString(ansi.TruncateLeft(viewLine, suffixStart, ""))
		}

		viewLines[viewLineIndex] = result.String()
	}

	return strings.Join(viewLines, "\n")
}

// CenterAnchor returns the top-left corner that centers a block of
// lines on a screen of the given size, clamped to the screen origin.
func CenterAnchor(lines []string, screenWidth, screenHeight int) (int, int) {
	blockWidth := 0
	for _, line := range lines {
		blockWidth = max(blockWidth, ansi.StringWidth(line))
	}
	anchorX := max((screenWidth-blockWidth)/2, 0)
	anchorY := max((screenHeight-len(lines))/2, 0)
	return anchorX, anchorY
}

// PadLine pads styled content to width with spaces rendered in
// style, or truncates it with an ellipsis when it is wider.
func PadLine(styledContent string, width int, style lipgloss.Style) string {
	contentWidth := ansi.StringWidth(styledContent)
	if contentWidth > width {
		return ansi.Truncate(styledContent, width, "…")
	}
	if contentWidth == width {
		return styledContent
	}
	return styledContent + style.Render(strings.Repeat(" ", width-contentWidth))
}
