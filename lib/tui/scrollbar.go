// Copyright 2026 The AdminTUI Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderScrollbar produces a single-column scrollbar of the given
// height. The thumb marks the visible window within the total rows;
// when everything fits the thumb spans the whole track.
func RenderScrollbar(theme Theme, height, totalItems, visibleItems, scrollOffset int) string {
	if height <= 0 {
		return ""
	}

	trackStyle := lipgloss.NewStyle().Foreground(theme.BorderColor)
	thumbStyle := lipgloss.NewStyle().Foreground(theme.AccentColor)

	thumbSize, thumbOffset := height, 0
	if totalItems > visibleItems && totalItems > 0 {
		thumbSize = max(height*visibleItems/totalItems, 1)
		scrollableRange := totalItems - visibleItems
		if trackRange := height - thumbSize; trackRange > 0 {
			thumbOffset = scrollOffset * trackRange / scrollableRange
		}
		thumbOffset = min(thumbOffset, height-thumbSize)
	}

	lines := make([]string, height)
	for index := range lines {
		if index >= thumbOffset && index < thumbOffset+thumbSize {
			lines[index] = thumbStyle.Render("┃")
		} else {
			lines[index] = trackStyle.Render("│")
		}
	}
	return strings.Join(lines, "\n")
}
