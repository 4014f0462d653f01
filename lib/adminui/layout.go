// Copyright 2026 The AdminTUI Authors
// SPDX-License-Identifier: Apache-2.0

package adminui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/hostadmin/admintui/lib/tui"
)

// Table screens use the same frame: a title line, a column header, the
// rows with a scrollbar on the right, a separator, a status line and
// the key help.
const tableChromeHeight = 5

// column is one table column. A zero width takes a share of whatever
// the fixed-width columns leave over.
type column struct {
	title string
	width int
}

// tableFrame renders the shared table layout. cell returns the
// already-styled content of one cell; the frame pads and truncates it.
type tableFrame struct {
	theme   tui.Theme
	width   int
	height  int
	title   string
	columns []column
	rows    int
	cell    func(row, column int, selected bool) string

	// status replaces the "row/total" position when non-empty.
	status      string
	statusStyle lipgloss.Style
	help        string
}

// visibleRows returns how many rows fit for a screen height.
func visibleRows(height int) int {
	return max(height-tableChromeHeight, 1)
}

// columnWidths resolves flexible widths. One column of space goes to
// the scrollbar and two between columns.
func columnWidths(columns []column, width int) []int {
	widths := make([]int, len(columns))
	available := width - 1 - 2*(len(columns)-1)
	flexible := 0
	for index, column := range columns {
		if column.width > 0 {
			widths[index] = column.width
			available -= column.width
		} else {
			flexible++
		}
	}
	if flexible == 0 {
		return widths
	}
	share := max(available/flexible, 4)
	for index, column := range columns {
		if column.width == 0 {
			widths[index] = share
		}
	}
	return widths
}

func (frame tableFrame) render(cursor selection) string {
	theme := frame.theme
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.HeaderForeground)
	headerStyle := lipgloss.NewStyle().Foreground(theme.FaintText).Underline(true)
	normalStyle := lipgloss.NewStyle().Foreground(theme.NormalText)
	selectedStyle := lipgloss.NewStyle().
		Foreground(theme.SelectedForeground).
		Background(theme.SelectedBackground)
	helpStyle := lipgloss.NewStyle().Foreground(theme.HelpText)

	widths := columnWidths(frame.columns, frame.width)
	visible := visibleRows(frame.height)

	lines := make([]string, 0, frame.height)
	lines = append(lines, tui.PadLine(titleStyle.Render(" "+frame.title), frame.width, lipgloss.NewStyle()))

	headers := make([]string, len(frame.columns))
	for index, column := range frame.columns {
		headers[index] = tui.PadLine(headerStyle.Render(column.title), widths[index], lipgloss.NewStyle())
	}
	lines = append(lines, strings.Join(headers, "  "))

	scrollbar := strings.Split(tui.RenderScrollbar(theme, visible, frame.rows, visible, cursor.offset), "\n")
	for line := 0; line < visible; line++ {
		row := cursor.offset + line
		var rendered string
		if row < frame.rows {
			selected := row == cursor.cursor
			style := normalStyle
			if selected {
				style = selectedStyle
			}
			cells := make([]string, len(frame.columns))
			for index := range frame.columns {
				cells[index] = tui.PadLine(style.Render(frame.cell(row, index, selected)), widths[index], style)
			}
			rendered = strings.Join(cells, style.Render("  "))
		}
		rendered = tui.PadLine(rendered, frame.width-1, lipgloss.NewStyle())
		if line < len(scrollbar) {
			rendered += scrollbar[line]
		}
		lines = append(lines, rendered)
	}

	separator := lipgloss.NewStyle().Foreground(theme.BorderColor).Render(strings.Repeat("─", frame.width))
	lines = append(lines, separator)

	status := frame.status
	if status == "" && frame.rows > 0 {
		status = fmt.Sprintf("%d/%d", cursor.cursor+1, frame.rows)
	}
	lines = append(lines, tui.PadLine(frame.statusStyle.Render(" "+status), frame.width, lipgloss.NewStyle()))
	lines = append(lines, ansi.Truncate(helpStyle.Render(frame.help), frame.width, "…"))

	return strings.Join(lines, "\n")
}
