// Copyright 2026 The AdminTUI Authors
// SPDX-License-Identifier: Apache-2.0

package adminui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// staticTable backs the placeholder modules. Rows live in memory only;
// nothing is read from or written to the host.
type staticTable struct {
	env       Env
	title     string
	columns   []column
	rows      [][]string
	newRow    []string
	selection selection
	width     int
	height    int
}

func newStaticTable(env Env, title string, columns []column, rows [][]string, newRow []string) staticTable {
	return staticTable{
		env:       env.withDefaults(),
		title:     title,
		columns:   columns,
		rows:      rows,
		newRow:    newRow,
		selection: newSelection(len(rows)),
		width:     defaultWidth,
		height:    defaultHeight,
	}
}

// Rows returns the table's rows.
func (table *staticTable) Rows() [][]string {
	return table.rows
}

// Cursor returns the selected row, or -1 when the table is empty.
func (table *staticTable) Cursor() int {
	return table.selection.cursor
}

func (table *staticTable) Resize(width, height int) {
	table.width = width
	table.height = height
	table.selection.follow(len(table.rows), visibleRows(height))
}

func (table *staticTable) HandleMouse(tea.MouseMsg) Screen {
	return nil
}

func (table *staticTable) HandleKey(message tea.KeyMsg) Screen {
	keys := table.env.Keys
	count := len(table.rows)
	switch {
	case key.Matches(message, keys.Back):
		return NewMainMenu(table.env)
	case key.Matches(message, keys.Down):
		table.selection.next(count)
	case key.Matches(message, keys.Up):
		table.selection.previous(count)
	case key.Matches(message, keys.Home):
		table.selection.first(count)
	case key.Matches(message, keys.End):
		table.selection.last(count)
	case key.Matches(message, keys.New):
		table.rows = append(table.rows, append([]string(nil), table.newRow...))
		table.selection.selectRow(len(table.rows)-1, len(table.rows))
	case key.Matches(message, keys.Delete):
		if count > 0 {
			index := table.selection.cursor
			table.rows = append(table.rows[:index], table.rows[index+1:]...)
			table.selection.clamp(len(table.rows))
		}
	}
	table.selection.follow(len(table.rows), visibleRows(table.height))
	return nil
}

func (table *staticTable) View() string {
	keys := table.env.Keys
	frame := tableFrame{
		theme:   table.env.Theme,
		width:   table.width,
		height:  table.height,
		title:   table.title,
		columns: table.columns,
		rows:    len(table.rows),
		cell: func(row, column int, selected bool) string {
			return table.rows[row][column]
		},
		statusStyle: lipgloss.NewStyle().Foreground(table.env.Theme.FaintText),
		help:        helpLine(keys.Back, keys.Down, keys.Up, keys.New, keys.Delete),
	}
	if len(table.rows) == 0 {
		frame.status = "No entries."
	}
	return frame.render(table.selection)
}

// FTPTable lists FTP accounts and their document roots.
type FTPTable struct {
	staticTable
}

// NewFTPTable returns the FTP placeholder screen.
func NewFTPTable(env Env) *FTPTable {
	return &FTPTable{staticTable: newStaticTable(env, "FTP users",
		[]column{{title: "User", width: 16}, {title: "Document root"}},
		[][]string{
			{"alice", "/var/ftp/alice"},
			{"bob", "/var/ftp/bob"},
			{"charlie", "/var/ftp/charlie"},
		},
		[]string{"new_user", "/var/ftp/new_user"},
	)}
}

// MySQLTable lists database accounts.
type MySQLTable struct {
	staticTable
}

// NewMySQLTable returns the MySQL placeholder screen.
func NewMySQLTable(env Env) *MySQLTable {
	return &MySQLTable{staticTable: newStaticTable(env, "MySQL users",
		[]column{{title: "User"}},
		[][]string{{"root"}, {"admin"}, {"guest"}},
		[]string{"new_user"},
	)}
}
