// Copyright 2026 The AdminTUI Authors
// SPDX-License-Identifier: Apache-2.0

package adminui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Menu geometry. Items start below the title and a blank line, and
// each takes three lines: padding, label, padding.
const (
	menuFirstRow   = 2
	menuItemHeight = 3
)

type menuItem struct {
	label string
	open  func(Env) Screen
}

// MainMenu lists the administration modules.
type MainMenu struct {
	env       Env
	items     []menuItem
	selection selection
	width     int
	height    int
}

// NewMainMenu returns the menu with the first module selected.
func NewMainMenu(env Env) *MainMenu {
	env = env.withDefaults()
	items := []menuItem{
		{label: "Cron jobs", open: func(env Env) Screen { return NewCronTable(env) }},
		{label: "FTP users", open: func(env Env) Screen { return NewFTPTable(env) }},
		{label: "MySQL users", open: func(env Env) Screen { return NewMySQLTable(env) }},
	}
	return &MainMenu{env: env, items: items, selection: newSelection(len(items))}
}

// Selected returns the index of the highlighted item.
func (menu *MainMenu) Selected() int {
	return menu.selection.cursor
}

func (menu *MainMenu) Resize(width, height int) {
	menu.width = width
	menu.height = height
}

func (menu *MainMenu) HandleKey(message tea.KeyMsg) Screen {
	keys := menu.env.Keys
	count := len(menu.items)
	switch {
	case key.Matches(message, keys.Quit):
		return Quit{}
	case key.Matches(message, keys.Select):
		return menu.open()
	case key.Matches(message, keys.Down):
		menu.selection.next(count)
	case key.Matches(message, keys.Up):
		menu.selection.previous(count)
	case key.Matches(message, keys.Home):
		menu.selection.first(count)
	case key.Matches(message, keys.End):
		menu.selection.last(count)
	}
	return nil
}

// HandleMouse maps a left click on an item's three-line band to that
// item and opens it, as Enter would.
func (menu *MainMenu) HandleMouse(message tea.MouseMsg) Screen {
	if message.Button != tea.MouseButtonLeft || message.Action != tea.MouseActionPress {
		return nil
	}
	if message.Y < menuFirstRow {
		return nil
	}
	row := (message.Y - menuFirstRow) / menuItemHeight
	if row >= len(menu.items) {
		return nil
	}
	menu.selection.selectRow(row, len(menu.items))
	return menu.open()
}

func (menu *MainMenu) open() Screen {
	item := menu.items[menu.selection.cursor]
	menu.env.Logger.Info("opening module", "module", item.label)
	return item.open(menu.env)
}

func (menu *MainMenu) View() string {
	theme := menu.env.Theme
	width := menu.width

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	titleStyle := center.Bold(true).Foreground(theme.HeaderForeground)
	itemStyle := center.Foreground(theme.NormalText)
	selectedStyle := center.
		Foreground(theme.SelectedForeground).
		Background(theme.SelectedBackground).
		Bold(true)
	helpStyle := lipgloss.NewStyle().Foreground(theme.HelpText)

	lines := []string{titleStyle.Render("AdminTUI"), ""}
	for index, item := range menu.items {
		style := itemStyle
		label := item.label
		if index == menu.selection.cursor {
			style = selectedStyle
			label = "▸ " + label
		}
		lines = append(lines, style.Render(""), style.Render(label), style.Render(""))
	}

	keys := menu.env.Keys
	help := helpLine(keys.Quit, keys.Down, keys.Up, keys.Select)
	for len(lines) < menu.height-1 {
		lines = append(lines, "")
	}
	lines = append(lines, ansi.Truncate(helpStyle.Render(help), width, "…"))
	return strings.Join(lines, "\n")
}
