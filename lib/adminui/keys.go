// Copyright 2026 The AdminTUI Authors
// SPDX-License-Identifier: Apache-2.0

package adminui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for every screen. Bindings are
// context-sensitive: Back means "return to the menu" on a table and
// "quit" on the menu itself, and while the job editor is open only
// the editor bindings apply.
type KeyMap struct {
	// Row navigation (menu and tables).
	Up   key.Binding
	Down key.Binding
	Home key.Binding
	End  key.Binding

	Select key.Binding // Menu: open module. Cron table: edit job.
	Back   key.Binding
	Quit   key.Binding // Menu only.

	// Table mutations.
	New    key.Binding
	Delete key.Binding

	// Job editor.
	NextField key.Binding
	Paste     key.Binding
	Commit    key.Binding
	Cancel    key.Binding

	// ForceQuit works on every screen, including inside the editor.
	ForceQuit key.Binding
}

// DefaultKeyMap is the built-in key binding set: vim-style j/k
// alongside the arrow keys.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Home: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "first"),
	),
	End: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "last"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "menu"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc"),
		key.WithHelp("q/esc", "quit"),
	),
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d", "delete"),
		key.WithHelp("d", "delete"),
	),
	NextField: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
	Paste: key.NewBinding(
		key.WithKeys("ctrl+v"),
		key.WithHelp("C-v", "paste"),
	),
	Commit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "save"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("C-c", "quit"),
	),
}

// helpLine renders bindings as "key action" pairs separated by two
// spaces, the way every screen's footer shows them.
func helpLine(bindings ...key.Binding) string {
	var line string
	for index, binding := range bindings {
		help := binding.Help()
		if index > 0 {
			line += "  "
		}
		line += help.Key + " " + help.Desc
	}
	return " " + line
}
