// Copyright 2026 The AdminTUI Authors
// SPDX-License-Identifier: Apache-2.0

package adminui

import tea "github.com/charmbracelet/bubbletea"

// Screen is one state of the dashboard. The set is closed: only
// *MainMenu, *CronTable, *FTPTable, *MySQLTable and Quit implement it.
//
// HandleKey and HandleMouse return nil to stay on the screen, or the
// screen to switch to. A screen never reaches into another; the App
// performs every transition.
type Screen interface {
	HandleKey(message tea.KeyMsg) Screen
	HandleMouse(message tea.MouseMsg) Screen
	Resize(width, height int)
	View() string

	screen()
}

// Quit is the terminal screen. Entering it stops the program.
type Quit struct{}

func (Quit) HandleKey(tea.KeyMsg) Screen     { return nil }
func (Quit) HandleMouse(tea.MouseMsg) Screen { return nil }
func (Quit) Resize(int, int)                 {}
func (Quit) View() string                    { return "" }

func (Quit) screen()        {}
func (*MainMenu) screen()   {}
func (*CronTable) screen()  {}
func (*FTPTable) screen()   {}
func (*MySQLTable) screen() {}
