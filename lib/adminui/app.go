// Copyright 2026 The AdminTUI Authors
// SPDX-License-Identifier: Apache-2.0

package adminui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Size used before the first tea.WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// App is the root bubbletea model. It holds exactly one active Screen.
type App struct {
	env    Env
	screen Screen
	width  int
	height int
}

// NewApp returns an App showing the main menu.
func NewApp(env Env) App {
	env = env.withDefaults()
	app := App{env: env, width: defaultWidth, height: defaultHeight}
	app.screen = NewMainMenu(env)
	app.screen.Resize(app.width, app.height)
	return app
}

// Screen returns the active screen.
func (app App) Screen() Screen {
	return app.screen
}

func (app App) Init() tea.Cmd {
	return nil
}

func (app App) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	if _, done := app.screen.(Quit); done {
		return app, nil
	}

	switch message := message.(type) {
	case tea.WindowSizeMsg:
		app.width = message.Width
		app.height = message.Height
		app.screen.Resize(app.width, app.height)
		return app, nil

	case tea.KeyMsg:
		if key.Matches(message, app.env.Keys.ForceQuit) {
			return app.transition(Quit{})
		}
		return app.transition(app.screen.HandleKey(message))

	case tea.MouseMsg:
		return app.transition(app.screen.HandleMouse(message))
	}
	return app, nil
}

// transition installs next as the active screen. A nil next keeps the
// current screen.
func (app App) transition(next Screen) (tea.Model, tea.Cmd) {
	switch next := next.(type) {
	case nil:
		return app, nil
	case Quit:
		app.env.Logger.Debug("quitting")
		app.screen = next
		return app, tea.Quit
	case *MainMenu, *CronTable, *FTPTable, *MySQLTable:
		next.Resize(app.width, app.height)
		app.env.Logger.Debug("screen transition",
			"from", fmt.Sprintf("%T", app.screen),
			"to", fmt.Sprintf("%T", next))
		app.screen = next
		return app, nil
	default:
		panic(fmt.Sprintf("adminui: unknown screen %T", next))
	}
}

func (app App) View() string {
	return app.screen.View()
}
