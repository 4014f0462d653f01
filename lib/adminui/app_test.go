// Copyright 2026 The AdminTUI Authors
// SPDX-License-Identifier: Apache-2.0

package adminui

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeName(screen Screen) string {
	if screen == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%T", screen)
}

func update(t *testing.T, app App, message tea.Msg) (App, tea.Cmd) {
	t.Helper()
	updated, cmd := app.Update(message)
	return updated.(App), cmd
}

func TestAppTransitions(t *testing.T) {
	env, _ := testEnv(t, testCrontab)
	app := NewApp(env)
	if got := typeName(app.Screen()); got != "*adminui.MainMenu" {
		t.Fatalf("initial screen %s", got)
	}

	steps := []struct {
		key  string
		want string
	}{
		{"enter", "*adminui.CronTable"},
		{"esc", "*adminui.MainMenu"},
		{"j", "*adminui.MainMenu"},
		{"enter", "*adminui.FTPTable"},
		{"esc", "*adminui.MainMenu"},
		{"G", "*adminui.MainMenu"},
		{"enter", "*adminui.MySQLTable"},
		{"esc", "*adminui.MainMenu"},
	}
	for _, step := range steps {
		var cmd tea.Cmd
		app, cmd = update(t, app, keyPress(step.key))
		if cmd != nil {
			t.Errorf("%q returned a command", step.key)
		}
		if got := typeName(app.Screen()); got != step.want {
			t.Fatalf("after %q: screen %s, want %s", step.key, got, step.want)
		}
	}
}

func TestAppQuitStopsProcessing(t *testing.T) {
	env, _ := testEnv(t, testCrontab)
	app := NewApp(env)

	app, cmd := update(t, app, keyPress("q"))
	if _, ok := app.Screen().(Quit); !ok {
		t.Fatalf("screen %s after q", typeName(app.Screen()))
	}
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command is not tea.Quit")
	}

	for _, message := range []tea.Msg{keyPress("enter"), tea.WindowSizeMsg{Width: 10, Height: 10}, tea.MouseMsg{}} {
		app, cmd = update(t, app, message)
		if cmd != nil {
			t.Errorf("%T after quit returned a command", message)
		}
		if _, ok := app.Screen().(Quit); !ok {
			t.Errorf("%T after quit left the Quit screen", message)
		}
	}
	if app.View() != "" {
		t.Errorf("Quit view = %q", app.View())
	}
}

func TestAppForceQuitFromEditor(t *testing.T) {
	env, store := testEnv(t, testCrontab)
	app := NewApp(env)

	app, _ = update(t, app, keyPress("enter"))
	app, _ = update(t, app, keyPress("n"))
	app, cmd := update(t, app, keyPress("ctrl+c"))
	if _, ok := app.Screen().(Quit); !ok || cmd == nil {
		t.Errorf("ctrl+c in the editor: screen %s, cmd %v", typeName(app.Screen()), cmd != nil)
	}
	if len(store.Saved()) != 0 {
		t.Error("ctrl+c saved the crontab")
	}
}

func TestAppForwardsWindowSize(t *testing.T) {
	env, _ := testEnv(t, testCrontab)
	app := NewApp(env)

	app, _ = update(t, app, tea.WindowSizeMsg{Width: 132, Height: 43})
	app, _ = update(t, app, keyPress("enter"))
	table, ok := app.Screen().(*CronTable)
	if !ok {
		t.Fatalf("screen %s", typeName(app.Screen()))
	}
	if table.width != 132 || table.height != 43 {
		t.Errorf("new screen size %dx%d, want 132x43", table.width, table.height)
	}
}
