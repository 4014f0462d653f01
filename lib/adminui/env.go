// Copyright 2026 The AdminTUI Authors
// SPDX-License-Identifier: Apache-2.0

package adminui

import (
	"context"
	"log/slog"

	"github.com/atotto/clipboard"
	"github.com/muesli/termenv"

	"github.com/hostadmin/admintui/lib/clock"
	"github.com/hostadmin/admintui/lib/config"
	"github.com/hostadmin/admintui/lib/crontab"
	"github.com/hostadmin/admintui/lib/tui"
)

// ClipboardReader returns the system clipboard's text.
type ClipboardReader func() (string, error)

// Env carries the collaborators every screen may need. Screens are
// created on transition, so the App hands the same Env to each new
// one. Zero fields are filled with defaults by [NewApp].
type Env struct {
	// Context is passed to crontab store calls. bubbletea's Update has
	// no context of its own.
	Context context.Context

	Store     crontab.Store
	Settings  *config.Settings
	Clock     clock.Clock
	Clipboard ClipboardReader
	Logger    *slog.Logger

	Theme tui.Theme

	// Profile selects the escape sequences used to highlight the
	// command column. termenv.Ascii disables highlighting.
	Profile termenv.Profile

	// Keys overrides DefaultKeyMap when non-nil.
	Keys *KeyMap
}

func (env Env) withDefaults() Env {
	if env.Context == nil {
		env.Context = context.Background()
	}
	if env.Store == nil {
		env.Store = crontab.NewCommandStore()
	}
	if env.Settings == nil {
		env.Settings = config.NewSettings(nil)
	}
	if env.Clock == nil {
		env.Clock = clock.Real()
	}
	if env.Clipboard == nil {
		env.Clipboard = clipboard.ReadAll
	}
	if env.Logger == nil {
		env.Logger = slog.New(slog.DiscardHandler)
	}
	if env.Theme == (tui.Theme{}) {
		env.Theme = tui.DefaultTheme
	}
	if env.Keys == nil {
		keys := DefaultKeyMap
		env.Keys = &keys
	}
	return env
}
