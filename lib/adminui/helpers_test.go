// Copyright 2026 The AdminTUI Authors
// SPDX-License-Identifier: Apache-2.0

package adminui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"github.com/hostadmin/admintui/lib/clock"
	"github.com/hostadmin/admintui/lib/config"
	"github.com/hostadmin/admintui/lib/crontab"
)

var testNow = time.Date(2026, 2, 18, 10, 30, 0, 0, time.UTC)

const testCrontab = `# Nightly backup
0 2 * * * /usr/local/bin/backup.sh --full
*/5 * * * * /usr/bin/check-disk

# Weekly report
30 8 * * 1 mail -s report ops@example.com < /tmp/report
`

// testEnv returns an Env backed by a MemoryStore holding text, a fake
// clock at testNow, UTC display and no clipboard.
func testEnv(t *testing.T, text string) (Env, *crontab.MemoryStore) {
	t.Helper()
	fake := clock.Fake(testNow)
	store := crontab.NewMemoryStore(text, time.UTC, fake)
	env := Env{
		Store:    store,
		Settings: config.NewSettings(time.UTC),
		Clock:    fake,
		Clipboard: func() (string, error) {
			return "", errors.New("no clipboard in tests")
		},
		Profile: termenv.Ascii,
	}
	return env.withDefaults(), store
}

// keyPress builds the tea.KeyMsg for a key name as bubbles/key spells
// it. Anything not listed is typed as runes.
func keyPress(name string) tea.KeyMsg {
	special := map[string]tea.KeyType{
		"enter":     tea.KeyEnter,
		"esc":       tea.KeyEscape,
		"tab":       tea.KeyTab,
		"up":        tea.KeyUp,
		"down":      tea.KeyDown,
		"home":      tea.KeyHome,
		"end":       tea.KeyEnd,
		"delete":    tea.KeyDelete,
		"backspace": tea.KeyBackspace,
		"ctrl+v":    tea.KeyCtrlV,
		"ctrl+c":    tea.KeyCtrlC,
	}
	if keyType, ok := special[name]; ok {
		return tea.KeyMsg{Type: keyType}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}

type keyHandler interface {
	HandleKey(tea.KeyMsg) Screen
}

// press sends keys in order and returns the last handler result.
func press(t *testing.T, screen keyHandler, keys ...string) Screen {
	t.Helper()
	var next Screen
	for _, name := range keys {
		next = screen.HandleKey(keyPress(name))
	}
	return next
}

// typeText types text one rune at a time.
func typeText(screen keyHandler, text string) {
	for _, character := range text {
		screen.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{character}})
	}
}
