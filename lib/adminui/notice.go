// Copyright 2026 The AdminTUI Authors
// SPDX-License-Identifier: Apache-2.0

package adminui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/hostadmin/admintui/lib/tui"
)

// notice is a one-line status message. There are no timers, so a
// notice stays until the next key press clears it.
type notice struct {
	text    string
	isError bool
}

func infof(format string, args ...any) notice {
	return notice{text: fmt.Sprintf(format, args...)}
}

func errorf(format string, args ...any) notice {
	return notice{text: fmt.Sprintf(format, args...), isError: true}
}

func (n notice) style(theme tui.Theme) lipgloss.Style {
	if n.isError {
		return lipgloss.NewStyle().Foreground(theme.ErrorForeground)
	}
	return lipgloss.NewStyle().Foreground(theme.NoticeForeground)
}
