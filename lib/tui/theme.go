// Copyright 2026 The AdminTUI Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette for admintui's screens. All colors
// use lipgloss ANSI 256-color codes for broad terminal compatibility.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	FocusBorderColor lipgloss.Color // Border of the focused editor field.
	HelpText         lipgloss.Color
	AccentColor      lipgloss.Color // Scrollbar thumb, menu marker.

	// Schedule validation indicator.
	ValidColor   lipgloss.Color
	InvalidColor lipgloss.Color

	// Status notices shown under a table or inside the editor.
	NoticeForeground lipgloss.Color
	ErrorForeground  lipgloss.Color

	// Modal editor box.
	ModalBackground lipgloss.Color
}

// ValidationColor returns ValidColor or InvalidColor.
func (theme Theme) ValidationColor(valid bool) lipgloss.Color {
	if valid {
		return theme.ValidColor
	}
	return theme.InvalidColor
}

// DefaultTheme is the built-in dark-terminal color scheme, tuned for
// 256-color terminals with a dark background (the usual state of an
// ssh session to a server).
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	FocusBorderColor: lipgloss.Color("75"), // blue
	HelpText:         lipgloss.Color("241"),
	AccentColor:      lipgloss.Color("220"), // amber

	ValidColor:   lipgloss.Color("114"), // green
	InvalidColor: lipgloss.Color("196"), // red

	NoticeForeground: lipgloss.Color("114"),
	ErrorForeground:  lipgloss.Color("203"),

	ModalBackground: lipgloss.Color("237"), // slightly lighter than terminal background
}
