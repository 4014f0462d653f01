// Copyright 2026 The AdminTUI Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides shared terminal user interface components for
// admintui's screens. Built on bubbletea (Elm architecture), these
// components cover the theme, overlay splicing for modal boxes, a
// scrollbar, a multi-line text buffer for editor fields, and shell
// syntax highlighting for command cells.
//
// Screens (menu, cron table, job editor, static tables) import this
// package for consistent look and behavior. Each screen owns its own
// data and layout.
package tui
