// Copyright 2026 The AdminTUI Authors
// SPDX-License-Identifier: Apache-2.0

// Package adminui is the interactive host administration dashboard: a
// bubbletea model whose state is exactly one [Screen].
//
// [App] is the root model. It owns the active screen, hands it every
// key and mouse message, and swaps it for whatever screen the handler
// returns. The screens are a closed set:
//
//   - [MainMenu] lists the administration modules.
//   - [CronTable] edits the operator's crontab through a
//     [crontab.Store], with a modal [JobEditor] for creating and
//     changing jobs.
//   - [FTPTable] and [MySQLTable] are in-memory placeholder tables.
//   - [Quit] ends the program.
//
// All state belongs to the active screen and is dropped on
// transition: leaving the cron table and coming back reloads the
// crontab from the store.
//
// Store calls run synchronously inside Update. The crontab subprocess
// is short-lived and operator-triggered, so the UI simply blocks for
// its duration.
package adminui
