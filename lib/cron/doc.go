// Copyright 2026 The AdminTUI Authors
// SPDX-License-Identifier: Apache-2.0

// Package cron parses standard 5-field cron expressions, computes the
// next occurrence after a given time, and renders expressions as
// English sentences.
//
// Supported syntax:
//
//	┌───────────── minute (0-59)
//	│ ┌───────────── hour (0-23)
//	│ │ ┌───────────── day of month (1-31)
//	│ │ │ ┌───────────── month (1-12)
//	│ │ │ │ ┌───────────── day of week (0-7, 0 and 7 = Sunday)
//	│ │ │ │ │
//	* * * * *
//
// Each field supports:
//   - Single values: 5
//   - Ranges: 1-5
//   - Lists: 1,3,5
//   - Steps: */15, 1-30/5
//   - Wildcard: *
//
// Next evaluates the schedule as wall-clock time in the location it is
// given, the way a host's cron daemon does in the host's zone. When
// both day-of-month and day-of-week are restricted a day matches if
// either field matches.
//
// No @yearly/@monthly shortcuts, no seconds field, no named
// days/months.
package cron
