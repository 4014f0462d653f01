// Copyright 2026 The AdminTUI Authors
// SPDX-License-Identifier: Apache-2.0

// Package crontab reads and writes a user's cron table through the
// crontab(1) binary.
//
// [Parse] and [Format] convert between crontab text and [Job] values.
// A comment line directly above a directive becomes the job's
// description; environment assignments and other lines with fewer
// than six fields are dropped on load and therefore lost on the next
// save.
//
// [CommandStore] runs "crontab -l" and "crontab -" (optionally with
// "-u USER"). A user with no table loads as one placeholder job whose
// schedule reads "no crontab for USER"; that job has no command and is
// never written back. [MemoryStore] implements the same [Store]
// interface without a subprocess.
package crontab
