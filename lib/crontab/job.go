// Copyright 2026 The AdminTUI Authors
// SPDX-License-Identifier: Apache-2.0

package crontab

import (
	"time"

	"github.com/hostadmin/admintui/lib/cron"
)

// Job is one scheduled command of a crontab.
type Job struct {
	// Schedule is the 5-field cron expression. Invalid expressions are
	// kept as typed; they are never dropped.
	Schedule string

	// Command is everything after the schedule on the directive line.
	// Jobs with an empty command are never written back.
	Command string

	// Description comes from the comment line directly above the
	// directive. Empty when there was none.
	Description string

	// NextRun is the display form of the next occurrence, or
	// cron.NextRunUnavailable. Derived; recompute with Refresh after
	// changing Schedule.
	NextRun string
}

// Refresh recomputes NextRun for now in location.
func (job *Job) Refresh(now time.Time, location *time.Location) {
	job.NextRun = cron.FormatNextRun(job.Schedule, now, location)
}

// Persistable reports whether Format writes the job out. Placeholder
// rows such as the "no crontab" notice are not persistable.
func (job Job) Persistable() bool {
	return job.Command != ""
}
