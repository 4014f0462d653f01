// Copyright 2026 The AdminTUI Authors
// SPDX-License-Identifier: Apache-2.0

package crontab

import (
	"strings"
	"time"
	"unicode"
)

// scheduleFields is the number of whitespace-separated tokens that
// make up the schedule of a directive line.
const scheduleFields = 5

// Parse reads crontab text into jobs.
//
// Blank lines are skipped. A line starting with "#" sets the pending
// description, replacing any earlier one. The next non-comment line
// takes the pending description and clears it. A non-comment line
// needs at least six tokens: the first five form the schedule, and
// the rest of the line (verbatim, trimmed) is the command. Shorter
// lines, including environment assignments such as "MAILTO=root", are
// dropped.
//
// NextRun is computed for now in location.
func Parse(text string, location *time.Location, now time.Time) []Job {
	var jobs []Job
	pendingDescription := ""

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, "#"):
			pendingDescription = strings.TrimSpace(strings.TrimLeft(line, "#"))
			continue
		}

		description := pendingDescription
		pendingDescription = ""

		schedule, command, ok := splitDirective(line)
		if !ok {
			continue
		}
		job := Job{
			Schedule:    schedule,
			Command:     command,
			Description: description,
		}
		job.Refresh(now, location)
		jobs = append(jobs, job)
	}
	return jobs
}

// splitDirective splits a trimmed directive line into its schedule
// (tokens joined by single spaces) and the verbatim command.
func splitDirective(line string) (string, string, bool) {
	tokens := make([]string, 0, scheduleFields)
	rest := line
	for range scheduleFields {
		rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
		end := strings.IndexFunc(rest, unicode.IsSpace)
		if end < 0 {
			return "", "", false
		}
		tokens = append(tokens, rest[:end])
		rest = rest[end:]
	}
	command := strings.TrimSpace(rest)
	if command == "" {
		return "", "", false
	}
	return strings.Join(tokens, " "), command, true
}

// Format serializes jobs into crontab text: for each persistable job
// an optional "# description" line followed by "schedule command".
// The result ends with a newline unless it is empty, as crontab(1)
// requires.
func Format(jobs []Job) string {
	var builder strings.Builder
	for _, job := range jobs {
		if !job.Persistable() {
			continue
		}
		if job.Description != "" {
			builder.WriteString("# ")
			builder.WriteString(job.Description)
			builder.WriteByte('\n')
		}
		builder.WriteString(job.Schedule)
		builder.WriteByte(' ')
		builder.WriteString(job.Command)
		builder.WriteByte('\n')
	}
	return builder.String()
}
