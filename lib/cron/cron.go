// Copyright 2026 The AdminTUI Authors
// SPDX-License-Identifier: Apache-2.0

package cron

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// NextRunUnavailable is the display value for a schedule that has no
// computable next occurrence (unparsable or impossible).
const NextRunUnavailable = "N/A"

// NextRunLayout is the layout used by [FormatNextRun].
const NextRunLayout = "2006-01-02 15:04 MST"

// Schedule represents a parsed cron expression. Use Parse to create
// one from a string, then call Next to compute the next matching time.
type Schedule struct {
	minutes     bitset64
	hours       bitset64
	daysOfMonth bitset64
	months      bitset64
	daysOfWeek  bitset64

	// Day fields that started with "*" do not restrict matching. When
	// both day fields are restricted, a day matches if either one does.
	dayOfMonthStar bool
	dayOfWeekStar  bool
}

// bitset64 uses a uint64 as a compact set of integers 0-63.
type bitset64 uint64

func (b bitset64) has(value int) bool { return b&(1<<uint(value)) != 0 }
func (b *bitset64) set(value int)     { *b |= 1 << uint(value) }

// Parse parses a standard 5-field cron expression. Returns an error
// if the expression is malformed or contains out-of-range values.
func Parse(expression string) (Schedule, error) {
	fields := strings.Fields(expression)
	if len(fields) != 5 {
		return Schedule{}, fmt.Errorf("cron: expected 5 fields, got %d", len(fields))
	}

	minutes, err := parseField(fields[0], 0, 59)
	if err != nil {
		return Schedule{}, fmt.Errorf("cron: minute field: %w", err)
	}
	hours, err := parseField(fields[1], 0, 23)
	if err != nil {
		return Schedule{}, fmt.Errorf("cron: hour field: %w", err)
	}
	daysOfMonth, err := parseField(fields[2], 1, 31)
	if err != nil {
		return Schedule{}, fmt.Errorf("cron: day-of-month field: %w", err)
	}
	months, err := parseField(fields[3], 1, 12)
	if err != nil {
		return Schedule{}, fmt.Errorf("cron: month field: %w", err)
	}
	daysOfWeek, err := parseField(fields[4], 0, 7)
	if err != nil {
		return Schedule{}, fmt.Errorf("cron: day-of-week field: %w", err)
	}
	// 7 is an alias for Sunday.
	if daysOfWeek.has(7) {
		daysOfWeek.set(0)
	}

	return Schedule{
		minutes:        minutes,
		hours:          hours,
		daysOfMonth:    daysOfMonth,
		months:         months,
		daysOfWeek:     daysOfWeek,
		dayOfMonthStar: strings.HasPrefix(fields[2], "*"),
		dayOfWeekStar:  strings.HasPrefix(fields[4], "*"),
	}, nil
}

// Validate reports whether expression is a well-formed 5-field cron
// expression.
func Validate(expression string) bool {
	_, err := Parse(expression)
	return err == nil
}

// Next returns the earliest time strictly after t that matches the
// schedule, evaluated as wall-clock time in location. A nil location
// means UTC.
//
// Returns an error if no matching time can be found within 4 years
// of t (prevents infinite loops on impossible schedules like
// Feb 31).
func (s Schedule) Next(t time.Time, location *time.Location) (time.Time, error) {
	if location == nil {
		location = time.UTC
	}
	start := t
	t = t.In(location).Truncate(time.Minute).Add(time.Minute)

	// Search limit: 4 years covers all leap year cycles.
	limit := t.AddDate(4, 0, 0)

	for t.Before(limit) {
		if !s.months.has(int(t.Month())) {
			t = time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, location)
			continue
		}

		if !s.dayMatches(t) {
			t = time.Date(t.Year(), t.Month(), t.Day()+1, 0, 0, 0, 0, location)
			continue
		}

		if !s.hours.has(t.Hour()) {
			advanced := time.Date(t.Year(), t.Month(), t.Day(), t.Hour()+1, 0, 0, 0, location)
			// A DST fall-back can map the next wall-clock hour onto an
			// instant we have already passed.
			if !advanced.After(t) {
				advanced = t.Truncate(time.Hour).Add(time.Hour)
			}
			t = advanced
			continue
		}

		if !s.minutes.has(t.Minute()) {
			t = t.Add(time.Minute)
			continue
		}

		if !t.After(start) {
			t = t.Add(time.Minute)
			continue
		}
		return t, nil
	}

	return time.Time{}, fmt.Errorf("cron: no matching time within 4 years of %s", start.Format(time.RFC3339))
}

// dayMatches applies standard cron day semantics: if both day fields
// are restricted the match is OR, otherwise both must match (a star
// field matches every day).
func (s Schedule) dayMatches(t time.Time) bool {
	dayOfMonth := s.daysOfMonth.has(t.Day())
	dayOfWeek := s.daysOfWeek.has(int(t.Weekday()))
	if !s.dayOfMonthStar && !s.dayOfWeekStar {
		return dayOfMonth || dayOfWeek
	}
	return dayOfMonth && dayOfWeek
}

// NextOccurrence parses expression and returns its next occurrence
// strictly after now in location. The boolean is false when the
// expression does not parse or never fires.
func NextOccurrence(expression string, now time.Time, location *time.Location) (time.Time, bool) {
	schedule, err := Parse(expression)
	if err != nil {
		return time.Time{}, false
	}
	next, err := schedule.Next(now, location)
	if err != nil {
		return time.Time{}, false
	}
	return next, true
}

// FormatNextRun renders the next occurrence of expression for display,
// or [NextRunUnavailable].
func FormatNextRun(expression string, now time.Time, location *time.Location) string {
	next, ok := NextOccurrence(expression, now, location)
	if !ok {
		return NextRunUnavailable
	}
	return next.Format(NextRunLayout)
}

// parseField parses a single cron field into a bitset. The field may
// contain comma-separated terms, each of which is a wildcard, value,
// range, or stepped range/wildcard.
func parseField(field string, minimum, maximum int) (bitset64, error) {
	var result bitset64
	for _, term := range strings.Split(field, ",") {
		bits, err := parseTerm(term, minimum, maximum)
		if err != nil {
			return 0, err
		}
		result |= bits
	}
	if result == 0 {
		return 0, fmt.Errorf("field %q produces empty set", field)
	}
	return result, nil
}

// parseTerm parses a single term: *, */N, V, V-V, V-V/N.
func parseTerm(term string, minimum, maximum int) (bitset64, error) {
	parts := strings.SplitN(term, "/", 2)
	rangeExpression := parts[0]
	step := 1
	if len(parts) == 2 {
		parsed, err := strconv.Atoi(parts[1])
		if err != nil {
			return 0, fmt.Errorf("invalid step %q: %w", parts[1], err)
		}
		if parsed <= 0 {
			return 0, fmt.Errorf("step must be positive, got %d", parsed)
		}
		step = parsed
	}

	rangeStart, rangeEnd, err := parseRange(rangeExpression, minimum, maximum)
	if err != nil {
		return 0, err
	}

	var result bitset64
	for value := rangeStart; value <= rangeEnd; value += step {
		result.set(value)
	}
	return result, nil
}

// parseRange parses the range part of a term (*, V or V-V) and checks
// it against the field bounds.
func parseRange(expression string, minimum, maximum int) (int, int, error) {
	if expression == "*" {
		return minimum, maximum, nil
	}

	var rangeStart, rangeEnd int
	if dashIndex := strings.IndexByte(expression, '-'); dashIndex >= 0 {
		startText := expression[:dashIndex]
		endText := expression[dashIndex+1:]
		var err error
		rangeStart, err = strconv.Atoi(startText)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid range start %q: %w", startText, err)
		}
		rangeEnd, err = strconv.Atoi(endText)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid range end %q: %w", endText, err)
		}
		if rangeStart > rangeEnd {
			return 0, 0, fmt.Errorf("range start %d > end %d", rangeStart, rangeEnd)
		}
	} else {
		value, err := strconv.Atoi(expression)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid value %q: %w", expression, err)
		}
		rangeStart = value
		rangeEnd = value
	}

	if rangeStart < minimum || rangeEnd > maximum {
		return 0, 0, fmt.Errorf("value out of range [%d-%d]: got %d-%d", minimum, maximum, rangeStart, rangeEnd)
	}
	return rangeStart, rangeEnd, nil
}
