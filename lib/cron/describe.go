// Copyright 2026 The AdminTUI Authors
// SPDX-License-Identifier: Apache-2.0

package cron

import (
	"fmt"
	"strings"
)

// DescribeFallback is returned by [Describe] for expressions it cannot
// put into words.
const DescribeFallback = "Unable to parse cron expression into human-readable format."

var weekdayNames = [...]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// fieldWords holds the nouns used when describing one field.
type fieldWords struct {
	every    string // Phrase for a bare "*".
	unit     string // Plural-tolerant unit used in step phrases.
	single   string // Prefix for literal values and lists.
	startsAt string // Prefix for the start value of a step.
	minimum  int
}

var (
	minuteWords = fieldWords{every: "every minute", unit: "minute(s)", single: "minute", startsAt: "", minimum: 0}
	hourWords   = fieldWords{every: "every hour", unit: "hour(s)", single: "hour", startsAt: "", minimum: 0}
	dayWords    = fieldWords{every: "every day", unit: "day(s)", single: "day-of-month", startsAt: "day ", minimum: 1}
	monthWords  = fieldWords{every: "every month", unit: "month(s)", single: "month", startsAt: "month ", minimum: 1}
)

// Describe renders a best-effort English sentence for a 5-field cron
// expression, one phrase per field. Unparsable expressions and
// list-valued day-of-week fields produce [DescribeFallback].
func Describe(expression string) string {
	if !Validate(expression) {
		return DescribeFallback
	}
	fields := strings.Fields(expression)
	dayOfWeek, ok := describeDayOfWeek(fields[4])
	if !ok {
		return DescribeFallback
	}
	return fmt.Sprintf("At %s past %s on %s %s %s",
		describeField(fields[0], minuteWords),
		describeField(fields[1], hourWords),
		describeField(fields[2], dayWords),
		describeField(fields[3], monthWords),
		dayOfWeek,
	)
}

// describeField covers the four numeric fields. The expression has
// already been validated.
func describeField(field string, words fieldWords) string {
	if field == "*" {
		return words.every
	}
	if rangePart, step, found := strings.Cut(field, "/"); found && !strings.Contains(field, ",") {
		start := rangePart
		if rangePart == "*" {
			start = fmt.Sprint(words.minimum)
		} else if low, _, isRange := strings.Cut(rangePart, "-"); isRange {
			start = low
		}
		return fmt.Sprintf("every %s %s starting at %s%s", step, words.unit, words.startsAt, start)
	}
	if low, high, isRange := strings.Cut(field, "-"); isRange && !strings.Contains(field, ",") {
		return fmt.Sprintf("every %s from %s through %s", words.single, low, high)
	}
	return fmt.Sprintf("%s %s", words.single, field)
}

// describeDayOfWeek names weekdays. Lists are reported as not
// describable.
func describeDayOfWeek(field string) (string, bool) {
	switch {
	case field == "*":
		return "every day of the week", true
	case strings.Contains(field, ","):
		return "", false
	case strings.Contains(field, "/"):
		rangePart, step, _ := strings.Cut(field, "/")
		start := "Sunday"
		if low, _, isRange := strings.Cut(rangePart, "-"); isRange {
			start = dayName(low)
		} else if rangePart != "*" {
			start = dayName(rangePart)
		}
		return fmt.Sprintf("every %s day(s) of the week starting on %s", step, start), true
	case strings.Contains(field, "-"):
		low, high, _ := strings.Cut(field, "-")
		return fmt.Sprintf("every day-of-week from %s through %s", dayName(low), dayName(high)), true
	default:
		return dayName(field), true
	}
}

func dayName(value string) string {
	for index, name := range weekdayNames {
		if value == fmt.Sprint(index) {
			return name
		}
	}
	return value
}
