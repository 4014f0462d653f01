// Copyright 2026 The AdminTUI Authors
// SPDX-License-Identifier: Apache-2.0

package cron

import (
	"strings"
	"testing"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		want       string
	}{
		{
			"every_minute",
			"* * * * *",
			"At every minute past every hour on every day every month every day of the week",
		},
		{
			"daily",
			"0 5 * * *",
			"At minute 0 past hour 5 on every day every month every day of the week",
		},
		{
			"weekday_business_hours",
			"*/15 9-17 * * 1-5",
			"At every 15 minute(s) starting at 0 past every hour from 9 through 17 on every day every month every day-of-week from Monday through Friday",
		},
		{
			"yearly",
			"0 0 1 1 *",
			"At minute 0 past hour 0 on day-of-month 1 month 1 every day of the week",
		},
		{
			"stepped_range",
			"10-50/20 */2 */3 */6 0",
			"At every 20 minute(s) starting at 10 past every 2 hour(s) starting at 0 on every 3 day(s) starting at day 1 every 6 month(s) starting at month 1 Sunday",
		},
		{
			"sunday_alias",
			"0 0 * * 7",
			"At minute 0 past hour 0 on every day every month Sunday",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := Describe(test.expression); got != test.want {
				t.Errorf("Describe(%q)\n got: %s\nwant: %s", test.expression, got, test.want)
			}
		})
	}
}

func TestDescribeFallback(t *testing.T) {
	expressions := []string{
		"",
		"not a schedule",
		"61 * * * *",
		"0 0 * * 1,3,5",
	}
	for _, expression := range expressions {
		if got := Describe(expression); got != DescribeFallback {
			t.Errorf("Describe(%q) = %q, want fallback", expression, got)
		}
	}
}

func TestDescribeListValuedMinutes(t *testing.T) {
	got := Describe("0,30 * * * *")
	if !strings.HasPrefix(got, "At minute 0,30 past every hour") {
		t.Errorf("Describe = %q", got)
	}
}
