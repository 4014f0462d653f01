// Copyright 2026 The AdminTUI Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time source.
//
// Production code accepts a Clock instead of calling time.Now
// directly. Real() provides the standard library behavior; Fake()
// provides a clock that only moves when a test calls Advance or Set:
//
//	c := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	next := cron.FormatNextRun("0 5 * * *", c.Now(), time.UTC)
//	c.Advance(time.Hour)
package clock
