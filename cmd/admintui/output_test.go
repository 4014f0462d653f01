// Copyright 2026 The AdminTUI Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/muesli/termenv"

	"github.com/hostadmin/admintui/cmd/admintui/cli"
	"github.com/hostadmin/admintui/lib/clock"
	"github.com/hostadmin/admintui/lib/crontab"
	"github.com/hostadmin/admintui/lib/snapshot"
)

var testNow = time.Date(2026, 2, 18, 10, 30, 0, 0, time.UTC)

func TestPrintJobs(t *testing.T) {
	store := crontab.NewMemoryStore("# Nightly backup\n0 2 * * * /usr/local/bin/backup.sh\n*/5 * * * * /usr/bin/check-disk\n", time.UTC, clock.Fake(testNow))

	var output bytes.Buffer
	if err := printJobs(context.Background(), &output, store, termenv.Ascii); err != nil {
		t.Fatal(err)
	}
	want := `0 2 * * *  next 2026-02-19 02:00 UTC  /usr/local/bin/backup.sh
    Nightly backup
    At minute 0 past hour 2 on every day every month every day of the week

*/5 * * * *  next 2026-02-18 10:35 UTC  /usr/bin/check-disk
    At every 5 minute(s) starting at 0 past every hour on every day every month every day of the week
`
	if output.String() != want {
		t.Errorf("output:\n%s\nwant:\n%s", output.String(), want)
	}
}

func TestPrintJobsLoadError(t *testing.T) {
	store := crontab.NewMemoryStore("", time.UTC, clock.Fake(testNow))
	store.LoadErr = errors.New("permission denied")

	err := printJobs(context.Background(), &bytes.Buffer{}, store, termenv.Ascii)
	var toolErr *cli.ToolError
	if !errors.As(err, &toolErr) || toolErr.Category != cli.CategoryInternal {
		t.Errorf("err = %v, want an internal ToolError", err)
	}
}

func newTestSnapshots(t *testing.T) (*snapshot.Store, *clock.FakeClock) {
	t.Helper()
	fake := clock.Fake(testNow)
	store, err := snapshot.New(t.TempDir(), snapshot.Options{Compression: snapshot.CompressionZstd, Clock: fake})
	if err != nil {
		t.Fatal(err)
	}
	return store, fake
}

func TestPrintSnapshots(t *testing.T) {
	snapshots, fake := newTestSnapshots(t)

	var empty bytes.Buffer
	if err := printSnapshots(&empty, snapshots, time.UTC); err != nil {
		t.Fatal(err)
	}
	if empty.String() != "no snapshots\n" {
		t.Errorf("empty output = %q", empty.String())
	}

	first, _, err := snapshots.Put([]byte("0 * * * * /bin/true\n"))
	if err != nil {
		t.Fatal(err)
	}
	fake.Advance(time.Hour)
	second, _, err := snapshots.Put([]byte("0 * * * * /bin/false\n"))
	if err != nil {
		t.Fatal(err)
	}

	var output bytes.Buffer
	if err := printSnapshots(&output, snapshots, time.UTC); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(output.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines:\n%s", len(lines), output.String())
	}
	if !strings.HasPrefix(lines[0], "ID") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], second.ID) || !strings.Contains(lines[1], "2026-02-18 11:30 UTC") {
		t.Errorf("newest row = %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], first.ID) {
		t.Errorf("oldest row = %q", lines[2])
	}
}

type fakeRestorer struct {
	loadErr   error
	loaded    bool
	installed string
}

func (f *fakeRestorer) Load(context.Context) ([]crontab.Job, error) {
	f.loaded = true
	return nil, f.loadErr
}

func (f *fakeRestorer) Install(_ context.Context, text string) error {
	f.installed = text
	return nil
}

func TestRestoreSnapshot(t *testing.T) {
	snapshots, _ := newTestSnapshots(t)
	text := "MAILTO=ops\n0 1 * * * /usr/bin/rotate\n"
	saved, _, err := snapshots.Put([]byte(text))
	if err != nil {
		t.Fatal(err)
	}
	logger := slog.New(slog.DiscardHandler)

	t.Run("restores_verbatim", func(t *testing.T) {
		store := &fakeRestorer{}
		if err := restoreSnapshot(context.Background(), logger, store, snapshots, saved.ID); err != nil {
			t.Fatal(err)
		}
		if !store.loaded {
			t.Error("current table was not loaded before install")
		}
		if store.installed != text {
			t.Errorf("installed = %q, want %q", store.installed, text)
		}
	})

	t.Run("unreadable_current_table", func(t *testing.T) {
		store := &fakeRestorer{loadErr: errors.New("exit status 1")}
		if err := restoreSnapshot(context.Background(), logger, store, snapshots, saved.ID); err != nil {
			t.Fatal(err)
		}
		if store.installed != text {
			t.Errorf("installed = %q", store.installed)
		}
	})

	t.Run("unknown_id", func(t *testing.T) {
		store := &fakeRestorer{}
		err := restoreSnapshot(context.Background(), logger, store, snapshots, "ffffffffffff")
		if cli.ExitCodeFor(err) != cli.ExitNotFound {
			t.Errorf("err = %v, want not found", err)
		}
		if store.installed != "" {
			t.Error("installed something for an unknown ID")
		}
	})
}
