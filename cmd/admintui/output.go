// Copyright 2026 The AdminTUI Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"
	"time"

	"github.com/muesli/termenv"

	"github.com/hostadmin/admintui/cmd/admintui/cli"
	"github.com/hostadmin/admintui/lib/cron"
	"github.com/hostadmin/admintui/lib/crontab"
	"github.com/hostadmin/admintui/lib/snapshot"
	"github.com/hostadmin/admintui/lib/tui"
)

// printJobs writes one block per job: schedule, next run and the
// highlighted command, then the description and the schedule in
// words. Placeholder rows such as "no crontab for USER" print alone.
func printJobs(ctx context.Context, w io.Writer, store crontab.Store, profile termenv.Profile) error {
	jobs, err := store.Load(ctx)
	if err != nil {
		return cli.Internal("reading crontab: %w", err)
	}
	for index, job := range jobs {
		if index > 0 {
			fmt.Fprintln(w)
		}
		if !job.Persistable() {
			fmt.Fprintln(w, job.Schedule)
			continue
		}
		fmt.Fprintf(w, "%s  next %s  %s\n", job.Schedule, job.NextRun, tui.HighlightShell(job.Command, profile))
		if job.Description != "" {
			fmt.Fprintf(w, "    %s\n", job.Description)
		}
		fmt.Fprintf(w, "    %s\n", cron.Describe(job.Schedule))
	}
	return nil
}

// snapshotLister is the part of *snapshot.Store printSnapshots needs.
type snapshotLister interface {
	List() ([]snapshot.Snapshot, error)
}

// printSnapshots lists snapshots newest first, with creation times in
// location.
func printSnapshots(w io.Writer, snapshots snapshotLister, location *time.Location) error {
	list, err := snapshots.List()
	if err != nil {
		return cli.Internal("listing snapshots: %w", err)
	}
	if len(list) == 0 {
		fmt.Fprintln(w, "no snapshots")
		return nil
	}
	writer := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
	fmt.Fprintf(writer, "ID\tCREATED\tSIZE\tCOMPRESSION\n")
	for _, entry := range list {
		fmt.Fprintf(writer, "%s\t%s\t%d\t%s\n",
			entry.ID,
			entry.Created.In(location).Format(cron.NextRunLayout),
			entry.Size,
			entry.Compression,
		)
	}
	return writer.Flush()
}

// snapshotReader is the part of *snapshot.Store restoreSnapshot needs.
type snapshotReader interface {
	Get(id string) ([]byte, error)
}

// restorer is the part of *crontab.CommandStore restoreSnapshot needs.
type restorer interface {
	Load(ctx context.Context) ([]crontab.Job, error)
	Install(ctx context.Context, text string) error
}

// restoreSnapshot installs the snapshot verbatim. The current table is
// loaded first so the install snapshots it in turn, which makes a
// restore itself undoable.
func restoreSnapshot(ctx context.Context, logger *slog.Logger, store restorer, snapshots snapshotReader, id string) error {
	content, err := snapshots.Get(id)
	switch {
	case errors.Is(err, snapshot.ErrNotFound):
		return cli.NotFound("snapshot %q not found", id).
			WithHint("Run 'admintui --snapshots' to list snapshot IDs.")
	case err != nil:
		return cli.Validation("snapshot %q: %w", id, err)
	}

	if _, err := store.Load(ctx); err != nil {
		logger.Warn("current crontab unreadable, restoring without a backup of it", "error", err)
	}
	if err := store.Install(ctx, string(content)); err != nil {
		return cli.Internal("installing snapshot %s: %w", id, err)
	}
	logger.Info("snapshot restored", "id", id, "bytes", len(content))
	return nil
}
