// Copyright 2026 The AdminTUI Authors
// SPDX-License-Identifier: Apache-2.0

package crontab

import (
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/hostadmin/admintui/lib/clock"
	"github.com/hostadmin/admintui/lib/snapshot"
)

// fakeCrontab stands in for the crontab binary. It records every
// invocation and answers "-l" from installed.
type fakeCrontab struct {
	installed  string
	hasTable   bool
	listErr    error
	listStderr string
	installErr error

	calls  [][]string
	stdins []string
}

func (fake *fakeCrontab) run(ctx context.Context, stdin []byte, name string, args ...string) ([]byte, []byte, error) {
	fake.calls = append(fake.calls, append([]string{name}, args...))
	if args[len(args)-1] == "-l" {
		if fake.listErr != nil {
			return nil, []byte(fake.listStderr), fake.listErr
		}
		if !fake.hasTable {
			return nil, []byte("no crontab for bob\n"), errors.New("exit status 1")
		}
		return []byte(fake.installed), nil, nil
	}
	fake.stdins = append(fake.stdins, string(stdin))
	if fake.installErr != nil {
		return nil, []byte("crontab: installing new crontab failed"), fake.installErr
	}
	fake.installed, fake.hasTable = string(stdin), true
	return nil, nil, nil
}

func newTestStore(fake *fakeCrontab, options ...Option) *CommandStore {
	options = append([]Option{
		WithRunner(fake.run),
		WithClock(clock.Fake(testNow)),
	}, options...)
	return NewCommandStore(options...)
}

func TestCommandStoreLoad(t *testing.T) {
	fake := &fakeCrontab{hasTable: true, installed: "# Nightly backup\n0 5 * * * /usr/bin/backup.sh\n"}
	store := newTestStore(fake)

	jobs, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []Job{{
		Schedule:    "0 5 * * *",
		Command:     "/usr/bin/backup.sh",
		Description: "Nightly backup",
		NextRun:     "2026-02-19 05:00 UTC",
	}}
	if !reflect.DeepEqual(jobs, want) {
		t.Errorf("Load = %+v, want %+v", jobs, want)
	}
	if !reflect.DeepEqual(fake.calls, [][]string{{"crontab", "-l"}}) {
		t.Errorf("calls = %v", fake.calls)
	}
}

func TestCommandStoreLoadNoCrontab(t *testing.T) {
	fake := &fakeCrontab{}
	store := newTestStore(fake)

	jobs, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("Load returned %d jobs, want 1 placeholder", len(jobs))
	}
	if jobs[0].Schedule != "no crontab for bob" || jobs[0].Command != "" || jobs[0].Description != "" {
		t.Errorf("placeholder = %+v", jobs[0])
	}
}

func TestCommandStoreLoadNoCrontabCommentedStderr(t *testing.T) {
	fake := &fakeCrontab{listErr: errors.New("exit status 1"), listStderr: "# no crontab for bob"}
	store := newTestStore(fake)

	jobs, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(jobs) != 1 || jobs[0].Schedule != "no crontab for bob" {
		t.Errorf("Load = %+v, want one placeholder row", jobs)
	}
}

func TestCommandStoreLoadError(t *testing.T) {
	exitErr := errors.New("exit status 1")
	fake := &fakeCrontab{listErr: exitErr, listStderr: "crontab: must be privileged to use -u\n"}
	store := newTestStore(fake, WithUser("alice"))

	_, err := store.Load(context.Background())
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("Load error = %v, want *LoadError", err)
	}
	if loadErr.Stderr != "crontab: must be privileged to use -u" {
		t.Errorf("Stderr = %q", loadErr.Stderr)
	}
	if !errors.Is(err, exitErr) {
		t.Error("LoadError does not unwrap to the runner error")
	}
	if !reflect.DeepEqual(fake.calls[0], []string{"crontab", "-u", "alice", "-l"}) {
		t.Errorf("call = %v", fake.calls[0])
	}
}

func TestCommandStoreSave(t *testing.T) {
	fake := &fakeCrontab{}
	store := newTestStore(fake, WithBinary("/usr/bin/crontab"), WithUser("bob"))

	jobs := []Job{
		{Schedule: "no crontab for bob"},
		{Schedule: "0 5 * * *", Command: "/usr/bin/backup.sh", Description: "Nightly backup"},
	}
	if err := store.Save(context.Background(), jobs); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if want := []string{"/usr/bin/crontab", "-u", "bob", "-"}; !reflect.DeepEqual(fake.calls[0], want) {
		t.Errorf("call = %v, want %v", fake.calls[0], want)
	}
	if want := "# Nightly backup\n0 5 * * * /usr/bin/backup.sh\n"; fake.stdins[0] != want {
		t.Errorf("stdin = %q, want %q", fake.stdins[0], want)
	}
}

func TestCommandStoreSaveError(t *testing.T) {
	fake := &fakeCrontab{installErr: &exec.Error{Name: "crontab", Err: exec.ErrNotFound}}
	store := newTestStore(fake)

	err := store.Save(context.Background(), []Job{{Schedule: "* * * * *", Command: "x"}})
	var saveErr *SaveError
	if !errors.As(err, &saveErr) {
		t.Fatalf("Save error = %v, want *SaveError", err)
	}
	if !errors.Is(err, exec.ErrNotFound) {
		t.Error("SaveError does not unwrap to exec.ErrNotFound")
	}
}

func TestCommandStoreSnapshotsPreviousTable(t *testing.T) {
	snapshots, err := snapshot.New(filepath.Join(t.TempDir(), "snapshots"), snapshot.Options{
		Compression: snapshot.CompressionZstd,
		Clock:       clock.Fake(testNow),
	})
	if err != nil {
		t.Fatal(err)
	}
	original := "# Nightly backup\n0 5 * * * /usr/bin/backup.sh\n"
	fake := &fakeCrontab{hasTable: true, installed: original}
	store := newTestStore(fake, WithSnapshots(snapshots))

	// Without a prior Load there is nothing known to back up.
	if err := store.Save(context.Background(), []Job{{Schedule: "* * * * *", Command: "x"}}); err != nil {
		t.Fatal(err)
	}
	if list, _ := snapshots.List(); len(list) != 0 {
		t.Fatalf("snapshot taken before any Load: %d", len(list))
	}

	fake.installed = original
	jobs, err := store.Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	jobs = append(jobs, Job{Schedule: "*/5 * * * *", Command: "poll"})
	if err := store.Save(context.Background(), jobs); err != nil {
		t.Fatal(err)
	}

	list, err := snapshots.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 {
		t.Fatalf("got %d snapshots, want 1", len(list))
	}
	content, err := snapshots.Get(list[0].ID)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != original {
		t.Errorf("snapshot = %q, want %q", content, original)
	}
}

func TestCommandStoreInstall(t *testing.T) {
	fake := &fakeCrontab{}
	store := newTestStore(fake)
	text := "MAILTO=root\n0 0 * * * kept-verbatim\n"
	if err := store.Install(context.Background(), text); err != nil {
		t.Fatal(err)
	}
	if fake.installed != text {
		t.Errorf("installed = %q, want %q", fake.installed, text)
	}
}

func TestCommandStoreInstallSnapshotsLoadedTable(t *testing.T) {
	snapshots, err := snapshot.New(t.TempDir(), snapshot.Options{Compression: snapshot.CompressionLZ4})
	if err != nil {
		t.Fatal(err)
	}
	current := "MAILTO=ops\n0 1 * * * /usr/bin/rotate\n"
	fake := &fakeCrontab{hasTable: true, installed: current}
	store := newTestStore(fake, WithSnapshots(snapshots))

	if _, err := store.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := store.Install(context.Background(), "0 0 * * * restored\n"); err != nil {
		t.Fatal(err)
	}

	list, err := snapshots.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 {
		t.Fatalf("got %d snapshots, want 1", len(list))
	}
	content, err := snapshots.Get(list[0].ID)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != current {
		t.Errorf("snapshot = %q, want %q", content, current)
	}
}

func TestCommandStoreSkipsEmptySnapshot(t *testing.T) {
	snapshots, err := snapshot.New(t.TempDir(), snapshot.Options{})
	if err != nil {
		t.Fatal(err)
	}
	store := newTestStore(&fakeCrontab{}, WithSnapshots(snapshots))

	if _, err := store.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := store.Save(context.Background(), []Job{{Schedule: "0 * * * *", Command: "/bin/true"}}); err != nil {
		t.Fatal(err)
	}
	if list, _ := snapshots.List(); len(list) != 0 {
		t.Errorf("got %d snapshots of a missing table, want 0", len(list))
	}
}

type fixedLocation struct{ location *time.Location }

func (f fixedLocation) Location() *time.Location { return f.location }

func TestCommandStoreUsesLocator(t *testing.T) {
	fake := &fakeCrontab{hasTable: true, installed: "0 5 * * * x\n"}
	store := newTestStore(fake, WithLocator(fixedLocation{time.FixedZone("EST", -5*60*60)}))

	jobs, err := store.Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	// 10:30 UTC is 05:30 EST, so the next 05:00 EST is the following day.
	if jobs[0].NextRun != "2026-02-19 05:00 EST" {
		t.Errorf("NextRun = %q", jobs[0].NextRun)
	}
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore("0 5 * * * a\n", nil, clock.Fake(testNow))

	jobs, err := store.Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	jobs = append(jobs, Job{Schedule: "* * * * *", Command: "b", Description: "every minute"})
	if err := store.Save(context.Background(), jobs); err != nil {
		t.Fatal(err)
	}
	want := "0 5 * * * a\n# every minute\n* * * * * b\n"
	if store.Text() != want {
		t.Errorf("Text() = %q, want %q", store.Text(), want)
	}
	if saved := store.Saved(); len(saved) != 1 || saved[0] != want {
		t.Errorf("Saved() = %q", saved)
	}

	store.SaveErr = errors.New("disk full")
	if err := store.Save(context.Background(), nil); err == nil {
		t.Error("Save with SaveErr succeeded")
	}
	if store.Text() != want {
		t.Error("failed Save changed the text")
	}
}
