// Copyright 2026 The AdminTUI Authors
// SPDX-License-Identifier: Apache-2.0

package crontab

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/hostadmin/admintui/lib/clock"
	"github.com/hostadmin/admintui/lib/snapshot"
)

// Store loads and installs a crontab.
type Store interface {
	// Load returns the installed jobs. A user without a crontab gets a
	// single placeholder job describing that, not an error.
	Load(ctx context.Context) ([]Job, error)

	// Save installs jobs, replacing the whole table. Jobs with an
	// empty command are left out.
	Save(ctx context.Context, jobs []Job) error
}

// Locator supplies the time zone next-run times are computed in.
// *config.Settings implements it.
type Locator interface {
	Location() *time.Location
}

// Snapshotter stores a copy of a crontab text. *snapshot.Store
// implements it.
type Snapshotter interface {
	Put(content []byte) (snapshot.Snapshot, bool, error)
}

// Runner runs an external command with stdin and returns what it
// wrote to stdout and stderr. A non-zero exit is reported as an error
// alongside the captured output.
type Runner func(ctx context.Context, stdin []byte, name string, args ...string) (stdout, stderr []byte, err error)

// ExecRunner runs commands with os/exec.
func ExecRunner(ctx context.Context, stdin []byte, name string, args ...string) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer
	command := exec.CommandContext(ctx, name, args...)
	if stdin != nil {
		command.Stdin = bytes.NewReader(stdin)
	}
	command.Stdout = &stdout
	command.Stderr = &stderr
	err := command.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

// noCrontabMarker is how crontab(1) reports a user without a table,
// e.g. "no crontab for bob".
const noCrontabMarker = "no crontab for"

// CommandStore is a Store backed by the crontab binary.
//
// It remembers the text of the last successful Load or Save so that
// Save can snapshot the table it is about to replace.
type CommandStore struct {
	binary    string
	user      string
	runner    Runner
	locator   Locator
	clock     clock.Clock
	snapshots Snapshotter
	logger    *slog.Logger

	previous       string
	previousLoaded bool
}

// Option configures a CommandStore.
type Option func(*CommandStore)

// WithBinary sets the crontab executable. Default: "crontab".
func WithBinary(binary string) Option {
	return func(store *CommandStore) { store.binary = binary }
}

// WithUser edits the table of user ("-u USER") instead of the
// invoking user's.
func WithUser(user string) Option {
	return func(store *CommandStore) { store.user = user }
}

// WithRunner replaces the subprocess runner. Tests use it to fake
// crontab.
func WithRunner(runner Runner) Option {
	return func(store *CommandStore) { store.runner = runner }
}

// WithLocator sets the time zone source for NextRun. Default: UTC.
func WithLocator(locator Locator) Option {
	return func(store *CommandStore) { store.locator = locator }
}

// WithClock sets the time source for NextRun. Default: clock.Real().
func WithClock(c clock.Clock) Option {
	return func(store *CommandStore) { store.clock = c }
}

// WithSnapshots backs up the previously loaded table before every
// install.
func WithSnapshots(snapshots Snapshotter) Option {
	return func(store *CommandStore) { store.snapshots = snapshots }
}

// WithLogger sets the logger. Default: discard.
func WithLogger(logger *slog.Logger) Option {
	return func(store *CommandStore) { store.logger = logger }
}

// NewCommandStore returns a CommandStore.
func NewCommandStore(options ...Option) *CommandStore {
	store := &CommandStore{
		binary: "crontab",
		runner: ExecRunner,
		clock:  clock.Real(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, option := range options {
		option(store)
	}
	return store
}

func (store *CommandStore) location() *time.Location {
	if store.locator == nil {
		return time.UTC
	}
	return store.locator.Location()
}

func (store *CommandStore) args(args ...string) []string {
	if store.user == "" {
		return args
	}
	return append([]string{"-u", store.user}, args...)
}

// Load runs "crontab -l" and parses its output.
func (store *CommandStore) Load(ctx context.Context) ([]Job, error) {
	stdout, stderr, err := store.runner(ctx, nil, store.binary, store.args("-l")...)
	if err != nil {
		if message, ok := noCrontabMessage(string(stderr)); ok {
			store.logger.Info("no crontab installed", "user", store.user)
			store.previous, store.previousLoaded = "", true
			return []Job{{Schedule: message}}, nil
		}
		store.logger.Error("crontab -l failed",
			"user", store.user,
			"error", err,
			"stderr", strings.TrimSpace(string(stderr)),
		)
		return nil, &LoadError{Err: err, Stderr: strings.TrimSpace(string(stderr))}
	}

	text := string(stdout)
	store.previous, store.previousLoaded = text, true
	jobs := Parse(text, store.location(), store.clock.Now())
	store.logger.Debug("crontab loaded", "user", store.user, "jobs", len(jobs))
	return jobs, nil
}

// noCrontabMessage extracts "no crontab for USER" from crontab's
// stderr.
func noCrontabMessage(stderr string) (string, bool) {
	index := strings.Index(stderr, noCrontabMarker)
	if index < 0 {
		return "", false
	}
	message := stderr[index:]
	if end := strings.IndexByte(message, '\n'); end >= 0 {
		message = message[:end]
	}
	return strings.TrimSpace(message), true
}

// Save snapshots the table being replaced (when snapshots are
// configured and a table was loaded), then pipes the formatted jobs
// into "crontab -". A failed snapshot is logged and does not block
// the install.
func (store *CommandStore) Save(ctx context.Context, jobs []Job) error {
	text := Format(jobs)
	store.snapshotPrevious(text)

	_, stderr, err := store.runner(ctx, []byte(text), store.binary, store.args("-")...)
	if err != nil {
		store.logger.Error("crontab install failed",
			"user", store.user,
			"error", err,
			"stderr", strings.TrimSpace(string(stderr)),
		)
		return &SaveError{Err: err, Stderr: strings.TrimSpace(string(stderr))}
	}

	store.previous, store.previousLoaded = text, true
	installed := 0
	for _, job := range jobs {
		if job.Persistable() {
			installed++
		}
	}
	store.logger.Info("crontab installed", "user", store.user, "jobs", installed)
	return nil
}

// snapshotPrevious backs up the table about to be replaced by text.
func (store *CommandStore) snapshotPrevious(text string) {
	if store.snapshots == nil || !store.previousLoaded || store.previous == "" || store.previous == text {
		return
	}
	if backup, created, err := store.snapshots.Put([]byte(store.previous)); err != nil {
		store.logger.Warn("crontab snapshot failed", "error", err)
	} else if created {
		store.logger.Info("crontab snapshot stored", "id", backup.ID)
	}
}

// Install pipes raw crontab text into "crontab -" without parsing, so
// environment lines and comments survive verbatim. Used to restore a
// snapshot. Like Save, it first snapshots a previously loaded table.
func (store *CommandStore) Install(ctx context.Context, text string) error {
	store.snapshotPrevious(text)
	_, stderr, err := store.runner(ctx, []byte(text), store.binary, store.args("-")...)
	if err != nil {
		return &SaveError{Err: err, Stderr: strings.TrimSpace(string(stderr))}
	}
	store.previous, store.previousLoaded = text, true
	return nil
}

// LoadError reports a failed "crontab -l" other than the user having
// no table.
type LoadError struct {
	Err    error
	Stderr string
}

func (e *LoadError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("listing crontab: %v", e.Err)
	}
	return fmt.Sprintf("listing crontab: %v (stderr: %s)", e.Err, e.Stderr)
}

func (e *LoadError) Unwrap() error { return e.Err }

// SaveError reports a failed install: the binary could not be
// started, stdin could not be written, or it exited non-zero.
type SaveError struct {
	Err    error
	Stderr string
}

func (e *SaveError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("installing crontab: %v", e.Err)
	}
	return fmt.Sprintf("installing crontab: %v (stderr: %s)", e.Err, e.Stderr)
}

func (e *SaveError) Unwrap() error { return e.Err }
