// Copyright 2026 The AdminTUI Authors
// SPDX-License-Identifier: Apache-2.0

package snapshot

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/hostadmin/admintui/lib/clock"
)

// ErrNotFound is returned by [Store.Get] for an unknown snapshot ID.
var ErrNotFound = errors.New("snapshot not found")

// File layout: magic, 1-byte compression tag, 4-byte big-endian
// uncompressed size, payload.
var fileMagic = []byte("ATSNAP1\x00")

const (
	headerSize    = 8 + 1 + 4
	fileExtension = ".snap"
)

// Snapshot describes one stored crontab text.
type Snapshot struct {
	// ID is the short identifier accepted by Get.
	ID string

	Digest      Digest
	Created     time.Time
	Size        int // Uncompressed bytes.
	Compression CompressionTag

	path string
}

// Store keeps compressed, content-addressed copies of crontab texts in
// a directory, one file per snapshot. File names carry the creation
// time and digest so listing needs no index.
//
// A Store is not safe for concurrent use from multiple processes
// pruning the same directory; within one process the UI's single
// update goroutine is the only writer.
type Store struct {
	directory   string
	compression CompressionTag
	keep        int
	clock       clock.Clock
	logger      *slog.Logger
}

// Options configures [New].
type Options struct {
	// Compression applied to new snapshots.
	Compression CompressionTag

	// Keep is how many of the newest snapshots survive pruning after
	// each Put. Zero disables pruning.
	Keep int

	// Clock stamps new snapshots. Nil means clock.Real().
	Clock clock.Clock

	// Logger receives dedup and prune events. Nil discards them.
	Logger *slog.Logger
}

// New opens (creating if needed) a snapshot store in directory.
func New(directory string, options Options) (*Store, error) {
	if directory == "" {
		return nil, fmt.Errorf("snapshot directory is required")
	}
	if options.Keep < 0 {
		return nil, fmt.Errorf("snapshot keep must not be negative, got %d", options.Keep)
	}
	if err := os.MkdirAll(directory, 0o700); err != nil {
		return nil, fmt.Errorf("creating snapshot directory: %w", err)
	}
	if options.Clock == nil {
		options.Clock = clock.Real()
	}
	if options.Logger == nil {
		options.Logger = slog.New(slog.DiscardHandler)
	}
	return &Store{
		directory:   directory,
		compression: options.Compression,
		keep:        options.Keep,
		clock:       options.Clock,
		logger:      options.Logger,
	}, nil
}

// Directory returns the directory the store writes to.
func (store *Store) Directory() string { return store.directory }

// Put stores content and prunes old snapshots. When a snapshot with
// the same digest already exists no file is written; the existing
// snapshot is returned with created=false.
func (store *Store) Put(content []byte) (Snapshot, bool, error) {
	digest := DigestOf(content)

	existing, err := store.List()
	if err != nil {
		return Snapshot{}, false, err
	}
	for _, snapshot := range existing {
		if snapshot.Digest == digest {
			store.logger.Debug("snapshot unchanged", "id", snapshot.ID)
			return snapshot, false, nil
		}
	}

	payload, tag, err := compress(content, store.compression)
	if err != nil {
		return Snapshot{}, false, fmt.Errorf("compressing snapshot: %w", err)
	}

	created := store.clock.Now().UTC()
	name := fmt.Sprintf("%020d-%s%s", created.UnixNano(), digest, fileExtension)
	path := filepath.Join(store.directory, name)

	data := make([]byte, 0, headerSize+len(payload))
	data = append(data, fileMagic...)
	data = append(data, byte(tag))
	data = binary.BigEndian.AppendUint32(data, uint32(len(content)))
	data = append(data, payload...)

	// Write to a temporary name first so a crash never leaves a
	// truncated snapshot that List would report.
	temporary := path + ".tmp"
	if err := os.WriteFile(temporary, data, 0o600); err != nil {
		return Snapshot{}, false, fmt.Errorf("writing snapshot: %w", err)
	}
	if err := os.Rename(temporary, path); err != nil {
		os.Remove(temporary)
		return Snapshot{}, false, fmt.Errorf("writing snapshot: %w", err)
	}

	snapshot := Snapshot{
		ID:          digest.ID(),
		Digest:      digest,
		Created:     created,
		Size:        len(content),
		Compression: tag,
		path:        path,
	}
	store.logger.Info("snapshot stored",
		"id", snapshot.ID,
		"size", snapshot.Size,
		"stored_size", len(data),
		"compression", tag.String(),
	)

	if _, err := store.Prune(); err != nil {
		return snapshot, true, err
	}
	return snapshot, true, nil
}

// List returns all snapshots, newest first. Files in the directory
// that are not snapshots are ignored.
func (store *Store) List() ([]Snapshot, error) {
	entries, err := os.ReadDir(store.directory)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("listing snapshots: %w", err)
	}

	var snapshots []Snapshot
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		snapshot, ok := parseFileName(entry.Name())
		if !ok {
			continue
		}
		snapshot.path = filepath.Join(store.directory, entry.Name())
		header, err := readHeader(snapshot.path)
		if err != nil {
			store.logger.Warn("skipping unreadable snapshot", "file", entry.Name(), "error", err)
			continue
		}
		snapshot.Compression = header.compression
		snapshot.Size = header.size
		snapshots = append(snapshots, snapshot)
	}

	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].Created.After(snapshots[j].Created)
	})
	return snapshots, nil
}

// Get returns the uncompressed content of the snapshot with the given
// ID. Any unambiguous prefix of the full hex digest is accepted.
func (store *Store) Get(id string) ([]byte, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	if id == "" {
		return nil, ErrNotFound
	}
	snapshots, err := store.List()
	if err != nil {
		return nil, err
	}

	var match *Snapshot
	for index := range snapshots {
		if strings.HasPrefix(snapshots[index].Digest.String(), id) {
			if match != nil {
				return nil, fmt.Errorf("snapshot id %q is ambiguous", id)
			}
			match = &snapshots[index]
		}
	}
	if match == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	data, err := os.ReadFile(match.path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot %s: %w", match.ID, err)
	}
	header, err := parseHeader(data)
	if err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", match.ID, err)
	}
	content, err := decompress(data[headerSize:], header.compression, header.size)
	if err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", match.ID, err)
	}
	if DigestOf(content) != match.Digest {
		return nil, fmt.Errorf("snapshot %s: content does not match digest", match.ID)
	}
	return content, nil
}

// Prune deletes all but the newest Keep snapshots and returns how many
// were removed. A Keep of zero removes nothing.
func (store *Store) Prune() (int, error) {
	if store.keep == 0 {
		return 0, nil
	}
	snapshots, err := store.List()
	if err != nil {
		return 0, err
	}
	removed := 0
	for _, snapshot := range snapshots[min(store.keep, len(snapshots)):] {
		if err := os.Remove(snapshot.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return removed, fmt.Errorf("pruning snapshot %s: %w", snapshot.ID, err)
		}
		removed++
	}
	if removed > 0 {
		store.logger.Info("snapshots pruned", "removed", removed, "kept", store.keep)
	}
	return removed, nil
}

// parseFileName extracts the creation time and digest from
// "<unix nanos>-<hex digest>.snap".
func parseFileName(name string) (Snapshot, bool) {
	base, found := strings.CutSuffix(name, fileExtension)
	if !found {
		return Snapshot{}, false
	}
	stamp, digestText, found := strings.Cut(base, "-")
	if !found {
		return Snapshot{}, false
	}
	nanos, err := strconv.ParseInt(stamp, 10, 64)
	if err != nil {
		return Snapshot{}, false
	}
	digest, err := ParseDigest(digestText)
	if err != nil {
		return Snapshot{}, false
	}
	return Snapshot{
		ID:      digest.ID(),
		Digest:  digest,
		Created: time.Unix(0, nanos).UTC(),
	}, true
}

type header struct {
	compression CompressionTag
	size        int
}

func readHeader(path string) (header, error) {
	file, err := os.Open(path)
	if err != nil {
		return header{}, err
	}
	defer file.Close()

	buffer := make([]byte, headerSize)
	if _, err := file.ReadAt(buffer, 0); err != nil {
		return header{}, fmt.Errorf("reading header: %w", err)
	}
	return parseHeader(buffer)
}

func parseHeader(data []byte) (header, error) {
	if len(data) < headerSize || string(data[:len(fileMagic)]) != string(fileMagic) {
		return header{}, fmt.Errorf("not a snapshot file")
	}
	tag := CompressionTag(data[len(fileMagic)])
	if tag > CompressionZstd {
		return header{}, fmt.Errorf("unsupported compression tag: %d", tag)
	}
	return header{
		compression: tag,
		size:        int(binary.BigEndian.Uint32(data[len(fileMagic)+1:])),
	}, nil
}
