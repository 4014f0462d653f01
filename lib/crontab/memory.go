// Copyright 2026 The AdminTUI Authors
// SPDX-License-Identifier: Apache-2.0

package crontab

import (
	"context"
	"sync"
	"time"

	"github.com/hostadmin/admintui/lib/clock"
)

// MemoryStore is an in-memory Store. It keeps the installed text and
// records every text passed to Save, which lets UI tests assert on
// exactly what would have been installed.
type MemoryStore struct {
	mu       sync.Mutex
	text     string
	saved    []string
	location *time.Location
	clock    clock.Clock

	// LoadErr and SaveErr, when set, are returned by the next calls
	// instead of touching the table.
	LoadErr error
	SaveErr error
}

// NewMemoryStore returns a MemoryStore holding text. NextRun values
// are computed with c in location (nil means UTC).
func NewMemoryStore(text string, location *time.Location, c clock.Clock) *MemoryStore {
	if location == nil {
		location = time.UTC
	}
	return &MemoryStore{text: text, location: location, clock: c}
}

// Load parses the stored text.
func (store *MemoryStore) Load(ctx context.Context) ([]Job, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.LoadErr != nil {
		return nil, store.LoadErr
	}
	return Parse(store.text, store.location, store.clock.Now()), nil
}

// Save formats jobs and keeps the result as the installed text.
func (store *MemoryStore) Save(ctx context.Context, jobs []Job) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.SaveErr != nil {
		return store.SaveErr
	}
	store.text = Format(jobs)
	store.saved = append(store.saved, store.text)
	return nil
}

// Text returns the installed text.
func (store *MemoryStore) Text() string {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.text
}

// Saved returns every text passed to a successful Save, oldest first.
func (store *MemoryStore) Saved() []string {
	store.mu.Lock()
	defer store.mu.Unlock()
	return append([]string(nil), store.saved...)
}
