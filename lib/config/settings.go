// Copyright 2026 The AdminTUI Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"sync"
	"time"
)

// Settings holds runtime settings shared between the UI and the
// crontab adapter. Reads vastly outnumber writes: every rendered row
// asks for the location, while the zone only changes on explicit
// request.
//
// Settings is safe for concurrent use.
type Settings struct {
	mu       sync.RWMutex
	location *time.Location
}

// NewSettings returns Settings displaying times in location. A nil
// location means time.Local.
func NewSettings(location *time.Location) *Settings {
	if location == nil {
		location = time.Local
	}
	return &Settings{location: location}
}

// SettingsFromConfig builds Settings from a validated Config.
func SettingsFromConfig(c *Config) (*Settings, error) {
	location, err := c.Location()
	if err != nil {
		return nil, err
	}
	return NewSettings(location), nil
}

// Location returns the display time zone.
func (s *Settings) Location() *time.Location {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.location
}

// SetTimezone switches the display time zone by IANA name. On error
// the current zone is kept.
func (s *Settings) SetTimezone(name string) error {
	location, err := time.LoadLocation(name)
	if err != nil {
		return fmt.Errorf("timezone %q: %w", name, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.location = location
	return nil
}
