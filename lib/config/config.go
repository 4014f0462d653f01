// Copyright 2026 The AdminTUI Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvironmentVariable names the environment variable consulted by
// [Load] when no --config flag is given.
const EnvironmentVariable = "ADMINTUI_CONFIG"

// Compression values accepted for snapshots.compression.
var compressionValues = []string{"zstd", "lz4", "none"}

// Config is the on-disk configuration for admintui.
type Config struct {
	// Timezone is the IANA zone name used to display next-run times.
	// "Local" uses the host's zone.
	// Default: Local
	Timezone string `yaml:"timezone"`

	// Crontab configures the crontab subprocess.
	Crontab CrontabConfig `yaml:"crontab"`

	// Snapshots configures the backups taken before every install.
	Snapshots SnapshotsConfig `yaml:"snapshots"`
}

// CrontabConfig configures how the crontab binary is invoked.
type CrontabConfig struct {
	// Binary is the crontab executable, resolved through PATH when
	// not absolute.
	// Default: crontab
	Binary string `yaml:"binary"`

	// User is passed as "-u USER" when set. Editing another user's
	// table normally requires root.
	User string `yaml:"user"`
}

// SnapshotsConfig configures the snapshot store.
type SnapshotsConfig struct {
	// Directory holds snapshot files. Empty disables snapshots.
	// Default: ${HOME}/.local/state/admintui/snapshots
	Directory string `yaml:"directory"`

	// Keep is the number of most recent snapshots retained after each
	// write. Zero keeps everything.
	// Default: 20
	Keep int `yaml:"keep"`

	// Compression is one of zstd, lz4 or none.
	// Default: zstd
	Compression string `yaml:"compression"`
}

// Default returns the configuration used when no file is given. A
// loaded file is merged over these values.
func Default() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Timezone: "Local",
		Crontab: CrontabConfig{
			Binary: "crontab",
		},
		Snapshots: SnapshotsConfig{
			Directory:   filepath.Join(homeDir, ".local", "state", "admintui", "snapshots"),
			Keep:        20,
			Compression: "zstd",
		},
	}
}

// Load loads configuration from the file named by ADMINTUI_CONFIG. When
// the variable is unset the defaults are returned unchanged.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		return Default(), nil
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path, merged over
// [Default]. ${HOME} and ${VAR:-default} patterns in path fields are
// expanded after loading.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg.expandVariables()
	return cfg, nil
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in paths.
func (c *Config) expandVariables() {
	vars := map[string]string{
		"HOME": os.Getenv("HOME"),
	}
	c.Crontab.Binary = expandVars(c.Crontab.Binary, vars)
	c.Snapshots.Directory = expandVars(c.Snapshots.Directory, vars)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandVars expands ${VAR} and ${VAR:-default} patterns. Names in
// vars win over the process environment.
func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors. All problems are
// reported together.
func (c *Config) Validate() error {
	var errs []error

	if _, err := c.Location(); err != nil {
		errs = append(errs, err)
	}

	if c.Crontab.Binary == "" {
		errs = append(errs, fmt.Errorf("crontab.binary is required"))
	}

	if c.Snapshots.Keep < 0 {
		errs = append(errs, fmt.Errorf("snapshots.keep must not be negative, got %d", c.Snapshots.Keep))
	}

	if !slices.Contains(compressionValues, c.Snapshots.Compression) {
		errs = append(errs, fmt.Errorf("snapshots.compression must be one of: %v", compressionValues))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Location resolves Timezone. An empty name means UTC, matching
// time.LoadLocation.
func (c *Config) Location() (*time.Location, error) {
	location, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return location, nil
}
