// Copyright 2026 The AdminTUI Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "admintui.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return configPath
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Timezone != "Local" {
		t.Errorf("expected timezone=Local, got %s", cfg.Timezone)
	}
	if cfg.Crontab.Binary != "crontab" {
		t.Errorf("expected crontab.binary=crontab, got %s", cfg.Crontab.Binary)
	}
	if cfg.Crontab.User != "" {
		t.Errorf("expected empty crontab.user, got %s", cfg.Crontab.User)
	}
	if cfg.Snapshots.Compression != "zstd" {
		t.Errorf("expected snapshots.compression=zstd, got %s", cfg.Snapshots.Compression)
	}
	if cfg.Snapshots.Keep != 20 {
		t.Errorf("expected snapshots.keep=20, got %d", cfg.Snapshots.Keep)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoad_WithoutVariableUsesDefaults(t *testing.T) {
	t.Setenv(EnvironmentVariable, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Crontab.Binary != "crontab" {
		t.Errorf("expected default binary, got %s", cfg.Crontab.Binary)
	}
}

func TestLoad_WithVariable(t *testing.T) {
	configPath := writeConfig(t, `
timezone: Europe/Prague
crontab:
  user: bob
`)
	t.Setenv(EnvironmentVariable, configPath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Timezone != "Europe/Prague" {
		t.Errorf("expected timezone=Europe/Prague, got %s", cfg.Timezone)
	}
	if cfg.Crontab.User != "bob" {
		t.Errorf("expected user=bob, got %s", cfg.Crontab.User)
	}
	// Unset fields keep their defaults.
	if cfg.Crontab.Binary != "crontab" {
		t.Errorf("expected binary=crontab, got %s", cfg.Crontab.Binary)
	}
}

func TestLoadFile(t *testing.T) {
	t.Setenv("HOME", "/home/operator")
	configPath := writeConfig(t, `
timezone: UTC
crontab:
  binary: ${CRONTAB_BIN:-/usr/bin/crontab}
snapshots:
  directory: ${HOME}/backups/cron
  keep: 5
  compression: lz4
`)

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cfg.Crontab.Binary != "/usr/bin/crontab" {
		t.Errorf("expected binary=/usr/bin/crontab, got %s", cfg.Crontab.Binary)
	}
	if cfg.Snapshots.Directory != "/home/operator/backups/cron" {
		t.Errorf("expected expanded directory, got %s", cfg.Snapshots.Directory)
	}
	if cfg.Snapshots.Keep != 5 {
		t.Errorf("expected keep=5, got %d", cfg.Snapshots.Keep)
	}
	if cfg.Snapshots.Compression != "lz4" {
		t.Errorf("expected compression=lz4, got %s", cfg.Snapshots.Compression)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestLoadFile_Malformed(t *testing.T) {
	configPath := writeConfig(t, "timezone: [unterminated")
	_, err := LoadFile(configPath)
	if err == nil {
		t.Fatal("expected error for malformed YAML")
	}
	if !strings.Contains(err.Error(), "parsing config") {
		t.Errorf("expected parsing error, got %v", err)
	}
}

func TestExpandVars(t *testing.T) {
	t.Setenv("ADMINTUI_TEST_ENV", "from-env")

	tests := []struct {
		input    string
		vars     map[string]string
		expected string
	}{
		{
			input:    "${HOME}/snapshots",
			vars:     map[string]string{"HOME": "/home/user"},
			expected: "/home/user/snapshots",
		},
		{
			input:    "${MISSING_ADMINTUI_VAR:-default}",
			vars:     map[string]string{},
			expected: "default",
		},
		{
			input:    "${PRESENT:-default}",
			vars:     map[string]string{"PRESENT": "value"},
			expected: "value",
		},
		{
			input:    "${ADMINTUI_TEST_ENV}/x",
			vars:     map[string]string{},
			expected: "from-env/x",
		},
		{
			input:    "${A}/${B}",
			vars:     map[string]string{"A": "first", "B": "second"},
			expected: "first/second",
		},
		{
			input:    "no variables here",
			vars:     map[string]string{},
			expected: "no variables here",
		},
	}

	for _, tt := range tests {
		result := expandVars(tt.input, tt.vars)
		if result != tt.expected {
			t.Errorf("expandVars(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{
			name:   "valid default config",
			modify: func(c *Config) {},
		},
		{
			name:   "named timezone",
			modify: func(c *Config) { c.Timezone = "America/New_York" },
		},
		{
			name:    "unknown timezone",
			modify:  func(c *Config) { c.Timezone = "Mars/Olympus_Mons" },
			wantErr: "timezone",
		},
		{
			name:    "empty binary",
			modify:  func(c *Config) { c.Crontab.Binary = "" },
			wantErr: "crontab.binary",
		},
		{
			name:    "negative keep",
			modify:  func(c *Config) { c.Snapshots.Keep = -1 },
			wantErr: "snapshots.keep",
		},
		{
			name:    "unknown compression",
			modify:  func(c *Config) { c.Snapshots.Compression = "brotli" },
			wantErr: "snapshots.compression",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_ReportsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.Timezone = "Nowhere/Invalid"
	cfg.Crontab.Binary = ""
	cfg.Snapshots.Compression = "rar"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil")
	}
	for _, want := range []string{"timezone", "crontab.binary", "snapshots.compression"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}
