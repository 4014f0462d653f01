// Copyright 2026 The AdminTUI Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading and the shared
// runtime [Settings] for admintui.
//
// Configuration is loaded from a single file specified by either the
// ADMINTUI_CONFIG environment variable (via [Load]) or a --config flag
// (via [LoadFile]). Without either, [Default] applies. There is no
// ~/.config discovery.
//
// Variable expansion is performed on path fields after loading:
// ${HOME} and ${VAR:-default} patterns are expanded.
//
// Key exports:
//
//   - [Config] -- timezone, crontab invocation, snapshot store
//   - [Default] -- the built-in defaults
//   - [Load] and [LoadFile] -- the two entry points for loading
//   - [Settings] -- the RW-locked display time zone injected into the UI
//
// This package depends on no other admintui packages.
package config
