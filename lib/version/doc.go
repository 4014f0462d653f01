// Copyright 2026 The AdminTUI Authors
// SPDX-License-Identifier: Apache-2.0

// Package version reports build information for the admintui binary.
//
// The variables are injected at build time via -ldflags -X:
//
//	go build -ldflags "-X github.com/hostadmin/admintui/lib/version.GitCommit=$(git rev-parse --short HEAD)"
//
// Without injection they read "unknown" / "0.1.0-dev".
package version
