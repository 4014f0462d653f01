// Copyright 2026 The AdminTUI Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli holds the error and logging conventions shared by the
// admintui binary's non-interactive modes.
//
// Errors returned from run() are either a [*ToolError], which carries
// a category and an optional operator hint, or an [*ExitError], which
// asks main() to exit with a specific code without printing anything
// further. [ExitCodeFor] maps both onto a process exit code.
package cli
