// Copyright 2026 The AdminTUI Authors
// SPDX-License-Identifier: Apache-2.0

// Package process holds entrypoint helpers used before a structured
// logger exists or after run() has returned.
package process
