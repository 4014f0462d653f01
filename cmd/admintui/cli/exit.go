// Copyright 2026 The AdminTUI Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
)

// ExitError signals a non-zero exit code without an extra error
// message. The mode that returns it has already written its own
// output.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode returns the exit code.
func (e *ExitError) ExitCode() int {
	return e.Code
}

// Exit codes for categorised errors. Anything uncategorised exits 1.
const (
	ExitFailure    = 1
	ExitValidation = 2
	ExitNotFound   = 3
)

// ExitCodeFor maps an error returned from run() to a process exit
// code. A nil error is 0.
func ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	var exitErr interface{ ExitCode() int }
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	var toolErr *ToolError
	if errors.As(err, &toolErr) {
		switch toolErr.Category {
		case CategoryValidation:
			return ExitValidation
		case CategoryNotFound:
			return ExitNotFound
		}
	}
	return ExitFailure
}
