// Copyright 2026 The AdminTUI Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "fmt"

// ErrorCategory classifies a failure so main() can pick an exit code
// without parsing message text.
type ErrorCategory string

const (
	// CategoryValidation: the operator passed bad flags or a bad config
	// file. Fix the input and run again.
	CategoryValidation ErrorCategory = "validation"

	// CategoryNotFound: a referenced resource (snapshot ID, config
	// path, crontab binary) does not exist.
	CategoryNotFound ErrorCategory = "not_found"

	// CategoryInternal: an unexpected failure, such as an I/O error or
	// a crontab subprocess that exited non-zero.
	CategoryInternal ErrorCategory = "internal"
)

// ToolError is a categorised error returned from the binary's run
// function. It wraps the underlying error so errors.Is and errors.As
// still see the full chain.
type ToolError struct {
	Category ErrorCategory
	Err      error

	// Hint is an optional next step for the operator, printed after
	// the error message separated by a blank line.
	Hint string
}

func (e *ToolError) Error() string {
	if e.Hint == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + "\n\n" + e.Hint
}

func (e *ToolError) Unwrap() error { return e.Err }

// WithHint sets the operator hint and returns the receiver for
// chaining at the construction site.
func (e *ToolError) WithHint(hint string) *ToolError {
	e.Hint = hint
	return e
}

// Validation creates a validation error.
func Validation(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryValidation, Err: fmt.Errorf(format, args...)}
}

// NotFound creates a not-found error.
func NotFound(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryNotFound, Err: fmt.Errorf(format, args...)}
}

// Internal creates an internal error.
func Internal(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryInternal, Err: fmt.Errorf(format, args...)}
}
