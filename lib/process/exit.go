// Copyright 2026 The AdminTUI Authors
// SPDX-License-Identifier: Apache-2.0

package process

import (
	"fmt"
	"io"
	"os"
)

// Fatal writes "error: err" to stderr and exits with code.
func Fatal(err error, code int) {
	report(os.Stderr, err)
	os.Exit(code)
}

func report(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %v\n", err)
}
