// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/bureau-foundation/bincodec/cmd/bincodec/cli"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"handled exit", &cli.ExitError{Code: 1}, 1},
		{"wrapped handled exit", fmt.Errorf("validate: %w", &cli.ExitError{Code: 4}), 4},
		{"validation", cli.Validation("bad flag"), 2},
		{"not found", cli.NotFound("no such file"), 3},
		{"internal", cli.Internal("write failed"), 1},
		{"plain error", errors.New("boom"), 1},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := exitCode(test.err); got != test.want {
				t.Errorf("exitCode(%v) = %d, want %d", test.err, got, test.want)
			}
		})
	}
}
