// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
)

func TestToolError_ErrorWithoutHint(t *testing.T) {
	err := Validation("--hex and --base64 are mutually exclusive")
	if err.Error() != "--hex and --base64 are mutually exclusive" {
		t.Errorf("Error() = %q", err.Error())
	}
	if strings.Contains(err.Error(), "\n\n") {
		t.Error("empty hint should not add blank line to error message")
	}
}

func TestToolError_ErrorWithHint(t *testing.T) {
	err := Internal("unknown tag 123 at offset 0").
		WithHint("The input looks like JSON. Did you mean 'bincodec encode'?")

	want := "unknown tag 123 at offset 0\n\nThe input looks like JSON. Did you mean 'bincodec encode'?"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestToolError_WithHintReturnsReceiver(t *testing.T) {
	original := Validation("bad input")
	if chained := original.WithHint("fix it"); original != chained {
		t.Error("WithHint should return the same pointer")
	}
}

func TestToolError_UnwrapsToCause(t *testing.T) {
	err := Internal("read stdin: %w", io.ErrUnexpectedEOF)
	wrapped := fmt.Errorf("decode: %w", err)

	if !errors.Is(wrapped, io.ErrUnexpectedEOF) {
		t.Error("errors.Is should see the wrapped cause through ToolError")
	}
	var toolErr *ToolError
	if !errors.As(wrapped, &toolErr) || toolErr.Category != CategoryInternal {
		t.Errorf("errors.As found %+v", toolErr)
	}
}

func TestToolError_Categories(t *testing.T) {
	tests := []struct {
		name     string
		err      *ToolError
		category ErrorCategory
		exitCode int
	}{
		{"Validation", Validation("bad"), CategoryValidation, 2},
		{"NotFound", NotFound("missing"), CategoryNotFound, 3},
		{"Internal", Internal("bug"), CategoryInternal, 1},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if test.err.Category != test.category {
				t.Errorf("Category = %q, want %q", test.err.Category, test.category)
			}
			if code := test.err.ExitCode(); code != test.exitCode {
				t.Errorf("ExitCode() = %d, want %d", code, test.exitCode)
			}
			if got := CategoryOf(fmt.Errorf("wrapped: %w", test.err)); got != test.category {
				t.Errorf("CategoryOf = %q, want %q", got, test.category)
			}
		})
	}

	if got := CategoryOf(errors.New("plain")); got != CategoryInternal {
		t.Errorf("CategoryOf(plain error) = %q, want internal", got)
	}
}
