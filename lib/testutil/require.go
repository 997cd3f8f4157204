// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// TestingT is the subset of testing.TB the helpers need.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
}

// Hex decodes a hex literal, ignoring whitespace, or fails the test.
//
//	want := testutil.Hex(t, "7d 80 01")
func Hex(t TestingT, literal string) []byte {
	t.Helper()
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, literal)
	decoded, err := hex.DecodeString(cleaned)
	if err != nil {
		t.Fatalf("invalid hex fixture %q: %v", literal, err)
	}
	return decoded
}

// RequireBytes fails the test unless got equals want.
//
//	testutil.RequireBytes(t, encoder.Bytes(), []byte{0x80, 0x01}, "varuint %d", 128)
func RequireBytes(t TestingT, got, want []byte, msgAndArgs ...any) {
	t.Helper()
	if !bytes.Equal(got, want) {
		t.Fatalf("%s: got % x, want % x", formatMessage(msgAndArgs), got, want)
	}
}

// RequireErrorIs fails the test unless errors.Is(err, target).
func RequireErrorIs(t TestingT, err, target error, msgAndArgs ...any) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("%s: got error %v, want %v", formatMessage(msgAndArgs), err, target)
	}
}

// formatMessage formats optional message arguments into a string.
// Accepts either a single string or a format string followed by args.
func formatMessage(msgAndArgs []any) string {
	if len(msgAndArgs) == 0 {
		return "(no message)"
	}
	if len(msgAndArgs) == 1 {
		if s, ok := msgAndArgs[0].(string); ok {
			return s
		}
		return fmt.Sprintf("%v", msgAndArgs[0])
	}
	if format, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(format, msgAndArgs[1:]...)
	}
	return fmt.Sprintf("%v", msgAndArgs)
}
