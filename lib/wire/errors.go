// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedEndOfArray is returned when the input ends before a
	// multi-byte value (varint, fixed-width integer, length-prefixed
	// payload) is complete.
	ErrUnexpectedEndOfArray = errors.New("unexpected end of array")

	// ErrIntegerOutOfRange is returned when a varint's accumulated
	// magnitude exceeds MaxSafeInteger.
	ErrIntegerOutOfRange = errors.New("integer out of range")

	// ErrUnexpectedCase reports an internal invariant violation. It
	// indicates a bug in the caller or in this module, never bad input.
	ErrUnexpectedCase = errors.New("unexpected case")
)

// DecodeError wraps a decoding failure with the offset at which the
// failing read started.
type DecodeError struct {
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("wire: %v at offset %d", e.Err, e.Offset)
}

// Unwrap returns the underlying sentinel so errors.Is works.
func (e *DecodeError) Unwrap() error { return e.Err }

func decodeError(offset int, err error) error {
	return &DecodeError{Offset: offset, Err: err}
}
