// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package anyvalue

import (
	"errors"
	"fmt"
)

var (
	// ErrTrailingData is returned by Decode when bytes remain after the
	// first value.
	ErrTrailingData = errors.New("trailing data after value")

	// ErrTooDeep is returned when arrays and objects nest deeper than
	// MaxDepth.
	ErrTooDeep = errors.New("value nested too deeply")
)

// UnknownTagError reports a tag byte outside 116..127.
type UnknownTagError struct {
	Tag    byte
	Offset int
}

func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("anyvalue: unknown tag %d at offset %d", e.Tag, e.Offset)
}
