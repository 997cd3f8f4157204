// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package anycmd

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/bureau-foundation/bincodec/cmd/bincodec/cli"
	"github.com/bureau-foundation/bincodec/lib/anyvalue"
	"github.com/bureau-foundation/bincodec/lib/wire"
)

// decodeValues decodes data as consecutive any-values. With sequence
// false exactly one value must fill data. Decode failures are
// validation errors: the input is what is wrong.
func decodeValues(data []byte, options wire.Options, sequence bool) ([]anyvalue.Value, error) {
	if err := cli.RequireInput(data, "any-value data"); err != nil {
		return nil, err
	}
	if !sequence {
		value, err := anyvalue.DecodeOptions(data, options)
		if err != nil {
			return nil, decodeFailure(data, err)
		}
		return []anyvalue.Value{value}, nil
	}
	values, err := anyvalue.DecodeAll(data, options)
	if err != nil {
		return nil, decodeFailure(data, err)
	}
	return values, nil
}

// decodeFailure wraps a decode error and, when the input looks like
// something other than binary any-values, says so.
func decodeFailure(data []byte, err error) error {
	failure := cli.Validation("decode: %w", err)
	trimmed := bytes.TrimSpace(data)
	switch {
	case errors.Is(err, anyvalue.ErrTrailingData):
		return failure.WithHint("The input holds more than one value. Pass -s to read it as a sequence.")
	case len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[' || trimmed[0] == '"'):
		return failure.WithHint("The input looks like JSON. Did you mean 'bincodec encode'?")
	case isHexText(trimmed):
		return failure.WithHint("The input looks like hex text. Pass --hex to decode it first.")
	}
	return failure
}

func isHexText(data []byte) bool {
	if len(data) < 2 {
		return false
	}
	for _, b := range data {
		switch {
		case b >= '0' && b <= '9', b >= 'a' && b <= 'f', b >= 'A' && b <= 'F':
		case b == ' ' || b == '\n' || b == '\t' || b == '\r':
		default:
			return false
		}
	}
	return true
}

// encodeAll writes values back to back with the configured
// encoder.
func encodeAll(values []anyvalue.Value, options wire.Options) []byte {
	encoder := wire.NewEncoderOptions(options)
	for _, value := range values {
		anyvalue.Write(encoder, value)
	}
	return encoder.Bytes()
}

// firstDifference returns the offset of the first byte where a and b
// differ, or the shorter length when one is a prefix of the other.
func firstDifference(a, b []byte) int {
	length := min(len(a), len(b))
	for offset := range length {
		if a[offset] != b[offset] {
			return offset
		}
	}
	return length
}

// countLabel formats n with its noun, pluralized.
func countLabel(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
