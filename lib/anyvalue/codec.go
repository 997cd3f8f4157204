// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package anyvalue

import (
	"encoding/base64"
	"fmt"

	"github.com/bureau-foundation/bincodec/lib/wire"
)

// Encode converts v with [FromGo] and returns its encoding.
func Encode(v any) []byte {
	return EncodeOptions(v, wire.Options{})
}

// EncodeOptions is Encode with an explicitly configured encoder.
func EncodeOptions(v any, options wire.Options) []byte {
	encoder := wire.NewEncoderOptions(options)
	Write(encoder, FromGo(v))
	return encoder.Bytes()
}

// Decode reads exactly one value from data. Bytes left over after the
// value are an error wrapping ErrTrailingData.
func Decode(data []byte) (Value, error) {
	return DecodeOptions(data, wire.Options{})
}

// DecodeOptions is Decode with an explicitly configured decoder.
func DecodeOptions(data []byte, options wire.Options) (Value, error) {
	decoder := wire.NewDecoderOptions(data, options)
	value, err := Read(decoder)
	if err != nil {
		return nil, err
	}
	if decoder.HasContent() {
		return nil, &wire.DecodeError{Offset: decoder.Pos(), Err: ErrTrailingData}
	}
	return value, nil
}

// DecodeAll reads consecutive values until data is exhausted. On error
// it returns the values decoded before the failure.
func DecodeAll(data []byte, options wire.Options) ([]Value, error) {
	decoder := wire.NewDecoderOptions(data, options)
	var values []Value
	for decoder.HasContent() {
		value, err := Read(decoder)
		if err != nil {
			return values, fmt.Errorf("value %d: %w", len(values), err)
		}
		values = append(values, value)
	}
	return values, nil
}

// EncodeBase64 returns the standard base64 encoding, with padding, of
// Encode(v).
func EncodeBase64(v any) string {
	return base64.StdEncoding.EncodeToString(Encode(v))
}

// DecodeBase64 decodes standard base64 text and then the value it
// holds.
func DecodeBase64(text string) (Value, error) {
	data, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("anyvalue: decoding base64: %w", err)
	}
	return Decode(data)
}
