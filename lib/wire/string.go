// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// StringCodec converts between Go strings and the UTF-8 bytes written
// on the wire. Implementations must agree byte for byte: any input
// encoded by one must decode identically with the other, and ill-formed
// UTF-8 is replaced with U+FFFD one invalid byte at a time.
type StringCodec interface {
	// Name identifies the codec in configuration and logs.
	Name() string

	// AppendString appends the UTF-8 encoding of s to dst.
	AppendString(dst []byte, s string) []byte

	// DecodeString converts UTF-8 bytes into a string.
	DecodeString(data []byte) string
}

var (
	// NativeStrings passes well-formed input straight through Go's
	// string/byte conversion. Ill-formed input is repaired with the
	// golang.org/x/text UTF-8 transcoder on encode and the runtime's
	// rune conversion on decode.
	NativeStrings StringCodec = nativeStrings{}

	// PolyfillStrings encodes and decodes one code point at a time
	// with explicit bit manipulation.
	PolyfillStrings StringCodec = polyfillStrings{}
)

// ParseStringCodec returns the codec registered under name: "native"
// or "polyfill". The empty string selects NativeStrings.
func ParseStringCodec(name string) (StringCodec, error) {
	switch name {
	case "", NativeStrings.Name():
		return NativeStrings, nil
	case PolyfillStrings.Name():
		return PolyfillStrings, nil
	default:
		return nil, fmt.Errorf("unknown string codec %q (want %q or %q)",
			name, NativeStrings.Name(), PolyfillStrings.Name())
	}
}

type nativeStrings struct{}

func (nativeStrings) Name() string { return "native" }

func (nativeStrings) AppendString(dst []byte, s string) []byte {
	if utf8.ValidString(s) {
		return append(dst, s...)
	}
	// The x/text encoder only fails on transformer errors, which the
	// UTF-8 replacement transform never produces.
	repaired, _ := unicode.UTF8.NewEncoder().String(s)
	return append(dst, repaired...)
}

func (nativeStrings) DecodeString(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	// One U+FFFD per invalid byte, matching AppendString. The x/text
	// decoder replaces maximal subparts instead.
	return string([]rune(string(data)))
}

type polyfillStrings struct{}

func (polyfillStrings) Name() string { return "polyfill" }

// AppendString ranges over s, which yields utf8.RuneError for each
// invalid byte, and writes every code point out by hand.
func (polyfillStrings) AppendString(dst []byte, s string) []byte {
	for _, r := range s {
		switch {
		case r < 0x80:
			dst = append(dst, byte(r))
		case r < 0x800:
			dst = append(dst,
				0xc0|byte(r>>6),
				0x80|byte(r)&0x3f)
		case r < 0x10000:
			dst = append(dst,
				0xe0|byte(r>>12),
				0x80|byte(r>>6)&0x3f,
				0x80|byte(r)&0x3f)
		default:
			dst = append(dst,
				0xf0|byte(r>>18),
				0x80|byte(r>>12)&0x3f,
				0x80|byte(r>>6)&0x3f,
				0x80|byte(r)&0x3f)
		}
	}
	return dst
}

func (polyfillStrings) DecodeString(data []byte) string {
	var builder strings.Builder
	builder.Grow(len(data))
	for len(data) > 0 {
		if data[0] < utf8.RuneSelf {
			builder.WriteByte(data[0])
			data = data[1:]
			continue
		}
		r, size := utf8.DecodeRune(data)
		builder.WriteRune(r)
		data = data[size:]
	}
	return builder.String()
}
