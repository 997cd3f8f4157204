// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package wire implements the byte-level primitives of the bincodec
// format: a growable [Encoder], a cursor-based [Decoder], fixed-width
// integers and floats, variable-length integers, and length-prefixed
// strings and byte arrays.
//
// Every write has a matching read:
//
//	encoder := wire.NewEncoder()
//	encoder.WriteVarUint(256)
//	encoder.WriteVarString("Hello world!")
//	data := encoder.Bytes()
//
//	decoder := wire.NewDecoder(data)
//	number, err := decoder.ReadVarUint()   // 256
//	text, err := decoder.ReadVarString()   // "Hello world!"
//	decoder.HasContent()                   // false
//
// # Byte order
//
// Fixed-width integers are little-endian unless the method name says
// BigEndian. Floats and 64-bit integers are big-endian IEEE754 / two's
// complement, matching the any-value wire format in lib/anyvalue.
//
// # Variable-length integers
//
// Unsigned varints carry 7 data bits per byte, least significant group
// first, with the high bit as the continuation flag. The output is
// identical to encoding/binary.PutUvarint for every value up to
// [MaxSafeInteger] (2^53-1), which is also the decode ceiling.
//
// Signed varints use sign-and-magnitude, not zigzag: the first byte
// holds the continuation flag, a sign flag (bit 6), and 6 data bits;
// later bytes are unsigned varint groups. A set sign flag with a zero
// magnitude is a distinct value (negative zero) that higher layers use
// as a marker, so [Encoder.WriteVarIntSign] and
// [Decoder.ReadVarIntSign] expose the flag directly.
//
// # Strings
//
// Strings are written as a varint byte length followed by UTF-8 bytes.
// The UTF-8 conversion is pluggable through [StringCodec]. Two
// implementations exist, [NativeStrings] and [PolyfillStrings], and
// they produce identical bytes for every input, including ill-formed
// UTF-8 (each invalid byte becomes U+FFFD).
//
// # Errors
//
// Encoder writes never fail; the buffer grows as needed. Decoder reads
// return [ErrUnexpectedEndOfArray] when the input ends before a value
// is complete and [ErrIntegerOutOfRange] when a varint exceeds the
// safe-integer ceiling. Both arrive wrapped in a [*DecodeError] that
// records the byte offset where the failing read started; use
// errors.Is to test for the sentinel. A failed read never moves the
// cursor.
//
// Neither type is safe for concurrent use.
package wire
