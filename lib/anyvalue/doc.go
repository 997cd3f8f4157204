// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package anyvalue encodes dynamic, JSON-like values in a compact
// self-describing binary form.
//
// Every value starts with one tag byte in 116..127 followed by its
// payload:
//
//	127 undefined   none
//	126 null        none
//	125 integer     signed varint (sign flag, so -0 exists)
//	124 float32     4 bytes big-endian
//	123 float64     8 bytes big-endian
//	122 bigint      8 bytes big-endian two's complement
//	121 false       none
//	120 true        none
//	119 string      varint byte length, UTF-8
//	118 object      varint field count, then key string and value per field
//	117 array       varint length, then values
//	116 bytes       varint length, raw bytes
//
// A value is one of the concrete [Value] types. [FromGo] and [Number]
// choose the smallest variant that reproduces a Go number exactly;
// [Write] and [Read] move values through a wire.Encoder and
// wire.Decoder. [Encode] and [Decode] wrap both for whole buffers.
//
// Bridges convert to and from JSON ([FromJSON], [ToJSON]), YAML
// ([FromYAML], [ToYAML]) and CBOR ([FromCBOR], [ToCBOR]). [Diagnose]
// prints a value with its variants visible, and [FingerprintOf] hashes
// its encoding.
package anyvalue
