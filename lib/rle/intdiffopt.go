// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package rle

import "github.com/bureau-foundation/bincodec/lib/wire"

// IntDiffOptRleEncoder run-length encodes the differences between
// consecutive values. Each run is written as one signed varint holding
// diff*2+hasCount, followed by count-2 when hasCount is set.
// [1, 2, 3, 2] is written as 3, 1, -2: diff 1 three times, then
// diff -1 once.
//
// Peers that unpack the low bit with 32-bit arithmetic only accept
// differences that fit in 31 bits. This encoder does not check; its
// own decoder handles any difference whose packed form stays within
// wire.MaxSafeInteger.
type IntDiffOptRleEncoder struct {
	encoder *wire.Encoder
	state   int64
	diff    int64
	count   int
}

// NewIntDiffOptRleEncoder returns an empty encoder. The first
// difference is taken against zero.
func NewIntDiffOptRleEncoder() *IntDiffOptRleEncoder {
	return &IntDiffOptRleEncoder{encoder: wire.NewEncoder()}
}

// Write appends value to the stream.
func (e *IntDiffOptRleEncoder) Write(value int64) {
	if e.diff == value-e.state && e.count > 0 {
		e.state = value
		e.count++
		return
	}
	e.flush()
	e.count = 1
	e.diff = value - e.state
	e.state = value
}

// Bytes flushes the open run and returns the encoded stream.
func (e *IntDiffOptRleEncoder) Bytes() []byte {
	e.flush()
	e.count = 0
	return e.encoder.Bytes()
}

func (e *IntDiffOptRleEncoder) flush() {
	if e.count == 0 {
		return
	}
	encoded := e.diff * 2
	if e.count > 1 {
		encoded++
	}
	e.encoder.WriteVarInt(encoded)
	if e.count > 1 {
		e.encoder.WriteVarUint(uint64(e.count - 2))
	}
}

// IntDiffOptRleDecoder reads a stream produced by
// [IntDiffOptRleEncoder].
type IntDiffOptRleDecoder struct {
	decoder *wire.Decoder
	state   int64
	diff    int64
	count   int
}

// NewIntDiffOptRleDecoder returns a decoder over data.
func NewIntDiffOptRleDecoder(data []byte) *IntDiffOptRleDecoder {
	return &IntDiffOptRleDecoder{decoder: wire.NewDecoder(data)}
}

// Read returns the next value.
func (d *IntDiffOptRleDecoder) Read() (int64, error) {
	if d.count == 0 {
		encoded, err := d.decoder.ReadVarInt()
		if err != nil {
			return 0, err
		}
		// Arithmetic shift floors, so negative differences survive.
		d.diff = encoded >> 1
		d.count = 1
		if encoded&1 != 0 {
			extra, err := d.decoder.ReadVarUint()
			if err != nil {
				return 0, err
			}
			d.count = int(extra) + 2
		}
	}
	d.state += d.diff
	d.count--
	return d.state, nil
}
