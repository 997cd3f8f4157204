// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package rle

import "github.com/bureau-foundation/bincodec/lib/wire"

// IntDiffEncoder writes each value as the signed difference from the
// previous one. [3, 1100, 1101, 1050, 0] starting from 0 is written as
// varints 3, 1097, 1, -51, -1050.
type IntDiffEncoder struct {
	encoder *wire.Encoder
	state   int64
}

// NewIntDiffEncoder returns an encoder whose first difference is taken
// against start.
func NewIntDiffEncoder(start int64) *IntDiffEncoder {
	return &IntDiffEncoder{encoder: wire.NewEncoder(), state: start}
}

// Write appends value to the stream.
func (e *IntDiffEncoder) Write(value int64) {
	e.encoder.WriteVarInt(value - e.state)
	e.state = value
}

// Bytes returns the encoded stream.
func (e *IntDiffEncoder) Bytes() []byte {
	return e.encoder.Bytes()
}

// IntDiffDecoder reads a stream produced by [IntDiffEncoder].
type IntDiffDecoder struct {
	decoder *wire.Decoder
	state   int64
}

// NewIntDiffDecoder returns a decoder over data. start must match the
// encoder's.
func NewIntDiffDecoder(data []byte, start int64) *IntDiffDecoder {
	return &IntDiffDecoder{decoder: wire.NewDecoder(data), state: start}
}

// Read returns the next value.
func (d *IntDiffDecoder) Read() (int64, error) {
	diff, err := d.decoder.ReadVarInt()
	if err != nil {
		return 0, err
	}
	d.state += diff
	return d.state, nil
}

// RleIntDiffEncoder combines [IntDiffEncoder] and [RleEncoder]: it
// writes the difference to each new value and counts repeats of the
// same value. [1, 1, 1, 2, 3, 4, 5, 6] starting from 0 is written as
// 1, 2, 1, 0, 1, 0, 1, 0, 1, 0, 1 (diff, count-1 pairs, the last count
// omitted).
type RleIntDiffEncoder struct {
	encoder *wire.Encoder
	state   int64
	count   int
}

// NewRleIntDiffEncoder returns an encoder whose first difference is
// taken against start.
func NewRleIntDiffEncoder(start int64) *RleIntDiffEncoder {
	return &RleIntDiffEncoder{encoder: wire.NewEncoder(), state: start}
}

// Write appends value to the stream.
func (e *RleIntDiffEncoder) Write(value int64) {
	if e.state == value && e.count > 0 {
		e.count++
		return
	}
	if e.count > 0 {
		e.encoder.WriteVarUint(uint64(e.count - 1))
	}
	e.count = 1
	e.encoder.WriteVarInt(value - e.state)
	e.state = value
}

// Bytes returns the encoded stream. The open run is left without a
// count.
func (e *RleIntDiffEncoder) Bytes() []byte {
	return e.encoder.Bytes()
}

// RleIntDiffDecoder reads a stream produced by [RleIntDiffEncoder].
type RleIntDiffDecoder struct {
	decoder *wire.Decoder
	state   int64
	count   int
}

// NewRleIntDiffDecoder returns a decoder over data. start must match
// the encoder's.
func NewRleIntDiffDecoder(data []byte, start int64) *RleIntDiffDecoder {
	return &RleIntDiffDecoder{decoder: wire.NewDecoder(data), state: start}
}

// Read returns the next value. Once the input is exhausted the last
// value is returned indefinitely.
func (d *RleIntDiffDecoder) Read() (int64, error) {
	if d.count == 0 {
		diff, err := d.decoder.ReadVarInt()
		if err != nil {
			return 0, err
		}
		d.state += diff
		d.count, err = readRunLength(d.decoder, 1)
		if err != nil {
			return 0, err
		}
	}
	d.count--
	return d.state, nil
}
