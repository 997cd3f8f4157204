// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package rle

import "github.com/bureau-foundation/bincodec/lib/wire"

// optRun is the run state shared by the optimized unsigned encoders.
// A singleton is written as a non-negative signed varint; a longer run
// sets the sign flag and follows with count-2 as a varuint.
type optRun struct {
	encoder *wire.Encoder
	state   uint64
	count   int
}

func (r *optRun) flush() {
	if r.count == 0 {
		return
	}
	r.encoder.WriteVarIntSign(r.state, r.count > 1)
	if r.count > 1 {
		r.encoder.WriteVarUint(uint64(r.count - 2))
	}
}

// bytes flushes and closes the open run, then materializes the stream.
func (r *optRun) bytes() []byte {
	r.flush()
	r.count = 0
	return r.encoder.Bytes()
}

// UintOptRleEncoder run-length encodes unsigned integers without the
// per-value count overhead of [RleEncoder]. [1, 2, 3, 3, 3] is written
// as 1, 2, -3, 1: the negative sign on 3 announces a count of 1+2.
//
// Values must not exceed [wire.MaxSafeInteger].
type UintOptRleEncoder struct {
	run optRun
}

// NewUintOptRleEncoder returns an empty encoder.
func NewUintOptRleEncoder() *UintOptRleEncoder {
	return &UintOptRleEncoder{run: optRun{encoder: wire.NewEncoder()}}
}

// Write appends value to the stream.
func (e *UintOptRleEncoder) Write(value uint64) {
	if e.run.state == value && e.run.count > 0 {
		e.run.count++
		return
	}
	e.run.flush()
	e.run.count = 1
	e.run.state = value
}

// Bytes flushes the open run and returns the encoded stream. Writing
// after Bytes starts a new run.
func (e *UintOptRleEncoder) Bytes() []byte {
	return e.run.bytes()
}

// UintOptRleDecoder reads a stream produced by [UintOptRleEncoder].
type UintOptRleDecoder struct {
	decoder *wire.Decoder
	state   uint64
	count   int
}

// NewUintOptRleDecoder returns a decoder over data.
func NewUintOptRleDecoder(data []byte) *UintOptRleDecoder {
	return &UintOptRleDecoder{decoder: wire.NewDecoder(data)}
}

// Read returns the next value. Unlike [RleDecoder], reading past the
// last run is an error.
func (d *UintOptRleDecoder) Read() (uint64, error) {
	if d.count == 0 {
		value, count, err := readOptRun(d.decoder)
		if err != nil {
			return 0, err
		}
		d.state, d.count = value, count
	}
	d.count--
	return d.state, nil
}

// IncUintOptRleEncoder run-length encodes runs of consecutively
// increasing unsigned integers. [7, 8, 9, 3] is written as -7, 1, 3:
// a run of three starting at 7, then the singleton 3.
type IncUintOptRleEncoder struct {
	run optRun
}

// NewIncUintOptRleEncoder returns an empty encoder.
func NewIncUintOptRleEncoder() *IncUintOptRleEncoder {
	return &IncUintOptRleEncoder{run: optRun{encoder: wire.NewEncoder()}}
}

// Write appends value to the stream.
func (e *IncUintOptRleEncoder) Write(value uint64) {
	if e.run.state+uint64(e.run.count) == value && e.run.count > 0 {
		e.run.count++
		return
	}
	e.run.flush()
	e.run.count = 1
	e.run.state = value
}

// Bytes flushes the open run and returns the encoded stream.
func (e *IncUintOptRleEncoder) Bytes() []byte {
	return e.run.bytes()
}

// IncUintOptRleDecoder reads a stream produced by
// [IncUintOptRleEncoder].
type IncUintOptRleDecoder struct {
	decoder *wire.Decoder
	state   uint64
	count   int
}

// NewIncUintOptRleDecoder returns a decoder over data.
func NewIncUintOptRleDecoder(data []byte) *IncUintOptRleDecoder {
	return &IncUintOptRleDecoder{decoder: wire.NewDecoder(data)}
}

// Read returns the next value.
func (d *IncUintOptRleDecoder) Read() (uint64, error) {
	if d.count == 0 {
		value, count, err := readOptRun(d.decoder)
		if err != nil {
			return 0, err
		}
		d.state, d.count = value, count
	}
	d.count--
	value := d.state
	d.state++
	return value, nil
}

// readOptRun reads the head of one optimized run: its value and its
// length.
func readOptRun(decoder *wire.Decoder) (value uint64, count int, err error) {
	value, negative, err := decoder.ReadVarIntSign()
	if err != nil {
		return 0, 0, err
	}
	if !negative {
		return value, 1, nil
	}
	extra, err := decoder.ReadVarUint()
	if err != nil {
		return 0, 0, err
	}
	return value, int(extra) + 2, nil
}
