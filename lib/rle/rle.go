// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package rle

import "github.com/bureau-foundation/bincodec/lib/wire"

const readNPrealloc = 1024

// Reader is implemented by every decoder in this package.
type Reader[T any] interface {
	Read() (T, error)
}

// ReadN reads n values from reader, stopping at the first error. n is
// not trusted as an allocation size: decoders that repeat their last
// run never fail, so the slice grows only as values arrive.
func ReadN[T any](reader Reader[T], n int) ([]T, error) {
	values := make([]T, 0, min(max(n, 0), readNPrealloc))
	for range n {
		value, err := reader.Read()
		if err != nil {
			return values, err
		}
		values = append(values, value)
	}
	return values, nil
}

// RleEncoder run-length encodes values of any comparable type.
//
// Writing [1, 1, 1, 7] produces write(1), varuint(2), write(7). The
// count of the last run is only emitted when the next run starts, so
// the encoded stream always ends with a value.
type RleEncoder[T comparable] struct {
	encoder *wire.Encoder
	write   func(*wire.Encoder, T)
	state   T
	count   int
}

// NewRleEncoder returns an encoder that emits each run's value with
// write.
func NewRleEncoder[T comparable](write func(*wire.Encoder, T)) *RleEncoder[T] {
	return &RleEncoder[T]{encoder: wire.NewEncoder(), write: write}
}

// Write appends value to the stream.
func (r *RleEncoder[T]) Write(value T) {
	if r.count > 0 && r.state == value {
		r.count++
		return
	}
	if r.count > 0 {
		r.encoder.WriteVarUint(uint64(r.count - 1))
	}
	r.count = 1
	r.write(r.encoder, value)
	r.state = value
}

// Bytes returns the encoded stream. The open run is left without a
// count.
func (r *RleEncoder[T]) Bytes() []byte {
	return r.encoder.Bytes()
}

// RleDecoder reads a stream produced by [RleEncoder].
type RleDecoder[T any] struct {
	decoder *wire.Decoder
	read    func(*wire.Decoder) (T, error)
	state   T
	count   int
}

// NewRleDecoder returns a decoder over data that reads each run's
// value with read.
func NewRleDecoder[T any](data []byte, read func(*wire.Decoder) (T, error)) *RleDecoder[T] {
	return &RleDecoder[T]{decoder: wire.NewDecoder(data), read: read}
}

// Read returns the next value. Once the input is exhausted the last
// value is returned indefinitely.
func (r *RleDecoder[T]) Read() (T, error) {
	if r.count == 0 {
		value, err := r.read(r.decoder)
		if err != nil {
			var zero T
			return zero, err
		}
		r.state = value
		r.count, err = readRunLength(r.decoder, 1)
		if err != nil {
			var zero T
			return zero, err
		}
	}
	r.count--
	return r.state, nil
}

// readRunLength reads a run count stored with the given bias. With no
// input left it returns -1, which never reaches zero when decremented:
// the current value repeats forever.
func readRunLength(decoder *wire.Decoder, bias int) (int, error) {
	if !decoder.HasContent() {
		return -1, nil
	}
	count, err := decoder.ReadVarUint()
	if err != nil {
		return 0, err
	}
	return int(count) + bias, nil
}
