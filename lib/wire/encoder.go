// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"encoding/binary"
	"math"
)

// DefaultInitialSize is the capacity of an Encoder's first chunk.
const DefaultInitialSize = 100

// Options configures a new Encoder or Decoder. The zero value selects
// DefaultInitialSize and NativeStrings.
type Options struct {
	// InitialSize is the capacity of the encoder's first chunk.
	// Ignored by decoders.
	InitialSize int

	// Strings converts between Go strings and UTF-8 bytes for
	// WriteVarString and ReadVarString.
	Strings StringCodec
}

// Encoder is a growable write buffer. Written bytes live in a list of
// committed chunks plus one current chunk; the encoded length is the
// sum of the committed chunk lengths plus the write offset into the
// current chunk. When the current chunk fills up it is committed and a
// new chunk of at least double the capacity is allocated, so appends
// are amortized O(1) and nothing is ever copied until [Encoder.Bytes].
//
// The zero value is ready to use.
type Encoder struct {
	chunks  [][]byte
	current []byte
	offset  int

	initialSize int
	strings     StringCodec
}

// NewEncoder returns an empty Encoder with default options.
func NewEncoder() *Encoder {
	return NewEncoderOptions(Options{})
}

// NewEncoderOptions returns an empty Encoder configured by options.
func NewEncoderOptions(options Options) *Encoder {
	return &Encoder{
		initialSize: options.InitialSize,
		strings:     options.Strings,
	}
}

// StringCodec returns the codec used by WriteVarString.
func (e *Encoder) StringCodec() StringCodec {
	if e.strings == nil {
		return NativeStrings
	}
	return e.strings
}

// Len returns the number of bytes written so far.
func (e *Encoder) Len() int {
	length := e.offset
	for _, chunk := range e.chunks {
		length += len(chunk)
	}
	return length
}

// Bytes copies everything written so far into one contiguous slice.
// The result is independent of the encoder: later writes do not
// affect it. Writing after Bytes is allowed but rarely what callers
// want, since the returned slice will not reflect it.
func (e *Encoder) Bytes() []byte {
	result := make([]byte, e.Len())
	position := 0
	for _, chunk := range e.chunks {
		position += copy(result[position:], chunk)
	}
	copy(result[position:], e.current[:e.offset])
	return result
}

// Reset discards all written data. The current chunk is kept for
// reuse.
func (e *Encoder) Reset() {
	e.chunks = nil
	e.offset = 0
}

// EnsureCapacity guarantees that the next n bytes fit in the current
// chunk without further allocation. If they do not, the current chunk
// is committed and a chunk of at least 2*max(capacity, n) bytes
// replaces it.
func (e *Encoder) EnsureCapacity(n int) {
	capacity := len(e.current)
	if capacity-e.offset >= n {
		return
	}
	if capacity == 0 {
		e.current = make([]byte, max(e.firstChunkSize(), n))
		return
	}
	e.commit()
	e.current = make([]byte, max(capacity, n)*2)
}

// WriteUint8 appends one byte.
func (e *Encoder) WriteUint8(b byte) {
	capacity := len(e.current)
	if e.offset == capacity {
		if capacity == 0 {
			e.current = make([]byte, e.firstChunkSize())
		} else {
			e.commit()
			e.current = make([]byte, capacity*2)
		}
	}
	e.current[e.offset] = b
	e.offset++
}

// WriteByte appends one byte. It implements io.ByteWriter and never
// returns an error.
func (e *Encoder) WriteByte(b byte) error {
	e.WriteUint8(b)
	return nil
}

// WriteBytes appends data verbatim. Whatever fits goes into the
// current chunk; the remainder goes into a new chunk of at least
// double the previous capacity (or the remainder's length, if larger).
func (e *Encoder) WriteBytes(data []byte) {
	if len(e.current) == 0 {
		e.current = make([]byte, max(e.firstChunkSize(), len(data)))
	}
	capacity := len(e.current)
	written := copy(e.current[e.offset:], data)
	e.offset += written
	if rest := data[written:]; len(rest) > 0 {
		e.commit()
		e.current = make([]byte, max(capacity*2, len(rest)))
		e.offset = copy(e.current, rest)
	}
}

// Write implements io.Writer. It always consumes all of p.
func (e *Encoder) Write(p []byte) (int, error) {
	e.WriteBytes(p)
	return len(p), nil
}

// WriteEncoder appends the current contents of other.
func (e *Encoder) WriteEncoder(other *Encoder) {
	e.WriteBytes(other.Bytes())
}

// Set overwrites the byte at position, which must already have been
// written (position < Len()). It is used to backpatch fixed-width
// headers once the payload length is known. Set panics if position
// is outside the written range.
func (e *Encoder) Set(position int, b byte) {
	if position < 0 || position >= e.Len() {
		panic("wire: Set position out of written range")
	}
	for _, chunk := range e.chunks {
		if position < len(chunk) {
			chunk[position] = b
			return
		}
		position -= len(chunk)
	}
	e.current[position] = b
}

// SetUint8 is Set under the fixed-width naming scheme.
func (e *Encoder) SetUint8(position int, value uint8) {
	e.Set(position, value)
}

// SetUint16 overwrites two little-endian bytes starting at position.
func (e *Encoder) SetUint16(position int, value uint16) {
	e.Set(position, byte(value))
	e.Set(position+1, byte(value>>8))
}

// SetUint32 overwrites four little-endian bytes starting at position.
func (e *Encoder) SetUint32(position int, value uint32) {
	for i := range 4 {
		e.Set(position+i, byte(value))
		value >>= 8
	}
}

// WriteUint16 appends value as two little-endian bytes.
func (e *Encoder) WriteUint16(value uint16) {
	e.WriteUint8(byte(value))
	e.WriteUint8(byte(value >> 8))
}

// WriteUint32 appends value as four little-endian bytes.
func (e *Encoder) WriteUint32(value uint32) {
	for range 4 {
		e.WriteUint8(byte(value))
		value >>= 8
	}
}

// WriteUint32BigEndian appends value as four big-endian bytes.
func (e *Encoder) WriteUint32BigEndian(value uint32) {
	for i := 3; i >= 0; i-- {
		e.WriteUint8(byte(value >> (8 * i)))
	}
}

// WriteFloat32 appends value as a big-endian IEEE754 single.
func (e *Encoder) WriteFloat32(value float32) {
	binary.BigEndian.PutUint32(e.reserve(4), math.Float32bits(value))
}

// WriteFloat64 appends value as a big-endian IEEE754 double.
func (e *Encoder) WriteFloat64(value float64) {
	binary.BigEndian.PutUint64(e.reserve(8), math.Float64bits(value))
}

// WriteBigInt64 appends value as eight big-endian two's complement
// bytes.
func (e *Encoder) WriteBigInt64(value int64) {
	binary.BigEndian.PutUint64(e.reserve(8), uint64(value))
}

// WriteBigUint64 appends value as eight big-endian bytes.
func (e *Encoder) WriteBigUint64(value uint64) {
	binary.BigEndian.PutUint64(e.reserve(8), value)
}

// WriteVarBytes appends a varint length followed by data.
func (e *Encoder) WriteVarBytes(data []byte) {
	e.WriteVarUint(uint64(len(data)))
	e.WriteBytes(data)
}

// WriteVarString appends a varint byte length followed by the UTF-8
// encoding of s produced by the encoder's StringCodec.
func (e *Encoder) WriteVarString(s string) {
	e.WriteVarBytes(e.StringCodec().AppendString(nil, s))
}

// reserve makes room for n contiguous bytes in the current chunk,
// advances the offset past them, and returns them for the caller to
// fill.
func (e *Encoder) reserve(n int) []byte {
	e.EnsureCapacity(n)
	view := e.current[e.offset : e.offset+n]
	e.offset += n
	return view
}

// commit moves the written part of the current chunk onto the chunk
// list. The caller replaces e.current afterwards.
func (e *Encoder) commit() {
	if e.offset > 0 {
		e.chunks = append(e.chunks, e.current[:e.offset:e.offset])
	}
	e.offset = 0
}

func (e *Encoder) firstChunkSize() int {
	if e.initialSize > 0 {
		return e.initialSize
	}
	return DefaultInitialSize
}
