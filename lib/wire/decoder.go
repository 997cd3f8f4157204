// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"encoding/binary"
	"math"
)

// Decoder is a read cursor over an immutable byte slice. The position
// always satisfies 0 <= Pos() <= Len(); a read that would cross the
// end fails with ErrUnexpectedEndOfArray and leaves the position
// where it was.
type Decoder struct {
	data     []byte
	position int
	strings  StringCodec
}

// NewDecoder returns a Decoder positioned at the start of data. The
// decoder does not copy data; the caller must not modify it while the
// decoder (or any slice returned by ReadBytes) is in use.
func NewDecoder(data []byte) *Decoder {
	return &Decoder{data: data}
}

// NewDecoderOptions returns a Decoder over data configured by options.
func NewDecoderOptions(data []byte, options Options) *Decoder {
	return &Decoder{data: data, strings: options.Strings}
}

// StringCodec returns the codec used by ReadVarString.
func (d *Decoder) StringCodec() StringCodec {
	if d.strings == nil {
		return NativeStrings
	}
	return d.strings
}

// HasContent reports whether unread bytes remain.
func (d *Decoder) HasContent() bool {
	return d.position != len(d.data)
}

// Pos returns the current read offset.
func (d *Decoder) Pos() int { return d.position }

// Len returns the total length of the underlying data.
func (d *Decoder) Len() int { return len(d.data) }

// Remaining returns the number of unread bytes.
func (d *Decoder) Remaining() int { return len(d.data) - d.position }

// Clone returns an independent cursor over the same data at the same
// position. Advancing either decoder does not move the other, but both
// alias the same backing array.
func (d *Decoder) Clone() *Decoder {
	return d.CloneAt(d.position)
}

// CloneAt returns an independent cursor over the same data positioned
// at position. It panics if position is outside [0, Len()].
func (d *Decoder) CloneAt(position int) *Decoder {
	if position < 0 || position > len(d.data) {
		panic("wire: CloneAt position out of range")
	}
	return &Decoder{data: d.data, position: position, strings: d.strings}
}

// Skip advances the cursor by n bytes.
func (d *Decoder) Skip(n int) error {
	if err := d.need(n); err != nil {
		return err
	}
	d.position += n
	return nil
}

// ReadBytes returns a view of the next n bytes and advances past them.
// The view aliases the decoder's data; copy it if it must outlive or
// be isolated from the source. The view's capacity is clipped so that
// appending to it never overwrites later input.
func (d *Decoder) ReadBytes(n int) ([]byte, error) {
	if err := d.need(n); err != nil {
		return nil, err
	}
	start := d.position
	d.position += n
	return d.data[start:d.position:d.position], nil
}

// ReadVarBytes reads a varint length and then that many bytes, as a
// view (see ReadBytes).
func (d *Decoder) ReadVarBytes() ([]byte, error) {
	start := d.position
	length, err := d.ReadVarUint()
	if err != nil {
		return nil, err
	}
	if length > uint64(d.Remaining()) {
		d.position = start
		return nil, decodeError(start, ErrUnexpectedEndOfArray)
	}
	return d.ReadBytes(int(length))
}

// ReadTail returns a view of all unread bytes and moves the cursor to
// the end.
func (d *Decoder) ReadTail() []byte {
	view, _ := d.ReadBytes(d.Remaining())
	return view
}

// ReadUint8 reads one byte.
func (d *Decoder) ReadUint8() (uint8, error) {
	if err := d.need(1); err != nil {
		return 0, err
	}
	b := d.data[d.position]
	d.position++
	return b, nil
}

// ReadUint16 reads two little-endian bytes.
func (d *Decoder) ReadUint16() (uint16, error) {
	value, err := d.PeekUint16()
	if err == nil {
		d.position += 2
	}
	return value, err
}

// ReadUint32 reads four little-endian bytes.
func (d *Decoder) ReadUint32() (uint32, error) {
	value, err := d.PeekUint32()
	if err == nil {
		d.position += 4
	}
	return value, err
}

// ReadUint32BigEndian reads four big-endian bytes.
func (d *Decoder) ReadUint32BigEndian() (uint32, error) {
	if err := d.need(4); err != nil {
		return 0, err
	}
	value := binary.BigEndian.Uint32(d.data[d.position:])
	d.position += 4
	return value, nil
}

// PeekUint8 returns the next byte without advancing.
func (d *Decoder) PeekUint8() (uint8, error) {
	if err := d.need(1); err != nil {
		return 0, err
	}
	return d.data[d.position], nil
}

// PeekUint16 returns the next two little-endian bytes without
// advancing.
func (d *Decoder) PeekUint16() (uint16, error) {
	if err := d.need(2); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(d.data[d.position:]), nil
}

// PeekUint32 returns the next four little-endian bytes without
// advancing.
func (d *Decoder) PeekUint32() (uint32, error) {
	if err := d.need(4); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(d.data[d.position:]), nil
}

// ReadFloat32 reads a big-endian IEEE754 single.
func (d *Decoder) ReadFloat32() (float32, error) {
	bits, err := d.ReadUint32BigEndian()
	return math.Float32frombits(bits), err
}

// ReadFloat64 reads a big-endian IEEE754 double.
func (d *Decoder) ReadFloat64() (float64, error) {
	bits, err := d.ReadBigUint64()
	return math.Float64frombits(bits), err
}

// ReadBigInt64 reads eight big-endian two's complement bytes.
func (d *Decoder) ReadBigInt64() (int64, error) {
	bits, err := d.ReadBigUint64()
	return int64(bits), err
}

// ReadBigUint64 reads eight big-endian bytes.
func (d *Decoder) ReadBigUint64() (uint64, error) {
	if err := d.need(8); err != nil {
		return 0, err
	}
	value := binary.BigEndian.Uint64(d.data[d.position:])
	d.position += 8
	return value, nil
}

// ReadVarString reads a varint byte length and decodes that many
// bytes with the decoder's StringCodec.
func (d *Decoder) ReadVarString() (string, error) {
	data, err := d.ReadVarBytes()
	if err != nil {
		return "", err
	}
	return d.StringCodec().DecodeString(data), nil
}

// PeekVarString reads a string without advancing.
func (d *Decoder) PeekVarString() (string, error) {
	start := d.position
	s, err := d.ReadVarString()
	d.position = start
	return s, err
}

// need fails unless n more bytes are available.
func (d *Decoder) need(n int) error {
	if n < 0 || n > len(d.data)-d.position {
		return decodeError(d.position, ErrUnexpectedEndOfArray)
	}
	return nil
}
