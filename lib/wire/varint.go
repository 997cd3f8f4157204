// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wire

// MaxSafeInteger is the largest integer a varint may carry: 2^53-1,
// the largest integer an IEEE754 double represents exactly. Peers that
// decode into doubles rely on this ceiling.
const MaxSafeInteger = 1<<53 - 1

// MinSafeInteger is the negation of MaxSafeInteger.
const MinSafeInteger = -MaxSafeInteger

const (
	continuationBit = 0x80
	signBit         = 0x40
	lowSevenBits    = 0x7f
	lowSixBits      = 0x3f
)

// WriteVarUint appends value as an unsigned varint. Values above
// MaxSafeInteger are written without complaint but will be rejected
// by ReadVarUint.
func (e *Encoder) WriteVarUint(value uint64) {
	for value > lowSevenBits {
		e.WriteUint8(continuationBit | byte(value&lowSevenBits))
		value >>= 7
	}
	e.WriteUint8(byte(value))
}

// WriteVarInt appends value as a sign-and-magnitude varint.
func (e *Encoder) WriteVarInt(value int64) {
	if value < 0 {
		// ^value+1 is the magnitude even for math.MinInt64.
		e.WriteVarIntSign(uint64(^value)+1, true)
		return
	}
	e.WriteVarIntSign(uint64(value), false)
}

// WriteVarIntSign appends a signed varint from an explicit magnitude
// and sign flag. Passing (0, true) writes negative zero, which
// WriteVarInt cannot express.
func (e *Encoder) WriteVarIntSign(magnitude uint64, negative bool) {
	first := byte(magnitude & lowSixBits)
	if magnitude > lowSixBits {
		first |= continuationBit
	}
	if negative {
		first |= signBit
	}
	e.WriteUint8(first)
	magnitude >>= 6
	for magnitude > 0 {
		next := byte(magnitude & lowSevenBits)
		if magnitude > lowSevenBits {
			next |= continuationBit
		}
		e.WriteUint8(next)
		magnitude >>= 7
	}
}

// ReadVarUint reads an unsigned varint.
func (d *Decoder) ReadVarUint() (uint64, error) {
	start := d.position
	value, err := d.continueVarUint(0, 0)
	if err != nil {
		d.position = start
		return 0, decodeError(start, err)
	}
	return value, nil
}

// ReadVarInt reads a sign-and-magnitude varint. Negative zero reads
// as 0; use ReadVarIntSign to observe the sign flag.
func (d *Decoder) ReadVarInt() (int64, error) {
	magnitude, negative, err := d.ReadVarIntSign()
	if err != nil {
		return 0, err
	}
	if negative {
		return -int64(magnitude), nil
	}
	return int64(magnitude), nil
}

// ReadVarIntSign reads a signed varint and returns its magnitude and
// sign flag separately.
func (d *Decoder) ReadVarIntSign() (magnitude uint64, negative bool, err error) {
	start := d.position
	first, err := d.ReadUint8()
	if err != nil {
		return 0, false, err
	}
	negative = first&signBit != 0
	magnitude = uint64(first & lowSixBits)
	if first&continuationBit != 0 {
		magnitude, err = d.continueVarUint(magnitude, 6)
		if err != nil {
			d.position = start
			return 0, false, decodeError(start, err)
		}
	}
	return magnitude, negative, nil
}

// PeekVarUint reads an unsigned varint without advancing.
func (d *Decoder) PeekVarUint() (uint64, error) {
	start := d.position
	value, err := d.ReadVarUint()
	d.position = start
	return value, err
}

// PeekVarInt reads a signed varint without advancing.
func (d *Decoder) PeekVarInt() (int64, error) {
	start := d.position
	value, err := d.ReadVarInt()
	d.position = start
	return value, err
}

// continueVarUint accumulates 7-bit groups into value, starting at bit
// shift, until a byte without the continuation flag. It returns bare
// sentinels; callers wrap them with the starting offset.
func (d *Decoder) continueVarUint(value uint64, shift uint) (uint64, error) {
	for d.position < len(d.data) {
		b := d.data[d.position]
		d.position++
		if group := uint64(b & lowSevenBits); group != 0 {
			if shift >= 53 || group > MaxSafeInteger>>shift {
				return 0, ErrIntegerOutOfRange
			}
			value += group << shift
			if value > MaxSafeInteger {
				return 0, ErrIntegerOutOfRange
			}
		}
		if b&continuationBit == 0 {
			return value, nil
		}
		shift += 7
	}
	return 0, ErrUnexpectedEndOfArray
}
