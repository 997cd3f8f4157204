// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"errors"
	"testing"

	"github.com/bureau-foundation/bincodec/lib/testutil"
)

func TestDecoderFixedWidthRoundTrip(t *testing.T) {
	encoder := NewEncoder()
	encoder.WriteUint8(0xFE)
	encoder.WriteUint16(0xBEEF)
	encoder.WriteUint32(0xDEADBEEF)
	encoder.WriteUint32BigEndian(0x01020304)
	encoder.WriteFloat32(-0.25)
	encoder.WriteFloat64(3.141592653589793)
	encoder.WriteBigInt64(-1234567890123)
	encoder.WriteBigUint64(1<<63 + 5)

	decoder := NewDecoder(encoder.Bytes())

	if got, err := decoder.ReadUint8(); err != nil || got != 0xFE {
		t.Fatalf("ReadUint8() = %#x, %v", got, err)
	}
	if got, err := decoder.ReadUint16(); err != nil || got != 0xBEEF {
		t.Fatalf("ReadUint16() = %#x, %v", got, err)
	}
	if got, err := decoder.ReadUint32(); err != nil || got != 0xDEADBEEF {
		t.Fatalf("ReadUint32() = %#x, %v", got, err)
	}
	if got, err := decoder.ReadUint32BigEndian(); err != nil || got != 0x01020304 {
		t.Fatalf("ReadUint32BigEndian() = %#x, %v", got, err)
	}
	if got, err := decoder.ReadFloat32(); err != nil || got != -0.25 {
		t.Fatalf("ReadFloat32() = %v, %v", got, err)
	}
	if got, err := decoder.ReadFloat64(); err != nil || got != 3.141592653589793 {
		t.Fatalf("ReadFloat64() = %v, %v", got, err)
	}
	if got, err := decoder.ReadBigInt64(); err != nil || got != -1234567890123 {
		t.Fatalf("ReadBigInt64() = %d, %v", got, err)
	}
	if got, err := decoder.ReadBigUint64(); err != nil || got != 1<<63+5 {
		t.Fatalf("ReadBigUint64() = %d, %v", got, err)
	}
	if decoder.HasContent() {
		t.Errorf("HasContent() = true after reading everything (%d bytes left)", decoder.Remaining())
	}
}

func TestDecoderPeekDoesNotAdvance(t *testing.T) {
	decoder := NewDecoder(testutil.Hex(t, "04030201 ac02 03616263"))

	if got, _ := decoder.PeekUint8(); got != 0x04 {
		t.Errorf("PeekUint8() = %#x, want 0x04", got)
	}
	if got, _ := decoder.PeekUint16(); got != 0x0304 {
		t.Errorf("PeekUint16() = %#x, want 0x0304", got)
	}
	if got, _ := decoder.PeekUint32(); got != 0x01020304 {
		t.Errorf("PeekUint32() = %#x, want 0x01020304", got)
	}
	if decoder.Pos() != 0 {
		t.Fatalf("Pos() = %d after fixed-width peeks, want 0", decoder.Pos())
	}

	if err := decoder.Skip(4); err != nil {
		t.Fatalf("Skip(4): %v", err)
	}
	if got, _ := decoder.PeekVarUint(); got != 300 {
		t.Errorf("PeekVarUint() = %d, want 300", got)
	}
	if decoder.Pos() != 4 {
		t.Fatalf("Pos() = %d after PeekVarUint, want 4", decoder.Pos())
	}
	if _, err := decoder.ReadVarUint(); err != nil {
		t.Fatalf("ReadVarUint: %v", err)
	}

	if got, _ := decoder.PeekVarString(); got != "abc" {
		t.Errorf("PeekVarString() = %q, want %q", got, "abc")
	}
	if got, _ := decoder.ReadVarString(); got != "abc" {
		t.Errorf("ReadVarString() = %q, want %q", got, "abc")
	}
}

func TestDecoderCloneIsIndependent(t *testing.T) {
	decoder := NewDecoder([]byte{1, 2, 3, 4})
	decoder.ReadUint8()

	clone := decoder.Clone()
	if got, _ := clone.ReadUint8(); got != 2 {
		t.Fatalf("clone read %d, want 2", got)
	}
	clone.ReadUint8()

	if decoder.Pos() != 1 {
		t.Errorf("original Pos() = %d after reading the clone, want 1", decoder.Pos())
	}
	if got, _ := decoder.ReadUint8(); got != 2 {
		t.Errorf("original read %d, want 2", got)
	}

	late := decoder.CloneAt(3)
	if got, _ := late.ReadUint8(); got != 4 {
		t.Errorf("CloneAt(3) read %d, want 4", got)
	}
}

func TestDecoderCloneAtOutOfRangePanics(t *testing.T) {
	decoder := NewDecoder([]byte{1})
	defer func() {
		if recover() == nil {
			t.Error("CloneAt(2) on a one-byte decoder did not panic")
		}
	}()
	decoder.CloneAt(2)
}

func TestDecoderReadBytesIsClippedView(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5}
	decoder := NewDecoder(data)

	view, err := decoder.ReadBytes(2)
	if err != nil {
		t.Fatalf("ReadBytes(2): %v", err)
	}
	testutil.RequireBytes(t, view, []byte{1, 2}, "view")
	if cap(view) != 2 {
		t.Errorf("cap(view) = %d, want 2", cap(view))
	}

	// Appending to the view must reallocate rather than overwrite the
	// bytes the decoder has not reached yet.
	_ = append(view, 0xFF)
	if got, _ := decoder.ReadUint8(); got != 3 {
		t.Errorf("next byte = %d after append to view, want 3", got)
	}

	// The view aliases the source.
	data[0] = 9
	if view[0] != 9 {
		t.Errorf("view[0] = %d, want it to alias the source", view[0])
	}

	testutil.RequireBytes(t, decoder.ReadTail(), []byte{4, 5}, "tail")
	if decoder.HasContent() {
		t.Error("HasContent() = true after ReadTail")
	}
}

func TestDecoderEndOfInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		read  func(*Decoder) error
	}{
		{"uint8 on empty", "", func(d *Decoder) error { _, err := d.ReadUint8(); return err }},
		{"uint16 short", "01", func(d *Decoder) error { _, err := d.ReadUint16(); return err }},
		{"uint32 short", "010203", func(d *Decoder) error { _, err := d.ReadUint32(); return err }},
		{"uint32 big-endian short", "010203", func(d *Decoder) error { _, err := d.ReadUint32BigEndian(); return err }},
		{"float32 short", "3fc0", func(d *Decoder) error { _, err := d.ReadFloat32(); return err }},
		{"float64 short", "3ff00000", func(d *Decoder) error { _, err := d.ReadFloat64(); return err }},
		{"bigint64 short", "ffffffffffffff", func(d *Decoder) error { _, err := d.ReadBigInt64(); return err }},
		{"bytes short", "0102", func(d *Decoder) error { _, err := d.ReadBytes(3); return err }},
		{"var bytes length past end", "05010203", func(d *Decoder) error { _, err := d.ReadVarBytes(); return err }},
		{"var string length past end", "0361", func(d *Decoder) error { _, err := d.ReadVarString(); return err }},
		{"var uint unterminated", "80", func(d *Decoder) error { _, err := d.ReadVarUint(); return err }},
		{"skip past end", "00", func(d *Decoder) error { return d.Skip(2) }},
		{"negative skip", "00", func(d *Decoder) error { return d.Skip(-1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoder := NewDecoder(testutil.Hex(t, tt.input))
			err := tt.read(decoder)
			testutil.RequireErrorIs(t, err, ErrUnexpectedEndOfArray, tt.name)
			if decoder.Pos() != 0 {
				t.Errorf("Pos() = %d after failed read, want 0", decoder.Pos())
			}
			var decodeErr *DecodeError
			if !errors.As(err, &decodeErr) {
				t.Fatalf("error %T is not a *DecodeError", err)
			}
			if decodeErr.Offset != 0 {
				t.Errorf("DecodeError.Offset = %d, want 0", decodeErr.Offset)
			}
		})
	}
}

func TestDecodeErrorReportsStartOffset(t *testing.T) {
	// Two complete bytes, then a varint that never terminates.
	decoder := NewDecoder(testutil.Hex(t, "0102 ff ff"))
	decoder.Skip(2)

	_, err := decoder.ReadVarUint()
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("ReadVarUint error = %v, want *DecodeError", err)
	}
	if decodeErr.Offset != 2 {
		t.Errorf("Offset = %d, want 2", decodeErr.Offset)
	}
	if decoder.Pos() != 2 {
		t.Errorf("Pos() = %d after failed varint, want 2", decoder.Pos())
	}
	if want := "wire: unexpected end of array at offset 2"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestDecoderStringCodecOption(t *testing.T) {
	decoder := NewDecoderOptions(nil, Options{Strings: PolyfillStrings})
	if decoder.StringCodec() != PolyfillStrings {
		t.Errorf("StringCodec() = %s, want polyfill", decoder.StringCodec().Name())
	}
	if NewDecoder(nil).StringCodec() != NativeStrings {
		t.Error("default decoder does not use NativeStrings")
	}
	if NewDecoder(nil).HasContent() {
		t.Error("HasContent() = true on empty input")
	}
}
