// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package rle

import (
	"strings"
	"unicode/utf8"

	"github.com/bureau-foundation/bincodec/lib/wire"
)

// fragmentUnits is the pending-fragment length, in UTF-16 code units,
// past which StringEncoder moves the fragment onto its list.
const fragmentUnits = 19

// StringEncoder writes many short strings as one concatenated wire
// string followed by a [UintOptRleEncoder] table of their lengths.
// Lengths are counted in UTF-16 code units so that the table matches
// what other implementations of this format produce.
type StringEncoder struct {
	fragments    []string
	pending      strings.Builder
	pendingUnits int
	lengths      *UintOptRleEncoder
	options      wire.Options
}

// NewStringEncoder returns an empty encoder using wire's default
// string codec.
func NewStringEncoder() *StringEncoder {
	return NewStringEncoderOptions(wire.Options{})
}

// NewStringEncoderOptions returns an empty encoder that materializes
// through a wire.Encoder configured by options.
func NewStringEncoderOptions(options wire.Options) *StringEncoder {
	return &StringEncoder{lengths: NewUintOptRleEncoder(), options: options}
}

// Write appends s to the stream.
func (e *StringEncoder) Write(s string) {
	units := UTF16Len(s)
	e.pending.WriteString(s)
	e.pendingUnits += units
	if e.pendingUnits > fragmentUnits {
		e.fragments = append(e.fragments, e.pending.String())
		e.pending.Reset()
		e.pendingUnits = 0
	}
	e.lengths.Write(uint64(units))
}

// Bytes returns the encoded stream: the concatenation of every string
// written so far, then the length table.
func (e *StringEncoder) Bytes() []byte {
	if e.pending.Len() > 0 {
		e.fragments = append(e.fragments, e.pending.String())
		e.pending.Reset()
		e.pendingUnits = 0
	}
	joined := strings.Join(e.fragments, "")
	e.fragments = append(e.fragments[:0], joined)

	encoder := wire.NewEncoderOptions(e.options)
	encoder.WriteVarString(joined)
	encoder.WriteBytes(e.lengths.Bytes())
	return encoder.Bytes()
}

// StringDecoder reads a stream produced by [StringEncoder].
type StringDecoder struct {
	lengths  *UintOptRleDecoder
	text     string
	position int
	ascii    bool

	// debt is the number of code units the previous Read consumed
	// beyond its length, when the length ended inside a surrogate
	// pair. Only hand-built tables can do that.
	debt int
}

// NewStringDecoder reads the concatenated string from data and
// returns a decoder positioned at the first fragment.
func NewStringDecoder(data []byte) (*StringDecoder, error) {
	return NewStringDecoderOptions(data, wire.Options{})
}

// NewStringDecoderOptions is NewStringDecoder with an explicit string
// codec.
func NewStringDecoderOptions(data []byte, options wire.Options) (*StringDecoder, error) {
	lengths := &UintOptRleDecoder{decoder: wire.NewDecoderOptions(data, options)}
	text, err := lengths.decoder.ReadVarString()
	if err != nil {
		return nil, err
	}
	return &StringDecoder{lengths: lengths, text: text, ascii: isASCII(text)}, nil
}

// Read returns the next string. A length that runs past the end of the
// concatenated string is clipped to it.
func (d *StringDecoder) Read() (string, error) {
	length, err := d.lengths.Read()
	if err != nil {
		return "", err
	}
	start := d.position
	if d.ascii {
		d.position = min(start+int(length), len(d.text))
		return d.text[start:d.position], nil
	}

	units := int(length) - d.debt
	d.debt = 0
	for units > 0 && d.position < len(d.text) {
		r, size := utf8.DecodeRuneInString(d.text[d.position:])
		d.position += size
		units -= runeUnits(r)
	}
	if units < 0 {
		d.debt = -units
	}
	return d.text[start:d.position], nil
}

// UTF16Len returns the length of s in UTF-16 code units after invalid
// bytes are replaced with U+FFFD.
func UTF16Len(s string) int {
	units := 0
	for _, r := range s {
		units += runeUnits(r)
	}
	return units
}

func runeUnits(r rune) int {
	if r >= 0x10000 {
		return 2
	}
	return 1
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
