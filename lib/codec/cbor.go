// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"encoding/binary"
	"io"
	"math"
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

// MaxNestedLevels is how deeply nested arrays and maps may be when
// decoding. It matches the any-value reader's limit so that anything
// one format accepts the other can hold.
const MaxNestedLevels = 10000

// encMode is the CBOR encoder configured with Core Deterministic
// Encoding (RFC 8949 §4.2).
var encMode cbor.EncMode

// decMode is the CBOR decoder. Duplicate map keys are rejected since
// they have no meaning once decoded into a Go map.
var decMode cbor.DecMode

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		// Any-values only have string keys. The CBOR default for an
		// any target is map[interface{}]interface{}, which neither
		// encoding/json nor the any-value converter accept.
		DefaultMapType:   reflect.TypeOf(map[string]any(nil)),
		DupMapKey:        cbor.DupMapKeyEnforcedAPF,
		MaxNestedLevels:  MaxNestedLevels,
		MaxArrayElements: math.MaxInt32,
		MaxMapPairs:      math.MaxInt32,
	}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}
}

// Marshal encodes v to CBOR using Core Deterministic Encoding.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes CBOR data into v.
func Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}

// Encoder is a CBOR stream encoder. Type alias so consumers import
// only lib/codec, not fxamacker/cbor directly.
type Encoder = cbor.Encoder

// Decoder is a CBOR stream decoder.
type Decoder = cbor.Decoder

// RawMessage is a raw encoded CBOR value. Marshal copies it into the
// output verbatim.
type RawMessage = cbor.RawMessage

// MaxNestedLevelError is returned when input nests arrays, maps and
// tags deeper than MaxNestedLevels.
type MaxNestedLevelError = cbor.MaxNestedLevelError

// Tag is a CBOR tag number and its content, as decoded into an any
// target for tags without a registered Go type.
type Tag = cbor.Tag

// NewEncoder returns a CBOR encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return encMode.NewEncoder(w)
}

// NewDecoder returns a CBOR decoder that reads from r.
func NewDecoder(r io.Reader) *Decoder {
	return decMode.NewDecoder(r)
}

// Simple values with no Go counterpart in Marshal.
const (
	Undefined byte = 0xf7
	Null      byte = 0xf6
)

const (
	majorArray = 4
	majorMap   = 5
)

// AppendArrayHead appends the head of a definite-length array of n
// items. The caller appends the items.
func AppendArrayHead(dst []byte, n int) []byte {
	return appendHead(dst, majorArray, uint64(n))
}

// AppendMapHead appends the head of a definite-length map of n pairs.
// The caller appends the keys and values in the order it wants them.
func AppendMapHead(dst []byte, n int) []byte {
	return appendHead(dst, majorMap, uint64(n))
}

// appendHead writes the initial byte and argument in the shortest
// form, as Core Deterministic Encoding requires.
func appendHead(dst []byte, major byte, n uint64) []byte {
	initial := major << 5
	switch {
	case n < 24:
		return append(dst, initial|byte(n))
	case n <= math.MaxUint8:
		return append(dst, initial|24, byte(n))
	case n <= math.MaxUint16:
		return binary.BigEndian.AppendUint16(append(dst, initial|25), uint16(n))
	case n <= math.MaxUint32:
		return binary.BigEndian.AppendUint32(append(dst, initial|26), uint32(n))
	default:
		return binary.BigEndian.AppendUint64(append(dst, initial|27), n)
	}
}

// Diagnose returns the CBOR diagnostic notation (RFC 8949 §8) for the
// entire contents of data.
func Diagnose(data []byte) (string, error) {
	return cbor.Diagnose(data)
}

// DiagnoseFirst returns the CBOR diagnostic notation for the first
// data item in data, along with the remaining unconsumed bytes. Use
// this to process CBOR sequences one item at a time.
func DiagnoseFirst(data []byte) (string, []byte, error) {
	return cbor.DiagnoseFirst(data)
}
