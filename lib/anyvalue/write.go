// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package anyvalue

import (
	"fmt"

	"github.com/bureau-foundation/bincodec/lib/wire"
)

// Write appends the encoding of value to encoder: one tag byte, then
// the payload. A nil value is written as Undefined.
//
// Arrays and objects are written depth first. Values built by hand can
// only be cyclic through a slice that contains itself, which Write does
// not detect. Write does not enforce [MaxDepth], so Read rejects the
// output of a value nested deeper; [FromJSON], [FromYAML] and
// [FromCBOR] never build one.
func Write(encoder *wire.Encoder, value Value) {
	if value == nil {
		encoder.WriteUint8(byte(TagUndefined))
		return
	}
	encoder.WriteUint8(byte(value.Tag()))

	switch v := value.(type) {
	case Undefined, Null, Bool:
	case Int:
		encoder.WriteVarInt(int64(v))
	case NegativeZero:
		encoder.WriteVarIntSign(0, true)
	case Float32:
		encoder.WriteFloat32(float32(v))
	case Float64:
		encoder.WriteFloat64(float64(v))
	case BigInt:
		encoder.WriteBigInt64(int64(v))
	case String:
		encoder.WriteVarString(string(v))
	case Object:
		encoder.WriteVarUint(uint64(len(v)))
		for _, field := range v {
			encoder.WriteVarString(field.Key)
			Write(encoder, field.Value)
		}
	case Array:
		encoder.WriteVarUint(uint64(len(v)))
		for _, element := range v {
			Write(encoder, element)
		}
	case Bytes:
		encoder.WriteVarBytes(v)
	default:
		panic(fmt.Errorf("anyvalue: %w: value type %T", wire.ErrUnexpectedCase, value))
	}
}
