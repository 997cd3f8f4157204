// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package anyvalue

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"time"

	"github.com/bureau-foundation/bincodec/lib/codec"
)

// ToCBOR transcodes value to CBOR. Scalars use the smallest encoding
// that holds them exactly, so a Float32 may come out as a half
// precision float. Object fields keep their order and duplicates,
// which a Go map would lose.
func ToCBOR(value Value) ([]byte, error) {
	return appendCBOR(nil, value)
}

func appendCBOR(dst []byte, value Value) ([]byte, error) {
	var scalar any
	switch v := value.(type) {
	case nil, Undefined:
		return append(dst, codec.Undefined), nil
	case Null:
		return append(dst, codec.Null), nil
	case Array:
		dst = codec.AppendArrayHead(dst, len(v))
		for _, element := range v {
			var err error
			if dst, err = appendCBOR(dst, element); err != nil {
				return nil, err
			}
		}
		return dst, nil
	case Object:
		dst = codec.AppendMapHead(dst, len(v))
		for _, field := range v {
			var err error
			if dst, err = appendCBOR(dst, String(field.Key)); err != nil {
				return nil, err
			}
			if dst, err = appendCBOR(dst, field.Value); err != nil {
				return nil, err
			}
		}
		return dst, nil
	case Int:
		scalar = int64(v)
	case BigInt:
		scalar = int64(v)
	case NegativeZero:
		scalar = math.Copysign(0, -1)
	case Float32:
		scalar = float32(v)
	case Float64:
		scalar = float64(v)
	case Bool:
		scalar = bool(v)
	case String:
		scalar = string(v)
	case Bytes:
		scalar = []byte(v)
	default:
		return nil, fmt.Errorf("anyvalue: cannot transcode %T to CBOR", value)
	}
	data, err := codec.Marshal(scalar)
	if err != nil {
		return nil, fmt.Errorf("anyvalue: transcoding %s to CBOR: %w", value.Tag(), err)
	}
	return append(dst, data...), nil
}

// FromCBOR transcodes exactly one CBOR data item into a Value.
//
// Integers and floats follow [Integer] and [Number], so the result
// encodes as compactly as if it had come from JSON. CBOR undefined and
// null both become Null. Map keys must be strings and come back
// sorted. Bignums outside int64 become Float64. Timestamps become
// RFC 3339 strings. Other tags keep only their content. Nesting past
// [MaxDepth] fails with [ErrTooDeep].
func FromCBOR(data []byte) (Value, error) {
	var decoded any
	if err := codec.Unmarshal(data, &decoded); err != nil {
		var nested *codec.MaxNestedLevelError
		if errors.As(err, &nested) {
			// codec.MaxNestedLevels equals MaxDepth, and tags only
			// remove levels on the way to a Value.
			return nil, fmt.Errorf("anyvalue: parsing CBOR: %w: %w", ErrTooDeep, err)
		}
		return nil, fmt.Errorf("anyvalue: parsing CBOR: %w", err)
	}
	return fromCBOR(decoded), nil
}

func fromCBOR(decoded any) Value {
	switch v := decoded.(type) {
	case big.Int:
		return FromGo(&v)
	case time.Time:
		return String(v.Format(time.RFC3339Nano))
	case codec.Tag:
		return fromCBOR(v.Content)
	case []any:
		array := make(Array, len(v))
		for i, element := range v {
			array[i] = fromCBOR(element)
		}
		return array
	case map[string]any:
		object := make(Object, 0, len(v))
		for _, key := range sortedKeys(v) {
			object = append(object, Field{Key: key, Value: fromCBOR(v[key])})
		}
		return object
	}
	return FromGo(decoded)
}
