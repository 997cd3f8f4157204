// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package anyvalue

import (
	"fmt"

	"github.com/bureau-foundation/bincodec/lib/wire"
)

// MaxDepth bounds how deeply Read follows nested arrays and objects.
const MaxDepth = 10000

type readFunc func(decoder *wire.Decoder, depth int) (Value, error)

// readTable is indexed by TagUndefined-tag. It is filled in init
// because the container readers call back into Read.
var readTable [TagUndefined - MinTag + 1]readFunc

func init() {
	readTable = [...]readFunc{
		TagUndefined - TagUndefined: func(*wire.Decoder, int) (Value, error) { return Undefined{}, nil },
		TagUndefined - TagNull:      func(*wire.Decoder, int) (Value, error) { return Null{}, nil },
		TagUndefined - TagInt:       readInt,
		TagUndefined - TagFloat32:   readFloat32,
		TagUndefined - TagFloat64:   readFloat64,
		TagUndefined - TagBigInt:    readBigInt,
		TagUndefined - TagFalse:     func(*wire.Decoder, int) (Value, error) { return Bool(false), nil },
		TagUndefined - TagTrue:      func(*wire.Decoder, int) (Value, error) { return Bool(true), nil },
		TagUndefined - TagString:    readString,
		TagUndefined - TagObject:    readObject,
		TagUndefined - TagArray:     readArray,
		TagUndefined - TagBytes:     readBytes,
	}
}

// Read decodes one value from decoder. Strings and byte buffers in the
// result are copies; nothing aliases the decoder's input.
func Read(decoder *wire.Decoder) (Value, error) {
	return read(decoder, 0)
}

func read(decoder *wire.Decoder, depth int) (Value, error) {
	start := decoder.Pos()
	tag, err := decoder.ReadUint8()
	if err != nil {
		return nil, err
	}
	if Tag(tag) < MinTag || Tag(tag) > TagUndefined {
		return nil, &UnknownTagError{Tag: tag, Offset: start}
	}
	return readTable[TagUndefined-Tag(tag)](decoder, depth)
}

func readInt(decoder *wire.Decoder, _ int) (Value, error) {
	magnitude, negative, err := decoder.ReadVarIntSign()
	if err != nil {
		return nil, err
	}
	switch {
	case !negative:
		return Int(magnitude), nil
	case magnitude == 0:
		return NegativeZero{}, nil
	default:
		return Int(-int64(magnitude)), nil
	}
}

func readFloat32(decoder *wire.Decoder, _ int) (Value, error) {
	value, err := decoder.ReadFloat32()
	if err != nil {
		return nil, err
	}
	return Float32(value), nil
}

func readFloat64(decoder *wire.Decoder, _ int) (Value, error) {
	value, err := decoder.ReadFloat64()
	if err != nil {
		return nil, err
	}
	return Float64(value), nil
}

func readBigInt(decoder *wire.Decoder, _ int) (Value, error) {
	value, err := decoder.ReadBigInt64()
	if err != nil {
		return nil, err
	}
	return BigInt(value), nil
}

func readString(decoder *wire.Decoder, _ int) (Value, error) {
	value, err := decoder.ReadVarString()
	if err != nil {
		return nil, err
	}
	return String(value), nil
}

func readBytes(decoder *wire.Decoder, _ int) (Value, error) {
	view, err := decoder.ReadVarBytes()
	if err != nil {
		return nil, err
	}
	return Bytes(append([]byte{}, view...)), nil
}

func readObject(decoder *wire.Decoder, depth int) (Value, error) {
	if depth >= MaxDepth {
		return nil, fmt.Errorf("anyvalue: object at offset %d: %w", decoder.Pos()-1, ErrTooDeep)
	}
	count, err := readCount(decoder)
	if err != nil {
		return nil, err
	}
	object := make(Object, 0, count)
	for range count {
		key, err := decoder.ReadVarString()
		if err != nil {
			return nil, err
		}
		value, err := read(decoder, depth+1)
		if err != nil {
			return nil, err
		}
		object = append(object, Field{Key: key, Value: value})
	}
	return object, nil
}

func readArray(decoder *wire.Decoder, depth int) (Value, error) {
	if depth >= MaxDepth {
		return nil, fmt.Errorf("anyvalue: array at offset %d: %w", decoder.Pos()-1, ErrTooDeep)
	}
	count, err := readCount(decoder)
	if err != nil {
		return nil, err
	}
	array := make(Array, 0, count)
	for range count {
		value, err := read(decoder, depth+1)
		if err != nil {
			return nil, err
		}
		array = append(array, value)
	}
	return array, nil
}

// readCount reads a container length. Every element takes at least one
// byte, so a count larger than the remaining input is rejected before
// anything is allocated.
func readCount(decoder *wire.Decoder) (int, error) {
	start := decoder.Pos()
	count, err := decoder.ReadVarUint()
	if err != nil {
		return 0, err
	}
	if count > uint64(decoder.Remaining()) {
		return 0, &wire.DecodeError{Offset: start, Err: wire.ErrUnexpectedEndOfArray}
	}
	return int(count), nil
}
