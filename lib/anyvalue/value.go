// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package anyvalue

import "fmt"

// Tag is the byte that precedes every encoded value. Tags 116 through
// 127 belong to this package; lower bytes are free for callers that
// frame their own data around values.
type Tag byte

const (
	TagUndefined Tag = 127
	TagNull      Tag = 126
	TagInt       Tag = 125
	TagFloat32   Tag = 124
	TagFloat64   Tag = 123
	TagBigInt    Tag = 122
	TagFalse     Tag = 121
	TagTrue      Tag = 120
	TagString    Tag = 119
	TagObject    Tag = 118
	TagArray     Tag = 117
	TagBytes     Tag = 116
)

// MinTag is the lowest tag this package reads or writes.
const MinTag = TagBytes

var tagNames = [...]string{
	"bytes", "array", "object", "string", "true", "false",
	"bigint", "float64", "float32", "int", "null", "undefined",
}

// String returns the lower-case name of the tag's type, or the decimal
// byte for tags outside this package's range.
func (t Tag) String() string {
	if t < MinTag || t > TagUndefined {
		return fmt.Sprintf("tag(%d)", byte(t))
	}
	return tagNames[t-MinTag]
}

// Value is one encodable value. The concrete types below are the only
// implementations; a type switch over them is exhaustive.
type Value interface {
	// Tag returns the wire tag the value is written with.
	Tag() Tag

	isValue()
}

// Undefined is the fallback for anything without a representation of
// its own.
type Undefined struct{}

// Null is an explicit null.
type Null struct{}

// Int is an integer written as a signed varint. Values produced by
// [Number] fit in 32 bits; decoded values may be as large as
// wire.MaxSafeInteger.
type Int int64

// NegativeZero is -0 written with the integer tag: sign flag set,
// magnitude zero.
type NegativeZero struct{}

// Float32 is a number written as a 4-byte IEEE754 single.
type Float32 float32

// Float64 is a number written as an 8-byte IEEE754 double.
type Float64 float64

// BigInt is a 64-bit integer written as 8 big-endian bytes.
type BigInt int64

// Bool is written as one of two tags with no payload.
type Bool bool

// String is written as a varint byte length and UTF-8 bytes.
type String string

// Object is a string-keyed map that keeps its fields in wire order.
// Duplicate keys are preserved as they appear.
type Object []Field

// Field is one key and value of an Object.
type Field struct {
	Key   string
	Value Value
}

// Array is an ordered list of values.
type Array []Value

// Bytes is an opaque byte buffer.
type Bytes []byte

func (Undefined) Tag() Tag    { return TagUndefined }
func (Null) Tag() Tag         { return TagNull }
func (Int) Tag() Tag          { return TagInt }
func (NegativeZero) Tag() Tag { return TagInt }
func (Float32) Tag() Tag      { return TagFloat32 }
func (Float64) Tag() Tag      { return TagFloat64 }
func (BigInt) Tag() Tag       { return TagBigInt }
func (String) Tag() Tag       { return TagString }
func (Object) Tag() Tag       { return TagObject }
func (Array) Tag() Tag        { return TagArray }
func (Bytes) Tag() Tag        { return TagBytes }

func (b Bool) Tag() Tag {
	if b {
		return TagTrue
	}
	return TagFalse
}

func (Undefined) isValue()    {}
func (Null) isValue()         {}
func (Int) isValue()          {}
func (NegativeZero) isValue() {}
func (Float32) isValue()      {}
func (Float64) isValue()      {}
func (BigInt) isValue()       {}
func (Bool) isValue()         {}
func (String) isValue()       {}
func (Object) isValue()       {}
func (Array) isValue()        {}
func (Bytes) isValue()        {}

// Get returns the value of the last field named key.
func (o Object) Get(key string) (Value, bool) {
	for i := len(o) - 1; i >= 0; i-- {
		if o[i].Key == key {
			return o[i].Value, true
		}
	}
	return nil, false
}

// Keys returns the field keys in order.
func (o Object) Keys() []string {
	keys := make([]string, len(o))
	for i, field := range o {
		keys[i] = field.Key
	}
	return keys
}
