// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package anyvalue

import (
	"encoding/hex"
	"math"
	"strconv"
	"strings"
)

// Diagnose renders value in a notation modeled on CBOR diagnostic
// notation that shows which variant carries each number:
//
//	42          Int
//	-0          NegativeZero
//	1.5_f32     Float32
//	0.1_f64     Float64
//	123n        BigInt
//	h'0a0b'     Bytes
//
// Strings are JSON-quoted, objects are written {"k": v} in field order
// and arrays [a, b]. Undefined and Null are written as words.
func Diagnose(value Value) string {
	var builder strings.Builder
	diagnose(&builder, value)
	return builder.String()
}

func diagnose(builder *strings.Builder, value Value) {
	switch v := value.(type) {
	case nil, Undefined:
		builder.WriteString("undefined")
	case Null:
		builder.WriteString("null")
	case Int:
		builder.WriteString(strconv.FormatInt(int64(v), 10))
	case NegativeZero:
		builder.WriteString("-0")
	case Float32:
		builder.WriteString(diagnoseFloat(float64(v), 32))
		builder.WriteString("_f32")
	case Float64:
		builder.WriteString(diagnoseFloat(float64(v), 64))
		builder.WriteString("_f64")
	case BigInt:
		builder.WriteString(strconv.FormatInt(int64(v), 10))
		builder.WriteByte('n')
	case Bool:
		builder.WriteString(strconv.FormatBool(bool(v)))
	case String:
		quoted, _ := appendJSONString(nil, string(v))
		builder.Write(quoted)
	case Bytes:
		builder.WriteString("h'")
		builder.WriteString(hex.EncodeToString(v))
		builder.WriteByte('\'')
	case Array:
		builder.WriteByte('[')
		for i, element := range v {
			if i > 0 {
				builder.WriteString(", ")
			}
			diagnose(builder, element)
		}
		builder.WriteByte(']')
	case Object:
		builder.WriteByte('{')
		for i, field := range v {
			if i > 0 {
				builder.WriteString(", ")
			}
			quoted, _ := appendJSONString(nil, field.Key)
			builder.Write(quoted)
			builder.WriteString(": ")
			diagnose(builder, field.Value)
		}
		builder.WriteByte('}')
	}
}

func diagnoseFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'g', -1, bits)
}
