// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package anyvalue

import (
	"encoding/json"
	"math"
	"math/big"
	"reflect"
	"slices"
	"strings"

	"github.com/bureau-foundation/bincodec/lib/wire"
)

// Number picks the smallest encoding that reproduces f exactly:
//
//   - integers with |f| <= 2^31-1 become Int,
//   - -0 becomes NegativeZero,
//   - values that survive a float32 round trip become Float32,
//   - everything else, NaN included, becomes Float64.
func Number(f float64) Value {
	switch {
	case f == 0 && math.Signbit(f):
		return NegativeZero{}
	case f == math.Trunc(f) && math.Abs(f) <= math.MaxInt32:
		return Int(int64(f))
	case float64(float32(f)) == f:
		return Float32(f)
	default:
		return Float64(f)
	}
}

// Integer converts a Go integer the way a double-precision peer would
// see it: 32-bit values become Int, values within the safe-integer
// range go through [Number], and anything wider becomes BigInt.
func Integer(i int64) Value {
	switch {
	case i >= -math.MaxInt32 && i <= math.MaxInt32:
		return Int(i)
	case i >= wire.MinSafeInteger-1 && i <= wire.MaxSafeInteger+1:
		return Number(float64(i))
	default:
		return BigInt(i)
	}
}

// FromGo converts a Go value into a Value.
//
// nil, nil pointers, nil slices and nil maps become Null. A Value is
// returned unchanged. Booleans, strings, []byte, integers, floats and
// json.Number map to the matching variant. Slices and arrays become
// Array. Maps with string keys become Object with keys sorted, so equal
// maps always encode to equal bytes. Structs become Object with one
// field per exported struct field, named by its json tag when present
// and in declaration order. Anything else (functions, channels, complex
// numbers, maps with non-string keys) becomes Undefined.
func FromGo(v any) Value {
	switch x := v.(type) {
	case nil:
		return Null{}
	case Value:
		return x
	case bool:
		return Bool(x)
	case string:
		return String(x)
	case []byte:
		if x == nil {
			return Null{}
		}
		return Bytes(slices.Clone(x))
	case int:
		return Integer(int64(x))
	case int8:
		return Int(x)
	case int16:
		return Int(x)
	case int32:
		return Int(x)
	case int64:
		return Integer(x)
	case uint:
		return fromUint(uint64(x))
	case uint8:
		return Int(x)
	case uint16:
		return Int(x)
	case uint32:
		return fromUint(uint64(x))
	case uint64:
		return fromUint(x)
	case float32:
		return Number(float64(x))
	case float64:
		return Number(x)
	case json.Number:
		return fromJSONNumber(x)
	case *big.Int:
		if x == nil {
			return Null{}
		}
		if x.IsInt64() {
			return Integer(x.Int64())
		}
		f, _ := x.Float64()
		return Float64(f)
	case []any:
		if x == nil {
			return Null{}
		}
		array := make(Array, len(x))
		for i, element := range x {
			array[i] = FromGo(element)
		}
		return array
	case map[string]any:
		if x == nil {
			return Null{}
		}
		object := make(Object, 0, len(x))
		for _, key := range sortedKeys(x) {
			object = append(object, Field{Key: key, Value: FromGo(x[key])})
		}
		return object
	}
	return fromReflect(reflect.ValueOf(v))
}

func fromUint(u uint64) Value {
	if u > math.MaxInt64 {
		return Float64(float64(u))
	}
	return Integer(int64(u))
}

// fromJSONNumber keeps integers exact when they parse as int64 and
// otherwise falls back to the float rules. "-0" takes the float path
// so its sign survives.
func fromJSONNumber(n json.Number) Value {
	text := n.String()
	if i, err := n.Int64(); err == nil && !(i == 0 && strings.HasPrefix(text, "-")) {
		return Integer(i)
	}
	// Out of range, ParseFloat still returns ±Inf alongside its error.
	f, _ := n.Float64()
	return Number(f)
}

func fromReflect(rv reflect.Value) Value {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null{}
		}
		return FromGo(rv.Elem().Interface())
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.String:
		return String(rv.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Integer(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return fromUint(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return Number(rv.Float())
	case reflect.Slice:
		if rv.IsNil() {
			return Null{}
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return Bytes(slices.Clone(rv.Bytes()))
		}
		return fromSequence(rv)
	case reflect.Array:
		return fromSequence(rv)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return Undefined{}
		}
		if rv.IsNil() {
			return Null{}
		}
		keys := rv.MapKeys()
		slices.SortFunc(keys, func(a, b reflect.Value) int {
			return strings.Compare(a.String(), b.String())
		})
		object := make(Object, 0, len(keys))
		for _, key := range keys {
			object = append(object, Field{Key: key.String(), Value: FromGo(rv.MapIndex(key).Interface())})
		}
		return object
	case reflect.Struct:
		return fromStruct(rv)
	}
	return Undefined{}
}

func fromSequence(rv reflect.Value) Value {
	array := make(Array, rv.Len())
	for i := range array {
		array[i] = FromGo(rv.Index(i).Interface())
	}
	return array
}

func fromStruct(rv reflect.Value) Value {
	structType := rv.Type()
	object := make(Object, 0, structType.NumField())
	for i := range structType.NumField() {
		field := structType.Field(i)
		if !field.IsExported() {
			continue
		}
		name := field.Name
		omitEmpty := false
		if tag, ok := field.Tag.Lookup("json"); ok {
			tagName, options, _ := strings.Cut(tag, ",")
			if tagName == "-" && options == "" {
				continue
			}
			if tagName != "" {
				name = tagName
			}
			omitEmpty = slices.Contains(strings.Split(options, ","), "omitempty")
		}
		value := rv.Field(i)
		if omitEmpty && value.IsZero() {
			continue
		}
		object = append(object, Field{Key: name, Value: FromGo(value.Interface())})
	}
	return object
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// ToGo converts a Value into plain Go data: nil for Undefined and
// Null, int64 for Int and BigInt, float32 and float64 for the float
// variants (NegativeZero becomes float64 -0), bool, string, []byte,
// []any and map[string]any. Later duplicate object keys overwrite
// earlier ones.
func ToGo(value Value) any {
	switch v := value.(type) {
	case Int:
		return int64(v)
	case NegativeZero:
		return math.Copysign(0, -1)
	case Float32:
		return float32(v)
	case Float64:
		return float64(v)
	case BigInt:
		return int64(v)
	case Bool:
		return bool(v)
	case String:
		return string(v)
	case Bytes:
		return []byte(v)
	case Array:
		array := make([]any, len(v))
		for i, element := range v {
			array[i] = ToGo(element)
		}
		return array
	case Object:
		object := make(map[string]any, len(v))
		for _, field := range v {
			object[field.Key] = ToGo(field.Value)
		}
		return object
	}
	return nil
}
