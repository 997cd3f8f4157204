// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package anyvalue

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/tidwall/jsonc"
)

// FromJSON parses one JSON document into a Value. Comments and
// trailing commas are accepted. Object fields keep document order.
// Integers that fit in int64 stay exact; other numbers follow
// [Number]. Arrays and objects nested past [MaxDepth] fail with
// [ErrTooDeep].
func FromJSON(data []byte) (Value, error) {
	values, err := FromJSONSequence(data)
	if err != nil {
		return nil, err
	}
	switch len(values) {
	case 0:
		return nil, errors.New("anyvalue: empty JSON input")
	case 1:
		return values[0], nil
	default:
		return nil, fmt.Errorf("anyvalue: JSON input holds %d documents, want 1", len(values))
	}
}

// FromJSONSequence parses whitespace-separated JSON documents, such as
// JSON Lines, into Values.
func FromJSONSequence(data []byte) ([]Value, error) {
	decoder := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	decoder.UseNumber()
	var values []Value
	for {
		value, err := parseJSON(decoder, 0)
		if errors.Is(err, io.EOF) {
			return values, nil
		}
		if err != nil {
			return nil, fmt.Errorf("anyvalue: parsing JSON document %d: %w", len(values), err)
		}
		values = append(values, value)
	}
}

// parseJSON reads one value whose containers sit at depth. It stops at
// the same nesting Read does, so whatever it returns can be decoded
// again after Write.
func parseJSON(decoder *json.Decoder, depth int) (Value, error) {
	token, err := decoder.Token()
	if err != nil {
		return nil, err
	}
	switch t := token.(type) {
	case json.Delim:
		if (t == '{' || t == '[') && depth >= MaxDepth {
			return nil, fmt.Errorf("offset %d: %w", decoder.InputOffset(), ErrTooDeep)
		}
		switch t {
		case '{':
			object := Object{}
			for decoder.More() {
				keyToken, err := decoder.Token()
				if err != nil {
					return nil, unexpectedEOF(err)
				}
				value, err := parseJSON(decoder, depth+1)
				if err != nil {
					return nil, unexpectedEOF(err)
				}
				object = append(object, Field{Key: keyToken.(string), Value: value})
			}
			_, err := decoder.Token()
			return object, unexpectedEOF(err)
		case '[':
			array := Array{}
			for decoder.More() {
				value, err := parseJSON(decoder, depth+1)
				if err != nil {
					return nil, unexpectedEOF(err)
				}
				array = append(array, value)
			}
			_, err := decoder.Token()
			return array, unexpectedEOF(err)
		}
		return nil, fmt.Errorf("unexpected delimiter %q", t)
	case string:
		return String(t), nil
	case json.Number:
		return fromJSONNumber(t), nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null{}, nil
	}
	return nil, fmt.Errorf("unexpected JSON token %v", token)
}

// unexpectedEOF turns io.EOF inside a document into
// io.ErrUnexpectedEOF so FromJSONSequence does not mistake a truncated
// document for the end of input.
func unexpectedEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}

// ToJSON renders value as JSON. With a non-empty indent the output is
// indented one level per nesting depth.
//
// JSON cannot express every variant exactly: Undefined becomes null,
// NaN and the infinities become null, Bytes become a base64 string and
// BigInt is written as a plain integer.
func ToJSON(value Value, indent string) ([]byte, error) {
	data, err := appendJSON(nil, value)
	if err != nil || indent == "" {
		return data, err
	}
	var buffer bytes.Buffer
	if err := json.Indent(&buffer, data, "", indent); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func appendJSON(dst []byte, value Value) ([]byte, error) {
	switch v := value.(type) {
	case nil, Undefined, Null:
		return append(dst, "null"...), nil
	case Int:
		return strconv.AppendInt(dst, int64(v), 10), nil
	case NegativeZero:
		return append(dst, "-0"...), nil
	case Float32:
		return appendJSONFloat(dst, float64(v), 32), nil
	case Float64:
		return appendJSONFloat(dst, float64(v), 64), nil
	case BigInt:
		return strconv.AppendInt(dst, int64(v), 10), nil
	case Bool:
		return strconv.AppendBool(dst, bool(v)), nil
	case String:
		return appendJSONString(dst, string(v))
	case Bytes:
		dst = append(dst, '"')
		dst = base64.StdEncoding.AppendEncode(dst, v)
		return append(dst, '"'), nil
	case Array:
		dst = append(dst, '[')
		for i, element := range v {
			if i > 0 {
				dst = append(dst, ',')
			}
			var err error
			if dst, err = appendJSON(dst, element); err != nil {
				return nil, err
			}
		}
		return append(dst, ']'), nil
	case Object:
		dst = append(dst, '{')
		for i, field := range v {
			if i > 0 {
				dst = append(dst, ',')
			}
			var err error
			if dst, err = appendJSONString(dst, field.Key); err != nil {
				return nil, err
			}
			dst = append(dst, ':')
			if dst, err = appendJSON(dst, field.Value); err != nil {
				return nil, err
			}
		}
		return append(dst, '}'), nil
	}
	return nil, fmt.Errorf("anyvalue: cannot render %T as JSON", value)
}

// appendJSONFloat formats like encoding/json: shortest representation
// for the given precision, exponent form outside [1e-6, 1e21).
func appendJSONFloat(dst []byte, f float64, bits int) []byte {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return append(dst, "null"...)
	}
	var data []byte
	if bits == 32 {
		data, _ = json.Marshal(float32(f))
	} else {
		data, _ = json.Marshal(f)
	}
	return append(dst, data...)
}

// appendJSONString quotes s without the HTML escaping json.Marshal
// applies.
func appendJSONString(dst []byte, s string) ([]byte, error) {
	var buffer bytes.Buffer
	encoder := json.NewEncoder(&buffer)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(s); err != nil {
		return nil, err
	}
	return append(dst, bytes.TrimSuffix(buffer.Bytes(), []byte("\n"))...), nil
}

// MarshalJSON implementations let Values nest inside structures passed
// to encoding/json.

func (v Undefined) MarshalJSON() ([]byte, error)    { return appendJSON(nil, v) }
func (v Null) MarshalJSON() ([]byte, error)         { return appendJSON(nil, v) }
func (v Int) MarshalJSON() ([]byte, error)          { return appendJSON(nil, v) }
func (v NegativeZero) MarshalJSON() ([]byte, error) { return appendJSON(nil, v) }
func (v Float32) MarshalJSON() ([]byte, error)      { return appendJSON(nil, v) }
func (v Float64) MarshalJSON() ([]byte, error)      { return appendJSON(nil, v) }
func (v BigInt) MarshalJSON() ([]byte, error)       { return appendJSON(nil, v) }
func (v Bool) MarshalJSON() ([]byte, error)         { return appendJSON(nil, v) }
func (v String) MarshalJSON() ([]byte, error)       { return appendJSON(nil, v) }
func (v Object) MarshalJSON() ([]byte, error)       { return appendJSON(nil, v) }
func (v Array) MarshalJSON() ([]byte, error)        { return appendJSON(nil, v) }
func (v Bytes) MarshalJSON() ([]byte, error)        { return appendJSON(nil, v) }
