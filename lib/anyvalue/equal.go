// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package anyvalue

import (
	"bytes"
	"math"
)

// Equal reports whether a and b are the same variant holding the same
// data. Floats compare by bit pattern except that any two NaNs are
// equal, so 0 and -0 differ. Objects compare field by field in order.
// A nil Value equals Undefined, matching how Write treats it.
func Equal(a, b Value) bool {
	if a == nil {
		a = Undefined{}
	}
	if b == nil {
		b = Undefined{}
	}
	switch x := a.(type) {
	case Float32:
		y, ok := b.(Float32)
		return ok && floatsEqual(float64(x), float64(y))
	case Float64:
		y, ok := b.(Float64)
		return ok && floatsEqual(float64(x), float64(y))
	case Bytes:
		y, ok := b.(Bytes)
		return ok && bytes.Equal(x, y)
	case Array:
		y, ok := b.(Array)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case Object:
		y, ok := b.(Object)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if x[i].Key != y[i].Key || !Equal(x[i].Value, y[i].Value) {
				return false
			}
		}
		return true
	}
	// The remaining variants are comparable scalars.
	return a == b
}

func floatsEqual(x, y float64) bool {
	if math.IsNaN(x) || math.IsNaN(y) {
		return math.IsNaN(x) && math.IsNaN(y)
	}
	return math.Float64bits(x) == math.Float64bits(y)
}
