// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"strings"
	"testing"
)

// sampleSettings uses json struct tags, which fxamacker reads as a
// fallback when cbor tags are absent.
type sampleSettings struct {
	Codec   string `json:"codec"`
	Chunk   int    `json:"chunk,omitempty"`
	Compact bool   `json:"compact"`
}

func TestMarshalUnmarshalRoundtrip(t *testing.T) {
	original := sampleSettings{Codec: "polyfill", Chunk: 4096, Compact: true}

	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded sampleSettings
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded != original {
		t.Errorf("roundtrip mismatch: got %+v, want %+v", decoded, original)
	}
}

func TestMarshalDeterministic(t *testing.T) {
	value := map[string]any{"zeta": 1, "alpha": 2, "mid": []any{"x", 3.5}}

	first, err := Marshal(value)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	for range 10 {
		again, err := Marshal(value)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		if !bytes.Equal(first, again) {
			t.Fatalf("non-deterministic encoding: % x vs % x", first, again)
		}
	}
}

func TestSmallestFloatEncoding(t *testing.T) {
	data, err := Marshal(1.5)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	// 1.5 is exact in half precision: 0xf9 then two bytes.
	if want := []byte{0xf9, 0x3e, 0x00}; !bytes.Equal(data, want) {
		t.Errorf("Marshal(1.5) = % x, want % x", data, want)
	}
}

func TestUnmarshalAnyUsesStringKeyedMaps(t *testing.T) {
	data, err := Marshal(map[string]any{"nested": map[string]any{"k": "v"}})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var decoded any
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	outer, ok := decoded.(map[string]any)
	if !ok {
		t.Fatalf("decoded %T, want map[string]any", decoded)
	}
	if _, ok := outer["nested"].(map[string]any); !ok {
		t.Errorf("nested map decoded as %T", outer["nested"])
	}
}

func TestUnmarshalRejectsDuplicateKeys(t *testing.T) {
	// {"a": 1, "a": 2}
	data := []byte{0xa2, 0x61, 'a', 0x01, 0x61, 'a', 0x02}
	var decoded any
	if err := Unmarshal(data, &decoded); err == nil {
		t.Errorf("Unmarshal accepted duplicate keys: %v", decoded)
	}
}

func TestUnmarshalInvalidCBOR(t *testing.T) {
	var decoded any
	if err := Unmarshal([]byte{0xFF, 0xFE, 0xFD}, &decoded); err == nil {
		t.Error("Unmarshal should reject invalid CBOR")
	}
}

func TestAppendHeads(t *testing.T) {
	tests := []struct {
		name string
		got  []byte
		want []byte
	}{
		{"empty array", AppendArrayHead(nil, 0), []byte{0x80}},
		{"array of 23", AppendArrayHead(nil, 23), []byte{0x97}},
		{"array of 24", AppendArrayHead(nil, 24), []byte{0x98, 24}},
		{"array of 256", AppendArrayHead(nil, 256), []byte{0x99, 0x01, 0x00}},
		{"array of 65536", AppendArrayHead(nil, 65536), []byte{0x9a, 0x00, 0x01, 0x00, 0x00}},
		{"map of 1", AppendMapHead(nil, 1), []byte{0xa1}},
		{"map of 1000", AppendMapHead([]byte{0xff}, 1000), []byte{0xff, 0xb9, 0x03, 0xe8}},
	}
	for _, tt := range tests {
		if !bytes.Equal(tt.got, tt.want) {
			t.Errorf("%s: got % x, want % x", tt.name, tt.got, tt.want)
		}
	}
}

func TestHandBuiltMapKeepsOrder(t *testing.T) {
	data := AppendMapHead(nil, 2)
	for _, key := range []string{"zeta", "alpha"} {
		keyBytes, err := Marshal(key)
		if err != nil {
			t.Fatalf("Marshal key: %v", err)
		}
		data = append(data, keyBytes...)
		data = append(data, Null)
	}

	notation, err := Diagnose(data)
	if err != nil {
		t.Fatalf("Diagnose: %v", err)
	}
	if want := `{"zeta": null, "alpha": null}`; notation != want {
		t.Errorf("Diagnose = %s, want %s", notation, want)
	}
}

func TestRawMessagePassesThrough(t *testing.T) {
	data, err := Marshal([]RawMessage{{Undefined}, {Null}})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if want := []byte{0x82, 0xf7, 0xf6}; !bytes.Equal(data, want) {
		t.Errorf("Marshal = % x, want % x", data, want)
	}
}

func TestEncoderDecoderSequence(t *testing.T) {
	var buffer bytes.Buffer
	encoder := NewEncoder(&buffer)
	for _, item := range []any{"first", uint64(2), []any{true}} {
		if err := encoder.Encode(item); err != nil {
			t.Fatalf("Encode: %v", err)
		}
	}

	decoder := NewDecoder(&buffer)
	var items []any
	for {
		var item any
		if err := decoder.Decode(&item); err != nil {
			break
		}
		items = append(items, item)
	}
	if len(items) != 3 {
		t.Fatalf("decoded %d items, want 3", len(items))
	}
	if items[0] != "first" || items[1] != uint64(2) {
		t.Errorf("items = %v", items)
	}
}

func TestDiagnoseFirst(t *testing.T) {
	item1, err := Marshal("hello")
	if err != nil {
		t.Fatalf("Marshal item 1: %v", err)
	}
	item2, err := Marshal(int64(42))
	if err != nil {
		t.Fatalf("Marshal item 2: %v", err)
	}
	sequence := append(item1, item2...)

	notation, remaining, err := DiagnoseFirst(sequence)
	if err != nil {
		t.Fatalf("DiagnoseFirst: %v", err)
	}
	if !strings.Contains(notation, `"hello"`) {
		t.Errorf("first item notation %q does not contain \"hello\"", notation)
	}

	notation2, remaining2, err := DiagnoseFirst(remaining)
	if err != nil {
		t.Fatalf("DiagnoseFirst second: %v", err)
	}
	if notation2 != "42" {
		t.Errorf("second item notation = %q, want 42", notation2)
	}
	if len(remaining2) != 0 {
		t.Errorf("expected no remaining bytes, got %d", len(remaining2))
	}
}

func BenchmarkMarshal(b *testing.B) {
	value := map[string]any{"codec": "native", "values": []any{1, 2.5, "three"}}
	b.ReportAllocs()
	for b.Loop() {
		Marshal(value)
	}
}
