// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package anycmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bureau-foundation/bincodec/lib/anyvalue"
)

func TestCollectStats(t *testing.T) {
	object := anyvalue.Object{
		{Key: "a", Value: anyvalue.Array{anyvalue.Int(1), anyvalue.Int(2)}},
		{Key: "b", Value: anyvalue.String("xy")},
	}
	objectSize := len(encodeValues(object))
	data := encodeValues(object, anyvalue.Null{}, anyvalue.Bytes{1, 2, 3})

	report, err := collectStats(data, testEnvironment(t))
	if err != nil {
		t.Fatalf("collectStats: %v", err)
	}

	if report.Values != 3 {
		t.Errorf("Values = %d, want 3", report.Values)
	}
	if report.Bytes != len(data) {
		t.Errorf("Bytes = %d, want %d", report.Bytes, len(data))
	}
	if report.LargestValue != objectSize {
		t.Errorf("LargestValue = %d, want %d", report.LargestValue, objectSize)
	}
	if report.MaxDepth != 3 {
		t.Errorf("MaxDepth = %d, want 3", report.MaxDepth)
	}
	if report.StringBytes != 4 {
		t.Errorf("StringBytes = %d, want 4 (two keys and \"xy\")", report.StringBytes)
	}
	if report.BinaryBytes != 3 {
		t.Errorf("BinaryBytes = %d, want 3", report.BinaryBytes)
	}

	wantTags := []tagCount{
		{"int", 2},
		{"array", 1},
		{"bytes", 1},
		{"null", 1},
		{"object", 1},
		{"string", 1},
	}
	if len(report.Tags) != len(wantTags) {
		t.Fatalf("Tags = %v, want %v", report.Tags, wantTags)
	}
	for i := range wantTags {
		if report.Tags[i] != wantTags[i] {
			t.Errorf("Tags[%d] = %v, want %v", i, report.Tags[i], wantTags[i])
		}
	}

	var output bytes.Buffer
	if err := writeStats(&output, report); err != nil {
		t.Fatalf("writeStats: %v", err)
	}
	for _, want := range []string{"values:", "max depth:", "int", "object"} {
		if !strings.Contains(output.String(), want) {
			t.Errorf("output missing %q:\n%s", want, output.String())
		}
	}
}

func TestCollectStatsLargeCounts(t *testing.T) {
	values := make(anyvalue.Array, 1500)
	for i := range values {
		values[i] = anyvalue.Int(i)
	}
	report, err := collectStats(encodeValues(values), testEnvironment(t))
	if err != nil {
		t.Fatalf("collectStats: %v", err)
	}

	var output bytes.Buffer
	if err := writeStats(&output, report); err != nil {
		t.Fatalf("writeStats: %v", err)
	}
	// Counts use thousands separators and sizes use binary units.
	if !strings.Contains(output.String(), "1,500") {
		t.Errorf("output missing %q:\n%s", "1,500", output.String())
	}
	if !strings.Contains(output.String(), "KiB") {
		t.Errorf("output missing a KiB size:\n%s", output.String())
	}
}

func TestCollectStatsDecodeError(t *testing.T) {
	if _, err := collectStats([]byte{0x7d}, testEnvironment(t)); err == nil {
		t.Error("collectStats accepted a truncated value")
	}
}
