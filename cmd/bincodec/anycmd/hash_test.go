// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package anycmd

import (
	"bytes"
	"testing"

	"github.com/bureau-foundation/bincodec/lib/anyvalue"
	"github.com/bureau-foundation/bincodec/lib/testutil"
)

func TestFingerprints(t *testing.T) {
	data := encodeValues(anyvalue.Int(1), anyvalue.String("x"))

	entries, err := fingerprints(data, testEnvironment(t), false)
	if err != nil {
		t.Fatalf("fingerprints: %v", err)
	}
	want := []hashEntry{
		{Index: 0, Tag: "int", Fingerprint: anyvalue.FingerprintOf(anyvalue.Int(1)).String()},
		{Index: 1, Tag: "string", Fingerprint: anyvalue.FingerprintOf(anyvalue.String("x")).String()},
	}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d", len(entries), len(want))
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, entries[i], want[i])
		}
	}

	var output bytes.Buffer
	if err := writeFingerprints(&output, entries); err != nil {
		t.Fatalf("writeFingerprints: %v", err)
	}
	wantText := want[0].Fingerprint + "  int\n" + want[1].Fingerprint + "  string\n"
	if output.String() != wantText {
		t.Errorf("output = %q, want %q", output.String(), wantText)
	}
}

func TestFingerprintsIgnoreNonCanonicalDetail(t *testing.T) {
	canonical, err := fingerprints(testutil.Hex(t, "7d 01"), testEnvironment(t), false)
	if err != nil {
		t.Fatalf("fingerprints canonical: %v", err)
	}
	padded, err := fingerprints(testutil.Hex(t, "7d 81 00"), testEnvironment(t), false)
	if err != nil {
		t.Fatalf("fingerprints padded: %v", err)
	}
	if canonical[0].Fingerprint != padded[0].Fingerprint {
		t.Error("a redundant varint group changed the value fingerprint")
	}

	raw, err := fingerprints(testutil.Hex(t, "7d 81 00"), testEnvironment(t), true)
	if err != nil {
		t.Fatalf("fingerprints raw: %v", err)
	}
	if raw[0].Fingerprint == canonical[0].Fingerprint {
		t.Error("--raw hashed the re-encoded value instead of the input bytes")
	}
	if raw[0].Tag != "raw" {
		t.Errorf("raw tag = %q, want %q", raw[0].Tag, "raw")
	}
}
