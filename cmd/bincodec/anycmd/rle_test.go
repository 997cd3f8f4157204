// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package anycmd

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/bureau-foundation/bincodec/cmd/bincodec/cli"
	"github.com/bureau-foundation/bincodec/lib/testutil"
)

func TestRleEncode(t *testing.T) {
	tests := []struct {
		scheme string
		args   []string
		start  int64
		want   string
	}{
		{"uint-opt", []string{"0", "0", "0", "0", "0", "7"}, 0, "40 03 07\n"},
		{"inc-uint-opt", []string{"10", "11", "12", "13"}, 0, "4a 02\n"},
		{"rle", []string{"1", "1", "1", "7"}, 0, "01 02 07\n"},
		{"int-diff", []string{"5", "4", "4"}, 3, "02 41 00\n"},
	}
	for _, test := range tests {
		t.Run(test.scheme, func(t *testing.T) {
			var output bytes.Buffer
			if err := rleEncode(test.args, &output, testEnvironment(t), test.scheme, test.start); err != nil {
				t.Fatalf("rleEncode: %v", err)
			}
			if output.String() != test.want {
				t.Errorf("output = %q, want %q", output.String(), test.want)
			}
		})
	}
}

// TestRleRoundTrip encodes each scheme's values through the command
// functions and decodes them back.
func TestRleRoundTrip(t *testing.T) {
	tests := []struct {
		scheme string
		args   []string
		want   []string
	}{
		{"rle", []string{"3", "3", "9"}, nil},
		{"int-diff", []string{"-4", "10", "10"}, nil},
		{"rle-int-diff", []string{"1", "2", "3", "3", "-70"}, nil},
		{"uint-opt", []string{"0", "0", "1", "2", "2", "2"}, nil},
		{"inc-uint-opt", []string{"4", "5", "6", "1", "1"}, nil},
		{"int-diff-opt", []string{"7", "7", "7", "-3"}, nil},
		{"string", []string{"a", "", "héllo", "😀"}, []string{`"a"`, `""`, `"héllo"`, `"😀"`}},
	}
	for _, test := range tests {
		t.Run(test.scheme, func(t *testing.T) {
			var encoded bytes.Buffer
			if err := rleEncode(test.args, &encoded, testEnvironment(t), test.scheme, 0); err != nil {
				t.Fatalf("rleEncode: %v", err)
			}
			data := testutil.Hex(t, encoded.String())

			var decoded bytes.Buffer
			if err := rleDecode(data, &decoded, testEnvironment(t), test.scheme, len(test.args), 0); err != nil {
				t.Fatalf("rleDecode: %v", err)
			}
			want := test.want
			if want == nil {
				want = test.args
			}
			if got := strings.Split(strings.TrimSuffix(decoded.String(), "\n"), "\n"); strings.Join(got, ",") != strings.Join(want, ",") {
				t.Errorf("decoded %v, want %v", got, want)
			}
		})
	}
}

func TestRleErrors(t *testing.T) {
	var output bytes.Buffer
	env := testEnvironment(t)

	if err := rleEncode([]string{"1"}, &output, env, "lz4", 0); err == nil || !strings.Contains(err.Error(), "uint-opt") {
		t.Errorf("unknown scheme error = %v, want it to list the schemes", err)
	}
	if err := rleEncode([]string{"1"}, &output, env, "unit-opt", 0); err == nil || !strings.Contains(err.Error(), "Did you mean --scheme uint-opt?") {
		t.Errorf("misspelled scheme error = %v, want a suggestion", err)
	}
	if err := rleEncode(nil, &output, env, "uint-opt", 0); cli.CategoryOf(err) != cli.CategoryValidation {
		t.Errorf("no values: error = %v, want validation", err)
	}
	if err := rleEncode([]string{"-1"}, &output, env, "uint-opt", 0); cli.CategoryOf(err) != cli.CategoryValidation {
		t.Errorf("negative unsigned: error = %v, want validation", err)
	}
	if err := rleDecode([]byte{0x01}, &output, env, "uint-opt", 0, 0); err == nil {
		t.Error("rleDecode accepted --count 0")
	}

	for _, count := range []int{maxRLECount + 1, math.MaxInt} {
		err := rleDecode([]byte{0x01}, &output, env, "rle", count, 0)
		if cli.CategoryOf(err) != cli.CategoryValidation || !strings.Contains(err.Error(), "exceeds the limit") {
			t.Errorf("--count %d: error = %v, want a validation error naming the limit", count, err)
		}
	}
	if output.Len() != 0 {
		t.Errorf("oversized --count wrote %q", output.String())
	}

	output.Reset()
	err := rleDecode([]byte{0x01}, &output, env, "uint-opt", 2, 0)
	if err == nil || !strings.Contains(err.Error(), "decode value 1") {
		t.Errorf("past end: error = %v, want it to name value 1", err)
	}
	if output.String() != "1\n" {
		t.Errorf("past end: output = %q, want the value read before the failure", output.String())
	}
}
