// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package anycmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/bureau-foundation/bincodec/cmd/bincodec/cli"
	"github.com/bureau-foundation/bincodec/lib/anyvalue"
	"github.com/bureau-foundation/bincodec/lib/testutil"
)

func TestValidateCanonical(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		sequence bool
	}{
		{"int", encodeValues(anyvalue.Int(1)), false},
		{"negative zero", testutil.Hex(t, "7d 40"), false},
		{"nested", encodeValues(anyvalue.Object{{Key: "a", Value: anyvalue.Array{anyvalue.Bool(true), anyvalue.Float64(0.1)}}}), false},
		{"sequence", encodeValues(anyvalue.Int(1), anyvalue.String("ü")), true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var output bytes.Buffer
			if err := validateCanonical(test.data, &output, testEnvironment(t), test.sequence); err != nil {
				t.Fatalf("validateCanonical: %v", err)
			}
			if output.String() != "valid\n" {
				t.Errorf("output = %q, want %q", output.String(), "valid\n")
			}
		})
	}
}

func TestValidateNotCanonical(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{
			name: "redundant varint group",
			data: "7d 81 00",
			want: "not canonical: first difference at byte 1 (1 value, original 3 bytes, re-encoded 2 bytes)\n",
		},
		{
			name: "ill-formed utf-8",
			data: "77 01 ff",
			want: "not canonical: first difference at byte 1 (1 value, original 3 bytes, re-encoded 5 bytes)\n",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var output bytes.Buffer
			err := validateCanonical(testutil.Hex(t, test.data), &output, testEnvironment(t), false)
			var exitError *cli.ExitError
			if !errors.As(err, &exitError) || exitError.Code != 1 {
				t.Fatalf("error = %v, want ExitError with code 1", err)
			}
			if output.String() != test.want {
				t.Errorf("output = %q, want %q", output.String(), test.want)
			}
		})
	}
}

func TestValidateUndecodable(t *testing.T) {
	var output bytes.Buffer
	err := validateCanonical([]byte{0x7d}, &output, testEnvironment(t), false)
	if cli.CategoryOf(err) != cli.CategoryValidation {
		t.Errorf("error = %v, want a validation error", err)
	}
}
