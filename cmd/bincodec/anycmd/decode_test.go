// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package anycmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bureau-foundation/bincodec/cmd/bincodec/cli"
	"github.com/bureau-foundation/bincodec/lib/anyvalue"
)

func TestDecodeToText(t *testing.T) {
	object := anyvalue.Object{
		{Key: "a", Value: anyvalue.Int(1)},
		{Key: "b", Value: anyvalue.Bytes{0x01}},
	}

	tests := []struct {
		name   string
		data   []byte
		format decodeFormat
		want   string
	}{
		{
			name:   "indented json",
			data:   encodeValues(object),
			format: decodeFormat{syntax: "json"},
			want:   "{\n  \"a\": 1,\n  \"b\": \"AQ==\"\n}\n",
		},
		{
			name:   "compact json",
			data:   encodeValues(object),
			format: decodeFormat{syntax: "json", compact: true},
			want:   "{\"a\":1,\"b\":\"AQ==\"}\n",
		},
		{
			name:   "yaml keeps bytes",
			data:   encodeValues(object),
			format: decodeFormat{syntax: "yaml"},
			want:   "a: 1\nb: !!binary AQ==\n",
		},
		{
			name:   "sequence becomes array",
			data:   encodeValues(anyvalue.Int(1), anyvalue.String("x")),
			format: decodeFormat{syntax: "json", compact: true, sequence: true},
			want:   "[1,\"x\"]\n",
		},
		{
			name:   "undefined renders as null",
			data:   encodeValues(anyvalue.Undefined{}),
			format: decodeFormat{syntax: "json"},
			want:   "null\n",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var output bytes.Buffer
			if err := decodeToText(test.data, &output, testEnvironment(t), test.format); err != nil {
				t.Fatalf("decodeToText: %v", err)
			}
			if output.String() != test.want {
				t.Errorf("output = %q, want %q", output.String(), test.want)
			}
		})
	}
}

func TestDecodeToTextErrors(t *testing.T) {
	tests := []struct {
		name   string
		data   []byte
		syntax string
		want   string
	}{
		{"empty input", nil, "json", "empty input"},
		{"unknown syntax", encodeValues(anyvalue.Null{}), "toml", "unknown output syntax"},
		{"trailing value", encodeValues(anyvalue.Int(1), anyvalue.Int(2)), "json", "Pass -s"},
		{"json text", []byte(`{"a":1}`), "json", "looks like JSON"},
		{"hex text", []byte("7d 01\n"), "json", "Pass --hex"},
		{"unknown tag", []byte{0x73}, "json", "decode"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var output bytes.Buffer
			err := decodeToText(test.data, &output, testEnvironment(t), decodeFormat{syntax: test.syntax})
			if err == nil {
				t.Fatalf("decodeToText succeeded with output %q", output.String())
			}
			if !strings.Contains(err.Error(), test.want) {
				t.Errorf("error = %q, want substring %q", err.Error(), test.want)
			}
			if cli.CategoryOf(err) != cli.CategoryValidation {
				t.Errorf("category = %q, want validation", cli.CategoryOf(err))
			}
			if output.Len() != 0 {
				t.Errorf("wrote %q before failing", output.String())
			}
		})
	}
}
