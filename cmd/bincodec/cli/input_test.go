// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadInput(t *testing.T) {
	directory := t.TempDir()
	path := filepath.Join(directory, "payload.bin")
	if err := os.WriteFile(path, []byte{0x7d, 0x01}, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	stdin := []byte{0x7e}

	tests := []struct {
		name     string
		args     []string
		wantData []byte
		wantArgs []string
	}{
		{"no args reads stdin", nil, stdin, nil},
		{"dash reads stdin", []string{"-"}, stdin, []string{}},
		{"file argument", []string{path}, []byte{0x7d, 0x01}, []string{}},
		{"file after other args", []string{"extra", path}, []byte{0x7d, 0x01}, []string{"extra"}},
		{"missing file stays in args", []string{filepath.Join(directory, "absent")}, stdin, []string{filepath.Join(directory, "absent")}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			data, args, err := ReadInput(test.args, bytes.NewReader(stdin))
			if err != nil {
				t.Fatalf("ReadInput: %v", err)
			}
			if !bytes.Equal(data, test.wantData) {
				t.Errorf("data = % x, want % x", data, test.wantData)
			}
			if len(args) != len(test.wantArgs) {
				t.Fatalf("args = %v, want %v", args, test.wantArgs)
			}
			for i := range args {
				if args[i] != test.wantArgs[i] {
					t.Errorf("args[%d] = %q, want %q", i, args[i], test.wantArgs[i])
				}
			}
		})
	}
}

func TestReadInput_Directory(t *testing.T) {
	_, _, err := ReadInput([]string{t.TempDir()}, strings.NewReader(""))
	if err == nil {
		t.Fatal("ReadInput accepted a directory")
	}
	if CategoryOf(err) != CategoryValidation {
		t.Errorf("category = %q, want validation", CategoryOf(err))
	}
}

func TestInputOptions_Read(t *testing.T) {
	tests := []struct {
		name    string
		options InputOptions
		stdin   string
		want    []byte
	}{
		{"raw", InputOptions{}, "\x7d\x01", []byte{0x7d, 0x01}},
		{"hex with spaces", InputOptions{Hex: true}, "7d 01\n", []byte{0x7d, 0x01}},
		{"hex without spaces", InputOptions{Hex: true}, "7C3FC00000", []byte{0x7c, 0x3f, 0xc0, 0x00, 0x00}},
		{"base64", InputOptions{Base64: true}, "fQE=\n", []byte{0x7d, 0x01}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			data, _, err := test.options.Read(nil, strings.NewReader(test.stdin))
			if err != nil {
				t.Fatalf("Read: %v", err)
			}
			if !bytes.Equal(data, test.want) {
				t.Errorf("data = % x, want % x", data, test.want)
			}
		})
	}
}

func TestInputOptions_ReadErrors(t *testing.T) {
	tests := []struct {
		name    string
		options InputOptions
		stdin   string
		want    string
	}{
		{"both encodings", InputOptions{Hex: true, Base64: true}, "00", "mutually exclusive"},
		{"odd hex", InputOptions{Hex: true}, "7d0", "decode hex"},
		{"bad hex digit", InputOptions{Hex: true}, "zz", "decode hex"},
		{"empty hex", InputOptions{Hex: true}, " \n ", "empty input"},
		{"bad base64", InputOptions{Base64: true}, "!!!!", "decode base64"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, _, err := test.options.Read(nil, strings.NewReader(test.stdin))
			if err == nil {
				t.Fatal("Read succeeded, want error")
			}
			if !strings.Contains(err.Error(), test.want) {
				t.Errorf("error = %q, want substring %q", err.Error(), test.want)
			}
			if CategoryOf(err) != CategoryValidation {
				t.Errorf("category = %q, want validation", CategoryOf(err))
			}
		})
	}
}

func TestExtraArgs(t *testing.T) {
	if err := ExtraArgs("decode", nil); err != nil {
		t.Errorf("ExtraArgs(nil) = %v, want nil", err)
	}
	if err := ExtraArgs("decode", []string{"absent.bin"}); CategoryOf(err) != CategoryNotFound {
		t.Errorf("single leftover: category = %q, want not_found", CategoryOf(err))
	}
	if err := ExtraArgs("decode", []string{"a", "b"}); CategoryOf(err) != CategoryValidation {
		t.Errorf("two leftovers: category = %q, want validation", CategoryOf(err))
	}
}

func TestRequireInput(t *testing.T) {
	if err := RequireInput([]byte{0}, "an any-value"); err != nil {
		t.Errorf("RequireInput(non-empty) = %v", err)
	}
	err := RequireInput(nil, "an any-value")
	if err == nil || !strings.Contains(err.Error(), "an any-value") {
		t.Errorf("RequireInput(nil) = %v, want error naming the expectation", err)
	}
}
