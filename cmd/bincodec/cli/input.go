// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"io"
	"io/fs"
	"os"
	"unicode"

	"github.com/spf13/pflag"
)

// InputOptions selects how binary input is spelled: raw bytes, hex
// digits, or base64 text. Embed it in a parameter struct to give a
// command --hex and --base64 flags.
type InputOptions struct {
	Hex    bool
	Base64 bool
}

// AddFlags registers --hex/-x and --base64 on flagSet.
func (o *InputOptions) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.BoolVarP(&o.Hex, "hex", "x", false, "treat input as hex digits (whitespace ignored)")
	flagSet.BoolVar(&o.Base64, "base64", false, "treat input as standard base64 text")
}

// Read resolves input data from either a file (the last element of
// args, if it names a regular file on disk) or stdin, then decodes hex
// or base64 text when the options ask for it. "-" as the last argument
// means stdin.
//
// Returns the input bytes and the args with any consumed file path
// removed. The caller is responsible for validating that the returned
// args are acceptable (e.g., no unexpected positional arguments).
func (o *InputOptions) Read(args []string, stdin io.Reader) ([]byte, []string, error) {
	if o.Hex && o.Base64 {
		return nil, nil, Validation("--hex and --base64 are mutually exclusive")
	}
	data, remainingArgs, err := ReadInput(args, stdin)
	if err != nil {
		return nil, nil, err
	}
	switch {
	case o.Hex:
		data, err = DecodeHexInput(data)
	case o.Base64:
		data, err = decodeBase64Input(data)
	}
	if err != nil {
		return nil, nil, err
	}
	return data, remainingArgs, nil
}

// ReadInput reads the file named by the last element of args, or stdin
// when args is empty or ends in "-". Returns the bytes and the args
// with the consumed path removed.
//
// An argument that looks like a path but does not exist is left in
// the returned args; the command's argument check then reports it.
func ReadInput(args []string, stdin io.Reader) ([]byte, []string, error) {
	if length := len(args); length > 0 {
		candidate := args[length-1]
		if candidate == "-" {
			return readStdin(stdin, args[:length-1])
		}
		info, err := os.Stat(candidate)
		switch {
		case err == nil && !info.IsDir():
			data, err := os.ReadFile(candidate)
			if err != nil {
				return nil, nil, Internal("read %s: %w", candidate, err)
			}
			return data, args[:length-1], nil
		case err == nil:
			return nil, nil, Validation("%s is a directory", candidate)
		case !errors.Is(err, fs.ErrNotExist):
			return nil, nil, Internal("stat %s: %w", candidate, err)
		}
	}
	return readStdin(stdin, args)
}

func readStdin(stdin io.Reader, args []string) ([]byte, []string, error) {
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, nil, Internal("read stdin: %w", err)
	}
	return data, args, nil
}

// DecodeHexInput strips whitespace from hex-encoded input and decodes
// it to binary bytes. Whitespace between hex digit pairs is allowed
// (e.g., "7d 80 01" or "7d8001").
func DecodeHexInput(data []byte) ([]byte, error) {
	cleaned := stripSpace(data)
	if len(cleaned) == 0 {
		return nil, Validation("empty input after stripping whitespace from hex")
	}

	decoded := make([]byte, hex.DecodedLen(len(cleaned)))
	count, err := hex.Decode(decoded, cleaned)
	if err != nil {
		return nil, Validation("decode hex: %w", err)
	}
	return decoded[:count], nil
}

func decodeBase64Input(data []byte) ([]byte, error) {
	cleaned := stripSpace(data)
	if len(cleaned) == 0 {
		return nil, Validation("empty input after stripping whitespace from base64")
	}

	decoded := make([]byte, base64.StdEncoding.DecodedLen(len(cleaned)))
	count, err := base64.StdEncoding.Decode(decoded, cleaned)
	if err != nil {
		return nil, Validation("decode base64: %w", err)
	}
	return decoded[:count], nil
}

func stripSpace(data []byte) []byte {
	return bytes.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, data)
}

// RequireInput returns a validation error naming what was expected
// when data is empty.
func RequireInput(data []byte, what string) error {
	if len(data) == 0 {
		return Validation("empty input: expected %s", what)
	}
	return nil
}

// ExtraArgs returns an error for positional arguments left over after
// [ReadInput], or nil when args is empty. A single leftover argument
// is a file path that did not exist.
func ExtraArgs(command string, args []string) error {
	switch len(args) {
	case 0:
		return nil
	case 1:
		return NotFound("%s: no such file %q", command, args[0])
	}
	return Validation("%s takes at most one file argument, got %d arguments", command, len(args))
}
