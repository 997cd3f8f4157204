// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package anycmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/bureau-foundation/bincodec/cmd/bincodec/cli"
)

// validateParams holds the parameters for "bincodec validate".
type validateParams struct {
	sharedParams
	cli.InputOptions
	Sequence bool `json:"sequence" flag:"sequence,s" desc:"validate consecutive values until the input ends"`
}

// ValidateCommand returns the "validate" command.
func ValidateCommand() *cli.Command {
	var params validateParams

	return &cli.Command{
		Name:    "validate",
		Summary: "Check that any-value binary is in canonical form",
		Description: `Decode the input, re-encode it, and compare the bytes. Exits 0 and
prints "valid" when they match. Exits 1 and describes the first
difference when they do not; exits 2 when the input does not decode.

Input that decodes but is not canonical includes varints with
redundant zero groups and strings holding ill-formed UTF-8 (which
decode with replacement characters).`,
		Usage:  "bincodec validate [flags] [file]",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{
				Description: "Validate a file",
				Command:     "bincodec validate value.bin",
			},
			{
				Description: "Validate a non-minimal varint",
				Command:     "echo '7d 81 00' | bincodec validate --hex",
			},
		},
		Run: func(args []string) error {
			env, err := params.load("validate")
			if err != nil {
				return err
			}
			data, remainingArgs, err := params.Read(args, os.Stdin)
			if err != nil {
				return err
			}
			if err := cli.ExtraArgs("validate", remainingArgs); err != nil {
				return err
			}
			return validateCanonical(data, os.Stdout, env, params.Sequence)
		},
	}
}

// validateCanonical reports whether data re-encodes to itself. A
// mismatch is written to w and returned as an ExitError with code 1.
func validateCanonical(data []byte, w io.Writer, env *environment, sequence bool) error {
	values, err := decodeValues(data, env.options, sequence)
	if err != nil {
		return err
	}
	reencoded := encodeAll(values, env.options)

	if bytes.Equal(data, reencoded) {
		_, err := fmt.Fprintln(w, "valid")
		return err
	}

	offset := firstDifference(data, reencoded)
	env.logger.Debug("canonical form differs",
		"offset", offset,
		"original", len(data),
		"reencoded", len(reencoded),
	)
	fmt.Fprintf(w, "not canonical: first difference at byte %d (%s, original %d bytes, re-encoded %d bytes)\n",
		offset, countLabel(len(values), "value"), len(data), len(reencoded))
	return &cli.ExitError{Code: 1}
}
