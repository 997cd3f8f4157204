// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package anycmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bureau-foundation/bincodec/cmd/bincodec/cli"
	"github.com/bureau-foundation/bincodec/lib/wire"
)

// varintParams holds the parameters for "bincodec varint".
type varintParams struct {
	sharedParams
	Signed bool `json:"signed" flag:"signed" desc:"use the signed (sign-and-magnitude) varint form"`
	Decode bool `json:"decode" flag:"decode,d" desc:"decode hex varints from the arguments or stdin"`
}

// VarintCommand returns the "varint" command.
func VarintCommand() *cli.Command {
	var params varintParams

	return &cli.Command{
		Name:    "varint",
		Summary: "Encode or decode variable-length integers",
		Description: `Without --decode, encodes each number argument as a varint and prints
one line of hex per number. Numbers may be decimal, 0x hex, 0o octal
or 0b binary, and must lie within ±(2^53-1).

With --signed, uses the signed form: the first byte holds a sign flag
and six magnitude bits. "-0" encodes as negative zero (40).

With --decode, reads hex text from the arguments (or stdin when there
are none) and prints each varint it holds, one per line, until the
input ends.`,
		Usage:  "bincodec varint [flags] <number>... | --decode [hex]...",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{
				Description: "Encode 300 as an unsigned varint",
				Command:     "bincodec varint 300",
			},
			{
				Description: "Encode negative numbers",
				Command:     "bincodec varint --signed -- -1 -0 -64",
			},
			{
				Description: "Decode a run of signed varints",
				Command:     "bincodec varint --decode --signed 'c1 00 40'",
			},
		},
		Run: func(args []string) error {
			env, err := params.load("varint")
			if err != nil {
				return err
			}
			if params.Decode {
				var text []byte
				if len(args) > 0 {
					text = []byte(strings.Join(args, " "))
				} else if text, _, err = cli.ReadInput(nil, os.Stdin); err != nil {
					return err
				}
				data, err := cli.DecodeHexInput(text)
				if err != nil {
					return err
				}
				return decodeVarints(data, os.Stdout, env, params.Signed)
			}
			if len(args) == 0 {
				return cli.Validation("varint requires at least one number (or --decode)")
			}
			return encodeVarints(args, os.Stdout, env, params.Signed)
		},
	}
}

// encodeVarints writes the hex encoding of each number in args, one
// per line.
func encodeVarints(args []string, w io.Writer, env *environment, signed bool) error {
	for _, arg := range args {
		encoder := wire.NewEncoderOptions(env.options)
		if signed {
			magnitude, negative, err := parseSigned(arg)
			if err != nil {
				return err
			}
			encoder.WriteVarIntSign(magnitude, negative)
		} else {
			value, err := strconv.ParseUint(arg, 0, 64)
			if err != nil {
				return cli.Validation("parse %q: %w", arg, err).
					WithHint("Pass --signed for negative numbers.")
			}
			if value > wire.MaxSafeInteger {
				return cli.Validation("%s exceeds the varint ceiling 2^53-1", arg)
			}
			encoder.WriteVarUint(value)
		}
		if _, err := fmt.Fprintf(w, "% x\n", encoder.Bytes()); err != nil {
			return err
		}
	}
	return nil
}

// parseSigned splits a number into magnitude and sign, keeping the
// sign of "-0".
func parseSigned(arg string) (uint64, bool, error) {
	text, negative := strings.CutPrefix(arg, "-")
	if !negative {
		text = strings.TrimPrefix(text, "+")
	}
	magnitude, err := strconv.ParseUint(text, 0, 64)
	if err != nil {
		return 0, false, cli.Validation("parse %q: %w", arg, err)
	}
	if magnitude > wire.MaxSafeInteger {
		return 0, false, cli.Validation("%s exceeds the varint range ±(2^53-1)", arg)
	}
	return magnitude, negative, nil
}

// decodeVarints prints each varint in data, one per line.
func decodeVarints(data []byte, w io.Writer, env *environment, signed bool) error {
	decoder := wire.NewDecoderOptions(data, env.options)
	for decoder.HasContent() {
		var text string
		if signed {
			magnitude, negative, err := decoder.ReadVarIntSign()
			if err != nil {
				return cli.Validation("decode: %w", err)
			}
			text = strconv.FormatUint(magnitude, 10)
			if negative {
				text = "-" + text
			}
		} else {
			value, err := decoder.ReadVarUint()
			if err != nil {
				return cli.Validation("decode: %w", err)
			}
			text = strconv.FormatUint(value, 10)
		}
		if _, err := fmt.Fprintln(w, text); err != nil {
			return err
		}
	}
	return nil
}
