// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package anycmd

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/bureau-foundation/bincodec/cmd/bincodec/cli"
	"github.com/bureau-foundation/bincodec/lib/rle"
	"github.com/bureau-foundation/bincodec/lib/wire"
)

// rleScheme binds one encoder/decoder pair from lib/rle to text
// values: encode parses the arguments, decode formats what it reads.
type rleScheme struct {
	summary string
	encode  func(args []string, start int64, options wire.Options) ([]byte, error)
	decode  func(data []byte, count int, start int64, options wire.Options) ([]string, error)
}

var rleSchemes = map[string]rleScheme{
	"rle": {
		summary: "run-length encoded unsigned varints; the last run repeats forever",
		encode: func(args []string, _ int64, _ wire.Options) ([]byte, error) {
			values, err := parseUnsigned(args)
			if err != nil {
				return nil, err
			}
			encoder := rle.NewRleEncoder(func(e *wire.Encoder, v uint64) { e.WriteVarUint(v) })
			for _, value := range values {
				encoder.Write(value)
			}
			return encoder.Bytes(), nil
		},
		decode: func(data []byte, count int, _ int64, _ wire.Options) ([]string, error) {
			decoder := rle.NewRleDecoder(data, func(d *wire.Decoder) (uint64, error) { return d.ReadVarUint() })
			return readFormatted(decoder, count, formatUnsigned)
		},
	},
	"int-diff": {
		summary: "signed differences from the previous value (--start seeds it)",
		encode: func(args []string, start int64, _ wire.Options) ([]byte, error) {
			values, err := parseSignedValues(args)
			if err != nil {
				return nil, err
			}
			encoder := rle.NewIntDiffEncoder(start)
			for _, value := range values {
				encoder.Write(value)
			}
			return encoder.Bytes(), nil
		},
		decode: func(data []byte, count int, start int64, _ wire.Options) ([]string, error) {
			return readFormatted(rle.NewIntDiffDecoder(data, start), count, formatSigned)
		},
	},
	"rle-int-diff": {
		summary: "run-length encoded signed differences (--start seeds them)",
		encode: func(args []string, start int64, _ wire.Options) ([]byte, error) {
			values, err := parseSignedValues(args)
			if err != nil {
				return nil, err
			}
			encoder := rle.NewRleIntDiffEncoder(start)
			for _, value := range values {
				encoder.Write(value)
			}
			return encoder.Bytes(), nil
		},
		decode: func(data []byte, count int, start int64, _ wire.Options) ([]string, error) {
			return readFormatted(rle.NewRleIntDiffDecoder(data, start), count, formatSigned)
		},
	},
	"uint-opt": {
		summary: "unsigned values; runs flagged with the varint sign bit",
		encode: func(args []string, _ int64, _ wire.Options) ([]byte, error) {
			values, err := parseUnsigned(args)
			if err != nil {
				return nil, err
			}
			encoder := rle.NewUintOptRleEncoder()
			for _, value := range values {
				encoder.Write(value)
			}
			return encoder.Bytes(), nil
		},
		decode: func(data []byte, count int, _ int64, _ wire.Options) ([]string, error) {
			return readFormatted(rle.NewUintOptRleDecoder(data), count, formatUnsigned)
		},
	},
	"inc-uint-opt": {
		summary: "unsigned values; runs of consecutive increasing values",
		encode: func(args []string, _ int64, _ wire.Options) ([]byte, error) {
			values, err := parseUnsigned(args)
			if err != nil {
				return nil, err
			}
			encoder := rle.NewIncUintOptRleEncoder()
			for _, value := range values {
				encoder.Write(value)
			}
			return encoder.Bytes(), nil
		},
		decode: func(data []byte, count int, _ int64, _ wire.Options) ([]string, error) {
			return readFormatted(rle.NewIncUintOptRleDecoder(data), count, formatUnsigned)
		},
	},
	"int-diff-opt": {
		summary: "signed differences with the run flag in the low bit (31-bit differences)",
		encode: func(args []string, _ int64, _ wire.Options) ([]byte, error) {
			values, err := parseSignedValues(args)
			if err != nil {
				return nil, err
			}
			encoder := rle.NewIntDiffOptRleEncoder()
			for _, value := range values {
				encoder.Write(value)
			}
			return encoder.Bytes(), nil
		},
		decode: func(data []byte, count int, _ int64, _ wire.Options) ([]string, error) {
			return readFormatted(rle.NewIntDiffOptRleDecoder(data), count, formatSigned)
		},
	},
	"string": {
		summary: "strings concatenated, with UTF-16 lengths in a uint-opt table",
		encode: func(args []string, _ int64, options wire.Options) ([]byte, error) {
			encoder := rle.NewStringEncoderOptions(options)
			for _, arg := range args {
				encoder.Write(arg)
			}
			return encoder.Bytes(), nil
		},
		decode: func(data []byte, count int, _ int64, options wire.Options) ([]string, error) {
			decoder, err := rle.NewStringDecoderOptions(data, options)
			if err != nil {
				return nil, err
			}
			return readFormatted(decoder, count, strconv.Quote)
		},
	},
}

// rleSchemeNames returns the scheme names in sorted order.
func rleSchemeNames() []string {
	names := make([]string, 0, len(rleSchemes))
	for name := range rleSchemes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func lookupScheme(name string) (rleScheme, error) {
	scheme, ok := rleSchemes[name]
	if !ok {
		names := rleSchemeNames()
		err := cli.Validation("unknown scheme %q (expected one of: %s)", name, strings.Join(names, ", "))
		if suggestion := cli.Closest(name, names); suggestion != "" {
			err.WithHint(fmt.Sprintf("Did you mean --scheme %s?", suggestion))
		}
		return rleScheme{}, err
	}
	return scheme, nil
}

// rleParams holds the flags shared by "rle encode" and "rle decode".
type rleParams struct {
	sharedParams
	Scheme string `json:"scheme" flag:"scheme" desc:"encoder: rle, int-diff, rle-int-diff, uint-opt, inc-uint-opt, int-diff-opt or string" default:"uint-opt"`
	Start  int64  `json:"start"  flag:"start"  desc:"initial value for int-diff and rle-int-diff"`
}

// rleDecodeParams holds the parameters for "rle decode".
type rleDecodeParams struct {
	rleParams
	cli.InputOptions
	Count int `json:"count" flag:"count,n" desc:"number of values to read (required)"`
}

// RLECommand returns the "rle" command group.
func RLECommand() *cli.Command {
	var schemes strings.Builder
	for _, name := range rleSchemeNames() {
		fmt.Fprintf(&schemes, "\n  %-14s %s", name, rleSchemes[name].summary)
	}

	return &cli.Command{
		Name:    "rle",
		Summary: "Run-length and delta encode integer and string columns",
		Description: `Encode a list of values with one of the run-length or delta encoders,
or decode such a column back to its values.

Schemes:` + schemes.String(),
		Subcommands: []*cli.Command{
			rleEncodeCommand(),
			rleDecodeCommand(),
		},
	}
}

func rleEncodeCommand() *cli.Command {
	var params rleParams

	return &cli.Command{
		Name:    "encode",
		Summary: "Encode values given as arguments and print hex",
		Usage:   "bincodec rle encode [flags] <value>...",
		Params:  func() any { return &params },
		Examples: []cli.Example{
			{
				Description: "A run of five zeros and a singleton",
				Command:     "bincodec rle encode 0 0 0 0 0 7",
			},
			{
				Description: "Consecutive ids collapse to one run",
				Command:     "bincodec rle encode --scheme inc-uint-opt 10 11 12 13",
			},
		},
		Run: func(args []string) error {
			env, err := params.load("rle encode")
			if err != nil {
				return err
			}
			return rleEncode(args, os.Stdout, env, params.Scheme, params.Start)
		},
	}
}

func rleDecodeCommand() *cli.Command {
	var params rleDecodeParams

	return &cli.Command{
		Name:    "decode",
		Summary: "Decode a column and print one value per line",
		Usage:   "bincodec rle decode [flags] --count N [file]",
		Params:  func() any { return &params },
		Examples: []cli.Example{
			{
				Description: "Decode six values from hex",
				Command:     "echo '40 03 07' | bincodec rle decode --hex -n 6",
			},
		},
		Run: func(args []string) error {
			env, err := params.load("rle decode")
			if err != nil {
				return err
			}
			data, remainingArgs, err := params.Read(args, os.Stdin)
			if err != nil {
				return err
			}
			if err := cli.ExtraArgs("rle decode", remainingArgs); err != nil {
				return err
			}
			return rleDecode(data, os.Stdout, env, params.Scheme, params.Count, params.Start)
		},
	}
}

// rleEncode encodes args with scheme and writes the hex result.
func rleEncode(args []string, w io.Writer, env *environment, schemeName string, start int64) error {
	scheme, err := lookupScheme(schemeName)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.Validation("rle encode requires at least one value")
	}
	encoded, err := scheme.encode(args, start, env.options)
	if err != nil {
		return err
	}
	env.logger.Debug("rle encoded", "scheme", schemeName, "values", len(args), "bytes", len(encoded))
	_, err = fmt.Fprintf(w, "% x\n", encoded)
	return err
}

// maxRLECount caps "rle decode --count". Each value becomes one output
// line held in memory before printing.
const maxRLECount = 1 << 24

// rleDecode reads count values from data with scheme and writes one
// per line.
func rleDecode(data []byte, w io.Writer, env *environment, schemeName string, count int, start int64) error {
	scheme, err := lookupScheme(schemeName)
	if err != nil {
		return err
	}
	if count <= 0 {
		return cli.Validation("--count must be positive").
			WithHint("Some schemes repeat their last run forever, so the number of values must be given.")
	}
	if count > maxRLECount {
		return cli.Validation("--count %d exceeds the limit of %d values", count, maxRLECount)
	}
	lines, err := scheme.decode(data, count, start, env.options)
	for _, line := range lines {
		if _, writeErr := fmt.Fprintln(w, line); writeErr != nil {
			return writeErr
		}
	}
	if err != nil {
		return cli.Validation("decode value %d: %w", len(lines), err)
	}
	return nil
}

func readFormatted[T any](reader rle.Reader[T], count int, format func(T) string) ([]string, error) {
	values, err := rle.ReadN(reader, count)
	lines := make([]string, len(values))
	for i, value := range values {
		lines[i] = format(value)
	}
	return lines, err
}

func formatUnsigned(v uint64) string { return strconv.FormatUint(v, 10) }
func formatSigned(v int64) string    { return strconv.FormatInt(v, 10) }

func parseUnsigned(args []string) ([]uint64, error) {
	values := make([]uint64, len(args))
	for i, arg := range args {
		value, err := strconv.ParseUint(arg, 0, 64)
		if err != nil {
			return nil, cli.Validation("parse %q: %w", arg, err)
		}
		if value > wire.MaxSafeInteger {
			return nil, cli.Validation("%s exceeds the varint ceiling 2^53-1", arg)
		}
		values[i] = value
	}
	return values, nil
}

func parseSignedValues(args []string) ([]int64, error) {
	values := make([]int64, len(args))
	for i, arg := range args {
		value, err := strconv.ParseInt(arg, 0, 64)
		if err != nil {
			return nil, cli.Validation("parse %q: %w", arg, err)
		}
		if value > wire.MaxSafeInteger || value < wire.MinSafeInteger {
			return nil, cli.Validation("%s is outside the varint range ±(2^53-1)", arg)
		}
		values[i] = value
	}
	return values, nil
}
