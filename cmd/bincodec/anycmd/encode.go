// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package anycmd

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/bureau-foundation/bincodec/cmd/bincodec/cli"
	"github.com/bureau-foundation/bincodec/lib/anyvalue"
)

// encodeParams holds the parameters for "bincodec encode".
type encodeParams struct {
	sharedParams
	From      string `json:"from"     flag:"from,f"     desc:"input syntax: json or yaml" default:"json"`
	Sequence  bool   `json:"sequence" flag:"sequence,s" desc:"read whitespace-separated JSON documents and write one value per document"`
	HexOutput bool   `json:"hex"      flag:"hex,x"      desc:"write hex text instead of binary"`
	Base64    bool   `json:"base64"   flag:"base64"     desc:"write base64 text instead of binary"`
}

// outputEncoding is how encode spells its binary result.
type outputEncoding int

const (
	outputBinary outputEncoding = iota
	outputHex
	outputBase64
)

// EncodeCommand returns the "encode" command.
func EncodeCommand() *cli.Command {
	var params encodeParams

	return &cli.Command{
		Name:    "encode",
		Summary: "Convert JSON or YAML to any-value binary",
		Description: `Read JSON (comments and trailing commas allowed) or YAML and write
the equivalent any-value encoding.

Numbers follow the encoder's number rule: integers within 31 bits
become varints, numbers that survive a float32 round trip become
float32, and everything else becomes float64. Integers beyond 2^53
become 64-bit bigints. YAML !!binary scalars become byte buffers.
Object fields keep their document order.

The output is binary. It is refused when stdout is a terminal; pass
--hex or --base64 for text, or redirect to a file.`,
		Usage:  "bincodec encode [flags] [file]",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{
				Description: "Encode a JSON value as hex",
				Command:     `echo '{"count": 42}' | bincodec encode --hex`,
			},
			{
				Description: "Encode a YAML file",
				Command:     "bincodec encode --from yaml settings.yaml > settings.bin",
			},
			{
				Description: "Encode JSON Lines as a sequence of values",
				Command:     "bincodec encode -s events.jsonl > events.bin",
			},
		},
		Run: func(args []string) error {
			if params.HexOutput && params.Base64 {
				return cli.Validation("--hex and --base64 are mutually exclusive")
			}
			env, err := params.load("encode")
			if err != nil {
				return err
			}
			data, remainingArgs, err := cli.ReadInput(args, os.Stdin)
			if err != nil {
				return err
			}
			if err := cli.ExtraArgs("encode", remainingArgs); err != nil {
				return err
			}

			output := outputBinary
			switch {
			case params.HexOutput:
				output = outputHex
			case params.Base64:
				output = outputBase64
			default:
				if err := cli.RefuseBinaryToTerminal(os.Stdout); err != nil {
					return err
				}
			}
			return encodeDocuments(data, os.Stdout, env, params.From, params.Sequence, output)
		},
	}
}

// encodeDocuments parses data in the given syntax and writes the
// encoded values to w.
func encodeDocuments(data []byte, w io.Writer, env *environment, from string, sequence bool, output outputEncoding) error {
	if err := cli.RequireInput(data, from+" data"); err != nil {
		return err
	}

	var values []anyvalue.Value
	switch from {
	case "json":
		if sequence {
			parsed, err := anyvalue.FromJSONSequence(data)
			if err != nil {
				return cli.Validation("%w", err)
			}
			values = parsed
		} else {
			value, err := anyvalue.FromJSON(data)
			if err != nil {
				return cli.Validation("%w", err).
					WithHint("Pass -s if the input holds several JSON documents.")
			}
			values = []anyvalue.Value{value}
		}
	case "yaml":
		if sequence {
			return cli.Validation("--sequence applies to JSON input only")
		}
		value, err := anyvalue.FromYAML(data)
		if err != nil {
			return cli.Validation("%w", err)
		}
		values = []anyvalue.Value{value}
	default:
		return cli.Validation("unknown input syntax %q (expected json or yaml)", from)
	}

	encoded := encodeAll(values, env.options)
	env.logger.Debug("encoded",
		"values", len(values),
		"bytes", len(encoded),
		"strings", env.options.Strings.Name(),
	)

	var err error
	switch output {
	case outputHex:
		_, err = fmt.Fprintln(w, hex.EncodeToString(encoded))
	case outputBase64:
		_, err = fmt.Fprintln(w, base64.StdEncoding.EncodeToString(encoded))
	default:
		_, err = w.Write(encoded)
	}
	return err
}
