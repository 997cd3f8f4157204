// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package anycmd

import (
	"io"
	"os"

	"github.com/bureau-foundation/bincodec/cmd/bincodec/cli"
	"github.com/bureau-foundation/bincodec/lib/anyvalue"
)

// decodeParams holds the parameters for "bincodec decode".
type decodeParams struct {
	sharedParams
	cli.InputOptions
	To       string `json:"to"       flag:"to,t"       desc:"output syntax: json or yaml (default: output.format from config)"`
	Compact  bool   `json:"compact"  flag:"compact,c"  desc:"compact JSON output (no indentation)"`
	Sequence bool   `json:"sequence" flag:"sequence,s" desc:"read consecutive values and output them as an array"`
	Color    string `json:"color"    flag:"color"      desc:"highlight output: auto, always or never (default: output.color from config)"`
}

// decodeFormat is the resolved output configuration for decode.
type decodeFormat struct {
	syntax   string
	compact  bool
	sequence bool
	color    bool
}

// DecodeCommand returns the "decode" command.
func DecodeCommand() *cli.Command {
	var params decodeParams

	return &cli.Command{
		Name:    "decode",
		Summary: "Convert any-value binary to JSON or YAML",
		Description: `Read an any-value and write it as JSON or YAML.

JSON cannot say everything an any-value can: undefined, NaN and the
infinities become null, byte buffers become base64 strings, and the
difference between int, float32, float64 and bigint is lost. YAML keeps
byte buffers (!!binary) and the special floats. Use "bincodec diag" to
see exactly which variant each value was written with.

With -s, reads consecutive values until the input ends and writes them
as one array. Without it, bytes after the first value are an error.

Output is syntax-highlighted when stdout is a terminal.`,
		Usage:  "bincodec decode [flags] [file]",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{
				Description: "Decode a file to indented JSON",
				Command:     "bincodec decode value.bin",
			},
			{
				Description: "Decode hex text to YAML",
				Command:     "echo '76 01 01 61 7d 01' | bincodec decode --hex --to yaml",
			},
			{
				Description: "Decode a sequence to a compact JSON array",
				Command:     "bincodec decode -s -c events.bin",
			},
		},
		Run: func(args []string) error {
			env, err := params.load("decode")
			if err != nil {
				return err
			}
			data, remainingArgs, err := params.Read(args, os.Stdin)
			if err != nil {
				return err
			}
			if err := cli.ExtraArgs("decode", remainingArgs); err != nil {
				return err
			}

			format := decodeFormat{
				syntax:   env.config.Output.Format,
				compact:  params.Compact || env.config.Output.Compact,
				sequence: params.Sequence,
			}
			if params.To != "" {
				format.syntax = params.To
			}
			colorMode := env.config.Output.Color
			if params.Color != "" {
				colorMode = params.Color
			}
			format.color = cli.UseColor(colorMode, os.Stdout)
			return decodeToText(data, os.Stdout, env, format)
		},
	}
}

// decodeToText decodes data and writes it to w in format.
func decodeToText(data []byte, w io.Writer, env *environment, format decodeFormat) error {
	if format.syntax != "json" && format.syntax != "yaml" {
		return cli.Validation("unknown output syntax %q (expected json or yaml)", format.syntax)
	}

	values, err := decodeValues(data, env.options, format.sequence)
	if err != nil {
		return err
	}
	env.logger.Debug("decoded", "values", len(values), "bytes", len(data))

	var value anyvalue.Value = values[0]
	if format.sequence {
		value = anyvalue.Array(values)
	}

	var text []byte
	if format.syntax == "yaml" {
		text, err = anyvalue.ToYAML(value)
	} else {
		indent := "  "
		if format.compact {
			indent = ""
		}
		text, err = anyvalue.ToJSON(value, indent)
	}
	if err != nil {
		return cli.Internal("render %s: %w", format.syntax, err)
	}
	return cli.WriteHighlighted(w, string(text), format.syntax, format.color)
}
