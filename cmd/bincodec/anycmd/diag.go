// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package anycmd

import (
	"fmt"
	"io"
	"os"

	"github.com/bureau-foundation/bincodec/cmd/bincodec/cli"
	"github.com/bureau-foundation/bincodec/lib/anyvalue"
	"github.com/bureau-foundation/bincodec/lib/wire"
)

// diagParams holds the parameters for "bincodec diag".
type diagParams struct {
	sharedParams
	cli.InputOptions
	Offsets bool `json:"offsets" flag:"offsets" desc:"prefix each line with the value's byte offset and length"`
}

// DiagCommand returns the "diag" command.
func DiagCommand() *cli.Command {
	var params diagParams

	return &cli.Command{
		Name:    "diag",
		Summary: "Show any-values in diagnostic notation",
		Description: `Read consecutive any-values and print each on its own line in a
diagnostic notation that keeps the information JSON loses:

  42              int (varint)
  -0              negative zero
  1.5_f32         float32
  0.1_f64         float64
  9007199254740993n  bigint
  h'0a0b'         byte buffer
  undefined       undefined

If a value fails to decode, the values before it are still printed and
the error names the byte offset of the failure.`,
		Usage:  "bincodec diag [flags] [file]",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{
				Description: "Inspect the variants the encoder chose",
				Command:     "echo '[1, 1.5, 0.1, 4611686018427387904]' | bincodec encode | bincodec diag",
			},
			{
				Description: "Walk a sequence with offsets",
				Command:     "bincodec diag --offsets events.bin",
			},
		},
		Run: func(args []string) error {
			env, err := params.load("diag")
			if err != nil {
				return err
			}
			data, remainingArgs, err := params.Read(args, os.Stdin)
			if err != nil {
				return err
			}
			if err := cli.ExtraArgs("diag", remainingArgs); err != nil {
				return err
			}
			return diagnose(data, os.Stdout, env, params.Offsets)
		},
	}
}

// diagnose writes the diagnostic notation of each value in data.
func diagnose(data []byte, w io.Writer, env *environment, offsets bool) error {
	if err := cli.RequireInput(data, "any-value data"); err != nil {
		return err
	}

	decoder := wire.NewDecoderOptions(data, env.options)
	count := 0
	for decoder.HasContent() {
		start := decoder.Pos()
		value, err := anyvalue.Read(decoder)
		if err != nil {
			return decodeFailure(data, fmt.Errorf("value %d: %w", count, err))
		}
		notation := anyvalue.Diagnose(value)
		if offsets {
			_, err = fmt.Fprintf(w, "%6d %5d  %s\n", start, decoder.Pos()-start, notation)
		} else {
			_, err = fmt.Fprintln(w, notation)
		}
		if err != nil {
			return err
		}
		count++
	}
	env.logger.Debug("diagnosed", "values", count, "bytes", len(data))
	return nil
}
