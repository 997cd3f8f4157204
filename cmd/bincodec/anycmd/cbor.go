// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package anycmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bureau-foundation/bincodec/cmd/bincodec/cli"
	"github.com/bureau-foundation/bincodec/lib/anyvalue"
	"github.com/bureau-foundation/bincodec/lib/codec"
)

// cborParams holds the parameters for "bincodec cbor".
type cborParams struct {
	sharedParams
	cli.InputOptions
	Reverse bool `json:"reverse" flag:"reverse,r" desc:"read CBOR and write any-values"`
	Diag    bool `json:"diag"    flag:"diag"      desc:"print diagnostic notation of the output instead of binary"`
}

// CBORCommand returns the "cbor" command.
func CBORCommand() *cli.Command {
	var params cborParams

	return &cli.Command{
		Name:    "cbor",
		Summary: "Transcode between any-values and CBOR",
		Description: `Read consecutive any-values and write each as a CBOR data item
(RFC 8949), producing a CBOR sequence (RFC 8742). With --reverse, read
a CBOR sequence and write any-values.

Any-value to CBOR keeps object field order and the float width the
value was written with; undefined stays undefined. CBOR to any-value
sorts map keys, turns tag 2/3 bignums into bigint (or float64 beyond
64 bits), timestamps into RFC 3339 strings, and drops other tags,
keeping their content. CBOR maps must have text keys.

Output is binary unless --diag is given, in which case each item is
printed in the diagnostic notation of the output format.`,
		Usage:  "bincodec cbor [flags] [file]",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{
				Description: "Show an any-value as CBOR diagnostic notation",
				Command:     "bincodec cbor --diag value.bin",
			},
			{
				Description: "Convert CBOR to any-value binary",
				Command:     "bincodec cbor --reverse message.cbor > message.bin",
			},
		},
		Run: func(args []string) error {
			env, err := params.load("cbor")
			if err != nil {
				return err
			}
			data, remainingArgs, err := params.Read(args, os.Stdin)
			if err != nil {
				return err
			}
			if err := cli.ExtraArgs("cbor", remainingArgs); err != nil {
				return err
			}
			if !params.Diag {
				if err := cli.RefuseBinaryToTerminal(os.Stdout); err != nil {
					return err
				}
			}
			if params.Reverse {
				return fromCBOR(data, os.Stdout, env, params.Diag)
			}
			return toCBOR(data, os.Stdout, env, params.Diag)
		},
	}
}

// toCBOR transcodes the any-values in data to a CBOR sequence.
func toCBOR(data []byte, w io.Writer, env *environment, diag bool) error {
	values, err := decodeValues(data, env.options, true)
	if err != nil {
		return err
	}
	var output bytes.Buffer
	for index, value := range values {
		item, err := anyvalue.ToCBOR(value)
		if err != nil {
			return cli.Internal("value %d: %w", index, err)
		}
		if !diag {
			output.Write(item)
			continue
		}
		notation, err := codec.Diagnose(item)
		if err != nil {
			return cli.Internal("value %d: %w", index, err)
		}
		fmt.Fprintln(&output, notation)
	}
	env.logger.Debug("transcoded to CBOR", "values", len(values), "bytes", output.Len())
	_, err = w.Write(output.Bytes())
	return err
}

// fromCBOR transcodes the CBOR sequence in data to any-values.
func fromCBOR(data []byte, w io.Writer, env *environment, diag bool) error {
	if err := cli.RequireInput(data, "CBOR data"); err != nil {
		return err
	}
	decoder := codec.NewDecoder(bytes.NewReader(data))
	var values []anyvalue.Value
	for {
		var item codec.RawMessage
		if err := decoder.Decode(&item); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return cli.Validation("decode CBOR item %d: %w", len(values), err)
		}
		value, err := anyvalue.FromCBOR(item)
		if err != nil {
			return cli.Validation("CBOR item %d: %w", len(values), err)
		}
		values = append(values, value)
	}
	env.logger.Debug("transcoded from CBOR", "values", len(values), "bytes", len(data))

	if diag {
		for _, value := range values {
			if _, err := fmt.Fprintln(w, anyvalue.Diagnose(value)); err != nil {
				return err
			}
		}
		return nil
	}
	_, err := w.Write(encodeAll(values, env.options))
	return err
}
