// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete bincodec command tree.
package commands

import (
	"fmt"

	"github.com/bureau-foundation/bincodec/cmd/bincodec/anycmd"
	"github.com/bureau-foundation/bincodec/cmd/bincodec/cli"
	"github.com/bureau-foundation/bincodec/lib/version"
)

// Root builds and returns the complete bincodec command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "bincodec",
		Description: `bincodec: encode, decode and inspect lib0 binary values.

Converts between JSON, YAML, CBOR and the compact tagged "any-value"
encoding, and exposes the varint and run-length encoders underneath it.`,
		Subcommands: []*cli.Command{
			anycmd.EncodeCommand(),
			anycmd.DecodeCommand(),
			anycmd.DiagCommand(),
			anycmd.ValidateCommand(),
			anycmd.CBORCommand(),
			anycmd.HashCommand(),
			anycmd.StatsCommand(),
			anycmd.VarintCommand(),
			anycmd.RLECommand(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(args []string) error {
					fmt.Printf("bincodec %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Encode JSON and look at what the encoder chose",
				Command:     `echo '{"n": 1.5, "big": 9007199254740993}' | bincodec encode | bincodec diag`,
			},
			{
				Description: "Decode hex text to JSON",
				Command:     "echo '75 02 7d 01 7e' | bincodec decode --hex",
			},
			{
				Description: "Check a file is in canonical form",
				Command:     "bincodec validate value.bin",
			},
		},
	}
}
