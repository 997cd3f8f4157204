// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package anycmd

import (
	"fmt"
	"io"
	"os"

	"github.com/bureau-foundation/bincodec/cmd/bincodec/cli"
	"github.com/bureau-foundation/bincodec/lib/anyvalue"
)

// hashParams holds the parameters for "bincodec hash".
type hashParams struct {
	sharedParams
	cli.InputOptions
	cli.JSONOutput
	Raw bool `json:"raw" flag:"raw" desc:"hash the input bytes as given instead of each decoded value"`
}

// hashEntry is one line of hash output.
type hashEntry struct {
	Index       int    `json:"index"`
	Tag         string `json:"tag"`
	Fingerprint string `json:"fingerprint"`
}

// HashCommand returns the "hash" command.
func HashCommand() *cli.Command {
	var params hashParams

	return &cli.Command{
		Name:    "hash",
		Summary: "Print the BLAKE3 fingerprint of each value",
		Description: `Decode consecutive any-values and print a keyed BLAKE3 fingerprint of
each value's canonical encoding, followed by its type.

The fingerprint is computed over the re-encoded value, so two inputs
that differ only in non-canonical details (such as redundant varint
groups) hash the same. With --raw, the input bytes are hashed once as
given, without decoding.`,
		Usage:  "bincodec hash [flags] [file]",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{
				Description: "Fingerprint each value in a sequence",
				Command:     "bincodec hash events.bin",
			},
			{
				Description: "Fingerprint as JSON",
				Command:     "bincodec hash --json value.bin",
			},
		},
		Run: func(args []string) error {
			env, err := params.load("hash")
			if err != nil {
				return err
			}
			data, remainingArgs, err := params.Read(args, os.Stdin)
			if err != nil {
				return err
			}
			if err := cli.ExtraArgs("hash", remainingArgs); err != nil {
				return err
			}
			entries, err := fingerprints(data, env, params.Raw)
			if err != nil {
				return err
			}
			if done, err := params.EmitJSON(os.Stdout, entries); done {
				return err
			}
			return writeFingerprints(os.Stdout, entries)
		},
	}
}

// fingerprints hashes each value in data, or data itself when raw.
func fingerprints(data []byte, env *environment, raw bool) ([]hashEntry, error) {
	if raw {
		if err := cli.RequireInput(data, "input bytes"); err != nil {
			return nil, err
		}
		return []hashEntry{{
			Tag:         "raw",
			Fingerprint: anyvalue.FingerprintBytes(data).String(),
		}}, nil
	}

	values, err := decodeValues(data, env.options, true)
	if err != nil {
		return nil, err
	}
	entries := make([]hashEntry, len(values))
	for index, value := range values {
		entries[index] = hashEntry{
			Index:       index,
			Tag:         value.Tag().String(),
			Fingerprint: anyvalue.FingerprintOf(value).String(),
		}
	}
	env.logger.Debug("hashed", "values", len(values))
	return entries, nil
}

func writeFingerprints(w io.Writer, entries []hashEntry) error {
	for _, entry := range entries {
		if _, err := fmt.Fprintf(w, "%s  %s\n", entry.Fingerprint, entry.Tag); err != nil {
			return err
		}
	}
	return nil
}
