// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package anycmd implements the bincodec subcommands that read, write
// and inspect any-values: encode, decode, diag, validate, cbor, hash
// and stats, plus the lower-level varint and rle tools.
//
// Every command reads its input from a trailing file argument or from
// stdin. Binary input may be given as hex (--hex) or base64 (--base64)
// text instead. Commands load lib/config through --config or
// BINCODEC_CONFIG for the string codec, the encoder's first chunk size
// and output defaults; flags given on the command line win over the
// file.
//
// Each command's logic lives in a function that takes the input bytes
// and an io.Writer, so tests drive it without touching stdin or
// stdout.
package anycmd
