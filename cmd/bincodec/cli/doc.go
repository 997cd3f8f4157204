// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for bincodec.
//
// The central type is [Command], which represents a named subcommand with
// optional nested [Command.Subcommands], a flag source, and a Run
// function. Flags come either from a [pflag.FlagSet] factory or from a
// tagged parameter struct bound by [FlagsFromParams]. Commands are
// assembled into a tree in cmd/bincodec/commands and dispatched via
// [Command.Execute], which handles flag parsing, subcommand routing, and
// structured help output with examples.
//
// When a user types an unknown subcommand or flag, the framework suggests
// the known name with the smallest edit distance, up to three edits.
// Commands use [Closest] for their own enumerated values.
//
// [InputOptions] reads a command's input from a file argument or stdin,
// as raw bytes, hex or base64.
//
// Errors returned by commands are classified with [ToolError]
// ([Validation], [NotFound], [Internal]); [ExitError] carries a handled
// non-zero exit code. [NewCommandLogger] builds the slog logger every
// command writes diagnostics to, and [WriteHighlighted] colors JSON and
// YAML output for terminals.
package cli
