// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for the bincodec
// command.
//
// Configuration is loaded from a single file specified by either the
// BINCODEC_CONFIG environment variable (via [Load]) or a --config flag
// (via [LoadFile]). There are no fallbacks, no ~/.config discovery,
// and no automatic file search. Commands run without either use
// [Default].
//
// Key exports:
//
//   - [Config] -- master struct with Strings, Encoder and Output
//   - [Default] -- returns a Config with the built-in defaults
//   - [Load] and [LoadFile] -- the two entry points for loading
//   - [Config.WireOptions] -- the encoder and decoder options the
//     configuration selects
package config
