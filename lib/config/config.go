// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/bincodec/lib/wire"
)

// EnvironmentVariable names the variable [Load] reads the config path
// from.
const EnvironmentVariable = "BINCODEC_CONFIG"

// MaxInitialChunk caps encoder.initial_chunk. Larger first chunks only
// waste memory for the small values the command usually handles.
const MaxInitialChunk = 64 << 20

// Config is the master configuration for bincodec.
type Config struct {
	// Strings selects how strings are converted to and from UTF-8.
	Strings StringsConfig `yaml:"strings"`

	// Encoder configures the growable write buffer.
	Encoder EncoderConfig `yaml:"encoder"`

	// Output configures how decoded values are printed.
	Output OutputConfig `yaml:"output"`
}

// StringsConfig selects the string codec.
type StringsConfig struct {
	// Codec is "native" or "polyfill". Both produce identical bytes;
	// polyfill exists to check that claim against real data.
	// Default: native
	Codec string `yaml:"codec"`
}

// EncoderConfig configures the encoder.
type EncoderConfig struct {
	// InitialChunk is the capacity in bytes of the encoder's first
	// chunk. Later chunks double.
	// Default: 100
	InitialChunk int `yaml:"initial_chunk"`
}

// OutputConfig configures decoded output.
type OutputConfig struct {
	// Format is "json" or "yaml".
	// Default: json
	Format string `yaml:"format"`

	// Compact disables indentation of JSON output.
	Compact bool `yaml:"compact"`

	// Color is "auto" (highlight when stdout is a terminal), "always"
	// or "never".
	// Default: auto
	Color string `yaml:"color"`
}

// Output formats and color modes accepted by Validate.
var (
	Formats    = []string{"json", "yaml"}
	ColorModes = []string{"auto", "always", "never"}
)

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Strings: StringsConfig{
			Codec: wire.NativeStrings.Name(),
		},
		Encoder: EncoderConfig{
			InitialChunk: wire.DefaultInitialSize,
		},
		Output: OutputConfig{
			Format: "json",
			Color:  "auto",
		},
	}
}

// Load loads configuration from the file named by BINCODEC_CONFIG.
// When the variable is unset, Load returns Default.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		return Default(), nil
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path. Values in the
// file override the defaults; keys the file omits keep them. Unknown
// keys are an error, and so is a configuration that fails Validate.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// loadFile decodes a single configuration file over the current config.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate checks the configuration for errors. Every problem is
// reported, joined with errors.Join.
func (c *Config) Validate() error {
	var errs []error

	if _, err := wire.ParseStringCodec(c.Strings.Codec); err != nil {
		errs = append(errs, fmt.Errorf("strings.codec: %w", err))
	}

	if c.Encoder.InitialChunk < 1 || c.Encoder.InitialChunk > MaxInitialChunk {
		errs = append(errs, fmt.Errorf("encoder.initial_chunk must be between 1 and %d, got %d",
			MaxInitialChunk, c.Encoder.InitialChunk))
	}

	if !slices.Contains(Formats, c.Output.Format) {
		errs = append(errs, fmt.Errorf("output.format must be one of: %v", Formats))
	}
	if !slices.Contains(ColorModes, c.Output.Color) {
		errs = append(errs, fmt.Errorf("output.color must be one of: %v", ColorModes))
	}

	return errors.Join(errs...)
}

// WireOptions returns the encoder and decoder options c selects. It
// fails only for a config that would fail Validate.
func (c *Config) WireOptions() (wire.Options, error) {
	codec, err := wire.ParseStringCodec(c.Strings.Codec)
	if err != nil {
		return wire.Options{}, fmt.Errorf("strings.codec: %w", err)
	}
	return wire.Options{InitialSize: c.Encoder.InitialChunk, Strings: codec}, nil
}
