// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package anycmd

import (
	"log/slog"

	"github.com/bureau-foundation/bincodec/cmd/bincodec/cli"
	"github.com/bureau-foundation/bincodec/lib/config"
	"github.com/bureau-foundation/bincodec/lib/wire"
)

// sharedParams holds the flags every subcommand accepts.
type sharedParams struct {
	ConfigPath string `json:"-" flag:"config" desc:"configuration file (default: $BINCODEC_CONFIG, else built-in defaults)"`
	Verbose    bool   `json:"-" flag:"verbose,v" desc:"log debug detail to stderr"`
}

// environment is what a command needs besides its own flags: the
// loaded configuration, the wire options derived from it, and a
// logger scoped to the command.
type environment struct {
	config  *config.Config
	options wire.Options
	logger  *slog.Logger
}

// load reads the configuration named by --config, falling back to
// BINCODEC_CONFIG and then to defaults. Configuration problems are
// validation errors: the user can fix them.
func (p *sharedParams) load(command string) (*environment, error) {
	var (
		cfg *config.Config
		err error
	)
	if p.ConfigPath != "" {
		cfg, err = config.LoadFile(p.ConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, cli.Validation("%w", err).
			WithHint("Check the file named by --config or $" + config.EnvironmentVariable + ".")
	}
	return newEnvironment(cfg, p.Verbose, command)
}

func newEnvironment(cfg *config.Config, verbose bool, command string) (*environment, error) {
	options, err := cfg.WireOptions()
	if err != nil {
		return nil, cli.Validation("%w", err)
	}
	logger := cli.NewCommandLogger(verbose).With("command", command)
	logger.Debug("configuration loaded",
		"strings", options.Strings.Name(),
		"initial_chunk", options.InitialSize,
		"format", cfg.Output.Format,
		"color", cfg.Output.Color,
	)
	return &environment{config: cfg, options: options, logger: logger}, nil
}
