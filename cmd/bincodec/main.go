// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/bureau-foundation/bincodec/cmd/bincodec/cli"
	"github.com/bureau-foundation/bincodec/cmd/bincodec/commands"
)

func main() {
	if err := run(); err != nil {
		os.Exit(exitCode(err))
	}
}

func run() error {
	return commands.Root().Execute(os.Args[1:])
}

// exitCode reports err and returns the process exit code. Commands
// that print their own output (like validate) return a cli.ExitError;
// don't print a redundant "error:" line for those.
func exitCode(err error) int {
	var exitError *cli.ExitError
	if errors.As(err, &exitError) {
		return exitError.Code
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	var toolError *cli.ToolError
	if errors.As(err, &toolError) {
		return toolError.ExitCode()
	}
	return 1
}
