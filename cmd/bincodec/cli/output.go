// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"golang.org/x/term"
)

// Color modes accepted by --color and the output.color config key.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// IsTerminal reports whether w is an *os.File attached to a terminal.
// Buffers, pipes and redirected files are not.
func IsTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

// UseColor resolves a color mode for w. "auto" colors only when w is a
// terminal and NO_COLOR is unset. Unknown modes behave like "never".
func UseColor(mode string, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorAuto:
		if _, set := os.LookupEnv("NO_COLOR"); set {
			return false
		}
		return IsTerminal(w)
	}
	return false
}

// WriteHighlighted writes source to w, syntax-highlighted as language
// when color is true. Falls back to the plain text if the highlighter
// fails, so output is never lost to a lexer problem. A trailing
// newline is added when source lacks one.
func WriteHighlighted(w io.Writer, source, language string, color bool) error {
	if !strings.HasSuffix(source, "\n") {
		source += "\n"
	}
	if color {
		var buffer strings.Builder
		if err := quick.Highlight(&buffer, source, language, "terminal256", "monokai"); err == nil {
			_, err = io.WriteString(w, buffer.String())
			return err
		}
	}
	_, err := io.WriteString(w, source)
	return err
}

// RefuseBinaryToTerminal returns a validation error when binary output
// would land on an interactive terminal.
func RefuseBinaryToTerminal(w io.Writer) error {
	if IsTerminal(w) {
		return Validation("refusing to write binary output to a terminal").
			WithHint("Redirect stdout to a file, or pass --hex or --base64 for text output.")
	}
	return nil
}
