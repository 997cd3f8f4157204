// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewLogger(t *testing.T) {
	t.Run("piped output is JSON", func(t *testing.T) {
		var buffer bytes.Buffer
		logger := newLogger(&buffer, false, false)
		logger.Info("decoded", "bytes", 3)

		var record map[string]any
		if err := json.Unmarshal(buffer.Bytes(), &record); err != nil {
			t.Fatalf("log line is not JSON: %v\n%s", err, buffer.String())
		}
		if record["msg"] != "decoded" || record["bytes"] != float64(3) {
			t.Errorf("record = %v", record)
		}
	})

	t.Run("terminal output is text", func(t *testing.T) {
		var buffer bytes.Buffer
		logger := newLogger(&buffer, true, false)
		logger.Info("decoded", "bytes", 3)
		if !strings.Contains(buffer.String(), "msg=decoded bytes=3") {
			t.Errorf("output = %q", buffer.String())
		}
	})

	t.Run("verbose enables debug", func(t *testing.T) {
		var quiet, verbose bytes.Buffer
		newLogger(&quiet, true, false).Debug("detail")
		newLogger(&verbose, true, true).Debug("detail")
		if quiet.Len() != 0 {
			t.Errorf("debug logged without verbose: %q", quiet.String())
		}
		if !strings.Contains(verbose.String(), "detail") {
			t.Errorf("debug not logged with verbose: %q", verbose.String())
		}
	})
}
