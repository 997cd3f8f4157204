// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package anycmd

import (
	"log/slog"
	"testing"

	"github.com/bureau-foundation/bincodec/lib/anyvalue"
	"github.com/bureau-foundation/bincodec/lib/config"
	"github.com/bureau-foundation/bincodec/lib/wire"
)

// testEnvironment returns an environment built from defaults with a
// logger that discards everything.
func testEnvironment(t *testing.T) *environment {
	t.Helper()
	cfg := config.Default()
	options, err := cfg.WireOptions()
	if err != nil {
		t.Fatalf("WireOptions: %v", err)
	}
	return &environment{
		config:  cfg,
		options: options,
		logger:  slog.New(slog.DiscardHandler),
	}
}

// encodeValues writes values back to back, the way a sequence arrives
// on stdin.
func encodeValues(values ...anyvalue.Value) []byte {
	encoder := wire.NewEncoder()
	for _, value := range values {
		anyvalue.Write(encoder, value)
	}
	return encoder.Bytes()
}
