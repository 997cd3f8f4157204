// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for bincodec packages.
//
// [Hex] turns a whitespace-tolerant hex literal into bytes so that wire
// fixtures in tests read like the dumps they were taken from.
// [RequireBytes] and [RequireErrorIs] compare results and fail the test
// with a hex diff or the full error chain.
//
// [Rand] returns a deterministic PCG generator for property-style
// round-trip loops. The seed is derived from the test name, so every
// run of a given test sees the same sequence and failures reproduce.
//
// [WriteFile] writes fixture data into t.TempDir() for tests that
// exercise file-path input.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no bincodec-internal dependencies.
package testutil
