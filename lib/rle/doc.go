// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package rle implements the run-length and delta encoders layered on
// the wire varint codec.
//
// Every encoder tracks the last value and how many times it has been
// repeated. A run is flushed when a different value arrives, or, for
// the optimized variants, when Bytes is called.
//
// The variants trade generality for size:
//
//   - [RleEncoder] writes each distinct value with a caller-supplied
//     writer, followed by the run length minus one. The final run has
//     no count: its decoder repeats the last value forever once the
//     input is exhausted.
//   - [IntDiffEncoder] writes each value as a signed difference from
//     its predecessor, with no run compression.
//   - [RleIntDiffEncoder] writes differences and run-length encodes
//     repeated values.
//   - [UintOptRleEncoder] writes singletons as a plain varint and runs
//     as a varint with the sign flag set followed by the count minus
//     two. Negative zero is the run form of zero.
//   - [IncUintOptRleEncoder] is the same layout applied to runs of
//     consecutively increasing values: [4, 5, 6] is one run starting at
//     4.
//   - [IntDiffOptRleEncoder] packs a "count follows" bit into the low
//     bit of each difference. Differences must fit in 31 bits.
//   - [StringEncoder] concatenates strings into one wire string and
//     records each length, in UTF-16 code units, with a
//     [UintOptRleEncoder].
//
// Decoders return wire errors ([wire.ErrUnexpectedEndOfArray],
// [wire.ErrIntegerOutOfRange]) wrapped in [*wire.DecodeError]. After a
// decoder returns an error its run state is unspecified and it should
// be discarded.
package rle
