// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec holds bincodec's CBOR configuration, used to transcode
// any-values to and from CBOR.
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2):
// smallest integer and float encodings, no indefinite-length items.
// Same logical data always produces identical bytes. Maps marshaled
// through this package have their keys sorted; callers that need a
// specific key order build the map themselves with [AppendMapHead].
//
// For buffer-oriented operations:
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// For CBOR sequences (RFC 8742) on a stream:
//
//	encoder := codec.NewEncoder(os.Stdout)
//	decoder := codec.NewDecoder(os.Stdin)
//
// Decoding into an any target yields map[string]any for maps, uint64
// or int64 for integers, float64 for every float width, []byte for
// byte strings and *big.Int for bignums.
package codec
