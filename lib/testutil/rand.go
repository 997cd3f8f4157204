// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"hash/fnv"
	"math/rand/v2"
)

// Rand returns a PCG generator seeded from the test's name.
//
//	rng := testutil.Rand(t)
//	for range 1000 {
//	    value := rng.Uint64N(wire.MaxSafeInteger + 1)
//	    ...
//	}
func Rand(t interface{ Name() string }) *rand.Rand {
	hasher := fnv.New64a()
	hasher.Write([]byte(t.Name()))
	seed := hasher.Sum64()
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
