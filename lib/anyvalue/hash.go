// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package anyvalue

import (
	"encoding/hex"

	"github.com/bureau-foundation/bincodec/lib/wire"
	"github.com/zeebo/blake3"
)

// fingerprintKey is the BLAKE3 key for value fingerprints: the ASCII
// domain string zero-padded to 32 bytes. A different domain string
// yields unrelated hashes for the same bytes.
var fingerprintKey = [32]byte{
	'b', 'i', 'n', 'c', 'o', 'd', 'e', 'c', '.',
	'a', 'n', 'y', 'v', 'a', 'l', 'u', 'e',
}

// Fingerprint is the 32-byte keyed BLAKE3 hash of an encoded value.
type Fingerprint [32]byte

// String returns the lowercase hex form.
func (f Fingerprint) String() string {
	return hex.EncodeToString(f[:])
}

// FingerprintOf hashes the encoding of value. Values that encode to the
// same bytes have the same fingerprint, so Int(1) and Float32(1)
// differ.
func FingerprintOf(value Value) Fingerprint {
	encoder := wire.NewEncoder()
	Write(encoder, value)
	return FingerprintBytes(encoder.Bytes())
}

// FingerprintBytes hashes an already encoded value.
func FingerprintBytes(data []byte) Fingerprint {
	hasher, err := blake3.NewKeyed(fingerprintKey[:])
	if err != nil {
		panic("anyvalue: blake3.NewKeyed failed with 32-byte key: " + err.Error())
	}
	hasher.Write(data)
	var fingerprint Fingerprint
	copy(fingerprint[:], hasher.Sum(nil))
	return fingerprint
}
