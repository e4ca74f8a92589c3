// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package hash

import (
	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/encoding"
	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/streamable"
	"github.com/minio/sha256-simd"
)

// Sha256 takes a byte slice and returns its SHA-256 digest.
func Sha256(bs []byte) encoding.Bytes32 {
	return sha256.Sum256(bs)
}

// Of returns the canonical hash of s, the SHA-256 of exactly the bytes
// streamable.Encode produces for it. Values that encode to the same bytes
// hash the same.
func Of(s streamable.Streamable) (encoding.Bytes32, error) {
	b, err := streamable.Encode(s)
	if err != nil {
		return encoding.Bytes32{}, err
	}

	return Sha256(b), nil
}

// Concat hashes the concatenation of the given parts.
func Concat(parts ...[]byte) encoding.Bytes32 {
	h := sha256.New()
	for _, p := range parts {
		_, _ = h.Write(p)
	}

	var out encoding.Bytes32
	copy(out[:], h.Sum(nil))
	return out
}
