// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package block

import (
	"github.com/gold-network/gold-blockchain/pkg/crypto/bls"
	"github.com/gold-network/gold-blockchain/pkg/crypto/hash"
	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/encoding"
	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/streamable"
	"github.com/pkg/errors"
)

// KeyDeriver provides the curve operations needed to derive a plot key.
type KeyDeriver interface {
	// AddG1 returns the group sum of a and b.
	AddG1(a, b bls.G1Element) (bls.G1Element, error)
	// PublicKeyFromSeed derives a secret key from seed and returns its
	// public key.
	PublicKeyFromSeed(seed []byte) (bls.G1Element, error)
}

// ProofOfSpace proves that a farmer stores a plot. Exactly one of
// PoolPublicKey and PoolContractPuzzleHash is expected to be set.
type ProofOfSpace struct {
	Challenge              encoding.Bytes32
	PoolPublicKey          *bls.G1Element
	PoolContractPuzzleHash *encoding.Bytes32
	LocalPublicKey         bls.G1Element
	Size                   uint8
	Proof                  []byte
	FarmerPublicKey        bls.G1Element
}

// Fields implements streamable.Streamable.
func (p *ProofOfSpace) Fields() []streamable.Field {
	return []streamable.Field{
		streamable.NewField("challenge", &p.Challenge, encoding.Hash),
		streamable.NewField("pool_public_key", &p.PoolPublicKey, encoding.Optional(bls.G1)),
		streamable.NewField("pool_contract_puzzle_hash", &p.PoolContractPuzzleHash, encoding.Optional(encoding.Hash)),
		streamable.NewField("local_public_key", &p.LocalPublicKey, bls.G1),
		streamable.NewField("size", &p.Size, encoding.U8),
		streamable.NewField("proof", &p.Proof, encoding.Bytes),
		streamable.NewField("farmer_public_key", &p.FarmerPublicKey, bls.G1),
	}
}

// PlotPublicKey returns the key plots are signed with: the sum of the local
// and farmer keys. Plots bound to a pool contract add a key derived from
// SHA-256 of that sum and both keys, so the sum alone cannot sign.
func (p *ProofOfSpace) PlotPublicKey(d KeyDeriver) (bls.G1Element, error) {
	sum, err := d.AddG1(p.LocalPublicKey, p.FarmerPublicKey)
	if err != nil {
		return bls.G1Element{}, errors.Wrap(err, "local and farmer key")
	}

	if p.PoolContractPuzzleHash == nil {
		return sum, nil
	}

	seed := hash.Concat(sum[:], p.LocalPublicKey[:], p.FarmerPublicKey[:])
	taproot, err := d.PublicKeyFromSeed(seed[:])
	if err != nil {
		return bls.G1Element{}, errors.Wrap(err, "taproot key")
	}

	return d.AddG1(sum, taproot)
}

// ProofOfSpaceCodec encodes a ProofOfSpace inside other records.
var ProofOfSpaceCodec = streamable.Struct[ProofOfSpace]()
