// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package message

import (
	"github.com/gold-network/gold-blockchain/pkg/core/data/block"
	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/encoding"
	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/streamable"
	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/topics"
)

// NewProofOfSpace is sent by a harvester that found a proof for a
// signage point.
type NewProofOfSpace struct {
	ChallengeHash     encoding.Bytes32
	SpHash            encoding.Bytes32
	PlotIdentifier    string
	Proof             block.ProofOfSpace
	SignagePointIndex uint8

	// FarmerRewardAddressOverride was added after the message was deployed.
	// Older harvesters never send it.
	FarmerRewardAddressOverride *encoding.Bytes32
}

// Fields implements streamable.Streamable.
func (p *NewProofOfSpace) Fields() []streamable.Field {
	return []streamable.Field{
		streamable.NewField("challenge_hash", &p.ChallengeHash, encoding.Hash),
		streamable.NewField("sp_hash", &p.SpHash, encoding.Hash),
		streamable.NewField("plot_identifier", &p.PlotIdentifier, encoding.String),
		streamable.NewField("proof", &p.Proof, block.ProofOfSpaceCodec),
		streamable.NewField("signage_point_index", &p.SignagePointIndex, encoding.U8),
		streamable.Trailing("farmer_reward_address_override", &p.FarmerRewardAddressOverride, encoding.Hash),
	}
}

// Topic implements Payload.
func (p *NewProofOfSpace) Topic() topics.Topic { return topics.NewProofOfSpace }
