// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package coin

import (
	"github.com/gold-network/gold-blockchain/pkg/crypto/bls"
	"github.com/gold-network/gold-blockchain/pkg/crypto/hash"
	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/encoding"
	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/streamable"
)

// CoinSpend reveals the puzzle of a coin and the solution that unlocks it.
type CoinSpend struct {
	Coin         Coin
	PuzzleReveal Program
	Solution     Program
}

// Fields implements streamable.Streamable.
func (s *CoinSpend) Fields() []streamable.Field {
	return []streamable.Field{
		streamable.NewField("coin", &s.Coin, Codec),
		streamable.NewField("puzzle_reveal", &s.PuzzleReveal, ProgramCodec),
		streamable.NewField("solution", &s.Solution, ProgramCodec),
	}
}

// SpendCodec encodes a CoinSpend inside other records.
var SpendCodec = streamable.Struct[CoinSpend]()

// SpendBundle is a set of coin spends authorized by one aggregated
// signature. It is the unit the mempool accepts.
type SpendBundle struct {
	CoinSpends          []CoinSpend
	AggregatedSignature bls.G2Element
}

// Fields implements streamable.Streamable.
func (b *SpendBundle) Fields() []streamable.Field {
	return []streamable.Field{
		streamable.NewField("coin_spends", &b.CoinSpends, encoding.List(SpendCodec)),
		streamable.NewField("aggregated_signature", &b.AggregatedSignature, bls.G2),
	}
}

// Name returns the transaction id of the bundle, its canonical hash.
func (b *SpendBundle) Name() (encoding.Bytes32, error) {
	return hash.Of(b)
}

// Removals returns the coins the bundle spends, in spend order.
func (b *SpendBundle) Removals() []Coin {
	coins := make([]Coin, len(b.CoinSpends))
	for i := range b.CoinSpends {
		coins[i] = b.CoinSpends[i].Coin
	}
	return coins
}

// Copy returns a deep copy of the bundle.
func (b *SpendBundle) Copy() *SpendBundle {
	c := &SpendBundle{
		CoinSpends:          make([]CoinSpend, len(b.CoinSpends)),
		AggregatedSignature: b.AggregatedSignature,
	}

	for i, s := range b.CoinSpends {
		c.CoinSpends[i] = CoinSpend{
			Coin:         s.Coin,
			PuzzleReveal: append(Program(nil), s.PuzzleReveal...),
			Solution:     append(Program(nil), s.Solution...),
		}
	}
	return c
}

// BundleCodec encodes a SpendBundle inside other records.
var BundleCodec = streamable.Struct[SpendBundle]()
