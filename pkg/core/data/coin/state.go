// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package coin

import (
	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/encoding"
	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/streamable"
)

// CoinState reports where a coin stands on the chain a wallet follows. A
// nil height means the event has not happened.
type CoinState struct {
	Coin          Coin
	SpentHeight   *uint32
	CreatedHeight *uint32
}

// Fields implements streamable.Streamable.
func (s *CoinState) Fields() []streamable.Field {
	return []streamable.Field{
		streamable.NewField("coin", &s.Coin, Codec),
		streamable.NewField("spent_height", &s.SpentHeight, encoding.Optional(encoding.U32)),
		streamable.NewField("created_height", &s.CreatedHeight, encoding.Optional(encoding.U32)),
	}
}

// Spent reports whether the coin has been spent.
func (s *CoinState) Spent() bool {
	return s.SpentHeight != nil
}

// StateCodec encodes a CoinState inside other records.
var StateCodec = streamable.Struct[CoinState]()
