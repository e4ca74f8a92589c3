// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package block

import (
	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/encoding"
	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/streamable"
)

// PoolTarget is where the pool reward of a block is paid to. A MaxHeight of
// zero means no limit.
type PoolTarget struct {
	PuzzleHash encoding.Bytes32
	MaxHeight  uint32
}

// Fields implements streamable.Streamable.
func (p *PoolTarget) Fields() []streamable.Field {
	return []streamable.Field{
		streamable.NewField("puzzle_hash", &p.PuzzleHash, encoding.Hash),
		streamable.NewField("max_height", &p.MaxHeight, encoding.U32),
	}
}

// PoolTargetCodec encodes a PoolTarget inside other records.
var PoolTargetCodec = streamable.Struct[PoolTarget]()
