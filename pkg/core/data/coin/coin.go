// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package coin

import (
	"bytes"

	"github.com/gold-network/gold-blockchain/pkg/crypto/hash"
	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/encoding"
	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/streamable"
)

// Coin is an unspent output, identified by its parent, the hash of the
// puzzle that locks it and its amount.
type Coin struct {
	ParentCoinInfo encoding.Bytes32
	PuzzleHash     encoding.Bytes32
	Amount         uint64
}

// Fields implements streamable.Streamable.
func (c *Coin) Fields() []streamable.Field {
	return []streamable.Field{
		streamable.NewField("parent_coin_info", &c.ParentCoinInfo, encoding.Hash),
		streamable.NewField("puzzle_hash", &c.PuzzleHash, encoding.Hash),
		streamable.NewField("amount", &c.Amount, encoding.U64),
	}
}

// Hash returns the canonical hash of the coin.
func (c *Coin) Hash() (encoding.Bytes32, error) {
	return hash.Of(c)
}

// Codec encodes a Coin inside other records.
var Codec = streamable.Struct[Coin]()

// Program is a serialized on-chain program. It is carried as opaque bytes
// and never executed here.
type Program []byte

// ProgramCodec writes a Program as length prefixed bytes.
var ProgramCodec = encoding.Codec[Program]{
	Write: func(w *bytes.Buffer, p Program) error {
		return encoding.WriteVarBytes(w, p)
	},
	Read: func(r *encoding.Reader, p *Program) error {
		return encoding.ReadVarBytes(r, (*[]byte)(p))
	},
}
