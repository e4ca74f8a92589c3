// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package message

import (
	"github.com/gold-network/gold-blockchain/pkg/core/data/coin"
	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/encoding"
	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/streamable"
	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/topics"
)

// Status codes of a TransactionAck.
const (
	TxStatusSuccess uint8 = 1
	TxStatusPending uint8 = 2
	TxStatusFailed  uint8 = 3
)

var (
	hashList   = encoding.List(encoding.Hash)
	statesList = encoding.List(coin.StateCodec)
)

// RequestPuzzleSolution asks for the puzzle and solution a coin was spent
// with.
type RequestPuzzleSolution struct {
	CoinName encoding.Bytes32
	Height   uint32
}

// Fields implements streamable.Streamable.
func (r *RequestPuzzleSolution) Fields() []streamable.Field {
	return []streamable.Field{
		streamable.NewField("coin_name", &r.CoinName, encoding.Hash),
		streamable.NewField("height", &r.Height, encoding.U32),
	}
}

// Topic implements Payload.
func (r *RequestPuzzleSolution) Topic() topics.Topic { return topics.RequestPuzzleSolution }

// PuzzleSolutionResponse is the spend of a coin at a height.
type PuzzleSolutionResponse struct {
	CoinName encoding.Bytes32
	Height   uint32
	Puzzle   coin.Program
	Solution coin.Program
}

// Fields implements streamable.Streamable.
func (r *PuzzleSolutionResponse) Fields() []streamable.Field {
	return []streamable.Field{
		streamable.NewField("coin_name", &r.CoinName, encoding.Hash),
		streamable.NewField("height", &r.Height, encoding.U32),
		streamable.NewField("puzzle", &r.Puzzle, coin.ProgramCodec),
		streamable.NewField("solution", &r.Solution, coin.ProgramCodec),
	}
}

// RespondPuzzleSolution answers RequestPuzzleSolution.
type RespondPuzzleSolution struct {
	Response PuzzleSolutionResponse
}

// Fields implements streamable.Streamable.
func (r *RespondPuzzleSolution) Fields() []streamable.Field {
	return []streamable.Field{
		streamable.NewField("response", &r.Response, streamable.Struct[PuzzleSolutionResponse]()),
	}
}

// Topic implements Payload.
func (r *RespondPuzzleSolution) Topic() topics.Topic { return topics.RespondPuzzleSolution }

// RejectPuzzleSolution tells the wallet the coin was not spent at that
// height.
type RejectPuzzleSolution struct {
	CoinName encoding.Bytes32
	Height   uint32
}

// Fields implements streamable.Streamable.
func (r *RejectPuzzleSolution) Fields() []streamable.Field {
	return []streamable.Field{
		streamable.NewField("coin_name", &r.CoinName, encoding.Hash),
		streamable.NewField("height", &r.Height, encoding.U32),
	}
}

// Topic implements Payload.
func (r *RejectPuzzleSolution) Topic() topics.Topic { return topics.RejectPuzzleSolution }

// SendTransaction submits a spend bundle from a wallet.
type SendTransaction struct {
	Transaction coin.SpendBundle
}

// Fields implements streamable.Streamable.
func (s *SendTransaction) Fields() []streamable.Field {
	return []streamable.Field{
		streamable.NewField("transaction", &s.Transaction, coin.BundleCodec),
	}
}

// Topic implements Payload.
func (s *SendTransaction) Topic() topics.Topic { return topics.SendTransaction }

// TransactionAck reports what happened to a SendTransaction.
type TransactionAck struct {
	TxID   encoding.Bytes32
	Status uint8
	Error  *string
}

// Fields implements streamable.Streamable.
func (a *TransactionAck) Fields() []streamable.Field {
	return []streamable.Field{
		streamable.NewField("txid", &a.TxID, encoding.Hash),
		streamable.NewField("status", &a.Status, encoding.U8),
		streamable.NewField("error", &a.Error, encoding.Optional(encoding.String)),
	}
}

// Topic implements Payload.
func (a *TransactionAck) Topic() topics.Topic { return topics.TransactionAck }

// NewPeakWallet announces a new peak to wallets.
type NewPeakWallet struct {
	HeaderHash                encoding.Bytes32
	Height                    uint32
	Weight                    encoding.Uint128
	ForkPointWithPreviousPeak uint32
}

// Fields implements streamable.Streamable.
func (p *NewPeakWallet) Fields() []streamable.Field {
	return []streamable.Field{
		streamable.NewField("header_hash", &p.HeaderHash, encoding.Hash),
		streamable.NewField("height", &p.Height, encoding.U32),
		streamable.NewField("weight", &p.Weight, encoding.U128),
		streamable.NewField("fork_point_with_previous_peak", &p.ForkPointWithPreviousPeak, encoding.U32),
	}
}

// Topic implements Payload.
func (p *NewPeakWallet) Topic() topics.Topic { return topics.NewPeakWallet }

// CoinStateUpdate pushes changes of subscribed coins to a wallet.
type CoinStateUpdate struct {
	Height     uint32
	ForkHeight uint32
	PeakHash   encoding.Bytes32
	Items      []coin.CoinState
}

// Fields implements streamable.Streamable.
func (u *CoinStateUpdate) Fields() []streamable.Field {
	return []streamable.Field{
		streamable.NewField("height", &u.Height, encoding.U32),
		streamable.NewField("fork_height", &u.ForkHeight, encoding.U32),
		streamable.NewField("peak_hash", &u.PeakHash, encoding.Hash),
		streamable.NewField("items", &u.Items, statesList),
	}
}

// Topic implements Payload.
func (u *CoinStateUpdate) Topic() topics.Topic { return topics.CoinStateUpdate }

// RegisterForPhUpdates subscribes a wallet to coins locked by the given
// puzzle hashes.
type RegisterForPhUpdates struct {
	PuzzleHashes []encoding.Bytes32
	MinHeight    uint32
}

// Fields implements streamable.Streamable.
func (r *RegisterForPhUpdates) Fields() []streamable.Field {
	return []streamable.Field{
		streamable.NewField("puzzle_hashes", &r.PuzzleHashes, hashList),
		streamable.NewField("min_height", &r.MinHeight, encoding.U32),
	}
}

// Topic implements Payload.
func (r *RegisterForPhUpdates) Topic() topics.Topic { return topics.RegisterInterestInPuzzleHash }

// RespondToPhUpdates answers RegisterForPhUpdates with the current states.
type RespondToPhUpdates struct {
	PuzzleHashes []encoding.Bytes32
	MinHeight    uint32
	CoinStates   []coin.CoinState
}

// Fields implements streamable.Streamable.
func (r *RespondToPhUpdates) Fields() []streamable.Field {
	return []streamable.Field{
		streamable.NewField("puzzle_hashes", &r.PuzzleHashes, hashList),
		streamable.NewField("min_height", &r.MinHeight, encoding.U32),
		streamable.NewField("coin_states", &r.CoinStates, statesList),
	}
}

// Topic implements Payload.
func (r *RespondToPhUpdates) Topic() topics.Topic { return topics.RespondToPhUpdate }

// RegisterForCoinUpdates subscribes a wallet to the given coins.
type RegisterForCoinUpdates struct {
	CoinIDs   []encoding.Bytes32
	MinHeight uint32
}

// Fields implements streamable.Streamable.
func (r *RegisterForCoinUpdates) Fields() []streamable.Field {
	return []streamable.Field{
		streamable.NewField("coin_ids", &r.CoinIDs, hashList),
		streamable.NewField("min_height", &r.MinHeight, encoding.U32),
	}
}

// Topic implements Payload.
func (r *RegisterForCoinUpdates) Topic() topics.Topic { return topics.RegisterInterestInCoin }

// RespondToCoinUpdates answers RegisterForCoinUpdates.
type RespondToCoinUpdates struct {
	CoinIDs    []encoding.Bytes32
	MinHeight  uint32
	CoinStates []coin.CoinState
}

// Fields implements streamable.Streamable.
func (r *RespondToCoinUpdates) Fields() []streamable.Field {
	return []streamable.Field{
		streamable.NewField("coin_ids", &r.CoinIDs, hashList),
		streamable.NewField("min_height", &r.MinHeight, encoding.U32),
		streamable.NewField("coin_states", &r.CoinStates, statesList),
	}
}

// Topic implements Payload.
func (r *RespondToCoinUpdates) Topic() topics.Topic { return topics.RespondToCoinUpdate }

// RequestChildren asks for the coins created by spending a coin.
type RequestChildren struct {
	CoinName encoding.Bytes32
}

// Fields implements streamable.Streamable.
func (r *RequestChildren) Fields() []streamable.Field {
	return []streamable.Field{
		streamable.NewField("coin_name", &r.CoinName, encoding.Hash),
	}
}

// Topic implements Payload.
func (r *RequestChildren) Topic() topics.Topic { return topics.RequestChildren }

// RespondChildren answers RequestChildren.
type RespondChildren struct {
	CoinStates []coin.CoinState
}

// Fields implements streamable.Streamable.
func (r *RespondChildren) Fields() []streamable.Field {
	return []streamable.Field{
		streamable.NewField("coin_states", &r.CoinStates, statesList),
	}
}

// Topic implements Payload.
func (r *RespondChildren) Topic() topics.Topic { return topics.RespondChildren }

// RequestBlockHeader asks for the header block at a height.
type RequestBlockHeader struct {
	Height uint32
}

// Fields implements streamable.Streamable.
func (r *RequestBlockHeader) Fields() []streamable.Field {
	return []streamable.Field{
		streamable.NewField("height", &r.Height, encoding.U32),
	}
}

// Topic implements Payload.
func (r *RequestBlockHeader) Topic() topics.Topic { return topics.RequestBlockHeader }

// RejectHeaderRequest tells the wallet no header is available at a height.
type RejectHeaderRequest struct {
	Height uint32
}

// Fields implements streamable.Streamable.
func (r *RejectHeaderRequest) Fields() []streamable.Field {
	return []streamable.Field{
		streamable.NewField("height", &r.Height, encoding.U32),
	}
}

// Topic implements Payload.
func (r *RejectHeaderRequest) Topic() topics.Topic { return topics.RejectHeaderRequest }

// RequestRemovals asks for the coins a block spent. A nil CoinNames asks
// for all of them.
type RequestRemovals struct {
	Height     uint32
	HeaderHash encoding.Bytes32
	CoinNames  *[]encoding.Bytes32
}

// Fields implements streamable.Streamable.
func (r *RequestRemovals) Fields() []streamable.Field {
	return []streamable.Field{
		streamable.NewField("height", &r.Height, encoding.U32),
		streamable.NewField("header_hash", &r.HeaderHash, encoding.Hash),
		streamable.NewField("coin_names", &r.CoinNames, encoding.Optional(hashList)),
	}
}

// Topic implements Payload.
func (r *RequestRemovals) Topic() topics.Topic { return topics.RequestRemovals }

// Removal pairs a requested coin name with the coin, nil when the block did
// not spend it.
type Removal = encoding.Tuple2[encoding.Bytes32, *coin.Coin]

// MerkleProof pairs a coin name or puzzle hash with its inclusion proof.
type MerkleProof = encoding.Tuple2[encoding.Bytes32, []byte]

var (
	removalList = encoding.List(encoding.Pair(encoding.Hash, encoding.Optional(coin.Codec)))
	proofList   = encoding.List(encoding.Pair(encoding.Hash, encoding.Bytes))
)

// RespondRemovals answers RequestRemovals. Proofs are only sent when
// specific coins were asked for.
type RespondRemovals struct {
	Height     uint32
	HeaderHash encoding.Bytes32
	Coins      []Removal
	Proofs     *[]MerkleProof
}

// Fields implements streamable.Streamable.
func (r *RespondRemovals) Fields() []streamable.Field {
	return []streamable.Field{
		streamable.NewField("height", &r.Height, encoding.U32),
		streamable.NewField("header_hash", &r.HeaderHash, encoding.Hash),
		streamable.NewField("coins", &r.Coins, removalList),
		streamable.NewField("proofs", &r.Proofs, encoding.Optional(proofList)),
	}
}

// Topic implements Payload.
func (r *RespondRemovals) Topic() topics.Topic { return topics.RespondRemovals }

// RejectRemovalsRequest tells the wallet the removals are not available.
type RejectRemovalsRequest struct {
	Height     uint32
	HeaderHash encoding.Bytes32
}

// Fields implements streamable.Streamable.
func (r *RejectRemovalsRequest) Fields() []streamable.Field {
	return []streamable.Field{
		streamable.NewField("height", &r.Height, encoding.U32),
		streamable.NewField("header_hash", &r.HeaderHash, encoding.Hash),
	}
}

// Topic implements Payload.
func (r *RejectRemovalsRequest) Topic() topics.Topic { return topics.RejectRemovalsRequest }

// RequestAdditions asks for the coins a block created, optionally only
// those locked by the given puzzle hashes.
type RequestAdditions struct {
	Height       uint32
	HeaderHash   *encoding.Bytes32
	PuzzleHashes *[]encoding.Bytes32
}

// Fields implements streamable.Streamable.
func (r *RequestAdditions) Fields() []streamable.Field {
	return []streamable.Field{
		streamable.NewField("height", &r.Height, encoding.U32),
		streamable.NewField("header_hash", &r.HeaderHash, encoding.Optional(encoding.Hash)),
		streamable.NewField("puzzle_hashes", &r.PuzzleHashes, encoding.Optional(hashList)),
	}
}

// Topic implements Payload.
func (r *RequestAdditions) Topic() topics.Topic { return topics.RequestAdditions }

// Addition groups the coins created for one puzzle hash.
type Addition = encoding.Tuple2[encoding.Bytes32, []coin.Coin]

// AdditionProof carries the proof for a puzzle hash and, when coins were
// found, the proof for their hash.
type AdditionProof = encoding.Tuple3[encoding.Bytes32, []byte, *[]byte]

var (
	additionList      = encoding.List(encoding.Pair(encoding.Hash, encoding.List(coin.Codec)))
	additionProofList = encoding.List(encoding.Triple(encoding.Hash, encoding.Bytes, encoding.Optional(encoding.Bytes)))
)

// RespondAdditions answers RequestAdditions.
type RespondAdditions struct {
	Height     uint32
	HeaderHash encoding.Bytes32
	Coins      []Addition
	Proofs     *[]AdditionProof
}

// Fields implements streamable.Streamable.
func (r *RespondAdditions) Fields() []streamable.Field {
	return []streamable.Field{
		streamable.NewField("height", &r.Height, encoding.U32),
		streamable.NewField("header_hash", &r.HeaderHash, encoding.Hash),
		streamable.NewField("coins", &r.Coins, additionList),
		streamable.NewField("proofs", &r.Proofs, encoding.Optional(additionProofList)),
	}
}

// Topic implements Payload.
func (r *RespondAdditions) Topic() topics.Topic { return topics.RespondAdditions }

// RejectAdditionsRequest tells the wallet the additions are not available.
type RejectAdditionsRequest struct {
	Height     uint32
	HeaderHash encoding.Bytes32
}

// Fields implements streamable.Streamable.
func (r *RejectAdditionsRequest) Fields() []streamable.Field {
	return []streamable.Field{
		streamable.NewField("height", &r.Height, encoding.U32),
		streamable.NewField("header_hash", &r.HeaderHash, encoding.Hash),
	}
}

// Topic implements Payload.
func (r *RejectAdditionsRequest) Topic() topics.Topic { return topics.RejectAdditionsRequest }

// RequestHeaderBlocks asks for a range of header blocks, both ends
// included.
type RequestHeaderBlocks struct {
	StartHeight uint32
	EndHeight   uint32
}

// Fields implements streamable.Streamable.
func (r *RequestHeaderBlocks) Fields() []streamable.Field {
	return []streamable.Field{
		streamable.NewField("start_height", &r.StartHeight, encoding.U32),
		streamable.NewField("end_height", &r.EndHeight, encoding.U32),
	}
}

// Topic implements Payload.
func (r *RequestHeaderBlocks) Topic() topics.Topic { return topics.RequestHeaderBlocks }

// RejectHeaderBlocks refuses a RequestHeaderBlocks range.
type RejectHeaderBlocks struct {
	StartHeight uint32
	EndHeight   uint32
}

// Fields implements streamable.Streamable.
func (r *RejectHeaderBlocks) Fields() []streamable.Field {
	return []streamable.Field{
		streamable.NewField("start_height", &r.StartHeight, encoding.U32),
		streamable.NewField("end_height", &r.EndHeight, encoding.U32),
	}
}

// Topic implements Payload.
func (r *RejectHeaderBlocks) Topic() topics.Topic { return topics.RejectHeaderBlocks }
