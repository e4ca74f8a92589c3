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

// NewPeak announces a new heaviest block to other full nodes.
type NewPeak struct {
	HeaderHash                encoding.Bytes32
	Height                    uint32
	Weight                    encoding.Uint128
	ForkPointWithPreviousPeak uint32
	UnfinishedRewardBlockHash encoding.Bytes32
}

// Fields implements streamable.Streamable.
func (p *NewPeak) Fields() []streamable.Field {
	return []streamable.Field{
		streamable.NewField("header_hash", &p.HeaderHash, encoding.Hash),
		streamable.NewField("height", &p.Height, encoding.U32),
		streamable.NewField("weight", &p.Weight, encoding.U128),
		streamable.NewField("fork_point_with_previous_peak", &p.ForkPointWithPreviousPeak, encoding.U32),
		streamable.NewField("unfinished_reward_block_hash", &p.UnfinishedRewardBlockHash, encoding.Hash),
	}
}

// Topic implements Payload.
func (p *NewPeak) Topic() topics.Topic { return topics.NewPeak }

// NewTransaction announces a transaction that entered the mempool.
type NewTransaction struct {
	TransactionID encoding.Bytes32
	Cost          uint64
	Fees          uint64
}

// Fields implements streamable.Streamable.
func (t *NewTransaction) Fields() []streamable.Field {
	return []streamable.Field{
		streamable.NewField("transaction_id", &t.TransactionID, encoding.Hash),
		streamable.NewField("cost", &t.Cost, encoding.U64),
		streamable.NewField("fees", &t.Fees, encoding.U64),
	}
}

// Topic implements Payload.
func (t *NewTransaction) Topic() topics.Topic { return topics.NewTransaction }

// RequestTransaction asks a peer for a transaction it announced.
type RequestTransaction struct {
	TransactionID encoding.Bytes32
}

// Fields implements streamable.Streamable.
func (t *RequestTransaction) Fields() []streamable.Field {
	return []streamable.Field{
		streamable.NewField("transaction_id", &t.TransactionID, encoding.Hash),
	}
}

// Topic implements Payload.
func (t *RequestTransaction) Topic() topics.Topic { return topics.RequestTransaction }

// RespondTransaction carries a requested transaction.
type RespondTransaction struct {
	Transaction coin.SpendBundle
}

// Fields implements streamable.Streamable.
func (t *RespondTransaction) Fields() []streamable.Field {
	return []streamable.Field{
		streamable.NewField("transaction", &t.Transaction, coin.BundleCodec),
	}
}

// Topic implements Payload.
func (t *RespondTransaction) Topic() topics.Topic { return topics.RespondTransaction }

// RequestMempoolTransactions asks for the mempool content not matched by
// the serialized filter.
type RequestMempoolTransactions struct {
	Filter []byte
}

// Fields implements streamable.Streamable.
func (r *RequestMempoolTransactions) Fields() []streamable.Field {
	return []streamable.Field{
		streamable.NewField("filter", &r.Filter, encoding.Bytes),
	}
}

// Topic implements Payload.
func (r *RequestMempoolTransactions) Topic() topics.Topic { return topics.RequestMempoolTransactions }

// RequestPeers asks for addresses of other peers. It has no fields.
type RequestPeers struct{}

// Fields implements streamable.Streamable.
func (r *RequestPeers) Fields() []streamable.Field { return nil }

// Topic implements Payload.
func (r *RequestPeers) Topic() topics.Topic { return topics.RequestPeers }

// TimestampedPeerInfo is a peer address and when it was last seen.
type TimestampedPeerInfo struct {
	Host      string
	Port      uint16
	Timestamp uint64
}

// Fields implements streamable.Streamable.
func (p *TimestampedPeerInfo) Fields() []streamable.Field {
	return []streamable.Field{
		streamable.NewField("host", &p.Host, encoding.String),
		streamable.NewField("port", &p.Port, encoding.U16),
		streamable.NewField("timestamp", &p.Timestamp, encoding.U64),
	}
}

var peerInfoCodec = streamable.Struct[TimestampedPeerInfo]()

// RespondPeers answers RequestPeers.
type RespondPeers struct {
	PeerList []TimestampedPeerInfo
}

// Fields implements streamable.Streamable.
func (r *RespondPeers) Fields() []streamable.Field {
	return []streamable.Field{
		streamable.NewField("peer_list", &r.PeerList, encoding.List(peerInfoCodec)),
	}
}

// Topic implements Payload.
func (r *RespondPeers) Topic() topics.Topic { return topics.RespondPeers }
