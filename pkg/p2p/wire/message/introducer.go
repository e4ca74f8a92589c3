// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package message

import (
	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/encoding"
	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/streamable"
	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/topics"
)

// RequestPeersIntroducer asks an introducer for peers to connect to.
type RequestPeersIntroducer struct{}

// Fields implements streamable.Streamable.
func (r *RequestPeersIntroducer) Fields() []streamable.Field { return nil }

// Topic implements Payload.
func (r *RequestPeersIntroducer) Topic() topics.Topic { return topics.RequestPeersIntroducer }

// RespondPeersIntroducer answers RequestPeersIntroducer.
type RespondPeersIntroducer struct {
	PeerList []TimestampedPeerInfo
}

// Fields implements streamable.Streamable.
func (r *RespondPeersIntroducer) Fields() []streamable.Field {
	return []streamable.Field{
		streamable.NewField("peer_list", &r.PeerList, encoding.List(peerInfoCodec)),
	}
}

// Topic implements Payload.
func (r *RespondPeersIntroducer) Topic() topics.Topic { return topics.RespondPeersIntroducer }
