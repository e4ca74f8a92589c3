// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package message

import (
	"bytes"

	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/encoding"
	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/protocol"
	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/streamable"
	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/topics"
)

// Handshake is the first message each side of a connection sends.
type Handshake struct {
	NetworkID       string
	ProtocolVersion string
	SoftwareVersion string
	ServerPort      uint16
	NodeType        protocol.NodeType
	Capabilities    []protocol.Capability
}

var nodeTypeCodec = encoding.Codec[protocol.NodeType]{
	Write: func(w *bytes.Buffer, n protocol.NodeType) error {
		return encoding.WriteUint8(w, uint8(n))
	},
	Read: func(r *encoding.Reader, n *protocol.NodeType) error {
		return encoding.ReadUint8(r, (*uint8)(n))
	},
}

// Fields implements streamable.Streamable.
func (h *Handshake) Fields() []streamable.Field {
	return []streamable.Field{
		streamable.NewField("network_id", &h.NetworkID, encoding.String),
		streamable.NewField("protocol_version", &h.ProtocolVersion, encoding.String),
		streamable.NewField("software_version", &h.SoftwareVersion, encoding.String),
		streamable.NewField("server_port", &h.ServerPort, encoding.U16),
		streamable.NewField("node_type", &h.NodeType, nodeTypeCodec),
		streamable.NewField("capabilities", &h.Capabilities, encoding.List(protocol.CapabilityCodec)),
	}
}

// Topic implements Payload.
func (h *Handshake) Topic() topics.Topic { return topics.Handshake }
