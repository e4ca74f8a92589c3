// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package protocol

import (
	"fmt"
	"strings"

	cfg "github.com/gold-network/gold-blockchain/pkg/config"
)

// NodeType indicates the role a peer plays in the network.
type NodeType uint8

// Node types, as advertised in the handshake.
const (
	FullNode   NodeType = 1
	Harvester  NodeType = 2
	Farmer     NodeType = 3
	Timelord   NodeType = 4
	Introducer NodeType = 5
	Wallet     NodeType = 6
	DataLayer  NodeType = 7
)

var nodeTypeNames = map[NodeType]string{
	FullNode:   "full_node",
	Harvester:  "harvester",
	Farmer:     "farmer",
	Timelord:   "timelord",
	Introducer: "introducer",
	Wallet:     "wallet",
	DataLayer:  "data_layer",
}

func (n NodeType) String() string {
	if s, ok := nodeTypeNames[n]; ok {
		return s
	}
	return fmt.Sprintf("node_type(%d)", uint8(n))
}

// Network is the id of the chain a node follows. Peers on different
// networks refuse each other during the handshake.
type Network string

const (
	// MainNet identifies the production network of the Gold blockchain
	MainNet Network = "mainnet"
	// TestNet identifies the test network of the Gold blockchain
	TestNet Network = "testnet"
	// DevNet identifies the development network of the Gold blockchain
	DevNet Network = "devnet"
)

// NetworkFromConfig reads the loaded network config and tries to map it to
// a network id. Panic, if no match found.
func NetworkFromConfig() Network {
	network := cfg.Get().General.Network
	switch Network(strings.ToLower(network)) {
	case DevNet:
		return DevNet
	case TestNet:
		return TestNet
	case MainNet:
		return MainNet
	}

	// An invalid network identifier might cause node unexpected  behaviour
	panic(fmt.Sprintf("not a valid network: %s", network))
}
