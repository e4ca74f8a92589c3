// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package topics

import "fmt"

// Topic is the one byte tag that tells a receiver which schema a payload
// follows. Tag values are part of the wire protocol and never change.
type Topic uint8

// A list of all valid topics.
const (
	// Shared protocol.
	Handshake Topic = 1

	// Farmer protocol.
	NewProofOfSpace Topic = 5

	// Full node protocol.
	NewPeak                    Topic = 20
	NewTransaction             Topic = 21
	RequestTransaction         Topic = 22
	RespondTransaction         Topic = 23
	RequestMempoolTransactions Topic = 39
	RequestPeers               Topic = 43
	RespondPeers               Topic = 44

	// Wallet protocol.
	RequestPuzzleSolution        Topic = 45
	RespondPuzzleSolution        Topic = 46
	RejectPuzzleSolution         Topic = 47
	SendTransaction              Topic = 48
	TransactionAck               Topic = 49
	NewPeakWallet                Topic = 50
	RequestBlockHeader           Topic = 51
	RejectHeaderRequest          Topic = 53
	RequestRemovals              Topic = 54
	RespondRemovals              Topic = 55
	RejectRemovalsRequest        Topic = 56
	RequestAdditions             Topic = 57
	RespondAdditions             Topic = 58
	RejectAdditionsRequest       Topic = 59
	RequestHeaderBlocks          Topic = 60
	RejectHeaderBlocks           Topic = 61
	CoinStateUpdate              Topic = 69
	RegisterInterestInPuzzleHash Topic = 70
	RespondToPhUpdate            Topic = 71
	RegisterInterestInCoin       Topic = 72
	RespondToCoinUpdate          Topic = 73
	RequestChildren              Topic = 74
	RespondChildren              Topic = 75

	// Introducer protocol.
	RequestPeersIntroducer Topic = 63
	RespondPeersIntroducer Topic = 64
)

// Gossip topics announce state to every peer and are expected to arrive
// more than once. Receivers filter duplicates by payload hash.
var Gossip = []Topic{
	NewPeak,
	NewTransaction,
	NewPeakWallet,
	CoinStateUpdate,
}

// Transaction topics are rate limited apart from the rest of the traffic.
var Transaction = []Topic{
	NewTransaction,
	RequestTransaction,
	RespondTransaction,
	SendTransaction,
}

type topicBuf struct {
	Topic
	str string
}

// Topics represents the associated string representation of the known
// Topic objects.
// NOTE: this needs to be sorted by tag.
var Topics = [...]topicBuf{
	{Handshake, "handshake"},
	{NewProofOfSpace, "new_proof_of_space"},
	{NewPeak, "new_peak"},
	{NewTransaction, "new_transaction"},
	{RequestTransaction, "request_transaction"},
	{RespondTransaction, "respond_transaction"},
	{RequestMempoolTransactions, "request_mempool_transactions"},
	{RequestPeers, "request_peers"},
	{RespondPeers, "respond_peers"},
	{RequestPuzzleSolution, "request_puzzle_solution"},
	{RespondPuzzleSolution, "respond_puzzle_solution"},
	{RejectPuzzleSolution, "reject_puzzle_solution"},
	{SendTransaction, "send_transaction"},
	{TransactionAck, "transaction_ack"},
	{NewPeakWallet, "new_peak_wallet"},
	{RequestBlockHeader, "request_block_header"},
	{RejectHeaderRequest, "reject_header_request"},
	{RequestRemovals, "request_removals"},
	{RespondRemovals, "respond_removals"},
	{RejectRemovalsRequest, "reject_removals_request"},
	{RequestAdditions, "request_additions"},
	{RespondAdditions, "respond_additions"},
	{RejectAdditionsRequest, "reject_additions_request"},
	{RequestHeaderBlocks, "request_header_blocks"},
	{RejectHeaderBlocks, "reject_header_blocks"},
	{RequestPeersIntroducer, "request_peers_introducer"},
	{RespondPeersIntroducer, "respond_peers_introducer"},
	{CoinStateUpdate, "coin_state_update"},
	{RegisterInterestInPuzzleHash, "register_interest_in_puzzle_hash"},
	{RespondToPhUpdate, "respond_to_ph_update"},
	{RegisterInterestInCoin, "register_interest_in_coin"},
	{RespondToCoinUpdate, "respond_to_coin_update"},
	{RequestChildren, "request_children"},
	{RespondChildren, "respond_children"},
}

var (
	names   [256]string
	gossip  [256]bool
	transac [256]bool
)

func checkConsistency(topics []topicBuf) {
	for i := 1; i < len(topics); i++ {
		if topics[i].Topic <= topics[i-1].Topic {
			panic(fmt.Errorf("topics are not sorted by tag. Please check the `topicBuf` array at index: %d", i))
		}
	}
}

func init() {
	checkConsistency(Topics[:])

	for _, t := range Topics {
		names[t.Topic] = t.str
	}
	for _, t := range Gossip {
		gossip[t] = true
	}
	for _, t := range Transaction {
		transac[t] = true
	}
}

// Known reports whether t is a tag this node has a schema for.
func (t Topic) Known() bool {
	return names[t] != ""
}

// IsGossip reports whether t is a gossip topic.
func (t Topic) IsGossip() bool {
	return gossip[t]
}

// IsTransaction reports whether t counts against the transaction rate.
func (t Topic) IsTransaction() bool {
	return transac[t]
}

// String representation of a known topic.
func (t Topic) String() string {
	if n := names[t]; n != "" {
		return n
	}

	return fmt.Sprintf("unknown(%d)", uint8(t))
}

// StringToTopic turns a string into a Topic if the Topic is in the enum of
// known topics.
func StringToTopic(topic string) (Topic, bool) {
	for _, t := range Topics {
		if t.str == topic {
			return t.Topic, true
		}
	}

	return 0, false
}
