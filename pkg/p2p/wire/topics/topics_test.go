// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package topics_test

import (
	"testing"

	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/topics"
	"github.com/stretchr/testify/assert"
)

var topicTest = []struct {
	topic topics.Topic
	tag   byte
	name  string
}{
	{topics.Handshake, 1, "handshake"},
	{topics.NewProofOfSpace, 5, "new_proof_of_space"},
	{topics.NewPeak, 20, "new_peak"},
	{topics.RespondPeers, 44, "respond_peers"},
	{topics.TransactionAck, 49, "transaction_ack"},
	{topics.RespondRemovals, 55, "respond_removals"},
	{topics.RequestPeersIntroducer, 63, "request_peers_introducer"},
	{topics.CoinStateUpdate, 69, "coin_state_update"},
	{topics.RespondChildren, 75, "respond_children"},
}

func TestTags(t *testing.T) {
	for _, tt := range topicTest {
		assert.Equal(t, tt.tag, byte(tt.topic))
		assert.Equal(t, tt.name, tt.topic.String())
		assert.True(t, tt.topic.Known())

		tpc, ok := topics.StringToTopic(tt.name)
		assert.True(t, ok)
		assert.Equal(t, tt.topic, tpc)
	}
}

func TestUnknownTopic(t *testing.T) {
	tpc := topics.Topic(200)
	assert.False(t, tpc.Known())
	assert.Equal(t, "unknown(200)", tpc.String())

	_, ok := topics.StringToTopic("version")
	assert.False(t, ok)
}

func TestClasses(t *testing.T) {
	assert.True(t, topics.NewPeak.IsGossip())
	assert.False(t, topics.RequestPeers.IsGossip())
	assert.True(t, topics.SendTransaction.IsTransaction())
	assert.False(t, topics.Handshake.IsTransaction())
}
