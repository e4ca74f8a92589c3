// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package peer

import (
	"testing"

	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/topics"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiter(t *testing.T) {
	// One token per hour is never refilled during the test.
	r := NewRateLimiter(1.0/3600, 2, 0, 0)

	assert.True(t, r.Allow(topics.NewTransaction))
	assert.True(t, r.Allow(topics.SendTransaction))
	assert.False(t, r.Allow(topics.RespondTransaction))

	for i := 0; i < 1000; i++ {
		assert.True(t, r.Allow(topics.NewPeak))
	}

	assert.True(t, r.Allow(topics.Handshake))
}

func TestRateLimiterFromConfig(t *testing.T) {
	r := NewRateLimiterFromConfig()
	assert.True(t, r.Allow(topics.RequestPeers))
	assert.True(t, r.Allow(topics.NewTransaction))
}
