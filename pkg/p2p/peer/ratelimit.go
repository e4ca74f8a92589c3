// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package peer

import (
	"github.com/gold-network/gold-blockchain/pkg/config"
	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/topics"
	"golang.org/x/time/rate"
)

// RateLimiter bounds the message rate of one session. Transactions have
// their own bucket so that a transaction flood cannot starve the rest of
// the traffic.
type RateLimiter struct {
	tx    *rate.Limiter
	other *rate.Limiter
}

func newLimiter(perSecond float64, burst int) *rate.Limiter {
	if perSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Limit(perSecond), burst)
}

// NewRateLimiter returns a RateLimiter. A non positive rate disables the
// corresponding limit.
func NewRateLimiter(txPerSecond float64, txBurst int, otherPerSecond float64, otherBurst int) *RateLimiter {
	return &RateLimiter{
		tx:    newLimiter(txPerSecond, txBurst),
		other: newLimiter(otherPerSecond, otherBurst),
	}
}

// NewRateLimiterFromConfig returns a RateLimiter set up from
// network.ratelimits.
func NewRateLimiterFromConfig() *RateLimiter {
	c := config.Get().Network.RateLimits
	return NewRateLimiter(c.TxPerSecond, c.TxBurst, c.OtherPerSecond, c.OtherBurst)
}

// Allow reports whether one more message of topic t fits in the rate.
// Handshakes are never limited.
func (r *RateLimiter) Allow(t topics.Topic) bool {
	if t == topics.Handshake {
		return true
	}

	if t.IsTransaction() {
		return r.tx.Allow()
	}
	return r.other.Allow()
}
