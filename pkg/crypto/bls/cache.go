// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package bls

import (
	"github.com/gold-network/gold-blockchain/pkg/config"
	"github.com/gold-network/gold-blockchain/pkg/crypto/hash"
	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/encoding"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var lg = log.WithField("process", "bls-cache")

// DefaultCacheSize is the number of pairings kept when no size is
// configured.
const DefaultCacheSize = 50000

// Pairer performs the pairing operations that PairingCache memoizes.
type Pairer interface {
	// Pair returns e(pk, H(augMsg)), where augMsg is the public key bytes
	// followed by the message.
	Pair(pk G1Element, augMsg []byte) (GTElement, error)
	// VerifyGT reports whether the product of pairings equals e(g1, sig).
	VerifyGT(sig G2Element, pairings []GTElement) (bool, error)
}

// CachedPairing is one entry of the cache, as exported by Items.
type CachedPairing struct {
	Key     encoding.Bytes32
	Pairing GTElement
}

// PairingCache memoizes the pairings of public key and message pairs, keyed
// by SHA-256(pk || msg). Transactions validated for the mempool usually show
// up again in a block, whose aggregate signature then verifies mostly from
// cached pairings.
type PairingCache struct {
	pairer Pairer
	cache  *lru.Cache[encoding.Bytes32, GTElement]
}

// NewPairingCache returns a cache holding at most size pairings.
func NewPairingCache(p Pairer, size int) (*PairingCache, error) {
	if size < 1 {
		return nil, errors.Errorf("pairing cache size must be positive, got %d", size)
	}

	c, err := lru.New[encoding.Bytes32, GTElement](size)
	if err != nil {
		return nil, err
	}

	return &PairingCache{pairer: p, cache: c}, nil
}

// NewPairingCacheFromConfig sizes the cache from the bls.cachesize setting.
func NewPairingCacheFromConfig(p Pairer) (*PairingCache, error) {
	size := config.Get().BLS.CacheSize
	if size == 0 {
		size = DefaultCacheSize
	}

	return NewPairingCache(p, size)
}

// Len returns the number of cached pairings.
func (c *PairingCache) Len() int {
	return c.cache.Len()
}

// Items returns the cached pairings, oldest first.
func (c *PairingCache) Items() []CachedPairing {
	keys := c.cache.Keys()
	items := make([]CachedPairing, 0, len(keys))
	for _, k := range keys {
		if gt, ok := c.cache.Peek(k); ok {
			items = append(items, CachedPairing{Key: k, Pairing: gt})
		}
	}
	return items
}

// Update inserts previously exported pairings.
func (c *PairingCache) Update(items []CachedPairing) {
	for _, it := range items {
		c.cache.Add(it.Key, it.Pairing)
	}
}

// AggregateVerify checks sig against the public key and message pairs,
// reusing cached pairings and caching the ones it computes.
func (c *PairingCache) AggregateVerify(pks []G1Element, msgs [][]byte, sig G2Element) (bool, error) {
	if len(pks) != len(msgs) {
		return false, errors.Errorf("%d public keys for %d messages", len(pks), len(msgs))
	}

	pairings := make([]GTElement, len(pks))
	var hits int
	for i := range pks {
		aug := make([]byte, 0, G1Size+len(msgs[i]))
		aug = append(aug, pks[i][:]...)
		aug = append(aug, msgs[i]...)
		key := hash.Sha256(aug)

		if gt, ok := c.cache.Get(key); ok {
			pairings[i] = gt
			hits++
			continue
		}

		gt, err := c.pairer.Pair(pks[i], aug)
		if err != nil {
			return false, errors.Wrapf(err, "pairing %d", i)
		}

		c.cache.Add(key, gt)
		pairings[i] = gt
	}

	lg.WithField("pairs", len(pks)).WithField("hits", hits).Trace("aggregate verify")
	return c.pairer.VerifyGT(sig, pairings)
}
