// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

// Package dupemap filters gossip a node has already seen. Keys are the
// canonical hashes of payloads, bucketed by the peak height at which they
// arrived.
package dupemap

import (
	"github.com/gold-network/gold-blockchain/pkg/config"
	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/encoding"
)

var defaultTolerance uint32 = 3

// DupeMap is a probabilistic set of recently seen payload hashes. False
// positives drop a message that was never seen, which gossip tolerates.
type DupeMap struct {
	tmpMap *TmpMap
}

// NewDupeMap returns a DupeMap whose per height filters hold capacity keys
// and expire after expire seconds.
func NewDupeMap(capacity uint32, expire int64) *DupeMap {
	return &DupeMap{tmpMap: NewTmpMap(defaultTolerance, capacity, expire)}
}

// NewDupeMapFromConfig returns a DupeMap sized by the network.dupemap
// configuration.
func NewDupeMapFromConfig() *DupeMap {
	c := config.Get().Network.DupeMap
	return NewDupeMap(c.Capacity, int64(c.ExpireSecs))
}

// UpdateHeight is called when a new peak is announced.
func (d *DupeMap) UpdateHeight(height uint32) {
	d.tmpMap.UpdateHeight(height)
}

// SetTolerance changes how many heights of history are kept.
func (d *DupeMap) SetTolerance(tolerance uint32) {
	d.tmpMap.lock.Lock()
	defer d.tmpMap.lock.Unlock()

	d.tmpMap.tolerance = tolerance
	d.tmpMap.clean()
}

// CanFwd reports whether the payload with the given hash was not seen yet,
// and remembers it.
func (d *DupeMap) CanFwd(key encoding.Bytes32) bool {
	return d.tmpMap.AddNew(key)
}

// Len returns the number of remembered hashes.
func (d *DupeMap) Len() int {
	return d.tmpMap.Len()
}
