// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package dupemap

import (
	"sync"
	"time"

	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/encoding"
	cuckoo "github.com/seiflotfy/cuckoofilter"
)

type cache struct {
	*cuckoo.Filter
	TTL int64
}

type (
	//nolint:golint
	TmpMap struct {
		lock sync.RWMutex
		// current peak height
		height    uint32
		tolerance uint32

		// expire number of seconds for a cache before being reset
		expire int64

		// map height to cuckoo filter
		msgFilter map[uint32]*cache
		capacity  uint32

		now func() time.Time
	}
)

// NewTmpMap creates a TmpMap instance. Filters of heights more than
// tolerance below the current one are dropped, and so is any filter older
// than expire seconds.
func NewTmpMap(tolerance, capacity uint32, expire int64) *TmpMap {
	return &TmpMap{
		msgFilter: make(map[uint32]*cache),
		capacity:  capacity,
		tolerance: tolerance,
		expire:    expire,
		now:       time.Now,
	}
}

// UpdateHeight moves the map to a new peak height. Lower heights are
// ignored, since peers keep announcing peaks we already moved past.
func (t *TmpMap) UpdateHeight(height uint32) {
	t.lock.Lock()
	defer t.lock.Unlock()

	if t.height >= height && len(t.msgFilter) > 0 {
		return
	}

	t.height = height
	t.filterAt(height)
	t.clean()
}

// AddNew adds the key at the current height unless it is already present
// at any height. It reports whether the key was new.
func (t *TmpMap) AddNew(key encoding.Bytes32) bool {
	t.lock.Lock()
	defer t.lock.Unlock()

	t.cleanExpired()
	if t.hasAnywhere(key) {
		return false
	}

	t.filterAt(t.height).Insert(key[:])
	return true
}

// Len returns the number of keys held over all heights.
func (t *TmpMap) Len() int {
	t.lock.RLock()
	defer t.lock.RUnlock()

	var n int
	for _, f := range t.msgFilter {
		n += int(f.Count())
	}
	return n
}

// cleanExpired resets the filters whose TTL has passed.
func (t *TmpMap) cleanExpired() {
	now := t.now().Unix()
	for height, f := range t.msgFilter {
		if now >= f.TTL {
			f.Reset()
			delete(t.msgFilter, height)
		}
	}
}

// clean drops the filters of heights that fell out of tolerance.
func (t *TmpMap) clean() {
	if t.height <= t.tolerance {
		return
	}

	for h, f := range t.msgFilter {
		if h < t.height-t.tolerance {
			f.Reset()
			delete(t.msgFilter, h)
		}
	}
}

func (t *TmpMap) has(key encoding.Bytes32, height uint32) bool {
	f := t.msgFilter[height]
	if f == nil {
		return false
	}

	return f.Lookup(key[:])
}

func (t *TmpMap) hasAnywhere(key encoding.Bytes32) bool {
	for h := range t.msgFilter {
		if t.has(key, h) {
			return true
		}
	}

	return false
}

func (t *TmpMap) filterAt(height uint32) *cache {
	f, found := t.msgFilter[height]
	if !found {
		f = &cache{
			Filter: cuckoo.NewFilter(uint(t.capacity)),
			TTL:    t.now().Unix() + t.expire,
		}
		t.msgFilter[height] = f
	}

	return f
}
