// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package dupemap

import (
	"testing"
	"time"

	"github.com/gold-network/gold-blockchain/pkg/crypto/hash"
	"github.com/stretchr/testify/assert"
)

func TestAddNew(t *testing.T) {
	key := hash.Sha256([]byte("This is a test"))
	tmpMap := NewTmpMap(3, 1000, 5)

	assert.True(t, tmpMap.AddNew(key))
	assert.True(t, tmpMap.has(key, 0))
	assert.False(t, tmpMap.AddNew(key))
	assert.Equal(t, 1, tmpMap.Len())
}

func TestHeightTolerance(t *testing.T) {
	key := hash.Sha256([]byte("old"))
	tmpMap := NewTmpMap(2, 1000, 60)

	tmpMap.UpdateHeight(10)
	assert.True(t, tmpMap.AddNew(key))

	tmpMap.UpdateHeight(12)
	assert.False(t, tmpMap.has(key, 12))
	assert.True(t, tmpMap.hasAnywhere(key))
	// Still within tolerance, so it is not new.
	assert.False(t, tmpMap.AddNew(key))

	// A lower peak does not move the map back.
	tmpMap.UpdateHeight(11)
	assert.Equal(t, uint32(12), tmpMap.height)

	tmpMap.UpdateHeight(13)
	assert.False(t, tmpMap.hasAnywhere(key))
	assert.True(t, tmpMap.AddNew(key))
}

func TestExpiredFiltersDropped(t *testing.T) {
	key := hash.Sha256([]byte("expiring"))
	tmpMap := NewTmpMap(3, 1000, 5)

	now := time.Unix(1000, 0)
	tmpMap.now = func() time.Time { return now }

	assert.True(t, tmpMap.AddNew(key))
	assert.False(t, tmpMap.AddNew(key))

	now = now.Add(5 * time.Second)
	assert.True(t, tmpMap.AddNew(key))
	assert.Equal(t, 1, tmpMap.Len())
}
