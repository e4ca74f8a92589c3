// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package dupemap_test

import (
	"encoding/binary"
	"testing"

	"github.com/gold-network/gold-blockchain/pkg/config"
	"github.com/gold-network/gold-blockchain/pkg/crypto/hash"
	"github.com/gold-network/gold-blockchain/pkg/p2p/peer/dupemap"
	"github.com/stretchr/testify/assert"
)

var dupeFilterTests = []struct {
	data   uint16
	canFwd bool
}{
	{1, true},
	{1, false},
	{2, true},
	{4, true},
	{4, false},
	{5, true},
	{7, true},
	{7, false},
	{7, false},
	{7, false},
	{9, true},
}

func TestCanFwd(t *testing.T) {
	dupeMap := dupemap.NewDupeMap(10000, 300)

	for i, tt := range dupeFilterTests {
		test := make([]byte, 2)
		binary.BigEndian.PutUint16(test, tt.data)

		res := dupeMap.CanFwd(hash.Sha256(test))
		if !assert.Equal(t, tt.canFwd, res) {
			t.Fatalf("Iteration %d failed. Expected %t, got %t", i, tt.canFwd, res)
		}
	}

	assert.Equal(t, 6, dupeMap.Len())
}

func TestCanFwdAcrossHeights(t *testing.T) {
	dupeMap := dupemap.NewDupeMap(10000, 300)
	key := hash.Sha256([]byte("peak"))

	dupeMap.UpdateHeight(1)
	assert.True(t, dupeMap.CanFwd(key))

	dupeMap.UpdateHeight(2)
	assert.False(t, dupeMap.CanFwd(key))

	dupeMap.SetTolerance(0)
	dupeMap.UpdateHeight(3)
	assert.True(t, dupeMap.CanFwd(key))
}

func TestFromConfig(t *testing.T) {
	r := config.Get()
	r.Network.DupeMap.Capacity = 10
	config.Mock(&r)
	defer config.Reset()

	dupeMap := dupemap.NewDupeMapFromConfig()
	assert.True(t, dupeMap.CanFwd(hash.Sha256([]byte("x"))))
}
