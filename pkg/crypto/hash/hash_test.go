// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package hash

import (
	"crypto/rand"
	"testing"

	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/encoding"
	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/streamable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair struct {
	A uint32
	B string
}

func (p *pair) Fields() []streamable.Field {
	return []streamable.Field{
		streamable.NewField("a", &p.A, encoding.U32),
		streamable.NewField("b", &p.B, encoding.String),
	}
}

func randomMessage(size int) []byte {
	msg := make([]byte, size)
	_, _ = rand.Read(msg)
	return msg
}

func TestSha256Golden(t *testing.T) {
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", Sha256(nil).String())
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", Sha256([]byte("abc")).String())
}

func TestOfHashesCanonicalBytes(t *testing.T) {
	p := &pair{A: 300, B: "x"}
	b, err := streamable.Encode(p)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 1, 0x2c, 0, 0, 0, 1, 'x'}, b)

	h, err := Of(p)
	require.NoError(t, err)
	assert.Equal(t, Sha256(b), h)

	// Deterministic across calls and equal values.
	h2, err := Of(&pair{A: 300, B: "x"})
	require.NoError(t, err)
	assert.Equal(t, h, h2)

	h3, err := Of(&pair{A: 301, B: "x"})
	require.NoError(t, err)
	assert.NotEqual(t, h, h3)
}

func TestOfPropagatesEncodeErrors(t *testing.T) {
	_, err := Of(&pair{B: string([]byte{0xff})})
	assert.Error(t, err)
}

func TestConcat(t *testing.T) {
	a, b := randomMessage(48), randomMessage(32)
	assert.Equal(t, Sha256(append(append([]byte{}, a...), b...)), Concat(a, b))
}

func BenchmarkOf(b *testing.B) {
	p := &pair{A: 1, B: string(randomMessage(16))}

	for i := 0; i < b.N; i++ {
		_, _ = Of(p)
	}
}
