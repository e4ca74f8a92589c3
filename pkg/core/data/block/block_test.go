// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package block

import (
	"testing"

	"github.com/gold-network/gold-blockchain/pkg/crypto/bls"
	"github.com/gold-network/gold-blockchain/pkg/crypto/hash"
	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/encoding"
	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/streamable"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// xorDeriver stands in for curve arithmetic: addition is a byte-wise xor and
// the key of a seed is the seed itself.
type xorDeriver struct{}

func (xorDeriver) AddG1(a, b bls.G1Element) (bls.G1Element, error) {
	var out bls.G1Element
	for i := range out {
		out[i] = a[i] ^ b[i]
	}
	return out, nil
}

func (xorDeriver) PublicKeyFromSeed(seed []byte) (bls.G1Element, error) {
	var out bls.G1Element
	copy(out[:], seed)
	return out, nil
}

type failingDeriver struct{ xorDeriver }

func (failingDeriver) PublicKeyFromSeed([]byte) (bls.G1Element, error) {
	return bls.G1Element{}, errors.New("no keys today")
}

func mockProof() *ProofOfSpace {
	pool := bls.G1Element{0xa0, 1}
	return &ProofOfSpace{
		Challenge:       encoding.Bytes32{1, 2, 3},
		PoolPublicKey:   &pool,
		LocalPublicKey:  bls.G1Element{0x0f, 0xf0},
		Size:            32,
		Proof:           []byte{9, 8, 7, 6},
		FarmerPublicKey: bls.G1Element{0xff, 0xff},
	}
}

func TestProofOfSpaceRoundTrip(t *testing.T) {
	assert := assert.New(t)

	p := mockProof()
	b, err := streamable.Encode(p)
	assert.NoError(err)
	// challenge, present pool key, absent contract hash, local key, size,
	// proof and farmer key.
	assert.Len(b, 32+1+48+1+48+1+4+4+48)

	decoded := new(ProofOfSpace)
	assert.NoError(streamable.DecodeExact(b, decoded, 0))
	assert.Equal(p, decoded)
}

func TestPlotPublicKey(t *testing.T) {
	p := mockProof()

	pk, err := p.PlotPublicKey(xorDeriver{})
	require.NoError(t, err)
	assert.Equal(t, bls.G1Element{0xf0, 0x0f}, pk)

	ph := encoding.Bytes32{0xee}
	p.PoolPublicKey = nil
	p.PoolContractPuzzleHash = &ph

	sum := bls.G1Element{0xf0, 0x0f}
	seed := hash.Concat(sum[:], p.LocalPublicKey[:], p.FarmerPublicKey[:])
	want, _ := xorDeriver{}.AddG1(sum, func() bls.G1Element {
		var k bls.G1Element
		copy(k[:], seed[:])
		return k
	}())

	pk, err = p.PlotPublicKey(xorDeriver{})
	require.NoError(t, err)
	assert.Equal(t, want, pk)

	_, err = p.PlotPublicKey(failingDeriver{})
	assert.Error(t, err)
}

func TestVDF(t *testing.T) {
	info := &VDFInfo{Challenge: encoding.Bytes32{7}, NumberOfIterations: 1 << 20, Output: DefaultElement()}
	b, err := streamable.Encode(info)
	require.NoError(t, err)
	assert.Len(t, b, 32+8+100)
	assert.Equal(t, byte(0x08), b[40])

	decoded := new(VDFInfo)
	require.NoError(t, streamable.DecodeExact(b, decoded, 0))
	assert.Equal(t, info, decoded)

	proof := &VDFProof{WitnessType: 1, Witness: []byte{1, 2}, NormalizedToIdentity: true}
	b, err = streamable.Encode(proof)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 0, 0, 0, 2, 1, 2, 1}, b)

	b[len(b)-1] = 2
	err = streamable.DecodeExact(b, new(VDFProof), 0)
	assert.True(t, errors.Is(err, encoding.ErrInvalidEncoding))
}

func TestPoolTarget(t *testing.T) {
	pt := &PoolTarget{PuzzleHash: encoding.Bytes32{0xab}, MaxHeight: 300}
	b, err := streamable.Encode(pt)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 1, 0x2c}, b[32:])

	decoded := new(PoolTarget)
	n, err := streamable.Decode(append(b, 0xff), decoded, 0)
	require.NoError(t, err)
	assert.Equal(t, 36, n)
	assert.Equal(t, pt, decoded)
}
