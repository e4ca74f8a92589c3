// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package bls

import (
	"bytes"
	"testing"

	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/encoding"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type prefixValidator struct{}

func (prefixValidator) ValidG1(g G1Element) bool { return g[0]&0x80 != 0 }
func (prefixValidator) ValidG2(g G2Element) bool { return g[0]&0x80 != 0 }

func TestElementsHaveNoLengthPrefix(t *testing.T) {
	pk := G1Element{0xc0}
	buf := new(bytes.Buffer)
	require.NoError(t, G1.Write(buf, pk))
	assert.Equal(t, G1Size, buf.Len())

	var out G1Element
	require.NoError(t, G1.Read(encoding.NewReader(buf.Bytes(), 0), &out))
	assert.Equal(t, pk, out)

	err := G2.Read(encoding.NewReader(make([]byte, G2Size-1), 0), new(G2Element))
	assert.True(t, errors.Is(err, encoding.ErrTruncatedInput))

	buf.Reset()
	require.NoError(t, GT.Write(buf, GTElement{}))
	assert.Equal(t, GTSize, buf.Len())
}

func TestValidation(t *testing.T) {
	v := prefixValidator{}
	assert.NoError(t, ValidatePublicKeys(v, G1Element{0x80}, G1Element{0xc0}))
	assert.True(t, errors.Is(ValidatePublicKeys(v, G1Element{0x80}, G1Element{}), ErrInvalidPoint))
	assert.NoError(t, ValidateSignature(v, G2Element{0xc0}))
	assert.True(t, errors.Is(ValidateSignature(v, G2Element{}), ErrInvalidPoint))
}
