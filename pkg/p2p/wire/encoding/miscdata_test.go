// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package encoding

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test bool functions
func TestBoolEncodeDecode(t *testing.T) {
	for _, b := range []bool{true, false} {
		buf := new(bytes.Buffer)
		require.NoError(t, WriteBool(buf, b))
		assert.Equal(t, 1, buf.Len())

		var c bool
		r := NewReader(buf.Bytes(), 0)
		require.NoError(t, ReadBool(r, &c))
		assert.Equal(t, b, c)
		assert.Equal(t, 1, r.Consumed())
	}
}

func TestBoolRejectsNonCanonicalByte(t *testing.T) {
	for _, raw := range []byte{2, 0x7f, 0xff} {
		var c bool
		err := ReadBool(NewReader([]byte{raw}, 0), &c)
		assert.True(t, errors.Is(err, ErrInvalidEncoding), "byte 0x%02x", raw)
	}
}

// Basic test. This won't do much as it's already in byte representation, but is more intended to show
// that the function works as intended for when it's writing to a buffer with other elements.
func Test256EncodeDecode(t *testing.T) {
	var byte32 Bytes32
	_, err := rand.Read(byte32[:])
	require.NoError(t, err)

	// Serialize
	buf := new(bytes.Buffer)
	require.NoError(t, Write256(buf, byte32))

	// Check if it serialized correctly
	assert.Equal(t, byte32[:], buf.Bytes())

	// Deserialize
	var hash Bytes32
	require.NoError(t, Read256(NewReader(buf.Bytes(), 0), &hash))

	// Content should be the same
	assert.Equal(t, byte32, hash)
}

func Test256Truncated(t *testing.T) {
	var hash Bytes32
	err := Read256(NewReader(make([]byte, 31), 0), &hash)
	assert.True(t, errors.Is(err, ErrTruncatedInput))
}

func TestBytes32FromHex(t *testing.T) {
	s := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	b, err := Bytes32FromHex(s)
	require.NoError(t, err)
	assert.Equal(t, s, b.String())

	_, err = Bytes32FromHex("e3b0")
	assert.Error(t, err)
}

func TestPresenceFlag(t *testing.T) {
	var present bool
	require.NoError(t, ReadPresence(NewReader([]byte{1}, 0), &present))
	assert.True(t, present)

	err := ReadPresence(NewReader([]byte{2}, 0), &present)
	assert.True(t, errors.Is(err, ErrInvalidEncoding))
}
