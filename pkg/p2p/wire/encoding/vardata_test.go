// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package encoding

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Simple test case for WriteVarBytes and ReadVarBytes. This test case won't do much,
// as the data is already represented in bytes. However, this will tell us if the functions
// work properly.
func TestVarBytesEncodeDecode(t *testing.T) {
	// Get a random number of bytes
	n := rand.Intn(2048) + 1
	bs := randBytes(n)

	// Serialize
	buf := new(bytes.Buffer)
	require.NoError(t, WriteVarBytes(buf, bs))
	assert.Equal(t, 4+n, buf.Len())

	// Deserialize
	var rbs []byte
	r := NewReader(buf.Bytes(), 0)
	require.NoError(t, ReadVarBytes(r, &rbs))

	// Compare
	assert.Equal(t, bs, rbs)
	assert.Equal(t, 4+n, r.Consumed())
}

// Simple test case for writing and reading strings.
func TestVarStringEncodeDecode(t *testing.T) {
	str := string(randBytes(rand.Intn(2048)))

	buf := new(bytes.Buffer)
	require.NoError(t, WriteString(buf, str))

	var rstr string
	require.NoError(t, ReadString(NewReader(buf.Bytes(), 0), &rstr))
	assert.Equal(t, str, rstr)
}

func TestStringLayout(t *testing.T) {
	buf := new(bytes.Buffer)
	require.NoError(t, WriteString(buf, "gold"))
	assert.Equal(t, []byte{0, 0, 0, 4, 'g', 'o', 'l', 'd'}, buf.Bytes())
}

func TestStringRejectsInvalidUTF8(t *testing.T) {
	raw := []byte{0, 0, 0, 2, 0xc3, 0x28}
	var s string
	err := ReadString(NewReader(raw, 0), &s)
	assert.True(t, errors.Is(err, ErrInvalidEncoding))

	err = WriteString(new(bytes.Buffer), string([]byte{0xff}))
	assert.True(t, errors.Is(err, ErrInvalidEncoding))
}

func TestVarBytesLengthOverflow(t *testing.T) {
	// Declares 1025 bytes against a limit of 1024. The check happens before
	// the (absent) data is looked at.
	raw := []byte{0, 0, 0x04, 0x01}
	var b []byte
	err := ReadVarBytes(NewReader(raw, 1024), &b)
	assert.True(t, errors.Is(err, ErrLengthOverflow))
	assert.Nil(t, b)
}

func TestVarBytesTruncated(t *testing.T) {
	raw := []byte{0, 0, 0, 5, 1, 2, 3}
	var b []byte
	err := ReadVarBytes(NewReader(raw, 0), &b)
	assert.True(t, errors.Is(err, ErrTruncatedInput))
}

const letterBytes = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

func randBytes(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = letterBytes[rand.Intn(len(letterBytes))]
	}
	return b
}
