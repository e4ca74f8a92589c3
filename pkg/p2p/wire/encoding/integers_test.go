// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package encoding

import (
	"bytes"
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUint32Layout(t *testing.T) {
	buf := new(bytes.Buffer)
	require.NoError(t, WriteUint32(buf, 300))
	assert.Equal(t, []byte{0x00, 0x00, 0x01, 0x2c}, buf.Bytes())
}

func TestIntegerLayouts(t *testing.T) {
	var tt = []struct {
		name  string
		write func(*bytes.Buffer) error
		want  []byte
	}{
		{"u8", func(w *bytes.Buffer) error { return WriteUint8(w, 0xab) }, []byte{0xab}},
		{"u16", func(w *bytes.Buffer) error { return WriteUint16(w, 0x0102) }, []byte{0x01, 0x02}},
		{"u64", func(w *bytes.Buffer) error { return WriteUint64(w, 1) }, []byte{0, 0, 0, 0, 0, 0, 0, 1}},
		{"u128", func(w *bytes.Buffer) error { return WriteUint128(w, Uint128{Hi: 1, Lo: 2}) },
			[]byte{0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 2}},
		{"i8", func(w *bytes.Buffer) error { return WriteInt8(w, -1) }, []byte{0xff}},
		{"i16", func(w *bytes.Buffer) error { return WriteInt16(w, -2) }, []byte{0xff, 0xfe}},
		{"i32", func(w *bytes.Buffer) error { return WriteInt32(w, math.MinInt32) }, []byte{0x80, 0, 0, 0}},
	}

	for _, tc := range tt {
		buf := new(bytes.Buffer)
		require.NoError(t, tc.write(buf), tc.name)
		assert.Equal(t, tc.want, buf.Bytes(), tc.name)
	}
}

func TestIntegersRoundTrip(t *testing.T) {
	buf := new(bytes.Buffer)
	require.NoError(t, WriteUint8(buf, math.MaxUint8))
	require.NoError(t, WriteUint16(buf, math.MaxUint16))
	require.NoError(t, WriteUint32(buf, math.MaxUint32))
	require.NoError(t, WriteUint64(buf, math.MaxUint64))
	require.NoError(t, WriteUint128(buf, Uint128{Hi: math.MaxUint64, Lo: 7}))
	require.NoError(t, WriteInt64(buf, math.MinInt64))

	r := NewReader(buf.Bytes(), 0)
	var (
		a uint8
		b uint16
		c uint32
		d uint64
		e Uint128
		f int64
	)
	require.NoError(t, ReadUint8(r, &a))
	require.NoError(t, ReadUint16(r, &b))
	require.NoError(t, ReadUint32(r, &c))
	require.NoError(t, ReadUint64(r, &d))
	require.NoError(t, ReadUint128(r, &e))
	require.NoError(t, ReadInt64(r, &f))
	require.NoError(t, r.Finish())

	assert.Equal(t, uint8(math.MaxUint8), a)
	assert.Equal(t, uint16(math.MaxUint16), b)
	assert.Equal(t, uint32(math.MaxUint32), c)
	assert.Equal(t, uint64(math.MaxUint64), d)
	assert.Equal(t, Uint128{Hi: math.MaxUint64, Lo: 7}, e)
	assert.Equal(t, int64(math.MinInt64), f)
}

func TestIntegerTruncation(t *testing.T) {
	var v uint64
	for n := 0; n < 8; n++ {
		err := ReadUint64(NewReader(make([]byte, n), 0), &v)
		assert.True(t, errors.Is(err, ErrTruncatedInput), "prefix of %d bytes", n)
	}
}

func TestUint128(t *testing.T) {
	// 2^67
	v := Uint128{Hi: 8}
	assert.Equal(t, "147573952589676412928", v.String())
	assert.Equal(t, 1, v.Cmp(NewUint128(math.MaxUint64)))
	assert.Equal(t, -1, NewUint128(1).Cmp(NewUint128(2)))
	assert.Equal(t, 0, v.Cmp(Uint128{Hi: 8}))
}
