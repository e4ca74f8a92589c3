// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

// Serialization functions for integers. All integers are big-endian and
// exactly as wide as their type.

package encoding

import (
	"bytes"
	"encoding/binary"
	"math/big"
)

// Uint128 is an unsigned 128-bit integer, stored as two 64-bit halves.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// NewUint128 returns v as a Uint128.
func NewUint128(v uint64) Uint128 {
	return Uint128{Lo: v}
}

// Cmp compares u and v, returning -1, 0 or +1.
func (u Uint128) Cmp(v Uint128) int {
	switch {
	case u.Hi < v.Hi:
		return -1
	case u.Hi > v.Hi:
		return 1
	case u.Lo < v.Lo:
		return -1
	case u.Lo > v.Lo:
		return 1
	}

	return 0
}

// Big returns u as a big.Int.
func (u Uint128) Big() *big.Int {
	var b [16]byte
	binary.BigEndian.PutUint64(b[:8], u.Hi)
	binary.BigEndian.PutUint64(b[8:], u.Lo)
	return new(big.Int).SetBytes(b[:])
}

// String returns the decimal representation of u.
func (u Uint128) String() string {
	return u.Big().String()
}

// ReadUint8 will read a single byte into v.
func ReadUint8(r *Reader, v *uint8) error {
	b, err := r.next(1)
	if err != nil {
		return err
	}

	*v = b[0]
	return nil
}

// ReadUint16 will read two big-endian bytes into v.
func ReadUint16(r *Reader, v *uint16) error {
	b, err := r.next(2)
	if err != nil {
		return err
	}

	*v = binary.BigEndian.Uint16(b)
	return nil
}

// ReadUint32 will read four big-endian bytes into v.
func ReadUint32(r *Reader, v *uint32) error {
	b, err := r.next(4)
	if err != nil {
		return err
	}

	*v = binary.BigEndian.Uint32(b)
	return nil
}

// ReadUint64 will read eight big-endian bytes into v.
func ReadUint64(r *Reader, v *uint64) error {
	b, err := r.next(8)
	if err != nil {
		return err
	}

	*v = binary.BigEndian.Uint64(b)
	return nil
}

// ReadUint128 will read sixteen big-endian bytes into v.
func ReadUint128(r *Reader, v *Uint128) error {
	b, err := r.next(16)
	if err != nil {
		return err
	}

	v.Hi = binary.BigEndian.Uint64(b[:8])
	v.Lo = binary.BigEndian.Uint64(b[8:])
	return nil
}

// ReadInt8 will read a two's complement signed byte into v.
func ReadInt8(r *Reader, v *int8) error {
	var u uint8
	if err := ReadUint8(r, &u); err != nil {
		return err
	}

	*v = int8(u)
	return nil
}

// ReadInt16 will read a big-endian two's complement int16 into v.
func ReadInt16(r *Reader, v *int16) error {
	var u uint16
	if err := ReadUint16(r, &u); err != nil {
		return err
	}

	*v = int16(u)
	return nil
}

// ReadInt32 will read a big-endian two's complement int32 into v.
func ReadInt32(r *Reader, v *int32) error {
	var u uint32
	if err := ReadUint32(r, &u); err != nil {
		return err
	}

	*v = int32(u)
	return nil
}

// ReadInt64 will read a big-endian two's complement int64 into v.
func ReadInt64(r *Reader, v *int64) error {
	var u uint64
	if err := ReadUint64(r, &u); err != nil {
		return err
	}

	*v = int64(u)
	return nil
}

// WriteUint8 will write a single byte.
func WriteUint8(w *bytes.Buffer, v uint8) error {
	return w.WriteByte(v)
}

// WriteUint16 will write two bytes in big-endian byte order.
func WriteUint16(w *bytes.Buffer, v uint16) error {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	_, err := w.Write(b[:])
	return err
}

// WriteUint32 will write four bytes in big-endian byte order.
func WriteUint32(w *bytes.Buffer, v uint32) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	_, err := w.Write(b[:])
	return err
}

// WriteUint64 will write eight bytes in big-endian byte order.
func WriteUint64(w *bytes.Buffer, v uint64) error {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	_, err := w.Write(b[:])
	return err
}

// WriteUint128 will write sixteen bytes in big-endian byte order.
func WriteUint128(w *bytes.Buffer, v Uint128) error {
	var b [16]byte
	binary.BigEndian.PutUint64(b[:8], v.Hi)
	binary.BigEndian.PutUint64(b[8:], v.Lo)
	_, err := w.Write(b[:])
	return err
}

// WriteInt8 will write v as a two's complement byte.
func WriteInt8(w *bytes.Buffer, v int8) error {
	return WriteUint8(w, uint8(v))
}

// WriteInt16 will write v as two big-endian two's complement bytes.
func WriteInt16(w *bytes.Buffer, v int16) error {
	return WriteUint16(w, uint16(v))
}

// WriteInt32 will write v as four big-endian two's complement bytes.
func WriteInt32(w *bytes.Buffer, v int32) error {
	return WriteUint32(w, uint32(v))
}

// WriteInt64 will write v as eight big-endian two's complement bytes.
func WriteInt64(w *bytes.Buffer, v int64) error {
	return WriteUint64(w, uint64(v))
}
