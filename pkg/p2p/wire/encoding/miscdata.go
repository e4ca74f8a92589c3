// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

// Serialization functions for a variety of data structures, such as hashes
// and booleans.

package encoding

import (
	"bytes"
	"encoding/hex"

	"github.com/pkg/errors"
)

// Bytes32 is a fixed 32-byte value, typically a SHA-256 digest used to refer
// to another object by value.
type Bytes32 [32]byte

// String returns the hex form of b. Hex is only used for display.
func (b Bytes32) String() string {
	return hex.EncodeToString(b[:])
}

// IsZero reports whether every byte of b is zero.
func (b Bytes32) IsZero() bool {
	return b == Bytes32{}
}

// Bytes100 is a fixed 100-byte value, used for class group elements.
type Bytes100 [100]byte

// String returns the hex form of b.
func (b Bytes100) String() string {
	return hex.EncodeToString(b[:])
}

// Bytes32FromHex decodes a 64 character hex string.
func Bytes32FromHex(s string) (Bytes32, error) {
	var b Bytes32
	raw, err := hex.DecodeString(s)
	if err != nil {
		return b, err
	}

	if len(raw) != len(b) {
		return b, errors.Errorf("expected %d bytes, got %d", len(b), len(raw))
	}

	copy(b[:], raw)
	return b, nil
}

// ReadBool will read a single byte from r and turn it into a bool. Any byte
// other than 0 or 1 is rejected.
func ReadBool(r *Reader, v *bool) error {
	var b uint8
	if err := ReadUint8(r, &b); err != nil {
		return err
	}

	switch b {
	case 0:
		*v = false
	case 1:
		*v = true
	default:
		return errors.Wrapf(ErrInvalidEncoding, "boolean byte 0x%02x", b)
	}

	return nil
}

// WriteBool will write a boolean value as a single byte into w.
func WriteBool(w *bytes.Buffer, b bool) error {
	v := uint8(0)
	if b {
		v = 1
	}
	return WriteUint8(w, v)
}

// ReadFixed fills dst with exactly len(dst) bytes from r.
func ReadFixed(r *Reader, dst []byte) error {
	b, err := r.next(len(dst))
	if err != nil {
		return err
	}

	copy(dst, b)
	return nil
}

// WriteFixed writes b as is, without a length prefix.
func WriteFixed(w *bytes.Buffer, b []byte) error {
	_, err := w.Write(b)
	return err
}

// Read256 will read 32 bytes from r into b.
func Read256(r *Reader, b *Bytes32) error {
	return ReadFixed(r, b[:])
}

// Write256 will write the 32 bytes of b to w.
func Write256(w *bytes.Buffer, b Bytes32) error {
	return WriteFixed(w, b[:])
}

// ReadPresence reads the flag byte that precedes an optional value.
func ReadPresence(r *Reader, present *bool) error {
	var b uint8
	if err := ReadUint8(r, &b); err != nil {
		return err
	}

	switch b {
	case 0:
		*present = false
	case 1:
		*present = true
	default:
		return errors.Wrapf(ErrInvalidEncoding, "optional flag 0x%02x", b)
	}

	return nil
}
