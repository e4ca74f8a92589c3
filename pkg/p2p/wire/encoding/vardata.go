// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

// Variable length data serialization functions

package encoding

import (
	"bytes"
	"math"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// ReadLength reads a u32 length or element count and checks it against the
// reader's maximum.
func ReadLength(r *Reader, n *uint32) error {
	if err := ReadUint32(r, n); err != nil {
		return err
	}

	return r.checkLength(*n)
}

// WriteLength writes n as a u32 length prefix.
func WriteLength(w *bytes.Buffer, n int) error {
	if n < 0 || uint64(n) > math.MaxUint32 {
		return errors.Wrapf(ErrLengthOverflow, "length %d does not fit in 4 bytes", n)
	}

	return WriteUint32(w, uint32(n))
}

// ReadVarBytes will read a u32 big-endian length, then proceeds to read that
// amount of bytes from r into b. The declared length is checked against the
// configured maximum before any allocation.
func ReadVarBytes(r *Reader, b *[]byte) error {
	var c uint32
	if err := ReadLength(r, &c); err != nil {
		return err
	}

	raw, err := r.next(int(c))
	if err != nil {
		return err
	}

	*b = make([]byte, c)
	copy(*b, raw)
	return nil
}

// WriteVarBytes will serialize a u32 big-endian length, then proceeds to
// write b into w.
func WriteVarBytes(w *bytes.Buffer, b []byte) error {
	if err := WriteLength(w, len(b)); err != nil {
		return err
	}

	_, err := w.Write(b)
	return err
}

// Convenience functions for strings. They will point to the functions above and
// handle type conversion.

// ReadString reads the data with ReadVarBytes and returns it as a string.
// The bytes must be valid UTF-8.
func ReadString(r *Reader, s *string) error {
	var b []byte
	if err := ReadVarBytes(r, &b); err != nil {
		return err
	}

	if !utf8.Valid(b) {
		return errors.Wrap(ErrInvalidEncoding, "string is not valid utf-8")
	}

	*s = string(b)
	return nil
}

// WriteString will write string s as a slice of bytes through WriteVarBytes.
func WriteString(w *bytes.Buffer, s string) error {
	if !utf8.ValidString(s) {
		return errors.Wrap(ErrInvalidEncoding, "string is not valid utf-8")
	}

	return WriteVarBytes(w, []byte(s))
}
