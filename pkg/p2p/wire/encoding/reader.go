// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package encoding

import "github.com/pkg/errors"

// DefaultMaxLength bounds declared byte lengths and list counts when no
// other limit is configured. It matches the default maximum payload size.
const DefaultMaxLength = uint32(50 * 1024 * 1024)

// Reader is a read cursor over an already buffered message. It never reads
// past the end of the slice it was created with, and rejects any declared
// length above its maximum before allocating.
type Reader struct {
	buf       []byte
	off       int
	maxLength uint32
}

// NewReader returns a Reader over b. A maxLength of zero selects
// DefaultMaxLength.
func NewReader(b []byte, maxLength uint32) *Reader {
	if maxLength == 0 {
		maxLength = DefaultMaxLength
	}

	return &Reader{buf: b, maxLength: maxLength}
}

// Len returns the number of unread bytes.
func (r *Reader) Len() int {
	return len(r.buf) - r.off
}

// Consumed returns the number of bytes read so far.
func (r *Reader) Consumed() int {
	return r.off
}

// MaxLength returns the largest declared length this reader accepts.
func (r *Reader) MaxLength() uint32 {
	return r.maxLength
}

// Rest returns the unread bytes without consuming them.
func (r *Reader) Rest() []byte {
	return r.buf[r.off:]
}

// Finish fails with ErrInvalidEncoding if any bytes are left unread.
func (r *Reader) Finish() error {
	if n := r.Len(); n != 0 {
		return errors.Wrapf(ErrInvalidEncoding, "%d trailing bytes", n)
	}

	return nil
}

// next consumes exactly n bytes. The returned slice aliases the input.
func (r *Reader) next(n int) ([]byte, error) {
	if n < 0 || r.Len() < n {
		return nil, errors.Wrapf(ErrTruncatedInput, "need %d bytes, have %d", n, r.Len())
	}

	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}

// checkLength validates a declared length against the configured maximum.
func (r *Reader) checkLength(n uint32) error {
	if n > r.maxLength {
		return errors.Wrapf(ErrLengthOverflow, "declared length %d exceeds maximum %d", n, r.maxLength)
	}

	return nil
}
