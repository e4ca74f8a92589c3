// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package encoding

import "github.com/pkg/errors"

var (
	// ErrTruncatedInput is returned when fewer bytes remain than a value
	// requires. It is recoverable: the caller may wait for more data.
	ErrTruncatedInput = errors.New("truncated input")

	// ErrInvalidEncoding is returned when the bytes are present but do not
	// form the canonical encoding of the expected type.
	ErrInvalidEncoding = errors.New("invalid encoding")

	// ErrLengthOverflow is returned when a declared length or element count
	// exceeds the configured maximum.
	ErrLengthOverflow = errors.New("length overflow")
)
