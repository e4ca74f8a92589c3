// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package streamable

import (
	"bytes"

	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/encoding"
	"github.com/pkg/errors"
)

// Field is one named entry of a schema, bound to the struct member it
// encodes and decodes.
type Field interface {
	Name() string

	trailing() bool
	present() bool
	write(w *bytes.Buffer) error
	read(r *encoding.Reader) error
}

type field[T any] struct {
	name string
	v    *T
	c    encoding.Codec[T]
}

// NewField binds v to the codec c under the given name.
func NewField[T any](name string, v *T, c encoding.Codec[T]) Field {
	return &field[T]{name: name, v: v, c: c}
}

func (f *field[T]) Name() string                  { return f.name }
func (f *field[T]) trailing() bool                { return false }
func (f *field[T]) present() bool                 { return true }
func (f *field[T]) write(w *bytes.Buffer) error   { return f.c.Write(w, *f.v) }
func (f *field[T]) read(r *encoding.Reader) error { return f.c.Read(r, f.v) }

type trailingField[T any] struct {
	name string
	v    **T
	c    encoding.Codec[T]
}

// Trailing declares an optional field appended to a schema after it was first
// deployed. Peers that predate the field stop reading before it, so an absent
// value is written as no bytes at all and a present one as a one byte flag and
// the value. Running out of input at a trailing field decodes as absent, and
// an explicit zero flag is rejected as non-canonical.
func Trailing[T any](name string, v **T, c encoding.Codec[T]) Field {
	return &trailingField[T]{name: name, v: v, c: c}
}

func (f *trailingField[T]) Name() string   { return f.name }
func (f *trailingField[T]) trailing() bool { return true }
func (f *trailingField[T]) present() bool  { return *f.v != nil }

func (f *trailingField[T]) write(w *bytes.Buffer) error {
	if *f.v == nil {
		return nil
	}

	if err := encoding.WriteUint8(w, 1); err != nil {
		return err
	}
	return f.c.Write(w, **f.v)
}

func (f *trailingField[T]) read(r *encoding.Reader) error {
	if r.Len() == 0 {
		*f.v = nil
		return nil
	}

	var present bool
	if err := encoding.ReadPresence(r, &present); err != nil {
		return err
	}

	if !present {
		return errors.Wrap(encoding.ErrInvalidEncoding, "absent trailing field must be omitted")
	}

	val := new(T)
	if err := f.c.Read(r, val); err != nil {
		return err
	}
	*f.v = val
	return nil
}
