// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package encoding

import (
	"bytes"

	"github.com/pkg/errors"
)

// Codec pairs the write and read functions of one wire type. Codecs are
// plain values and can be shared between goroutines.
type Codec[T any] struct {
	Write func(w *bytes.Buffer, v T) error
	Read  func(r *Reader, v *T) error
}

// Primitive codecs.
var (
	U8      = Codec[uint8]{Write: WriteUint8, Read: ReadUint8}
	U16     = Codec[uint16]{Write: WriteUint16, Read: ReadUint16}
	U32     = Codec[uint32]{Write: WriteUint32, Read: ReadUint32}
	U64     = Codec[uint64]{Write: WriteUint64, Read: ReadUint64}
	U128    = Codec[Uint128]{Write: WriteUint128, Read: ReadUint128}
	I8      = Codec[int8]{Write: WriteInt8, Read: ReadInt8}
	I16     = Codec[int16]{Write: WriteInt16, Read: ReadInt16}
	I32     = Codec[int32]{Write: WriteInt32, Read: ReadInt32}
	I64     = Codec[int64]{Write: WriteInt64, Read: ReadInt64}
	Bool    = Codec[bool]{Write: WriteBool, Read: ReadBool}
	Bytes   = Codec[[]byte]{Write: WriteVarBytes, Read: ReadVarBytes}
	String  = Codec[string]{Write: WriteString, Read: ReadString}
	Hash    = Codec[Bytes32]{Write: Write256, Read: Read256}
	Hash100 = Codec[Bytes100]{
		Write: func(w *bytes.Buffer, v Bytes100) error { return WriteFixed(w, v[:]) },
		Read:  func(r *Reader, v *Bytes100) error { return ReadFixed(r, v[:]) },
	}
)

// Optional wraps c so that a nil pointer encodes as a single zero byte and a
// non-nil pointer as a one byte followed by the value.
func Optional[T any](c Codec[T]) Codec[*T] {
	return Codec[*T]{
		Write: func(w *bytes.Buffer, v *T) error {
			if v == nil {
				return WriteUint8(w, 0)
			}

			if err := WriteUint8(w, 1); err != nil {
				return err
			}
			return c.Write(w, *v)
		},
		Read: func(r *Reader, v **T) error {
			var present bool
			if err := ReadPresence(r, &present); err != nil {
				return err
			}

			if !present {
				*v = nil
				return nil
			}

			val := new(T)
			if err := c.Read(r, val); err != nil {
				return err
			}
			*v = val
			return nil
		},
	}
}

// List wraps c into a u32 element count followed by the elements. Every wire
// type is at least one byte long, so a count larger than the remaining input
// is reported as truncation before anything is allocated.
func List[T any](c Codec[T]) Codec[[]T] {
	return Codec[[]T]{
		Write: func(w *bytes.Buffer, v []T) error {
			if err := WriteLength(w, len(v)); err != nil {
				return err
			}

			for i := range v {
				if err := c.Write(w, v[i]); err != nil {
					return errors.Wrapf(err, "element %d", i)
				}
			}
			return nil
		},
		Read: func(r *Reader, v *[]T) error {
			var n uint32
			if err := ReadLength(r, &n); err != nil {
				return err
			}

			if uint64(n) > uint64(r.Len()) {
				return errors.Wrapf(ErrTruncatedInput, "list of %d elements, %d bytes left", n, r.Len())
			}

			out := make([]T, n)
			for i := range out {
				if err := c.Read(r, &out[i]); err != nil {
					return errors.Wrapf(err, "element %d", i)
				}
			}
			*v = out
			return nil
		},
	}
}

// Tuple2 is a fixed arity pair.
type Tuple2[A, B any] struct {
	First  A
	Second B
}

// Tuple3 is a fixed arity triple.
type Tuple3[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Pair builds a Tuple2 codec. Members are concatenated without a prefix.
func Pair[A, B any](a Codec[A], b Codec[B]) Codec[Tuple2[A, B]] {
	return Codec[Tuple2[A, B]]{
		Write: func(w *bytes.Buffer, v Tuple2[A, B]) error {
			if err := a.Write(w, v.First); err != nil {
				return err
			}
			return b.Write(w, v.Second)
		},
		Read: func(r *Reader, v *Tuple2[A, B]) error {
			if err := a.Read(r, &v.First); err != nil {
				return err
			}
			return b.Read(r, &v.Second)
		},
	}
}

// Triple builds a Tuple3 codec.
func Triple[A, B, C any](a Codec[A], b Codec[B], c Codec[C]) Codec[Tuple3[A, B, C]] {
	return Codec[Tuple3[A, B, C]]{
		Write: func(w *bytes.Buffer, v Tuple3[A, B, C]) error {
			if err := a.Write(w, v.First); err != nil {
				return err
			}
			if err := b.Write(w, v.Second); err != nil {
				return err
			}
			return c.Write(w, v.Third)
		},
		Read: func(r *Reader, v *Tuple3[A, B, C]) error {
			if err := a.Read(r, &v.First); err != nil {
				return err
			}
			if err := b.Read(r, &v.Second); err != nil {
				return err
			}
			return c.Read(r, &v.Third)
		},
	}
}
