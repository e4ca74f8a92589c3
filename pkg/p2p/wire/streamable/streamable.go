// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

// Package streamable composes primitive codecs into record schemas. A record
// is encoded as the concatenation of its fields in declaration order, with
// no tags, names or padding between them.
package streamable

import (
	"bytes"
	"fmt"

	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/encoding"
	"github.com/pkg/errors"
)

// Streamable is implemented by every record that travels on the wire. Fields
// returns the ordered schema bound to the receiver's members, so the same
// list drives both encoding and decoding.
type Streamable interface {
	Fields() []Field
}

// Marshal writes every field of s into w.
func Marshal(w *bytes.Buffer, s Streamable) error {
	var absent string
	for _, f := range s.Fields() {
		if f.trailing() {
			if !f.present() {
				if absent == "" {
					absent = f.Name()
				}
				continue
			}

			if absent != "" {
				return &FieldError{
					Type:  typeName(s),
					Field: f.Name(),
					Err:   errors.Wrapf(encoding.ErrInvalidEncoding, "present after absent trailing field %s", absent),
				}
			}
		}

		if err := f.write(w); err != nil {
			return &FieldError{Type: typeName(s), Field: f.Name(), Err: err}
		}
	}

	return nil
}

// Unmarshal reads every field of s from r. Bytes left in r after the last
// field are not inspected.
func Unmarshal(r *encoding.Reader, s Streamable) error {
	for _, f := range s.Fields() {
		if err := f.read(r); err != nil {
			return &FieldError{Type: typeName(s), Field: f.Name(), Err: err}
		}
	}

	return nil
}

// Encode returns the canonical bytes of s.
func Encode(s Streamable) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := Marshal(buf, s); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Decode fills s from b and returns the number of bytes consumed. Trailing
// bytes are left for the caller to judge. A maxLength of zero selects
// encoding.DefaultMaxLength.
func Decode(b []byte, s Streamable, maxLength uint32) (int, error) {
	r := encoding.NewReader(b, maxLength)
	if err := Unmarshal(r, s); err != nil {
		return r.Consumed(), err
	}

	return r.Consumed(), nil
}

// DecodeExact fills s from b and fails if any byte of b is left unread.
func DecodeExact(b []byte, s Streamable, maxLength uint32) error {
	r := encoding.NewReader(b, maxLength)
	if err := Unmarshal(r, s); err != nil {
		return err
	}

	return r.Finish()
}

// Struct returns a codec for the record type T, so that records can be nested
// inside other records, lists and optionals. Trailing fields are only
// allowed on top level payloads, where the end of the input marks them
// absent; Struct panics when T declares one.
func Struct[T any, PT interface {
	*T
	Streamable
}]() encoding.Codec[T] {
	var zero T
	for _, f := range PT(&zero).Fields() {
		if f.trailing() {
			panic(fmt.Errorf("%s: trailing field %s cannot be nested", typeName(PT(&zero)), f.Name()))
		}
	}

	return encoding.Codec[T]{
		Write: func(w *bytes.Buffer, v T) error {
			return Marshal(w, PT(&v))
		},
		Read: func(r *encoding.Reader, v *T) error {
			return Unmarshal(r, PT(v))
		},
	}
}

// Equal reports whether a and b have the same canonical encoding.
func Equal(a, b Streamable) bool {
	ea, err := Encode(a)
	if err != nil {
		return false
	}

	eb, err := Encode(b)
	if err != nil {
		return false
	}

	return bytes.Equal(ea, eb)
}

// Validate checks the shape of a schema: field names must be unique and
// trailing fields may only be followed by other trailing fields.
func Validate(s Streamable) error {
	seen := make(map[string]struct{})
	var trailing string

	for _, f := range s.Fields() {
		if _, ok := seen[f.Name()]; ok {
			return errors.Errorf("%s: duplicate field %s", typeName(s), f.Name())
		}
		seen[f.Name()] = struct{}{}

		if f.trailing() {
			trailing = f.Name()
			continue
		}

		if trailing != "" {
			return errors.Errorf("%s: field %s follows trailing field %s", typeName(s), f.Name(), trailing)
		}
	}

	return nil
}
