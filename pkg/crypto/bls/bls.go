// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

// Package bls carries BLS12-381 group elements as opaque, fixed size byte
// strings. Curve arithmetic and point validation live outside this module
// and are reached through the Validator and Pairer interfaces.
package bls

import (
	"bytes"
	"encoding/hex"

	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/encoding"
	"github.com/pkg/errors"
)

// Element sizes, in bytes, of the compressed encodings.
const (
	G1Size = 48
	G2Size = 96
	GTSize = 576
)

// G1Element is a compressed point on G1, used for public keys.
type G1Element [G1Size]byte

// G2Element is a compressed point on G2, used for signatures.
type G2Element [G2Size]byte

// GTElement is an element of the target group, the result of a pairing.
type GTElement [GTSize]byte

func (g G1Element) String() string { return hex.EncodeToString(g[:]) }
func (g G2Element) String() string { return hex.EncodeToString(g[:]) }
func (g GTElement) String() string { return hex.EncodeToString(g[:]) }

// Validator checks that a byte string is a valid point encoding. Decoding
// never calls it; callers that need valid points validate explicitly.
type Validator interface {
	ValidG1(G1Element) bool
	ValidG2(G2Element) bool
}

// ErrInvalidPoint is returned by Validate when a point does not pass the
// validator.
var ErrInvalidPoint = errors.New("invalid curve point")

// ValidatePublicKeys runs every key through v.
func ValidatePublicKeys(v Validator, pks ...G1Element) error {
	for i, pk := range pks {
		if !v.ValidG1(pk) {
			return errors.Wrapf(ErrInvalidPoint, "public key %d", i)
		}
	}
	return nil
}

// ValidateSignature runs sig through v.
func ValidateSignature(v Validator, sig G2Element) error {
	if !v.ValidG2(sig) {
		return errors.Wrap(ErrInvalidPoint, "signature")
	}
	return nil
}

// Codecs for the fixed size elements. They are written without a length
// prefix.
var (
	G1 = encoding.Codec[G1Element]{
		Write: func(w *bytes.Buffer, v G1Element) error { return encoding.WriteFixed(w, v[:]) },
		Read:  func(r *encoding.Reader, v *G1Element) error { return encoding.ReadFixed(r, v[:]) },
	}
	G2 = encoding.Codec[G2Element]{
		Write: func(w *bytes.Buffer, v G2Element) error { return encoding.WriteFixed(w, v[:]) },
		Read:  func(r *encoding.Reader, v *G2Element) error { return encoding.ReadFixed(r, v[:]) },
	}
	GT = encoding.Codec[GTElement]{
		Write: func(w *bytes.Buffer, v GTElement) error { return encoding.WriteFixed(w, v[:]) },
		Read:  func(r *encoding.Reader, v *GTElement) error { return encoding.ReadFixed(r, v[:]) },
	}
)
