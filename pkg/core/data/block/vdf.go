// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package block

import (
	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/encoding"
	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/streamable"
)

// ClassgroupElement is a serialized class group element, the input and
// output of a VDF.
type ClassgroupElement struct {
	Data encoding.Bytes100
}

// Fields implements streamable.Streamable.
func (c *ClassgroupElement) Fields() []streamable.Field {
	return []streamable.Field{
		streamable.NewField("data", &c.Data, encoding.Hash100),
	}
}

// DefaultElement returns the generator of the class group, encoded as 0x08
// followed by zeros.
func DefaultElement() ClassgroupElement {
	var c ClassgroupElement
	c.Data[0] = 0x08
	return c
}

// ClassgroupCodec encodes a ClassgroupElement inside other records.
var ClassgroupCodec = streamable.Struct[ClassgroupElement]()

// VDFInfo states the challenge, the number of iterations and the claimed
// output of a VDF evaluation.
type VDFInfo struct {
	Challenge          encoding.Bytes32
	NumberOfIterations uint64
	Output             ClassgroupElement
}

// Fields implements streamable.Streamable.
func (v *VDFInfo) Fields() []streamable.Field {
	return []streamable.Field{
		streamable.NewField("challenge", &v.Challenge, encoding.Hash),
		streamable.NewField("number_of_iterations", &v.NumberOfIterations, encoding.U64),
		streamable.NewField("output", &v.Output, ClassgroupCodec),
	}
}

// VDFInfoCodec encodes a VDFInfo inside other records.
var VDFInfoCodec = streamable.Struct[VDFInfo]()

// VDFProof is the witness that a VDFInfo is correct.
type VDFProof struct {
	WitnessType          uint8
	Witness              []byte
	NormalizedToIdentity bool
}

// Fields implements streamable.Streamable.
func (v *VDFProof) Fields() []streamable.Field {
	return []streamable.Field{
		streamable.NewField("witness_type", &v.WitnessType, encoding.U8),
		streamable.NewField("witness", &v.Witness, encoding.Bytes),
		streamable.NewField("normalized_to_identity", &v.NormalizedToIdentity, encoding.Bool),
	}
}

// VDFProofCodec encodes a VDFProof inside other records.
var VDFProofCodec = streamable.Struct[VDFProof]()
