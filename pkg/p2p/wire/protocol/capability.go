// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package protocol

import (
	"bytes"
	"sort"

	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/encoding"
)

// Capability ids.
const (
	// Base is the capability every peer speaking this protocol has.
	Base uint16 = 1
	// BlockHeaders allows requesting header blocks without transactions.
	BlockHeaders uint16 = 2
	// RateLimitsV2 advertises the second generation of rate limits.
	RateLimitsV2 uint16 = 3
	// NoneResponse allows answering requests with an empty response.
	NoneResponse uint16 = 4
)

// Capability is an optional protocol feature and the version a peer
// supports. Version zero disables the feature. On the wire it is the
// tuple (u16 id, u8 version).
type Capability struct {
	ID      uint16
	Version uint8
}

// CapabilityCodec writes a Capability as its id followed by its version.
var CapabilityCodec = encoding.Codec[Capability]{
	Write: func(w *bytes.Buffer, c Capability) error {
		if err := encoding.WriteUint16(w, c.ID); err != nil {
			return err
		}
		return encoding.WriteUint8(w, c.Version)
	},
	Read: func(r *encoding.Reader, c *Capability) error {
		if err := encoding.ReadUint16(r, &c.ID); err != nil {
			return err
		}
		return encoding.ReadUint8(r, &c.Version)
	},
}

// DefaultCapabilities returns what this node advertises.
func DefaultCapabilities() []Capability {
	return []Capability{
		{ID: Base, Version: 1},
		{ID: BlockHeaders, Version: 1},
		{ID: RateLimitsV2, Version: 1},
	}
}

// Negotiate intersects two advertised capability lists. A feature is kept
// when both sides enable it, at the lower of the two versions. The result
// is sorted by id. When a list repeats an id, its first entry counts.
func Negotiate(local, remote []Capability) []Capability {
	theirs := make(map[uint16]uint8, len(remote))
	for _, c := range remote {
		if _, ok := theirs[c.ID]; !ok {
			theirs[c.ID] = c.Version
		}
	}

	seen := make(map[uint16]struct{}, len(local))
	out := make([]Capability, 0, len(local))
	for _, c := range local {
		if _, ok := seen[c.ID]; ok {
			continue
		}
		seen[c.ID] = struct{}{}

		v, ok := theirs[c.ID]
		if !ok {
			continue
		}

		if c.Version < v {
			v = c.Version
		}

		if v == 0 {
			continue
		}

		out = append(out, Capability{ID: c.ID, Version: v})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Has reports whether caps enables id.
func Has(caps []Capability, id uint16) bool {
	for _, c := range caps {
		if c.ID == id && c.Version > 0 {
			return true
		}
	}
	return false
}
