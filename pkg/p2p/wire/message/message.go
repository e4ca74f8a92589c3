// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

// Package message holds the payload schema of every protocol message and
// maps envelope tags to them.
package message

import (
	"fmt"

	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/protocol"
	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/streamable"
	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/topics"
	"github.com/pkg/errors"
)

// ErrUnknownMessageType is returned for a tag no schema is registered for.
// Receivers ignore such messages.
var ErrUnknownMessageType = errors.New("unknown message type")

// Payload is the body of a protocol message.
type Payload interface {
	streamable.Streamable
	Topic() topics.Topic
}

// Unknown carries the raw payload of a message whose tag this node does not
// know.
type Unknown struct {
	Tag topics.Topic
	Raw []byte
}

// Fields implements streamable.Streamable. An unknown payload has no schema.
func (u *Unknown) Fields() []streamable.Field { return nil }

// Topic returns the tag the message arrived with.
func (u *Unknown) Topic() topics.Topic { return u.Tag }

// Message is a decoded envelope.
type Message struct {
	ID      *uint16
	Payload Payload
	// Trailing counts the payload bytes left after the schema ended, as
	// sent by peers that know newer trailing fields.
	Trailing int
}

// Topic returns the topic of the payload.
func (m *Message) Topic() topics.Topic {
	return m.Payload.Topic()
}

// New returns an empty payload for t.
func New(t topics.Topic) (Payload, error) {
	switch t {
	case topics.Handshake:
		return new(Handshake), nil
	case topics.NewProofOfSpace:
		return new(NewProofOfSpace), nil
	case topics.NewPeak:
		return new(NewPeak), nil
	case topics.NewTransaction:
		return new(NewTransaction), nil
	case topics.RequestTransaction:
		return new(RequestTransaction), nil
	case topics.RespondTransaction:
		return new(RespondTransaction), nil
	case topics.RequestMempoolTransactions:
		return new(RequestMempoolTransactions), nil
	case topics.RequestPeers:
		return new(RequestPeers), nil
	case topics.RespondPeers:
		return new(RespondPeers), nil
	case topics.RequestPuzzleSolution:
		return new(RequestPuzzleSolution), nil
	case topics.RespondPuzzleSolution:
		return new(RespondPuzzleSolution), nil
	case topics.RejectPuzzleSolution:
		return new(RejectPuzzleSolution), nil
	case topics.SendTransaction:
		return new(SendTransaction), nil
	case topics.TransactionAck:
		return new(TransactionAck), nil
	case topics.NewPeakWallet:
		return new(NewPeakWallet), nil
	case topics.RequestBlockHeader:
		return new(RequestBlockHeader), nil
	case topics.RejectHeaderRequest:
		return new(RejectHeaderRequest), nil
	case topics.RequestRemovals:
		return new(RequestRemovals), nil
	case topics.RespondRemovals:
		return new(RespondRemovals), nil
	case topics.RejectRemovalsRequest:
		return new(RejectRemovalsRequest), nil
	case topics.RequestAdditions:
		return new(RequestAdditions), nil
	case topics.RespondAdditions:
		return new(RespondAdditions), nil
	case topics.RejectAdditionsRequest:
		return new(RejectAdditionsRequest), nil
	case topics.RequestHeaderBlocks:
		return new(RequestHeaderBlocks), nil
	case topics.RejectHeaderBlocks:
		return new(RejectHeaderBlocks), nil
	case topics.RequestPeersIntroducer:
		return new(RequestPeersIntroducer), nil
	case topics.RespondPeersIntroducer:
		return new(RespondPeersIntroducer), nil
	case topics.CoinStateUpdate:
		return new(CoinStateUpdate), nil
	case topics.RegisterInterestInPuzzleHash:
		return new(RegisterForPhUpdates), nil
	case topics.RespondToPhUpdate:
		return new(RespondToPhUpdates), nil
	case topics.RegisterInterestInCoin:
		return new(RegisterForCoinUpdates), nil
	case topics.RespondToCoinUpdate:
		return new(RespondToCoinUpdates), nil
	case topics.RequestChildren:
		return new(RequestChildren), nil
	case topics.RespondChildren:
		return new(RespondChildren), nil
	}

	return nil, errors.Wrapf(ErrUnknownMessageType, "tag %d", uint8(t))
}

// Unmarshal decodes the payload of env. For an unknown tag it returns an
// Unknown payload along with ErrUnknownMessageType. Bytes past the end of
// the schema are counted in Message.Trailing rather than rejected.
func Unmarshal(env *protocol.Envelope, maxLength uint32) (*Message, error) {
	m := &Message{ID: env.ID}

	p, err := New(env.Topic)
	if err != nil {
		m.Payload = &Unknown{Tag: env.Topic, Raw: env.Payload}
		return m, err
	}

	n, err := streamable.Decode(env.Payload, p, maxLength)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %s", env.Topic)
	}

	m.Payload = p
	m.Trailing = len(env.Payload) - n
	return m, nil
}

// Marshal encodes p into an envelope carrying id.
func Marshal(p Payload, id *uint16) (*protocol.Envelope, error) {
	if u, ok := p.(*Unknown); ok {
		return &protocol.Envelope{Topic: u.Tag, ID: id, Payload: u.Raw}, nil
	}

	b, err := streamable.Encode(p)
	if err != nil {
		return nil, errors.Wrapf(err, "encoding %s", p.Topic())
	}

	return &protocol.Envelope{Topic: p.Topic(), ID: id, Payload: b}, nil
}

func checkConsistency() {
	for _, t := range topics.Topics {
		p, err := New(t.Topic)
		if err != nil {
			panic(fmt.Errorf("no payload for topic %s", t.Topic))
		}

		if p.Topic() != t.Topic {
			panic(fmt.Errorf("payload for topic %s reports topic %s", t.Topic, p.Topic()))
		}

		if err := streamable.Validate(p); err != nil {
			panic(err)
		}
	}
}

func init() {
	checkConsistency()
}
