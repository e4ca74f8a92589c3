// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package protocol

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/encoding"
	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/streamable"
	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/topics"
	"github.com/pkg/errors"
)

// Envelope is the outer record of every message:
//
//	[u8 tag][optional<u16> id][u32 payload length][payload]
//
// The id is set on requests that expect a response, and the response
// carries it back.
type Envelope struct {
	Topic   topics.Topic
	ID      *uint16
	Payload []byte
}

// TopicCodec writes a topic as its one byte tag.
var TopicCodec = encoding.Codec[topics.Topic]{
	Write: func(w *bytes.Buffer, t topics.Topic) error {
		return encoding.WriteUint8(w, uint8(t))
	},
	Read: func(r *encoding.Reader, t *topics.Topic) error {
		return encoding.ReadUint8(r, (*uint8)(t))
	},
}

// Fields implements streamable.Streamable.
func (e *Envelope) Fields() []streamable.Field {
	return []streamable.Field{
		streamable.NewField("type", &e.Topic, TopicCodec),
		streamable.NewField("id", &e.ID, encoding.Optional(encoding.U16)),
		streamable.NewField("data", &e.Payload, encoding.Bytes),
	}
}

// WriteFrame writes the envelope to w in one call.
func WriteFrame(w io.Writer, e *Envelope) error {
	b, err := streamable.Encode(e)
	if err != nil {
		return err
	}

	_, err = w.Write(b)
	return err
}

// ReadFrame reads one envelope from r. The declared payload length is
// checked against maxPayload before the payload is allocated. A maxPayload
// of zero selects encoding.DefaultMaxLength.
func ReadFrame(r io.Reader, maxPayload uint32) (*Envelope, error) {
	if maxPayload == 0 {
		maxPayload = encoding.DefaultMaxLength
	}

	var head [2]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return nil, err
	}

	e := &Envelope{Topic: topics.Topic(head[0])}

	switch head[1] {
	case 0:
	case 1:
		var id [2]byte
		if _, err := io.ReadFull(r, id[:]); err != nil {
			return nil, err
		}

		v := binary.BigEndian.Uint16(id[:])
		e.ID = &v
	default:
		return nil, errors.Wrapf(encoding.ErrInvalidEncoding, "message id flag 0x%02x", head[1])
	}

	var size [4]byte
	if _, err := io.ReadFull(r, size[:]); err != nil {
		return nil, err
	}

	ln := binary.BigEndian.Uint32(size[:])
	if ln > maxPayload {
		return nil, errors.Wrapf(encoding.ErrLengthOverflow, "payload of %d bytes exceeds maximum %d", ln, maxPayload)
	}

	e.Payload = make([]byte, ln)
	if _, err := io.ReadFull(r, e.Payload); err != nil {
		return nil, err
	}

	return e, nil
}

// DecodeEnvelope decodes an envelope that is already in memory. Trailing
// bytes after the payload are rejected.
func DecodeEnvelope(b []byte, maxPayload uint32) (*Envelope, error) {
	e := new(Envelope)
	if err := streamable.DecodeExact(b, e, maxPayload); err != nil {
		return nil, err
	}
	return e, nil
}
