// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package peer

import (
	"sync"

	"github.com/gold-network/gold-blockchain/pkg/config"
	"github.com/gold-network/gold-blockchain/pkg/crypto/hash"
	"github.com/gold-network/gold-blockchain/pkg/p2p/peer/dupemap"
	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/message"
	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/protocol"
	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/topics"
	"github.com/pkg/errors"
)

// ProcessorFunc defines an interface for callbacks which can be registered
// to the MessageProcessor, in order to process messages from the network.
// The returned payloads are sent back to the peer as responses.
type ProcessorFunc func(srcPeerID string, m *message.Message) ([]message.Payload, error)

// MessageProcessor is connected to all of the processing units that are tied to the peer.
// It sends an incoming message in the right direction, according to its topic.
// One MessageProcessor can serve many connections.
type MessageProcessor struct {
	lock       sync.RWMutex
	dupeMap    *dupemap.DupeMap
	processors map[topics.Topic]ProcessorFunc
	maxLength  uint32
}

// NewMessageProcessor returns an initialized MessageProcessor. Declared
// lengths inside payloads are bounded by network.maxfieldlength.
func NewMessageProcessor(dupeMap *dupemap.DupeMap) *MessageProcessor {
	return &MessageProcessor{
		dupeMap:    dupeMap,
		processors: make(map[topics.Topic]ProcessorFunc),
		maxLength:  config.Get().Network.MaxFieldLength,
	}
}

// Register a method to a certain topic. This method will be called when a message
// of the given topic is received.
func (m *MessageProcessor) Register(topic topics.Topic, fn ProcessorFunc) {
	m.lock.Lock()
	m.processors[topic] = fn
	m.lock.Unlock()
}

// Collect a message from the network. The payload is decoded and passed down
// to the processing function. Responses carry the id of the request.
//
// Unknown topics and topics without a handler return an error matching
// message.ErrUnknownMessageType. Gossip already seen is skipped without
// error.
func (m *MessageProcessor) Collect(srcPeerID string, env *protocol.Envelope) ([]*protocol.Envelope, error) {
	msg, err := message.Unmarshal(env, m.maxLength)
	if err != nil {
		if errors.Is(err, message.ErrUnknownMessageType) {
			lg.WithField("topic", env.Topic).WithField("peer", srcPeerID).Debugln("received message with unknown topic")
		}
		return nil, err
	}

	if msg.Trailing > 0 {
		lg.WithField("topic", env.Topic).WithField("trailing", msg.Trailing).Traceln("payload carries unknown trailing fields")
	}

	if env.Topic.IsGossip() {
		ok, err := m.filter(msg)
		if err != nil {
			return nil, err
		}

		if !ok {
			lg.WithField("topic", env.Topic).Traceln("duplicate gossip skipped")
			return nil, nil
		}
	}

	m.lock.RLock()
	processFn, ok := m.processors[env.Topic]
	m.lock.RUnlock()

	if !ok {
		lg.WithField("topic", env.Topic).Debugln("no processor registered for topic")
		return nil, errors.Wrapf(message.ErrUnknownMessageType, "no processor for %s", env.Topic)
	}

	payloads, err := processFn(srcPeerID, msg)
	if err != nil {
		return nil, err
	}

	out := make([]*protocol.Envelope, 0, len(payloads))
	for _, p := range payloads {
		resp, err := message.Marshal(p, msg.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}

	return out, nil
}

// filter reports whether msg is seen for the first time. Peak
// announcements also advance the filter's height.
func (m *MessageProcessor) filter(msg *message.Message) (bool, error) {
	switch p := msg.Payload.(type) {
	case *message.NewPeak:
		m.dupeMap.UpdateHeight(p.Height)
	case *message.NewPeakWallet:
		m.dupeMap.UpdateHeight(p.Height)
	}

	key, err := hash.Of(msg.Payload)
	if err != nil {
		return false, err
	}

	return m.dupeMap.CanFwd(key), nil
}
