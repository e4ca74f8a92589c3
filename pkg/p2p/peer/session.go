// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package peer

import (
	"fmt"
	"sync"

	"github.com/gold-network/gold-blockchain/pkg/config"
	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/message"
	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/protocol"
	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/topics"
	"github.com/pkg/errors"
)

// State of a session.
type State uint8

// Session states. Rejected and Closed are final.
const (
	Idle State = iota
	HandshakeSent
	HandshakeReceived
	Established
	Rejected
	Closed
)

var stateNames = [...]string{
	Idle:              "idle",
	HandshakeSent:     "handshake_sent",
	HandshakeReceived: "handshake_received",
	Established:       "established",
	Rejected:          "rejected",
	Closed:            "closed",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// Final reports whether no transition leaves s.
func (s State) Final() bool {
	return s == Rejected || s == Closed
}

// Session tracks the handshake with one peer and the capabilities agreed
// on. A session belongs to one connection; the lock only makes it safe to
// observe from other goroutines.
type Session struct {
	lock sync.RWMutex

	state  State
	local  message.Handshake
	remote *message.Handshake
	caps   []protocol.Capability
}

// NewSession returns an Idle session that will advertise local.
func NewSession(local message.Handshake) *Session {
	local.Capabilities = append([]protocol.Capability(nil), local.Capabilities...)
	return &Session{local: local}
}

// LocalHandshake builds the handshake this node sends, from the
// configuration and the protocol constants.
func LocalHandshake(nodeType protocol.NodeType) message.Handshake {
	return message.Handshake{
		NetworkID:       string(protocol.NetworkFromConfig()),
		ProtocolVersion: protocol.ProtocolVersion,
		SoftwareVersion: protocol.SoftwareVersion,
		ServerPort:      config.Get().Network.Port,
		NodeType:        nodeType,
		Capabilities:    protocol.DefaultCapabilities(),
	}
}

// Start returns the local handshake to send. It moves Idle to
// HandshakeSent, and HandshakeReceived to Established.
func (s *Session) Start() (*message.Handshake, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	switch s.state {
	case Idle:
		s.state = HandshakeSent
	case HandshakeReceived:
		s.state = Established
	case Rejected, Closed:
		return nil, ErrSessionClosed
	default:
		return nil, errors.Errorf("handshake already sent in state %s", s.state)
	}

	h := s.local
	h.Capabilities = append([]protocol.Capability(nil), s.local.Capabilities...)
	return &h, nil
}

// ReceiveHandshake checks the remote handshake. A network mismatch or an
// incompatible protocol version rejects the session with a
// HandshakeRejectedError. Otherwise the capability intersection is
// recorded and the session moves on, to Established if the local
// handshake was already sent.
func (s *Session) ReceiveHandshake(h *message.Handshake) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	switch s.state {
	case Idle, HandshakeSent:
	case Rejected, Closed:
		return ErrSessionClosed
	default:
		prev := s.state
		s.state = Closed
		return errors.Wrapf(ErrOutOfOrderMessage, "handshake in state %s", prev)
	}

	if h.NetworkID != s.local.NetworkID {
		s.state = Rejected
		return &HandshakeRejectedError{
			Reason: ReasonNetworkMismatch,
			Err:    errors.Errorf("remote network %q, local %q", h.NetworkID, s.local.NetworkID),
		}
	}

	if err := protocol.CheckVersion(h.ProtocolVersion); err != nil {
		s.state = Rejected
		return &HandshakeRejectedError{Reason: ReasonIncompatibleVersion, Err: err}
	}

	remote := *h
	remote.Capabilities = append([]protocol.Capability(nil), h.Capabilities...)
	s.remote = &remote
	s.caps = protocol.Negotiate(s.local.Capabilities, h.Capabilities)

	if s.state == HandshakeSent {
		s.state = Established
	} else {
		s.state = HandshakeReceived
	}
	return nil
}

// Admit checks that a message of topic t may be processed now. Anything
// but a handshake before Established, or a handshake after it, closes the
// session with ErrOutOfOrderMessage.
func (s *Session) Admit(t topics.Topic) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	switch s.state {
	case Rejected, Closed:
		return ErrSessionClosed
	case Established:
		if t != topics.Handshake {
			return nil
		}
	case Idle, HandshakeSent:
		if t == topics.Handshake {
			return nil
		}
	}

	prev := s.state
	s.state = Closed
	return errors.Wrapf(ErrOutOfOrderMessage, "%s in state %s", t, prev)
}

// Close moves the session to Closed. It is safe to call more than once.
func (s *Session) Close() {
	s.lock.Lock()
	s.state = Closed
	s.lock.Unlock()
}

// State returns the current state.
func (s *Session) State() State {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.state
}

// Capabilities returns the negotiated capabilities, sorted by id. It is
// empty until the remote handshake was accepted.
func (s *Session) Capabilities() []protocol.Capability {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return append([]protocol.Capability(nil), s.caps...)
}

// Has reports whether the negotiated capabilities enable id.
func (s *Session) Has(id uint16) bool {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return protocol.Has(s.caps, id)
}

// Remote returns the accepted remote handshake, or nil.
func (s *Session) Remote() *message.Handshake {
	s.lock.RLock()
	defer s.lock.RUnlock()

	if s.remote == nil {
		return nil
	}

	h := *s.remote
	return &h
}
