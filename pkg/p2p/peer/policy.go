// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package peer

import (
	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/encoding"
	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/message"
	"github.com/pkg/errors"
)

// Action is what a connection does after handling one message.
type Action uint8

// Actions, from mildest to harshest.
const (
	// Continue means the message was handled.
	Continue Action = iota
	// Ignore means the message was not understood and is skipped quietly.
	Ignore
	// Drop means the message was discarded. The connection stays up.
	Drop
	// Disconnect means the connection must be closed.
	Disconnect
)

func (a Action) String() string {
	switch a {
	case Continue:
		return "continue"
	case Ignore:
		return "ignore"
	case Drop:
		return "drop"
	}
	return "disconnect"
}

// Classify maps the error of handling one message to an Action. During the
// handshake an undecodable message is fatal, afterwards it only costs the
// message. Errors not produced by the codec or the session, such as I/O
// errors, disconnect.
func Classify(err error, state State) Action {
	switch {
	case err == nil:
		return Continue
	case errors.Is(err, message.ErrUnknownMessageType):
		return Ignore
	case errors.Is(err, ErrRateLimited):
		return Drop
	case errors.Is(err, ErrOutOfOrderMessage),
		errors.Is(err, ErrHandshakeRejected),
		errors.Is(err, ErrSessionClosed),
		errors.Is(err, encoding.ErrLengthOverflow):
		return Disconnect
	case errors.Is(err, encoding.ErrTruncatedInput):
		return Drop
	case errors.Is(err, encoding.ErrInvalidEncoding):
		if state != Established {
			return Disconnect
		}
		return Drop
	}

	return Disconnect
}
