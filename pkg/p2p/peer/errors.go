// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package peer

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrOutOfOrderMessage is returned for a message that is not allowed
	// in the current session state, such as a transaction before the
	// handshake or a second handshake.
	ErrOutOfOrderMessage = errors.New("out of order message")

	// ErrHandshakeRejected is matched by every HandshakeRejectedError.
	ErrHandshakeRejected = errors.New("handshake rejected")

	// ErrSessionClosed is returned by any operation on a closed or rejected
	// session.
	ErrSessionClosed = errors.New("session closed")

	// ErrRateLimited is returned when a message exceeds the session's rate.
	ErrRateLimited = errors.New("rate limited")
)

// RejectReason tells why a handshake was refused.
type RejectReason uint8

// Reject reasons.
const (
	ReasonNetworkMismatch RejectReason = iota + 1
	ReasonIncompatibleVersion
	ReasonInvalidHandshake
)

func (r RejectReason) String() string {
	switch r {
	case ReasonNetworkMismatch:
		return "network mismatch"
	case ReasonIncompatibleVersion:
		return "incompatible version"
	case ReasonInvalidHandshake:
		return "invalid handshake"
	}
	return fmt.Sprintf("reason(%d)", uint8(r))
}

// HandshakeRejectedError is returned when the remote handshake cannot be
// accepted. The connection must be closed.
type HandshakeRejectedError struct {
	Reason RejectReason
	Err    error
}

func (e *HandshakeRejectedError) Error() string {
	if e.Err == nil {
		return "handshake rejected: " + e.Reason.String()
	}
	return fmt.Sprintf("handshake rejected: %s: %v", e.Reason, e.Err)
}

// Is makes errors.Is(err, ErrHandshakeRejected) hold.
func (e *HandshakeRejectedError) Is(target error) bool {
	return target == ErrHandshakeRejected
}

func (e *HandshakeRejectedError) Unwrap() error {
	return e.Err
}
