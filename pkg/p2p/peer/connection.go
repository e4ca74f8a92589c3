// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package peer

import (
	"context"
	"net"
	"sync"
	"time"

	"github.com/gold-network/gold-blockchain/pkg/config"
	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/message"
	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/protocol"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var lg = log.WithField("process", "peer")

// Connection runs the protocol over an established net.Conn: first the
// handshake, then a read loop that admits, rate limits and dispatches
// every message. Writes are guarded by a mutex, since responses and
// outgoing gossip may be written from different goroutines.
type Connection struct {
	lock sync.Mutex
	net.Conn

	session   *Session
	processor *MessageProcessor
	limiter   *RateLimiter

	maxPayload       uint32
	handshakeTimeout time.Duration
	idleTimeout      time.Duration
}

// NewConnection wraps conn. Timeouts and limits are read from the network
// configuration.
func NewConnection(conn net.Conn, session *Session, processor *MessageProcessor, limiter *RateLimiter) *Connection {
	c := config.Get().Network
	return &Connection{
		Conn:             conn,
		session:          session,
		processor:        processor,
		limiter:          limiter,
		maxPayload:       c.MaxPayloadSize,
		handshakeTimeout: c.HandshakeTimeout,
		idleTimeout:      c.KeepAlive,
	}
}

// Session returns the session of the connection.
func (c *Connection) Session() *Session {
	return c.session
}

// Addr returns the peer's address as a string.
func (c *Connection) Addr() string {
	return c.Conn.RemoteAddr().String()
}

// Handshake sends the local handshake and waits for the remote one. Both
// directions run at once, so it works the same on either side of the
// connection. On failure the connection is closed.
func (c *Connection) Handshake(ctx context.Context) error {
	if c.handshakeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.handshakeTimeout)
		defer cancel()
	}

	stop := c.interruptOn(ctx)
	defer stop()

	if err := c.handshake(); err != nil {
		err = interrupted(ctx, err)
		lg.WithError(err).WithField("addr", c.Addr()).Infoln("handshake failed")
		_ = c.Close()
		return err
	}

	lg.WithField("addr", c.Addr()).
		WithField("capabilities", c.session.Capabilities()).
		Debugln("handshake completed")
	return nil
}

// interrupted annotates err with the reason ctx ended, if it did.
func interrupted(ctx context.Context, err error) error {
	if ctx.Err() == nil {
		return err
	}
	return errors.Wrapf(err, "handshake interrupted (%v)", ctx.Err())
}

func (c *Connection) handshake() error {
	local, err := c.session.Start()
	if err != nil {
		return err
	}

	writeErr := make(chan error, 1)
	go func() {
		writeErr <- c.Write(local, nil)
	}()

	env, err := protocol.ReadFrame(c.Conn, c.maxPayload)
	if err != nil {
		return err
	}

	if err := c.session.Admit(env.Topic); err != nil {
		return err
	}

	m, err := message.Unmarshal(env, c.processor.maxLength)
	if err != nil {
		return err
	}

	h, ok := m.Payload.(*message.Handshake)
	if !ok {
		return errors.Wrapf(ErrOutOfOrderMessage, "expected handshake, got %s", env.Topic)
	}

	if err := c.session.ReceiveHandshake(h); err != nil {
		return err
	}

	return <-writeErr
}

// ReadLoop will block on the read until a message is read, or until the
// idle deadline is reached. It returns when the connection must be closed,
// and closes it.
func (c *Connection) ReadLoop(ctx context.Context) error {
	defer func() {
		_ = c.Close()
	}()

	stop := c.interruptOn(ctx)
	defer stop()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if c.idleTimeout > 0 {
			_ = c.Conn.SetReadDeadline(time.Now().Add(c.idleTimeout))
		}

		env, err := protocol.ReadFrame(c.Conn, c.maxPayload)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}

			lg.WithError(err).WithField("addr", c.Addr()).Warnln("error reading message")
			return err
		}

		responses, err := c.handle(env)

		switch Classify(err, c.session.State()) {
		case Ignore:
			continue
		case Drop:
			lg.WithError(err).WithField("topic", env.Topic).Warnln("message dropped")
			continue
		case Disconnect:
			lg.WithError(err).WithField("addr", c.Addr()).Infoln("disconnecting peer")
			return err
		}

		for _, resp := range responses {
			if err := c.writeEnvelope(resp); err != nil {
				lg.WithError(err).WithField("addr", c.Addr()).Warnln("error writing response")
				return err
			}
		}
	}
}

func (c *Connection) handle(env *protocol.Envelope) ([]*protocol.Envelope, error) {
	if err := c.session.Admit(env.Topic); err != nil {
		return nil, err
	}

	if c.limiter != nil && !c.limiter.Allow(env.Topic) {
		return nil, errors.Wrapf(ErrRateLimited, "%s", env.Topic)
	}

	return c.processor.Collect(c.Addr(), env)
}

// Write a payload to the connection. A non nil id marks a request, or the
// response to one.
func (c *Connection) Write(p message.Payload, id *uint16) error {
	env, err := message.Marshal(p, id)
	if err != nil {
		return err
	}

	return c.writeEnvelope(env)
}

func (c *Connection) writeEnvelope(env *protocol.Envelope) error {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.idleTimeout > 0 {
		_ = c.Conn.SetWriteDeadline(time.Now().Add(c.idleTimeout))
	}
	return protocol.WriteFrame(c.Conn, env)
}

// Close closes the session and the underlying connection.
func (c *Connection) Close() error {
	c.session.Close()
	return c.Conn.Close()
}

// interruptOn unblocks pending reads and writes once ctx is done. The
// returned function stops the watch and clears the deadline.
func (c *Connection) interruptOn(ctx context.Context) func() {
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()
		select {
		case <-ctx.Done():
			_ = c.Conn.SetDeadline(time.Now())
		case <-done:
		}
	}()

	return func() {
		close(done)
		wg.Wait()
		if ctx.Err() == nil {
			_ = c.Conn.SetDeadline(time.Time{})
		}
	}
}
