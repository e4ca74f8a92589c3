// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package peer

import (
	"context"
	"net"
	"os"
	"testing"
	"time"

	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/encoding"
	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/message"
	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/protocol"
	"github.com/gold-network/gold-blockchain/pkg/p2p/wire/topics"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConnection(conn net.Conn, h message.Handshake) *Connection {
	return NewConnection(conn, NewSession(h), newProcessor(), NewRateLimiterFromConfig())
}

func handshakeBoth(t *testing.T, a, b *Connection) (error, error) {
	errChan := make(chan error, 1)
	go func() {
		errChan <- b.Handshake(context.Background())
	}()

	errA := a.Handshake(context.Background())
	select {
	case errB := <-errChan:
		return errA, errB
	case <-time.After(5 * time.Second):
		t.Fatal("handshake did not finish")
	}
	return nil, nil
}

func TestHandshake(t *testing.T) {
	client, srv := net.Pipe()
	a := newConnection(client, LocalHandshake(protocol.Wallet))
	b := newConnection(srv, LocalHandshake(protocol.FullNode))
	defer func() {
		_ = a.Close()
		_ = b.Close()
	}()

	errA, errB := handshakeBoth(t, a, b)
	require.NoError(t, errA)
	require.NoError(t, errB)

	assert.Equal(t, Established, a.Session().State())
	assert.Equal(t, Established, b.Session().State())
	assert.Equal(t, protocol.FullNode, a.Session().Remote().NodeType)
	assert.Equal(t, protocol.Wallet, b.Session().Remote().NodeType)
}

func TestHandshakeNetworkMismatch(t *testing.T) {
	client, srv := net.Pipe()
	defer func() {
		_ = srv.Close()
	}()

	a := newConnection(client, LocalHandshake(protocol.FullNode))

	other := LocalHandshake(protocol.FullNode)
	other.NetworkID = string(protocol.MainNet)

	go func() {
		env, _ := message.Marshal(&other, nil)
		_ = protocol.WriteFrame(srv, env)
		_, _ = protocol.ReadFrame(srv, 0)
	}()

	err := a.Handshake(context.Background())

	var rejected *HandshakeRejectedError
	require.True(t, errors.As(err, &rejected))
	assert.Equal(t, ReasonNetworkMismatch, rejected.Reason)
	assert.Equal(t, Closed, a.Session().State())
}

func TestHandshakeTimeout(t *testing.T) {
	client, srv := net.Pipe()
	defer func() {
		_ = srv.Close()
	}()

	a := newConnection(client, LocalHandshake(protocol.FullNode))
	a.handshakeTimeout = 50 * time.Millisecond

	err := a.Handshake(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrDeadlineExceeded))
	assert.Contains(t, err.Error(), context.DeadlineExceeded.Error())
	assert.Equal(t, Closed, a.Session().State())
}

func TestInterruptedKeepsCause(t *testing.T) {
	rejected := &HandshakeRejectedError{Reason: ReasonNetworkMismatch}

	assert.Equal(t, error(rejected), interrupted(context.Background(), rejected))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := interrupted(ctx, rejected)
	assert.True(t, errors.Is(err, ErrHandshakeRejected))

	var re *HandshakeRejectedError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, ReasonNetworkMismatch, re.Reason)
	assert.Contains(t, err.Error(), context.Canceled.Error())
}

func TestMessageBeforeHandshake(t *testing.T) {
	client, srv := net.Pipe()
	defer func() {
		_ = srv.Close()
	}()

	a := newConnection(client, LocalHandshake(protocol.FullNode))

	go func() {
		env, _ := message.Marshal(&message.NewTransaction{}, nil)
		_ = protocol.WriteFrame(srv, env)
	}()

	err := a.Handshake(context.Background())
	assert.True(t, errors.Is(err, ErrOutOfOrderMessage))
	assert.Equal(t, Closed, a.Session().State())
}

func TestReadLoop(t *testing.T) {
	client, srv := net.Pipe()
	a := newConnection(client, LocalHandshake(protocol.FullNode))
	b := newConnection(srv, LocalHandshake(protocol.Wallet))
	defer func() {
		_ = b.Close()
	}()

	errA, errB := handshakeBoth(t, a, b)
	require.NoError(t, errA)
	require.NoError(t, errB)

	a.processor.Register(topics.RequestPuzzleSolution, func(_ string, m *message.Message) ([]message.Payload, error) {
		req := m.Payload.(*message.RequestPuzzleSolution)
		return []message.Payload{&message.RejectPuzzleSolution{CoinName: req.CoinName, Height: req.Height}}, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	loopErr := make(chan error, 1)
	go func() {
		loopErr <- a.ReadLoop(ctx)
	}()

	// Unknown tags are skipped and the loop keeps going.
	require.NoError(t, protocol.WriteFrame(srv, &protocol.Envelope{Topic: topics.Topic(222), Payload: []byte{9}}))

	id := uint16(3)
	require.NoError(t, b.Write(&message.RequestPuzzleSolution{CoinName: encoding.Bytes32{1}, Height: 9}, &id))

	env, err := protocol.ReadFrame(srv, 0)
	require.NoError(t, err)
	assert.Equal(t, topics.RejectPuzzleSolution, env.Topic)
	require.NotNil(t, env.ID)
	assert.Equal(t, id, *env.ID)

	m, err := message.Unmarshal(env, 0)
	require.NoError(t, err)
	assert.Equal(t, uint32(9), m.Payload.(*message.RejectPuzzleSolution).Height)

	cancel()
	select {
	case err := <-loopErr:
		assert.True(t, errors.Is(err, context.Canceled))
	case <-time.After(5 * time.Second):
		t.Fatal("read loop did not stop")
	}
	assert.Equal(t, Closed, a.Session().State())
}

func TestReadLoopSecondHandshake(t *testing.T) {
	client, srv := net.Pipe()
	a := newConnection(client, LocalHandshake(protocol.FullNode))
	b := newConnection(srv, LocalHandshake(protocol.FullNode))
	defer func() {
		_ = b.Close()
	}()

	errA, errB := handshakeBoth(t, a, b)
	require.NoError(t, errA)
	require.NoError(t, errB)

	loopErr := make(chan error, 1)
	go func() {
		loopErr <- a.ReadLoop(context.Background())
	}()

	h := LocalHandshake(protocol.FullNode)
	require.NoError(t, b.Write(&h, nil))

	select {
	case err := <-loopErr:
		assert.True(t, errors.Is(err, ErrOutOfOrderMessage))
	case <-time.After(5 * time.Second):
		t.Fatal("read loop did not stop")
	}
}
