// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package config

import "time"

type generalConfiguration struct {
	// Network is the network id every handshake must carry, e.g. mainnet.
	Network string
}

type loggerConfiguration struct {
	Level  string
	Output string
	// Format is either text or json.
	Format string
}

// pkg/p2p package configs.
type networkConfiguration struct {
	Port uint16

	// MaxPayloadSize bounds the payload length of a single frame.
	MaxPayloadSize uint32
	// MaxFieldLength bounds any declared byte length or list count inside
	// a payload.
	MaxFieldLength uint32

	HandshakeTimeout time.Duration
	KeepAlive        time.Duration

	DupeMap    dupeMapConfiguration
	RateLimits rateLimitConfiguration
}

// pkg/p2p/peer/dupemap configs.
type dupeMapConfiguration struct {
	Capacity   uint32
	ExpireSecs uint32
}

// Per session message rates. Transactions are limited apart from every
// other topic.
type rateLimitConfiguration struct {
	TxPerSecond    float64
	TxBurst        int
	OtherPerSecond float64
	OtherBurst     int
}

// pkg/crypto/bls configs.
type blsConfiguration struct {
	CacheSize int
}
