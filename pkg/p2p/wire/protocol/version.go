// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package protocol

import (
	"github.com/Masterminds/semver"
	"github.com/pkg/errors"
)

const (
	// ProtocolVersion is the wire protocol version this node speaks.
	ProtocolVersion = "0.0.36"

	// MinProtocolVersion is the oldest protocol version a peer may
	// advertise.
	MinProtocolVersion = "0.0.33"

	// SoftwareVersion is the version of this node software.
	SoftwareVersion = "1.0.0"
)

var (
	// ErrUnparsableVersion is returned for a version that is not semver.
	ErrUnparsableVersion = errors.New("unparsable protocol version")

	// ErrVersionTooOld is returned for a version below the minimum.
	ErrVersionTooOld = errors.New("protocol version below minimum")
)

// VersionConstraint is satisfied by every protocol version this node can
// talk to.
var VersionConstraint *semver.Constraints

func init() {
	var err error
	VersionConstraint, err = semver.NewConstraint(">= " + MinProtocolVersion)
	if err != nil {
		panic(err)
	}

	// Our own version must pass our own check.
	if err := CheckVersion(ProtocolVersion); err != nil {
		panic(err)
	}
}

// CheckVersion parses v and checks it against VersionConstraint.
func CheckVersion(v string) error {
	version, err := semver.NewVersion(v)
	if err != nil {
		return errors.Wrapf(ErrUnparsableVersion, "%q: %v", v, err)
	}

	if !VersionConstraint.Check(version) {
		return errors.Wrapf(ErrVersionTooOld, "%s, expected >= %s", version, MinProtocolVersion)
	}

	return nil
}
