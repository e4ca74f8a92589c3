// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	cfg "github.com/gold-network/gold-blockchain/pkg/config"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetToLevel(t *testing.T) {
	defer log.SetLevel(log.InfoLevel)

	SetToLevel("debug")
	assert.Equal(t, log.DebugLevel, log.GetLevel())

	SetToLevel("nonsense")
	assert.Equal(t, log.TraceLevel, log.GetLevel())
}

func TestInitLogJSON(t *testing.T) {
	defer cfg.Reset()
	defer log.SetOutput(os.Stderr)
	defer SetFormat("text")
	defer log.SetLevel(log.InfoLevel)

	r := cfg.Get()
	r.Logger.Level = "warn"
	r.Logger.Format = "json"
	cfg.Mock(&r)

	var buf bytes.Buffer
	InitLog(&buf)

	log.WithField("process", "test").Info("hidden")
	assert.Zero(t, buf.Len())

	log.WithField("process", "test").Warn("shown")
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "test", entry["process"])
}

func TestOpenOutput(t *testing.T) {
	f, err := OpenOutput("stdout")
	require.NoError(t, err)
	assert.Equal(t, os.Stdout, f)

	path := filepath.Join(t.TempDir(), "node")
	f, err = OpenOutput(path)
	require.NoError(t, err)
	defer f.Close()

	_, err = os.Stat(path + ".log")
	assert.NoError(t, err)
}
