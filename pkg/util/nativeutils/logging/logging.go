// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package logging

import (
	"io"
	"os"

	cfg "github.com/gold-network/gold-blockchain/pkg/config"
	log "github.com/sirupsen/logrus"
)

// InitLog applies the configured level and format and sends the standard
// logger to w.
func InitLog(w io.Writer) {
	// apply logger level from configurations
	SetToLevel(cfg.Get().Logger.Level)
	SetFormat(cfg.Get().Logger.Format)
	log.SetOutput(w)
}

// SetToLevel parses l and applies it. An unparsable level falls back to
// trace so that nothing is lost.
func SetToLevel(l string) {
	level, err := log.ParseLevel(l)
	if err == nil {
		log.SetLevel(level)
	} else {
		log.SetLevel(log.TraceLevel)
		log.Warnf("Parse logger level from config err: %v", err)
	}
}

// SetFormat selects the JSON formatter for "json" and the text formatter
// otherwise.
func SetFormat(f string) {
	if f == "json" {
		log.SetFormatter(&log.JSONFormatter{})
		return
	}

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
}

// OpenOutput returns stdout for "stdout" and a freshly created <output>.log
// file otherwise. The caller closes files it did not get from os.
func OpenOutput(output string) (*os.File, error) {
	if output == "" || output == "stdout" {
		return os.Stdout, nil
	}

	return os.Create(output + ".log")
}
