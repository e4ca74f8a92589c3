// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config package should avoid importing any gold packages in order to
// prevent any cyclic-dependancy issues

const (
	// current working dir
	searchPath1 = "."
	// home datadir
	searchPath2 = "$HOME/.gold/"

	// name for the config file. Does not include extension.
	configFileName = "gold"

	// MaxPayloadSize is the default bound of a frame payload and of any
	// declared length inside it.
	MaxPayloadSize = uint32(50 * 1024 * 1024)
)

var (
	r *Registry
)

// Registry stores all loaded configurations according to the config order
// NB It should be cheap to be copied by value
type Registry struct {
	UsedConfigFile string

	// All configuration groups
	General generalConfiguration
	Logger  loggerConfiguration
	Network networkConfiguration
	BLS     blsConfiguration
}

// Load makes an attempt to read and unmarshal any configs from flag, env and
// gold config file.
//
// It  uses the following precedence order. Each item takes precedence over the item below it:
//   - flag
//   - env
//   - config
//   - default
//
// Gold configuration file can be in form of TOML, JSON, YAML, HCL or Java
// properties config files
func Load() error {
	v := viper.New()

	// Initialize and parse flags
	confFile, err := loadFlags(v)
	if err != nil {
		return err
	}

	return load(v, confFile)
}

// LoadFile reads the configuration from path, then env, then defaults. It
// does not touch command line flags.
func LoadFile(path string) error {
	return load(viper.New(), path)
}

func load(v *viper.Viper, confFile string) error {
	reg := new(Registry)

	setDefaults(v)

	// Make an attempt to find gold.toml/gold.json/gold.yaml in any of the
	// provided paths below
	v.SetConfigName(configFileName)
	v.AddConfigPath(searchPath1)
	v.AddConfigPath(searchPath2)

	// confPath is overwritten by the one from command line
	if len(confFile) > 0 {
		v.SetConfigFile(confFile)
	}

	if err := v.ReadInConfig(); err != nil {
		// Running on defaults is fine unless a file was asked for.
		var notFound viper.ConfigFileNotFoundError
		if len(confFile) > 0 || !errors.As(err, &notFound) {
			return errors.Wrap(err, "error reading config file")
		}
	}

	defineENV(v)

	// Unmarshal all configurations from all conf levels to the registry struct
	if err := v.Unmarshal(reg); err != nil {
		return errors.Wrap(err, "unable to decode into struct")
	}

	reg.UsedConfigFile = v.ConfigFileUsed()
	r = reg
	return nil
}

func loadFlags(v *viper.Viper) (string, error) {
	pflag.CommandLine.Init("Gold node", pflag.ExitOnError)

	pflag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "Usage of %s:\n", "Gold node")
		pflag.PrintDefaults()
	}

	// Define all supported flags.
	defineFlags(pflag.CommandLine)
	configFile := pflag.String("config", "", "Set path to the config file")

	// Bind all command line parameters to their corresponding file configs
	//
	// e.g CLI argument `--logger.level="warn"`` will overwrite the value from
	// `[logger] level = "info"`` in the loaded config file
	if err := v.BindPFlags(pflag.CommandLine); err != nil {
		return "", errors.Wrap(err, "unable bind pflags")
	}

	pflag.Parse()

	return *configFile, nil
}

// define a set of flags as bindings to config file settings
// The settings that are needed to be passed frequently by CLI should be added here
func defineFlags(fs *pflag.FlagSet) {
	_ = fs.StringP("logger.level", "l", "info", "override logger.level settings in config file")
	_ = fs.StringP("general.network", "n", "testnet", "override general.network settings in config file")
	_ = fs.Uint16P("network.port", "p", 8444, "port the node advertises in its handshake")
	_ = fs.StringP("logger.output", "o", "stdout", "specifies the log output")
}

// define a set of environment variables as bindings to config file settings
func defineENV(v *viper.Viper) {
	// Bind config key general.network to ENV var GOLD_GENERAL_NETWORK
	if err := v.BindEnv("general.network", "GOLD_GENERAL_NETWORK"); err != nil {
		fmt.Printf("defineENV %v", err)
	}

	if err := v.BindEnv("logger.level", "GOLD_LOGGER_LEVEL"); err != nil {
		fmt.Printf("defineENV %v", err)
	}
}

func setDefaults(v *viper.Viper) {
	d := defaults()
	v.SetDefault("general.network", d.General.Network)
	v.SetDefault("logger.level", d.Logger.Level)
	v.SetDefault("logger.output", d.Logger.Output)
	v.SetDefault("logger.format", d.Logger.Format)
	v.SetDefault("network.port", d.Network.Port)
	v.SetDefault("network.maxpayloadsize", d.Network.MaxPayloadSize)
	v.SetDefault("network.maxfieldlength", d.Network.MaxFieldLength)
	v.SetDefault("network.handshaketimeout", d.Network.HandshakeTimeout)
	v.SetDefault("network.keepalive", d.Network.KeepAlive)
	v.SetDefault("network.dupemap.capacity", d.Network.DupeMap.Capacity)
	v.SetDefault("network.dupemap.expiresecs", d.Network.DupeMap.ExpireSecs)
	v.SetDefault("network.ratelimits.txpersecond", d.Network.RateLimits.TxPerSecond)
	v.SetDefault("network.ratelimits.txburst", d.Network.RateLimits.TxBurst)
	v.SetDefault("network.ratelimits.otherpersecond", d.Network.RateLimits.OtherPerSecond)
	v.SetDefault("network.ratelimits.otherburst", d.Network.RateLimits.OtherBurst)
	v.SetDefault("bls.cachesize", d.BLS.CacheSize)
}

func defaults() *Registry {
	d := new(Registry)
	d.General.Network = "testnet"
	d.Logger.Level = "info"
	d.Logger.Output = "stdout"
	d.Logger.Format = "text"
	d.Network.Port = 8444
	d.Network.MaxPayloadSize = MaxPayloadSize
	d.Network.MaxFieldLength = MaxPayloadSize
	d.Network.HandshakeTimeout = 10 * time.Second
	d.Network.KeepAlive = 30 * time.Second
	d.Network.DupeMap.Capacity = 300000
	d.Network.DupeMap.ExpireSecs = 300
	d.Network.RateLimits.TxPerSecond = 100
	d.Network.RateLimits.TxBurst = 200
	d.Network.RateLimits.OtherPerSecond = 200
	d.Network.RateLimits.OtherBurst = 400
	d.BLS.CacheSize = 50000
	return d
}

// Get returns registry by value in order to avoid further modifications after
// initial configuration loading
func Get() Registry {
	return *r
}

// Mock should be used only in test packages. It could be useful when a unit
// test needs to be rerun with configs different from the default ones.
func Mock(m *Registry) {
	r = m
}

// Reset restores the defaults. Tests that Mock the registry call it when
// they are done.
func Reset() {
	r = defaults()
}

func init() {
	// By default Registry holds the defaults. In that way, consumers
	// (packages) can run their unit tests without a config file.
	r = defaults()
}
