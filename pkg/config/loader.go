// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package config

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config package should avoid importing any base58 packages in order to
// prevent any cyclic-dependancy issues

const (
	// current working dir
	searchPath1 = "."
	// home datadir
	searchPath2 = "$HOME/.base58/"

	// name for the config file. Does not include extension.
	configFileName = "base58"
)

var r *Registry

// Registry stores all loaded configurations according to the config order
// NB It should be cheap to be copied by value
type Registry struct {
	UsedConfigFile string

	// All configuration groups
	Logger loggerConfiguration
	Codec  codecConfiguration
}

// Load makes an attempt to read and unmarshal any configs from env and the
// base58 config file.
//
// It uses the following precedence order. Each item takes precedence over the
// item below it:
//  - env
//  - config
//  - default
//
// The configuration file can be in form of TOML, JSON, YAML, HCL or Java
// properties config files
func Load(confFile string) error {
	r = new(Registry)
	return r.init(confFile)
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

func (r *Registry) init(confFile string) error {
	viper.Reset()

	// Make an attempt to find base58.toml/base58.json/base58.yaml in any of
	// the provided paths below
	viper.SetConfigName(configFileName)

	// search paths
	viper.AddConfigPath(searchPath1)
	viper.AddConfigPath(searchPath2)

	// confPath is overwritten by the one from command line
	if len(confFile) > 0 {
		viper.SetConfigFile(confFile)
	}

	defineDefaults()
	defineENV()

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is not an error. Defaults and env vars
		// still apply.
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return errors.Wrap(err, "error reading config file")
		}
	}

	// Unmarshal all configurations from all conf levels to the registry struct
	if err := viper.Unmarshal(r); err != nil {
		return errors.Wrap(err, "unable to decode config into registry")
	}

	r.UsedConfigFile = viper.ConfigFileUsed()

	return nil
}

// define the default value for each supported config key. Registering the
// keys here also makes them visible to env var binding.
func defineDefaults() {
	viper.SetDefault("logger.level", "warn")
	viper.SetDefault("logger.output", "stderr")
	viper.SetDefault("logger.format", "text")
	viper.SetDefault("codec.maxencodelength", 2048)
}

// define a set of environment variables as bindings to config file settings
func defineENV() {
	if err := viper.BindEnv("logger.level", "DUSK_B58_LOGGER_LEVEL"); err != nil {
		log.WithError(err).Warn("defineENV failed")
	}

	if err := viper.BindEnv("logger.format", "DUSK_B58_LOGGER_FORMAT"); err != nil {
		log.WithError(err).Warn("defineENV failed")
	}

	if err := viper.BindEnv("codec.maxencodelength", "DUSK_B58_CODEC_MAXENCODELENGTH"); err != nil {
		log.WithError(err).Warn("defineENV failed")
	}
}

func init() {
	// By default Registry should be empty but not nil. In that way, consumers
	// (packages) can use their default values on unit testing
	r = new(Registry)
	r.Logger.Level = "warn"
	r.Logger.Output = "stderr"
	r.Logger.Format = "text"
	r.Codec.MaxEncodeLength = 2048
}
