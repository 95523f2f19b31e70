// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

import (
	"fmt"
	"io"

	"github.com/spf13/viper"
)

// Configuration holds all configuration for loan-compare.
type Configuration struct {
	Scenarios []ScenarioConfig
	HECM      *HECMConfig   `yaml:"hecm,omitempty"`
	Logging   LoggingConfig `yaml:"logging,omitempty"`
	Output    OutputConfig  `yaml:"output,omitempty"`
	Cache     CacheConfig   `yaml:"cache,omitempty"`
	Store     StoreConfig   `yaml:"store,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// CacheConfig holds optional result-cache settings. An empty RedisAddr
// selects the in-memory cache.
type CacheConfig struct {
	Enabled   bool   `yaml:"enabled,omitempty"`
	RedisAddr string `yaml:"redisAddr,omitempty"`
}

// StoreConfig holds the scenario store settings.
type StoreConfig struct {
	Path string `yaml:"path,omitempty"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.ApplyDefaults()

	return &configuration, nil
}

// LoadConfigurationFromReader parses a YAML-formatted configuration from an
// in-memory source, such as a request body.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.ApplyDefaults()

	return &configuration, nil
}

// ApplyDefaults fills every unset numeric field with its documented default.
// Downstream computation assumes this has run; the engine itself never
// defaults anything.
func (conf *Configuration) ApplyDefaults() {
	for i := range conf.Scenarios {
		conf.Scenarios[i].applyDefaults()
	}
	if conf.HECM != nil {
		conf.HECM.applyDefaults()
	}
}
