// Package cliconfig loads the searchpath CLI's configuration. The library
// core takes no global configuration; this covers only the CLI's logging
// settings, from an optional config file and SEARCHPATH_* environment
// variables.
package cliconfig

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/tbhb/searchpath/pkg/logx"
)

// Config holds the CLI configuration.
type Config struct {
	// Log contains logging-related configuration.
	Log *logx.LoggingConfig
}

var config = Config{
	Log: &logx.LoggingConfig{
		Level:          "info",
		ConsoleLogging: true,
		FileLogging:    false,
	},
}

// Initialize loads the configuration. The config file is optional: with an
// empty path only the defaults and environment overrides apply.
//
// Parameters:
//   - path: The path to the configuration file, or "" for defaults.
//
// Returns:
//   - An error if the file is named but cannot be read or unmarshalled.
func Initialize(path string) error {
	viper.Reset()
	viper.SetEnvPrefix("searchpath")
	viper.AutomaticEnv()

	if path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return errors.Wrap(err, "failed to read configuration file")
		}
		if err := viper.Unmarshal(&config); err != nil {
			return errors.Wrap(err, "failed to unmarshal configuration")
		}
	}

	if config.Log == nil {
		config.Log = &logx.LoggingConfig{Level: "info", ConsoleLogging: true}
	}
	if lvl := viper.GetString("log_level"); lvl != "" {
		config.Log.Level = lvl
	}

	return nil
}

// Get returns the loaded configuration.
func Get() *Config {
	return &config
}
