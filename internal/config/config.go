// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package config // import "feedmill.app/internal/config"

// Opts holds parsed configuration options.
var Opts *Options

// Load loads configuration values from a local file (if filename isn't empty)
// and from environment variables after that.
func Load(filename string) error { return LoadYAML("", filename) }

// LoadYAML loads configuration values from the YAML file yamlFile, then from
// the .env file envFile and finally from environment variables. Every source
// is optional and overrides the previous ones.
func LoadYAML(yamlFile, envFile string) error {
	cfg := NewParser()
	if yamlFile != "" {
		if err := cfg.ParseYAML(yamlFile); err != nil {
			return err
		}
	}

	var opts *Options
	var err error
	if envFile != "" {
		opts, err = cfg.ParseEnvFile(envFile)
	} else {
		opts, err = cfg.ParseEnvironmentVariables()
	}
	if err != nil {
		return err
	}
	Opts = opts
	return nil
}
