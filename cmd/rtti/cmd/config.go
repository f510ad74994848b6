// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"io/fs"
	"os"

	"cogentcore.org/rtti/base/errors"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// DefaultConfigFile is the config file read when no other is given.
const DefaultConfigFile = "~/.config/rtti/config.toml"

// Config is the configuration of the rtti command. It is read from
// a TOML file, and command line flags override it.
type Config struct {

	// Verbose enables debug logging.
	Verbose bool `toml:"verbose"`

	// Color enables colored and highlighted output.
	Color bool `toml:"color"`

	// Style is the chroma style used to highlight YAML and XML.
	Style string `toml:"style"`

	// Format is the default output format of the class command,
	// text or yaml.
	Format string `toml:"format"`
}

// DefaultConfig returns the configuration used without a config file.
func DefaultConfig() *Config {
	return &Config{Color: true, Style: "monokai", Format: "text"}
}

// LoadConfig returns the configuration in the given TOML file, on top
// of [DefaultConfig]. A leading ~ in the path is the home directory.
// A missing file is not an error.
func LoadConfig(file string) (*Config, error) {
	c := DefaultConfig()
	path, err := homedir.Expand(file)
	if err != nil {
		return c, err
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return c, err
	}
	if err := toml.Unmarshal(b, c); err != nil {
		return c, err
	}
	return c, nil
}
