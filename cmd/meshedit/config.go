// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/meshedit/pick"
	"cogentcore.org/meshedit/subedit"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config is the tool configuration, layered defaults < file < flags.
// File keys are the lowercased field names, so an edit section has
// epsilon and weldradius, and a pick section has vertexradius and
// edgeradius.
type Config struct {

	// Edit holds the editing engine parameters.
	Edit subedit.Params `json:"edit" toml:"edit" yaml:"edit"`

	// Pick holds the picking tolerances.
	Pick pick.Params `json:"pick" toml:"pick" yaml:"pick"`

	// Serve is the address the websocket bridge listens on.
	// Serving only happens when this is set, by file or flag.
	Serve string `json:"serve" toml:"serve" yaml:"serve"`

	// Verbose turns on debug logging.
	Verbose bool `json:"verbose" toml:"verbose" yaml:"verbose"`
}

func (cf *Config) Defaults() {
	cf.Edit.Defaults()
	cf.Pick.Defaults()
}

// LoadFile merges the TOML or YAML file at the given path into the
// config, dispatching on the extension.
func (cf *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, cf); err != nil {
			return fmt.Errorf("config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cf); err != nil {
			return fmt.Errorf("config %s: %w", path, err)
		}
	default:
		return fmt.Errorf("config: unsupported format %q", filepath.Ext(path))
	}
	return nil
}
