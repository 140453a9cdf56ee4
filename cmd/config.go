// alnformats: codecs for SAM, PAF and GAF alignment records.
// Copyright (c) 2017-2021 imec vzw.

// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version, and Additional Terms
// (see below).

// This program is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.

// You should have received a copy of the GNU Affero General Public
// License and Additional Terms along with this program. If not, see
// <https://github.com/exascience/alnformats/blob/master/LICENSE.txt>.

package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/exascience/alnformats/gaf"
	"github.com/exascience/alnformats/paf"
	"github.com/exascience/alnformats/sam"
	"github.com/exascience/alnformats/utils"
)

// Config holds the settings that can be read from a YAML
// configuration file.
type Config struct {
	// Format is used for inputs whose extension does not tell the
	// format.
	Format string `yaml:"format"`
	// Checks lists the record checks applied by view and stats.
	// validate always applies all checks.
	Checks []string `yaml:"checks"`
	// Parallel selects parallel parsing by default.
	Parallel bool          `yaml:"parallel"`
	Program  ProgramConfig `yaml:"program"`
}

// ProgramConfig controls the @PG line that view adds to SAM headers.
type ProgramConfig struct {
	Disable bool   `yaml:"disable"`
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
}

// ReadConfig reads a YAML configuration file. An empty filename
// yields the default configuration.
func ReadConfig(filename string) (*Config, error) {
	var config Config
	if filename != "" {
		data, err := os.ReadFile(filename)
		if err != nil {
			return nil, fmt.Errorf("failed to open the config file: %w", err)
		}
		if err := yaml.UnmarshalStrict(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse the config file: %w", err)
		}
	}
	config.defineMissing()
	return &config, nil
}

// Define all missing settings
func (config *Config) defineMissing() {
	if config.Program.ID == "" {
		config.Program.ID = utils.ProgramName
	}
	if config.Program.Name == "" {
		config.Program.Name = utils.ProgramName
	}
}

func (config *Config) samChecks() (checks sam.Checks, err error) {
	for _, check := range config.Checks {
		switch check {
		case "qual-length":
			checks |= sam.CheckQualLength
		case "cigar":
			checks |= sam.CheckCigar
		case "flags":
			checks |= sam.CheckFlags
		case "all":
			checks |= sam.AllChecks
		case "coordinates", "matches":
		default:
			return 0, fmt.Errorf("unknown check %v", check)
		}
	}
	return checks, nil
}

func (config *Config) pafChecks() (checks paf.Checks, err error) {
	for _, check := range config.Checks {
		switch check {
		case "coordinates":
			checks |= paf.CheckCoordinates
		case "matches":
			checks |= paf.CheckMatches
		case "all":
			checks |= paf.AllChecks
		case "qual-length", "cigar", "flags":
		default:
			return 0, fmt.Errorf("unknown check %v", check)
		}
	}
	return checks, nil
}

func (config *Config) gafChecks() (gaf.Checks, error) {
	checks, err := config.pafChecks()
	return gaf.Checks(checks), err
}
