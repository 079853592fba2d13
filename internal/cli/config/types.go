// Package config provides configuration management for the Siddhanta CLI.
//
// It layers the shared project configuration from internal/config with
// CLI-specific fields (output format, verbosity) and resolves the final
// values from defaults, the config file, environment variables and flags.
package config

import (
	intconfig "github.com/siddhanta-labs/siddhanta/internal/config"
)

// Output formats.
const (
	OutputTable = "table"
	OutputJSON  = "json"
)

// DefaultOutput is the output format used when none is configured.
const DefaultOutput = OutputTable

// Config holds all CLI configuration options.
type Config struct {
	Verbose bool   `koanf:"verbose"`
	Output  string `koanf:"output"`

	Ayanamsa  intconfig.AyanamsaConfig `koanf:"ayanamsa"`
	Houses    intconfig.HousesConfig   `koanf:"houses"`
	MaxOrb    float64                  `koanf:"max_orb"`
	TermTable string                   `koanf:"term_table"`
}

// Project returns the shared project configuration carried by the CLI
// config.
func (c *Config) Project() *intconfig.ProjectConfig {
	return &intconfig.ProjectConfig{
		Ayanamsa:  c.Ayanamsa,
		Houses:    c.Houses,
		MaxOrb:    c.MaxOrb,
		TermTable: c.TermTable,
	}
}

// Validate checks CLI-level settings and delegates the rest to the shared
// project validation.
func (c *Config) Validate() error {
	if c.Output != OutputTable && c.Output != OutputJSON {
		return &InvalidConfigError{Field: "output", Value: c.Output}
	}
	return c.Project().Validate()
}

// InvalidConfigError reports a config field the CLI cannot use.
type InvalidConfigError struct {
	Field string
	Value string
}

func (e *InvalidConfigError) Error() string {
	return "invalid config " + e.Field + ": " + e.Value
}
