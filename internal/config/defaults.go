package config

import (
	"github.com/siddhanta-labs/siddhanta/pkg/angle"
	"github.com/siddhanta-labs/siddhanta/pkg/houses"
	"github.com/siddhanta-labs/siddhanta/pkg/transit"
)

// Default configuration values.
const (
	DefaultHouseSystem = "whole-sign"
)

// ApplyDefaults fills zero-valued fields with defaults.
func (c *ProjectConfig) ApplyDefaults() {
	if c.Ayanamsa.AtJ2000 == 0 {
		c.Ayanamsa.AtJ2000 = angle.DefaultAyanamsaAtJ2000
	}
	if c.Ayanamsa.RatePerYear == 0 {
		c.Ayanamsa.RatePerYear = angle.DefaultAyanamsaRate
	}
	if c.Houses.System == "" {
		c.Houses.System = DefaultHouseSystem
	}
	if c.Houses.PolarLimit == 0 {
		c.Houses.PolarLimit = houses.DefaultPolarLimit
	}
	if c.MaxOrb == 0 {
		c.MaxOrb = transit.DefaultMaxOrb
	}
}

// Default returns a ProjectConfig with every default applied.
func Default() *ProjectConfig {
	cfg := &ProjectConfig{}
	cfg.ApplyDefaults()
	return cfg
}
