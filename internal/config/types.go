// Package config provides shared configuration types for Siddhanta.
// This package is decoupled from CLI concerns so that other front ends can
// load project configuration without importing cobra.
package config

import (
	"fmt"

	"github.com/siddhanta-labs/siddhanta/pkg/houses"
)

// AyanamsaConfig holds the linear sidereal-correction coefficients.
type AyanamsaConfig struct {
	// AtJ2000 is the ayanamsa value at J2000.0 in degrees.
	AtJ2000 float64 `koanf:"at_j2000"`

	// RatePerYear is the precession rate in arcseconds per Julian year.
	RatePerYear float64 `koanf:"rate_per_year"`
}

// HousesConfig selects the house system and its polar handling.
type HousesConfig struct {
	// System is "whole-sign" or "placidus". The house assignment policy
	// follows the system; the two are never mixed.
	System string `koanf:"system"`

	// PolarLimit is the |latitude| in degrees beyond which Placidus is
	// treated as undefined.
	PolarLimit float64 `koanf:"polar_limit"`

	// FallbackWholeSign substitutes whole-sign houses instead of failing
	// at polar latitudes.
	FallbackWholeSign bool `koanf:"fallback_whole_sign"`
}

// ProjectConfig is the contents of siddhanta.yaml.
type ProjectConfig struct {
	Ayanamsa AyanamsaConfig `koanf:"ayanamsa"`
	Houses   HousesConfig   `koanf:"houses"`

	// MaxOrb is the default aspect tolerance in degrees.
	MaxOrb float64 `koanf:"max_orb"`

	// TermTable is an optional path to a YAML term-table override for
	// substituting higher-precision series.
	TermTable string `koanf:"term_table"`
}

// HouseOptions converts the config to houses.Options.
func (c *ProjectConfig) HouseOptions() (houses.Options, error) {
	system, ok := houses.ParseSystem(c.Houses.System)
	if !ok {
		return houses.Options{}, fmt.Errorf("unknown house system: %q", c.Houses.System)
	}
	return houses.Options{
		System:            system,
		PolarLimit:        c.Houses.PolarLimit,
		FallbackWholeSign: c.Houses.FallbackWholeSign,
	}, nil
}

// Validate checks the configuration for values the core would reject.
func (c *ProjectConfig) Validate() error {
	if _, ok := houses.ParseSystem(c.Houses.System); !ok {
		return fmt.Errorf("unknown house system: %q", c.Houses.System)
	}
	if c.Houses.PolarLimit < 0 || c.Houses.PolarLimit >= 90 {
		return fmt.Errorf("polar limit out of range: %v", c.Houses.PolarLimit)
	}
	if c.MaxOrb < 0 || c.MaxOrb > 30 {
		return fmt.Errorf("max orb out of range: %v", c.MaxOrb)
	}
	return nil
}
