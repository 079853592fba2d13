// Package houses computes the ascendant, midheaven and twelve house cusps.
//
// Two systems are supported: whole-sign, where cusps fall on the sign
// boundaries counted from the ascendant's sign, and Placidus, where the
// intermediate cusps are solved from the semi-arc equations. Placidus is
// undefined near the poles; that condition surfaces as a distinguished
// error (or a whole-sign fallback when requested) rather than a NaN cusp.
package houses

import (
	"fmt"

	"github.com/siddhanta-labs/siddhanta/pkg/angle"
	"github.com/siddhanta-labs/siddhanta/pkg/ephem"
)

// System selects the house computation method.
type System int

// House systems.
const (
	WholeSign System = iota
	Placidus
)

// String returns the system identifier used in configuration files.
func (s System) String() string {
	switch s {
	case Placidus:
		return "placidus"
	default:
		return "whole-sign"
	}
}

// ParseSystem converts a config string to a System.
// Returns the system and true if valid, or WholeSign and false if invalid.
func ParseSystem(s string) (System, bool) {
	switch s {
	case "whole-sign", "whole_sign", "wholesign":
		return WholeSign, true
	case "placidus":
		return Placidus, true
	default:
		return WholeSign, false
	}
}

// DefaultPolarLimit is the default geographic latitude (degrees) beyond
// which the Placidus semi-arc equations are treated as singular. The
// threshold is configuration, not hard-coded physics.
const DefaultPolarLimit = 66.5

// Options configures a house computation.
type Options struct {
	System System

	// PolarLimit is the |latitude| above which Placidus is refused.
	// Zero means DefaultPolarLimit.
	PolarLimit float64

	// FallbackWholeSign substitutes whole-sign houses instead of failing
	// when Placidus is undefined at the given latitude.
	FallbackWholeSign bool
}

// PolarError reports that the Placidus semi-arc equations are singular
// for the given latitude, so quadrant house cusps are undefined.
type PolarError struct {
	Latitude float64
	RAMC     float64
}

func (e *PolarError) Error() string {
	return fmt.Sprintf("placidus houses undefined at latitude %.4f° (RAMC %.4f°)", e.Latitude, e.RAMC)
}

// Result holds a computed house system. Cusps[0] equals the ascendant
// longitude and the cusps increase strictly modulo 360.
type Result struct {
	Ascendant float64
	Midheaven float64
	Cusps     [12]float64
	System    System
}

// maxIterations bounds the semi-arc fixed-point iteration; it converges
// in a handful of steps away from the singular latitudes.
const maxIterations = 100

// convergence is the iteration tolerance in degrees.
const convergence = 1e-11

// Compute returns the house cusps for a Julian Day and geographic
// location. Longitudes in the result are tropical; the chart builder
// applies the ayanamsa at the attribute boundary.
func Compute(jd, latitude, longitude float64, opts Options) (Result, error) {
	ramc := angle.Normalize(ephem.GMST(jd) + longitude)
	obliquity := angle.Obliquity(jd)

	mc := midheaven(ramc, obliquity)
	asc := ascendant(ramc, obliquity, latitude)

	if opts.System == WholeSign {
		return wholeSignResult(asc, mc), nil
	}

	limit := opts.PolarLimit
	if limit == 0 {
		limit = DefaultPolarLimit
	}
	if latitude > limit || latitude < -limit {
		if opts.FallbackWholeSign {
			return wholeSignResult(asc, mc), nil
		}
		return Result{}, &PolarError{Latitude: latitude, RAMC: ramc}
	}

	cusps, err := placidusCusps(ramc, obliquity, latitude, asc, mc)
	if err != nil {
		if opts.FallbackWholeSign {
			return wholeSignResult(asc, mc), nil
		}
		return Result{}, err
	}
	return Result{Ascendant: asc, Midheaven: mc, Cusps: cusps, System: Placidus}, nil
}

// midheaven returns the ecliptic longitude of the meridian.
func midheaven(ramc, obliquity float64) float64 {
	return angle.Normalize(angle.Atan2(angle.Sin(ramc), angle.Cos(ramc)*angle.Cos(obliquity)))
}

// ascendant returns the ecliptic longitude rising on the eastern horizon.
// The atan2 arguments are arranged so the result lands in the rising
// quadrant without a correction step.
func ascendant(ramc, obliquity, latitude float64) float64 {
	return angle.Normalize(angle.Atan2(
		angle.Cos(ramc),
		-(angle.Sin(ramc)*angle.Cos(obliquity) + angle.Tan(latitude)*angle.Sin(obliquity)),
	))
}

// wholeSignResult builds whole-sign cusps: the boundaries of the twelve
// signs counted from the ascendant's sign. Cusps[0] is the ascendant
// itself to preserve the chart invariant; the remaining cusps are exact
// sign boundaries.
func wholeSignResult(asc, mc float64) Result {
	signStart := float64(int(asc/30)) * 30
	var cusps [12]float64
	cusps[0] = asc
	for i := 1; i < 12; i++ {
		cusps[i] = angle.Normalize(signStart + float64(i)*30)
	}
	return Result{Ascendant: asc, Midheaven: mc, Cusps: cusps, System: WholeSign}
}

// placidusCusps solves the four intermediate cusps (11, 12, 2, 3) by
// fixed-point iteration on the semi-arc equations and fills the remaining
// eight from the angles and by opposition.
func placidusCusps(ramc, obliquity, latitude, asc, mc float64) ([12]float64, error) {
	c11, err := semiArcCusp(ramc, obliquity, latitude, 30, 1.0/3.0, true)
	if err != nil {
		return [12]float64{}, err
	}
	c12, err := semiArcCusp(ramc, obliquity, latitude, 60, 2.0/3.0, true)
	if err != nil {
		return [12]float64{}, err
	}
	c2, err := semiArcCusp(ramc, obliquity, latitude, 120, 2.0/3.0, false)
	if err != nil {
		return [12]float64{}, err
	}
	c3, err := semiArcCusp(ramc, obliquity, latitude, 150, 1.0/3.0, false)
	if err != nil {
		return [12]float64{}, err
	}

	return [12]float64{
		asc,
		c2,
		c3,
		angle.Normalize(mc + 180),
		angle.Normalize(c11 + 180),
		angle.Normalize(c12 + 180),
		angle.Normalize(asc + 180),
		angle.Normalize(c2 + 180),
		angle.Normalize(c3 + 180),
		mc,
		c11,
		c12,
	}, nil
}

// semiArcCusp iterates the semi-arc equation for one intermediate cusp.
// offset is the initial hour angle east of the meridian; fraction is the
// cusp's position along the semi-arc (1/3 or 2/3); diurnal selects the
// day arc (cusps 11, 12) or the night arc measured from the lower
// meridian (cusps 2, 3). The fixed point is the ecliptic point whose
// meridian distance equals the required fraction of its own semi-arc.
func semiArcCusp(ramc, obliquity, latitude, offset, fraction float64, diurnal bool) (float64, error) {
	h := offset
	for i := 0; i < maxIterations; i++ {
		lon := eclipticFromRA(ramc+h, obliquity)
		declination := angle.Asin(angle.Sin(obliquity) * angle.Sin(lon))

		// Ascensional difference; out of domain means the point never
		// rises or never sets at this latitude.
		x := angle.Tan(latitude) * angle.Tan(declination)
		if x > 1 || x < -1 {
			return 0, &PolarError{Latitude: latitude, RAMC: ramc}
		}
		ad := angle.Asin(x)

		var next float64
		if diurnal {
			next = fraction * (90 + ad)
		} else {
			next = 180 - fraction*(90-ad)
		}
		if diff := next - h; diff < convergence && diff > -convergence {
			h = next
			break
		}
		h = next
	}
	return angle.Normalize(eclipticFromRA(ramc+h, obliquity)), nil
}

// eclipticFromRA returns the ecliptic longitude of the ecliptic point with
// the given right ascension.
func eclipticFromRA(ra, obliquity float64) float64 {
	return angle.Atan2(angle.Sin(ra), angle.Cos(ra)*angle.Cos(obliquity))
}
