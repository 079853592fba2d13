// Package chart assembles full birth charts: positions for the nine
// bodies, the house system, and the sidereal attributes derived from each
// longitude.
//
// Raw positions are tropical; the ayanamsa is subtracted exactly once, at
// the point the chart is assembled, so every longitude stored in a Chart
// is sidereal.
package chart

import (
	"context"
	"log/slog"

	"github.com/siddhanta-labs/siddhanta/pkg/angle"
	"github.com/siddhanta-labs/siddhanta/pkg/astro"
	"github.com/siddhanta-labs/siddhanta/pkg/ephem"
	"github.com/siddhanta-labs/siddhanta/pkg/houses"
)

// Options configures chart assembly.
type Options struct {
	// Houses selects the house system and polar handling. The house
	// assignment policy follows the system: whole-sign houses are
	// assigned by sign offset from the ascendant, Placidus houses by the
	// cusp interval containing the body. The two are never mixed.
	Houses houses.Options

	// AyanamsaAtJ2000 and AyanamsaRate override the linear ayanamsa
	// coefficients. Zero values select the defaults.
	AyanamsaAtJ2000 float64
	AyanamsaRate    float64

	Logger *slog.Logger
}

// Builder assembles charts from an ephemeris engine. Safe for concurrent
// use; it holds no per-request state.
type Builder struct {
	engine *ephem.Engine
	opts   Options
	logger *slog.Logger
}

// NewBuilder creates a chart builder.
func NewBuilder(engine *ephem.Engine, opts Options) *Builder {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Builder{engine: engine, opts: opts, logger: logger}
}

// Build computes the chart for an instant and location.
func (b *Builder) Build(ctx context.Context, instant ephem.Instant, latitude, longitude float64) (*astro.Chart, error) {
	jd := instant.JulianDay()

	houseResult, err := houses.Compute(jd, latitude, longitude, b.opts.Houses)
	if err != nil {
		return nil, err
	}

	positions, err := b.engine.Positions(ctx, jd)
	if err != nil {
		return nil, err
	}

	ayanamsa := b.ayanamsa(jd)

	// The house frame is converted to sidereal once, alongside the body
	// longitudes.
	siderealAsc := angle.TropicalToSidereal(houseResult.Ascendant, ayanamsa)
	var cusps [12]float64
	for i, cusp := range houseResult.Cusps {
		cusps[i] = angle.TropicalToSidereal(cusp, ayanamsa)
	}

	chart := &astro.Chart{
		Datetime:   instant.Time(),
		Latitude:   latitude,
		Longitude:  longitude,
		Ascendant:  siderealAsc,
		Midheaven:  angle.TropicalToSidereal(houseResult.Midheaven, ayanamsa),
		HouseCusps: cusps,
		Ayanamsa:   ayanamsa,
		Bodies:     make(map[astro.Body]astro.BodyPosition, len(positions)),
	}

	for body, pos := range positions {
		sidereal := pos
		sidereal.Longitude = angle.TropicalToSidereal(pos.Longitude, ayanamsa)
		chart.Bodies[body] = b.bodyPosition(body, sidereal, siderealAsc, cusps, houseResult.System)
	}

	b.logger.Debug("chart built",
		"jd", jd, "ascendant", siderealAsc, "system", houseResult.System.String())

	return chart, nil
}

// bodyPosition derives the astrological attributes of one body from its
// sidereal position.
func (b *Builder) bodyPosition(body astro.Body, pos astro.Position, asc float64, cusps [12]float64, system houses.System) astro.BodyPosition {
	sign := astro.SignOf(pos.Longitude)
	nakshatra := astro.NakshatraOf(pos.Longitude)
	degree := astro.DegreeInSign(pos.Longitude)
	retrograde := pos.Speed < 0

	var house int
	if system == houses.Placidus {
		house = CuspHouse(pos.Longitude, cusps)
	} else {
		house = WholeSignHouse(pos.Longitude, asc)
	}

	return astro.BodyPosition{
		Body:          body,
		Position:      pos,
		Sign:          sign,
		SignName:      sign.String(),
		DegreeInSign:  degree,
		House:         house,
		Nakshatra:     nakshatra,
		NakshatraName: nakshatra.String(),
		Pada:          astro.PadaOf(pos.Longitude),
		Retrograde:    retrograde,
		Strength:      Strength(body, sign, house, degree, retrograde),
		Dignity:       astro.DignityOf(body, sign),
	}
}

func (b *Builder) ayanamsa(jd float64) float64 {
	at := b.opts.AyanamsaAtJ2000
	rate := b.opts.AyanamsaRate
	if at == 0 {
		at = angle.DefaultAyanamsaAtJ2000
	}
	if rate == 0 {
		rate = angle.DefaultAyanamsaRate
	}
	return angle.AyanamsaLinear(jd, at, rate)
}

// WholeSignHouse assigns a house by sign offset from the ascendant's sign:
// the ascendant's whole sign is house 1, the next sign house 2, and so on.
func WholeSignHouse(lon, asc float64) int {
	return int(angle.Normalize(lon-float64(int(asc/30))*30)/30) + 1
}

// CuspHouse assigns a house by the cusp interval containing the longitude.
// Used only when the Placidus policy is selected.
func CuspHouse(lon float64, cusps [12]float64) int {
	for i := 0; i < 12; i++ {
		start := cusps[i]
		end := cusps[(i+1)%12]
		span := angle.Normalize(end - start)
		if angle.Normalize(lon-start) < span {
			return i + 1
		}
	}
	return 12
}

// Strength scores a body's placement from 0 to 100 for ranking and
// interpretation. The heuristic is not astronomically rigorous: angular
// houses, own-sign rulership, deep degrees and direct motion each add a
// fixed bonus.
func Strength(body astro.Body, sign astro.Sign, house int, degreeInSign float64, retrograde bool) int {
	score := 0
	if house == 1 || house == 10 {
		score += 20
	}
	if sign.Lord() == body {
		score += 30
	}
	if degreeInSign > 10 && degreeInSign < 20 {
		score += 20
	}
	if !retrograde {
		score += 15
	}
	if score > 100 {
		score = 100
	}
	return score
}
