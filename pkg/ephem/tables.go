package ephem

import (
	"github.com/siddhanta-labs/siddhanta/pkg/angle"
	"github.com/siddhanta-labs/siddhanta/pkg/astro"
)

// BodyTable holds the three coordinate series of one body. For planets the
// coordinates are heliocentric (longitude, latitude in degrees, radius in
// AU); for the Sun, Moon and nodes they are geocentric.
type BodyTable struct {
	Longitude Series `yaml:"longitude"`
	Latitude  Series `yaml:"latitude"`
	Radius    Series `yaml:"radius"`
}

// elements are J2000 Keplerian mean orbital elements: semi-major axis
// (AU), eccentricity, inclination (deg), mean longitude at epoch and its
// rate (deg, deg/century), longitude of perihelion (deg), longitude of the
// ascending node (deg). Values follow the standard JPL approximate
// elements.
type elements struct {
	a, e, i    float64
	l0, lRate  float64
	peri, node float64
}

var planetElements = map[astro.Body]elements{
	astro.Mercury: {0.38709927, 0.20563593, 7.00497902, 252.25032350, 149472.67411175, 77.45779628, 48.33076593},
	astro.Venus:   {0.72333566, 0.00677672, 3.39467605, 181.97909950, 58517.81538729, 131.60246718, 76.67984255},
	astro.Mars:    {1.52371034, 0.09339410, 1.84969142, -4.55343205, 19140.30268499, -23.94362959, 49.55953891},
	astro.Jupiter: {5.20288700, 0.04838624, 1.30439695, 34.39644051, 3034.74612775, 14.72847983, 100.47390909},
	astro.Saturn:  {9.53667594, 0.05386179, 2.48599187, 49.95424423, 1222.49362201, 92.59887831, 113.66242448},
}

// earthElements is the Earth-Moon barycenter, used only for the
// heliocentric-to-geocentric vector subtraction.
var earthElements = elements{1.00000261, 0.01671123, -0.00001531, 100.46457166, 35999.37244981, 102.93768193, 0}

// table expands mean elements into a truncated series table: a third-order
// equation of center for longitude, a single inclination term for
// latitude, and second-order eccentricity terms for the radius. The
// expansion runs once at package init, so the built-in tables are exactly
// self-consistent with the elements that produced them.
func (el elements) table() BodyTable {
	m0 := angle.Normalize(el.l0 - el.peri) // mean anomaly at epoch
	n := el.lRate                          // mean motion, deg/century

	// Equation of center to third order in e, in degrees.
	// amp·sin(k·M) is stored as amp·cos(k·M − 90°).
	e := el.e
	rad2deg := 180 / 3.141592653589793
	eoc := []Term{
		{Amplitude: (2*e - e*e*e/4) * rad2deg, Phase: angle.Normalize(m0 - 90), Frequency: n},
		{Amplitude: 1.25 * e * e * rad2deg, Phase: angle.Normalize(2*m0 - 90), Frequency: 2 * n},
		{Amplitude: 13.0 / 12.0 * e * e * e * rad2deg, Phase: angle.Normalize(3*m0 - 90), Frequency: 3 * n},
	}

	return BodyTable{
		Longitude: Series{Offset: el.l0, Rate: el.lRate, Terms: eoc},
		Latitude: Series{Terms: []Term{
			{Amplitude: el.i, Phase: angle.Normalize(el.l0 - el.node - 90), Frequency: el.lRate},
		}},
		Radius: Series{Offset: el.a * (1 + e*e/2), Terms: []Term{
			{Amplitude: -el.a * e, Phase: m0, Frequency: n},
			{Amplitude: -el.a * e * e / 2, Phase: angle.Normalize(2 * m0), Frequency: 2 * n},
		}},
	}
}

// sunTable is the dedicated geocentric solar series: mean longitude plus a
// three-term equation of center, with a two-term radius series. This is a
// deliberate low-order approximation distinct from the planetary theory.
var sunTable = BodyTable{
	Longitude: Series{Offset: 280.46646, Rate: 36000.76983, Terms: []Term{
		{Amplitude: 1.914602, Phase: 267.5291092, Frequency: 35999.0502909},
		{Amplitude: 0.019993, Phase: 265.0582184, Frequency: 71998.1005818},
		{Amplitude: 0.000289, Phase: 262.5873276, Frequency: 107997.1508727},
	}},
	Latitude: Series{},
	Radius: Series{Offset: 1.000140, Terms: []Term{
		{Amplitude: -0.016708, Phase: 357.5291092, Frequency: 35999.0502909},
		{Amplitude: -0.000140, Phase: 355.0582184, Frequency: 71998.1005818},
	}},
}

// moonTable is the dedicated geocentric lunar series: mean longitude plus
// the five dominant perturbation terms in longitude and three in latitude.
// Phases already fold in the fundamental arguments (D, M, M', F) at epoch;
// sin terms are stored as cos with a −90° phase shift. Radius is in AU.
var moonTable = BodyTable{
	Longitude: Series{Offset: 218.3164477, Rate: 481267.88123421, Terms: []Term{
		{Amplitude: 6.288774, Phase: 44.9633964, Frequency: 477198.8675055},
		{Amplitude: 1.274027, Phase: 10.7369878, Frequency: 413335.3553013},
		{Amplitude: 0.658314, Phase: 145.7003842, Frequency: 890534.2228068},
		{Amplitude: 0.213618, Phase: 179.9267928, Frequency: 954397.7350110},
		{Amplitude: -0.185116, Phase: 267.5291092, Frequency: 35999.0502909},
	}},
	Latitude: Series{Terms: []Term{
		{Amplitude: 5.128122, Phase: 3.2720950, Frequency: 483202.0175233},
		{Amplitude: 0.280602, Phase: 138.2354914, Frequency: 960400.8850288},
		{Amplitude: 0.277693, Phase: 311.6913014, Frequency: -6003.1500178},
	}},
	Radius: Series{Offset: 0.00257356979, Terms: []Term{
		{Amplitude: -1.39743667e-4, Phase: 134.9633964, Frequency: 477198.8675055},
		{Amplitude: -2.47270298e-5, Phase: 100.7369878, Frequency: 413335.3553013},
		{Amplitude: -1.97594256e-5, Phase: 235.7003842, Frequency: 890534.2228068},
	}},
}

// nodeTable is the mean ascending node of the lunar orbit (Rahu). The
// rate is negative: the node is always retrograde. Ketu is the node plus
// 180°. Distance matches the Moon's mean distance.
var nodeTable = BodyTable{
	Longitude: Series{Offset: 125.0445479, Rate: -1934.1362891},
	Latitude:  Series{},
	Radius:    Series{Offset: 0.00257356979},
}

// builtinTables assembles the default table set at init.
func builtinTables() map[astro.Body]BodyTable {
	tables := map[astro.Body]BodyTable{
		astro.Sun:  sunTable,
		astro.Moon: moonTable,
		astro.Rahu: nodeTable,
	}
	for body, el := range planetElements {
		tables[body] = el.table()
	}
	return tables
}
