package transit

import "github.com/siddhanta-labs/siddhanta/pkg/angle"

// Kind is an aspect type: one of the five canonical angular relationships.
type Kind int

// Aspect kinds in ascending order of canonical angle. Detection checks
// them in this order, so a tie across two canonical angles resolves to the
// lower one.
const (
	Conjunction Kind = iota
	Sextile
	Square
	Trine
	Opposition
)

var kindNames = [...]string{
	Conjunction: "conjunction",
	Sextile:     "sextile",
	Square:      "square",
	Trine:       "trine",
	Opposition:  "opposition",
}

var canonicalAngles = [...]float64{
	Conjunction: 0,
	Sextile:     60,
	Square:      90,
	Trine:       120,
	Opposition:  180,
}

// String returns the aspect name used in JSON output.
func (k Kind) String() string {
	if k < Conjunction || k > Opposition {
		return "unknown"
	}
	return kindNames[k]
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Angle returns the kind's canonical angle in degrees.
func (k Kind) Angle() float64 {
	return canonicalAngles[k]
}

// DefaultMaxOrb is the default aspect tolerance in degrees.
const DefaultMaxOrb = 6.0

// DetectAspect checks two longitudes against the five canonical angles.
// The minimal angular separation makes the check symmetric in its
// arguments; the first canonical angle within maxOrb wins. Returns false
// when no aspect is within orb.
func DetectAspect(lonA, lonB, maxOrb float64) (Kind, float64, bool) {
	separation := angle.Separation(lonA, lonB)
	for kind, canonical := range canonicalAngles {
		orb := separation - canonical
		if orb < 0 {
			orb = -orb
		}
		if orb <= maxOrb {
			return Kind(kind), orb, true
		}
	}
	return 0, 0, false
}
