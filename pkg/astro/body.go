// Package astro defines the celestial bodies, zodiac signs, lunar mansions
// and chart value types shared across the computation packages, together
// with the fixed lookup tables (sign lords, exaltation, debilitation, mean
// daily motions). All tables are initialized once and never written after
// package init.
package astro

import "strings"

// Body identifies one of the nine chart bodies: the Sun, the Moon, the five
// classical planets, and the two lunar nodes.
type Body int

// Chart bodies in traditional weekday order, nodes last.
const (
	Sun Body = iota
	Moon
	Mercury
	Venus
	Mars
	Jupiter
	Saturn
	Rahu
	Ketu
)

// Bodies lists all nine chart bodies in canonical order.
var Bodies = []Body{Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn, Rahu, Ketu}

var bodyNames = [...]string{
	Sun:     "sun",
	Moon:    "moon",
	Mercury: "mercury",
	Venus:   "venus",
	Mars:    "mars",
	Jupiter: "jupiter",
	Saturn:  "saturn",
	Rahu:    "rahu",
	Ketu:    "ketu",
}

// String returns the lowercase body identifier used in JSON output and
// configuration files.
func (b Body) String() string {
	if b < Sun || b > Ketu {
		return "unknown"
	}
	return bodyNames[b]
}

// Valid reports whether b is one of the nine chart bodies.
func (b Body) Valid() bool {
	return b >= Sun && b <= Ketu
}

// ParseBody converts a body identifier to a Body value.
// Returns the body and true if valid, or Sun and false if invalid.
func ParseBody(s string) (Body, bool) {
	for i, name := range bodyNames {
		if strings.ToLower(s) == name {
			return Body(i), true
		}
	}
	return Sun, false
}

// MarshalText implements encoding.TextMarshaler so Body can be used as a
// JSON map key.
func (b Body) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Body) UnmarshalText(text []byte) error {
	parsed, ok := ParseBody(string(text))
	if !ok {
		return &UnknownBodyError{Name: string(text)}
	}
	*b = parsed
	return nil
}

// UnknownBodyError is returned when a body identifier does not name one of
// the nine chart bodies.
type UnknownBodyError struct {
	Name string
}

func (e *UnknownBodyError) Error() string {
	return "unknown body: " + e.Name
}
