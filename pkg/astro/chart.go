package astro

import "time"

// Chart is a fully assembled birth chart: the instant and place, the
// sidereal ascendant and house cusps, and the nine body positions with
// derived attributes.
//
// Invariants: HouseCusps[0] equals the ascendant longitude, and the cusps
// are strictly increasing modulo 360 around the circle.
type Chart struct {
	Datetime  time.Time `json:"datetime"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`

	Ascendant  float64     `json:"ascendant"`
	Midheaven  float64     `json:"midheaven"`
	HouseCusps [12]float64 `json:"houses"`
	Ayanamsa   float64     `json:"ayanamsa"`

	Bodies map[Body]BodyPosition `json:"planets"`
}

// Get returns the position of a body, or false when the chart does not
// carry it.
func (c *Chart) Get(b Body) (BodyPosition, bool) {
	p, ok := c.Bodies[b]
	return p, ok
}
