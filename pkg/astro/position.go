package astro

// Position is a geocentric ecliptic position. Longitude is always
// normalized into [0, 360); Distance is in astronomical units; Speed is
// the instantaneous longitudinal motion in degrees per day.
type Position struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
	Distance  float64 `json:"distance"`
	Speed     float64 `json:"speed"`
}

// BodyPosition is a body's position together with the astrological
// attributes derived from its sidereal longitude. Derived fields are pure
// functions of longitude, ascendant and ayanamsa; they are recomputed,
// never independently set.
type BodyPosition struct {
	Body Body `json:"-"`
	Position

	Sign          Sign      `json:"sign"`
	SignName      string    `json:"sign_name"`
	DegreeInSign  float64   `json:"degree_in_sign"`
	House         int       `json:"house"`
	Nakshatra     Nakshatra `json:"nakshatra"`
	NakshatraName string    `json:"nakshatra_name"`
	Pada          int       `json:"pada"`
	Retrograde    bool      `json:"retrograde"`
	Strength      int       `json:"strength"`
	Dignity       Dignity   `json:"dignity"`
}
