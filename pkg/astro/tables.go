package astro

// Dignity classifies a body's standing in its occupied sign.
type Dignity int

// Dignity states.
const (
	DignityNeutral Dignity = iota
	DignityExalted
	DignityDebilitated
)

// String returns the dignity label used in JSON output.
func (d Dignity) String() string {
	switch d {
	case DignityExalted:
		return "exalted"
	case DignityDebilitated:
		return "debilitated"
	default:
		return "neutral"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d Dignity) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Dignity) UnmarshalText(text []byte) error {
	switch string(text) {
	case "exalted":
		*d = DignityExalted
	case "debilitated":
		*d = DignityDebilitated
	default:
		*d = DignityNeutral
	}
	return nil
}

// signLords maps each sign to its ruling body.
var signLords = map[Sign]Body{
	Aries:       Mars,
	Taurus:      Venus,
	Gemini:      Mercury,
	Cancer:      Moon,
	Leo:         Sun,
	Virgo:       Mercury,
	Libra:       Venus,
	Scorpio:     Mars,
	Sagittarius: Jupiter,
	Capricorn:   Saturn,
	Aquarius:    Saturn,
	Pisces:      Jupiter,
}

// Lord returns the body ruling the sign.
func (s Sign) Lord() Body {
	return signLords[s]
}

// exaltationSigns maps each body to the sign of its exaltation.
// The nodes follow the common Taurus/Scorpio attribution.
var exaltationSigns = map[Body]Sign{
	Sun:     Aries,
	Moon:    Taurus,
	Mercury: Virgo,
	Venus:   Pisces,
	Mars:    Capricorn,
	Jupiter: Cancer,
	Saturn:  Libra,
	Rahu:    Taurus,
	Ketu:    Scorpio,
}

// debilitationSigns maps each body to the sign of its debilitation,
// always opposite the exaltation sign.
var debilitationSigns = map[Body]Sign{
	Sun:     Libra,
	Moon:    Scorpio,
	Mercury: Pisces,
	Venus:   Virgo,
	Mars:    Cancer,
	Jupiter: Capricorn,
	Saturn:  Aries,
	Rahu:    Scorpio,
	Ketu:    Taurus,
}

// DignityOf returns the dignity of a body occupying a sign.
func DignityOf(b Body, s Sign) Dignity {
	if exaltationSigns[b] == s {
		return DignityExalted
	}
	if debilitationSigns[b] == s {
		return DignityDebilitated
	}
	return DignityNeutral
}

// meanDailyMotions holds the mean geocentric daily motion of each body in
// degrees per day, used by the transit projection. The nodes move
// retrograde at the mean nodal rate.
var meanDailyMotions = map[Body]float64{
	Sun:     0.98565,
	Moon:    13.17640,
	Mercury: 1.38330,
	Venus:   1.20000,
	Mars:    0.52403,
	Jupiter: 0.08309,
	Saturn:  0.03346,
	Rahu:    -0.05295,
	Ketu:    -0.05295,
}

// MeanDailyMotion returns the mean daily motion of a body in degrees per
// day. This is a long-term average, not an instantaneous speed.
func MeanDailyMotion(b Body) float64 {
	return meanDailyMotions[b]
}
