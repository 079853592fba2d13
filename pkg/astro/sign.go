package astro

// Sign is a zodiac sign, numbered 1 (Aries) through 12 (Pisces).
type Sign int

// Zodiac signs.
const (
	Aries Sign = iota + 1
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

var signNames = [...]string{
	Aries:       "Aries",
	Taurus:      "Taurus",
	Gemini:      "Gemini",
	Cancer:      "Cancer",
	Leo:         "Leo",
	Virgo:       "Virgo",
	Libra:       "Libra",
	Scorpio:     "Scorpio",
	Sagittarius: "Sagittarius",
	Capricorn:   "Capricorn",
	Aquarius:    "Aquarius",
	Pisces:      "Pisces",
}

// String returns the sign's name.
func (s Sign) String() string {
	if s < Aries || s > Pisces {
		return "unknown"
	}
	return signNames[s]
}

// SignOf returns the sign containing the given sidereal longitude.
// Sign boundaries fall at exact multiples of 30 degrees.
func SignOf(lon float64) Sign {
	return Sign(int(lon/30)%12 + 1)
}

// DegreeInSign returns the position within the sign, in [0, 30).
func DegreeInSign(lon float64) float64 {
	return lon - float64(int(lon/30))*30
}
