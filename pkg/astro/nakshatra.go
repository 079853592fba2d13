package astro

// NakshatraSpan is the angular size of one lunar mansion: 13°20'.
const NakshatraSpan = 360.0 / 27.0

// PadaSpan is the angular size of one pada (quarter-mansion): 3°20'.
const PadaSpan = 360.0 / 108.0

// Nakshatra is a lunar mansion, numbered 1 (Ashwini) through 27 (Revati).
type Nakshatra int

var nakshatraNames = [...]string{
	1: "Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra",
	"Punarvasu", "Pushya", "Ashlesha", "Magha", "Purva Phalguni",
	"Uttara Phalguni", "Hasta", "Chitra", "Swati", "Vishakha", "Anuradha",
	"Jyeshtha", "Mula", "Purva Ashadha", "Uttara Ashadha", "Shravana",
	"Dhanishta", "Shatabhisha", "Purva Bhadrapada", "Uttara Bhadrapada",
	"Revati",
}

// String returns the mansion's name.
func (n Nakshatra) String() string {
	if n < 1 || n > 27 {
		return "unknown"
	}
	return nakshatraNames[n]
}

// NakshatraOf returns the lunar mansion containing the given sidereal
// longitude. Boundaries fall at exact multiples of 360/27 degrees.
func NakshatraOf(lon float64) Nakshatra {
	return Nakshatra(int(lon/NakshatraSpan)%27 + 1)
}

// PadaOf returns the pada (1..4) of the given sidereal longitude within
// its mansion.
func PadaOf(lon float64) int {
	inNakshatra := lon - float64(int(lon/NakshatraSpan))*NakshatraSpan
	p := int(inNakshatra/PadaSpan) + 1
	if p > 4 {
		p = 4
	}
	return p
}

// DegreeInNakshatra returns the position within the mansion, in
// [0, NakshatraSpan).
func DegreeInNakshatra(lon float64) float64 {
	return lon - float64(int(lon/NakshatraSpan))*NakshatraSpan
}
