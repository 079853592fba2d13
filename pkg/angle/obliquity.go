package angle

// j2000 is the Julian Day of the J2000.0 reference epoch.
const j2000 = 2451545.0

// daysPerJulianYear is the length of the Julian year used for the linear
// ayanamsa rate.
const daysPerJulianYear = 365.25

// Obliquity returns the mean obliquity of the ecliptic in degrees for the
// given Julian Day, from the IAU polynomial in Julian centuries since
// J2000.0. The polynomial is valid for several millennia around the epoch.
func Obliquity(jd float64) float64 {
	t := (jd - j2000) / 36525
	return 23.43929111 + t*(-0.013004167+t*(-1.64e-7+t*5.04e-7))
}

// Default linear ayanamsa coefficients: value at J2000.0 in degrees and
// annual precession rate in arcseconds per Julian year. These approximate
// the Lahiri ayanamsa; substitute the reference table if bit-compatibility
// with a specific sidereal standard is required.
const (
	DefaultAyanamsaAtJ2000 = 23.853
	DefaultAyanamsaRate    = 50.2888
)

// Ayanamsa returns the sidereal correction angle in degrees for the given
// Julian Day using the default linear coefficients.
func Ayanamsa(jd float64) float64 {
	return AyanamsaLinear(jd, DefaultAyanamsaAtJ2000, DefaultAyanamsaRate)
}

// AyanamsaLinear computes a linear ayanamsa from a base value at J2000.0
// (degrees) and a precession rate (arcseconds per Julian year).
func AyanamsaLinear(jd, atJ2000, ratePerYear float64) float64 {
	years := (jd - j2000) / daysPerJulianYear
	return atJ2000 + (ratePerYear/3600)*years
}

// TropicalToSidereal converts a tropical longitude to sidereal by
// subtracting the ayanamsa. The conversion is applied exactly once, at the
// point astrological attributes are derived.
func TropicalToSidereal(lon, ayanamsa float64) float64 {
	return Normalize(lon - ayanamsa)
}
