// Package angle provides degree-based angle utilities shared by the
// ephemeris, house, chart, and transit packages.
//
// All public functions take and return degrees. Conversion to radians
// happens at the trigonometric call site only, so a mixed-unit value can
// never cross a package boundary.
package angle

import "math"

// Normalize reduces an angle to the range [0, 360).
// It is idempotent: Normalize(Normalize(x)) == Normalize(x).
func Normalize(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Separation returns the minimal angular distance between two longitudes,
// in the range [0, 180].
func Separation(a, b float64) float64 {
	d := Normalize(a - b)
	if d > 180 {
		d = 360 - d
	}
	return d
}

// WrapDelta reduces an angle difference to the range [-180, 180).
// Used for signed motion between two longitudes.
func WrapDelta(deg float64) float64 {
	d := math.Mod(deg+180, 360)
	if d < 0 {
		d += 360
	}
	return d - 180
}

// Sin returns the sine of an angle given in degrees.
func Sin(deg float64) float64 { return math.Sin(deg * math.Pi / 180) }

// Cos returns the cosine of an angle given in degrees.
func Cos(deg float64) float64 { return math.Cos(deg * math.Pi / 180) }

// Tan returns the tangent of an angle given in degrees.
func Tan(deg float64) float64 { return math.Tan(deg * math.Pi / 180) }

// Asin returns the arcsine in degrees.
func Asin(x float64) float64 { return math.Asin(x) * 180 / math.Pi }

// Acos returns the arccosine in degrees.
func Acos(x float64) float64 { return math.Acos(x) * 180 / math.Pi }

// Atan2 returns the quadrant-correct arctangent of y/x in degrees.
func Atan2(y, x float64) float64 { return math.Atan2(y, x) * 180 / math.Pi }
