package angle

import "fmt"

// DMS is a sexagesimal angle: degrees, arcminutes, arcseconds.
// Sign carries the sign of the whole angle; Degrees, Minutes and Seconds
// are always non-negative.
type DMS struct {
	Sign    int // +1 or -1
	Degrees int
	Minutes int
	Seconds float64
}

// ToDMS converts a decimal angle to sexagesimal form.
func ToDMS(deg float64) DMS {
	sign := 1
	if deg < 0 {
		sign = -1
		deg = -deg
	}

	d := int(deg)
	rem := (deg - float64(d)) * 60
	m := int(rem)
	s := (rem - float64(m)) * 60

	// Guard against 59.999999... rolling over during formatting.
	if s >= 60 {
		s -= 60
		m++
	}
	if m >= 60 {
		m -= 60
		d++
	}

	return DMS{Sign: sign, Degrees: d, Minutes: m, Seconds: s}
}

// Decimal converts a sexagesimal angle back to decimal degrees.
func (d DMS) Decimal() float64 {
	v := float64(d.Degrees) + float64(d.Minutes)/60 + d.Seconds/3600
	if d.Sign < 0 {
		return -v
	}
	return v
}

// String formats the angle as e.g. `23°26'21.4"`.
func (d DMS) String() string {
	sign := ""
	if d.Sign < 0 {
		sign = "-"
	}
	return fmt.Sprintf("%s%d°%02d'%04.1f\"", sign, d.Degrees, d.Minutes, d.Seconds)
}
