// Package ephem computes geocentric ecliptic positions of the nine chart
// bodies from truncated periodic series.
//
// Planet positions come from heliocentric series derived from J2000
// Keplerian mean elements; the Sun and Moon use dedicated low-order
// geocentric series, and the lunar nodes use the mean node. Precision
// degrades gracefully outside roughly ±3000 years from J2000.0 because the
// series are truncated; that is a documented caveat, not an error.
package ephem

import (
	"math"
	"time"
)

// J2000 is the Julian Day of the J2000.0 reference epoch
// (2000-01-01 12:00 TT).
const J2000 = 2451545.0

// JulianDay converts a proleptic-Gregorian calendar date to a Julian Day.
// hours is the time of day in decimal hours UT. Any finite date is
// accepted, including dates before year 1.
func JulianDay(year, month, day int, hours float64) float64 {
	y, m := year, month
	if m <= 2 {
		y--
		m += 12
	}
	a := y / 100
	b := 2 - a + a/4
	return math.Floor(365.25*float64(y+4716)) +
		math.Floor(30.6001*float64(m+1)) +
		float64(day) + float64(b) - 1524.5 + hours/24
}

// CenturiesSinceJ2000 returns the time argument T in Julian centuries
// since J2000.0.
func CenturiesSinceJ2000(jd float64) float64 {
	return (jd - J2000) / 36525
}

// GMST returns the Greenwich mean sidereal time in degrees for the given
// Julian Day.
func GMST(jd float64) float64 {
	t := CenturiesSinceJ2000(jd)
	gmst := 280.46061837 + 360.98564736629*(jd-J2000) +
		0.000387933*t*t - t*t*t/38710000
	gmst = math.Mod(gmst, 360)
	if gmst < 0 {
		gmst += 360
	}
	return gmst
}

// TimeToJD converts a time.Time to a Julian Day.
func TimeToJD(t time.Time) float64 {
	u := t.UTC()
	hours := float64(u.Hour()) + float64(u.Minute())/60 +
		(float64(u.Second())+float64(u.Nanosecond())/1e9)/3600
	return JulianDay(u.Year(), int(u.Month()), u.Day(), hours)
}

// JDToTime converts a Julian Day to a time.Time in UTC.
func JDToTime(jd float64) time.Time {
	// Unix epoch 1970-01-01T00:00Z is JD 2440587.5.
	secs := (jd - 2440587.5) * 86400
	sec := math.Floor(secs)
	nsec := (secs - sec) * 1e9
	return time.Unix(int64(sec), int64(nsec)).UTC()
}

// Instant is a civil date, time and UTC offset. It converts to a Julian
// Day purely as a function of its calendar fields.
type Instant struct {
	Year, Month, Day     int
	Hour, Minute, Second int
	UTCOffsetHours       float64
}

// JulianDay returns the Julian Day of the instant in UT.
func (i Instant) JulianDay() float64 {
	hours := float64(i.Hour) + float64(i.Minute)/60 + float64(i.Second)/3600
	return JulianDay(i.Year, i.Month, i.Day, hours-i.UTCOffsetHours)
}

// Time returns the instant as a time.Time in UTC.
func (i Instant) Time() time.Time {
	return JDToTime(i.JulianDay())
}
