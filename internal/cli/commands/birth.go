package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/siddhanta-labs/siddhanta/pkg/ephem"
)

// BirthFlags are the shared birth-data flags: date, time, UTC offset and
// geographic location. Validation happens here, before the core is
// invoked; the core assumes already-validated values.
type BirthFlags struct {
	Date      string
	Time      string
	UTCOffset float64
	Latitude  float64
	Longitude float64
}

// addBirthFlags registers the shared birth-data flags on a command.
func addBirthFlags(cmd *cobra.Command, f *BirthFlags) {
	cmd.Flags().StringVar(&f.Date, "date", "", "Birth date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.Time, "time", "12:00:00", "Birth time (HH:MM:SS)")
	cmd.Flags().Float64Var(&f.UTCOffset, "utc-offset", 0, "UTC offset in hours (e.g. 5.5)")
	cmd.Flags().Float64Var(&f.Latitude, "lat", 0, "Geographic latitude in degrees")
	cmd.Flags().Float64Var(&f.Longitude, "lon", 0, "Geographic longitude in degrees")
	_ = cmd.MarkFlagRequired("date")
}

// Instant validates the flags and converts them to an ephem.Instant plus
// location.
func (f *BirthFlags) Instant() (ephem.Instant, error) {
	date, err := time.Parse("2006-01-02", f.Date)
	if err != nil {
		return ephem.Instant{}, fmt.Errorf("invalid date %q: %w", f.Date, err)
	}
	clock, err := time.Parse("15:04:05", f.Time)
	if err != nil {
		return ephem.Instant{}, fmt.Errorf("invalid time %q: %w", f.Time, err)
	}
	if f.Latitude < -90 || f.Latitude > 90 {
		return ephem.Instant{}, fmt.Errorf("latitude out of range: %v", f.Latitude)
	}
	if f.Longitude < -180 || f.Longitude > 180 {
		return ephem.Instant{}, fmt.Errorf("longitude out of range: %v", f.Longitude)
	}
	if f.UTCOffset < -14 || f.UTCOffset > 14 {
		return ephem.Instant{}, fmt.Errorf("utc offset out of range: %v", f.UTCOffset)
	}

	return ephem.Instant{
		Year:           date.Year(),
		Month:          int(date.Month()),
		Day:            date.Day(),
		Hour:           clock.Hour(),
		Minute:         clock.Minute(),
		Second:         clock.Second(),
		UTCOffsetHours: f.UTCOffset,
	}, nil
}
