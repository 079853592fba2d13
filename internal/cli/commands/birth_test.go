package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siddhanta-labs/siddhanta/pkg/ephem"
)

func TestBirthFlags_Instant(t *testing.T) {
	flags := &BirthFlags{
		Date:      "1990-06-15",
		Time:      "14:30:00",
		UTCOffset: 5.5,
		Latitude:  28.6139,
		Longitude: 77.2090,
	}

	instant, err := flags.Instant()
	require.NoError(t, err)

	assert.Equal(t, ephem.Instant{
		Year: 1990, Month: 6, Day: 15,
		Hour: 14, Minute: 30,
		UTCOffsetHours: 5.5,
	}, instant)
	assert.Equal(t, 2448057.875, instant.JulianDay())
}

func TestBirthFlags_Validation(t *testing.T) {
	valid := BirthFlags{Date: "2000-01-01", Time: "12:00:00"}

	tests := []struct {
		name    string
		mutate  func(*BirthFlags)
		wantErr string
	}{
		{"valid", func(f *BirthFlags) {}, ""},
		{"bad date", func(f *BirthFlags) { f.Date = "01/01/2000" }, "invalid date"},
		{"bad time", func(f *BirthFlags) { f.Time = "noon" }, "invalid time"},
		{"latitude too high", func(f *BirthFlags) { f.Latitude = 91 }, "latitude out of range"},
		{"latitude too low", func(f *BirthFlags) { f.Latitude = -90.5 }, "latitude out of range"},
		{"longitude too high", func(f *BirthFlags) { f.Longitude = 181 }, "longitude out of range"},
		{"offset too high", func(f *BirthFlags) { f.UTCOffset = 15 }, "utc offset out of range"},
		{"offset too low", func(f *BirthFlags) { f.UTCOffset = -14.5 }, "utc offset out of range"},
		{"pole is valid", func(f *BirthFlags) { f.Latitude = 90 }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := valid
			tt.mutate(&f)
			_, err := f.Instant()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
