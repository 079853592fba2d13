package ephem

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siddhanta-labs/siddhanta/pkg/angle"
	"github.com/siddhanta-labs/siddhanta/pkg/astro"
)

// Reference positions at J2000.0 evaluated directly from the built-in
// tables. These pin the full pipeline: element expansion, series
// evaluation, the heliocentric-to-geocentric subtraction and the
// central-difference speed.
func TestEngine_Geocentric_J2000(t *testing.T) {
	tests := []struct {
		body     astro.Body
		lon, lat float64
		dist     float64
		speed    float64
	}{
		{astro.Sun, 280.382158, 0.0, 0.983308, 1.019251},
		{astro.Moon, 223.268373, 5.095162, 0.002688, 11.958457},
		{astro.Mercury, 271.965117, -0.935318, 1.416066, 1.556009},
		{astro.Venus, 241.569948, 2.072719, 1.137416, 1.207921},
		{astro.Mars, 327.960042, -1.126893, 1.849606, 0.775593},
		{astro.Jupiter, 25.346520, -1.281505, 4.621643, 0.040510},
		{astro.Saturn, 40.219533, -2.365207, 8.642922, -0.019627},
		{astro.Rahu, 125.044548, 0.0, 0.002574, -0.052954},
		{astro.Ketu, 305.044548, 0.0, 0.002574, -0.052954},
	}

	engine := NewEngine()
	for _, tt := range tests {
		t.Run(tt.body.String(), func(t *testing.T) {
			pos, err := engine.Geocentric(tt.body, J2000)
			require.NoError(t, err)
			assert.InDelta(t, tt.lon, pos.Longitude, 1e-5)
			assert.InDelta(t, tt.lat, pos.Latitude, 1e-5)
			assert.InDelta(t, tt.dist, pos.Distance, 1e-5)
			assert.InDelta(t, tt.speed, pos.Speed, 1e-5)
		})
	}
}

func TestEngine_Geocentric_SaturnRetrograde(t *testing.T) {
	// Saturn was retrograde at the J2000 epoch: the central-difference
	// speed must come out negative.
	engine := NewEngine()
	pos, err := engine.Geocentric(astro.Saturn, J2000)
	require.NoError(t, err)
	assert.Negative(t, pos.Speed)
}

func TestEngine_Geocentric_SunAtEquinox(t *testing.T) {
	// Around the March 2000 equinox the Sun's tropical longitude crosses
	// zero. The truncated series lands within a few hundredths of a degree.
	engine := NewEngine()
	jd := JulianDay(2000, 3, 20, 7.5)
	pos, err := engine.Geocentric(astro.Sun, jd)
	require.NoError(t, err)
	assert.Less(t, angle.Separation(pos.Longitude, 0), 0.05)
}

func TestEngine_Geocentric_KetuOppositeRahu(t *testing.T) {
	engine := NewEngine()
	for _, jd := range []float64{J2000, J2000 + 1000, J2000 - 5000} {
		rahu, err := engine.Geocentric(astro.Rahu, jd)
		require.NoError(t, err)
		ketu, err := engine.Geocentric(astro.Ketu, jd)
		require.NoError(t, err)

		assert.InDelta(t, 180.0, angle.Separation(rahu.Longitude, ketu.Longitude), 1e-9)
		assert.InDelta(t, -rahu.Latitude, ketu.Latitude, 1e-12)
	}
}

func TestEngine_Geocentric_NodesAlwaysRetrograde(t *testing.T) {
	engine := NewEngine()
	for _, jd := range []float64{J2000, J2000 + 365.25, J2000 + 10000} {
		pos, err := engine.Geocentric(astro.Rahu, jd)
		require.NoError(t, err)
		assert.Negative(t, pos.Speed, "node must be retrograde at jd %v", jd)
	}
}

func TestEngine_Heliocentric(t *testing.T) {
	engine := NewEngine()

	x, y, z, err := engine.Heliocentric(astro.Mars, J2000)
	require.NoError(t, err)
	r := x*x + y*y + z*z
	assert.Greater(t, r, 1.0)
	assert.Less(t, r, 4.0)

	// Bodies without a heliocentric series are rejected.
	for _, body := range []astro.Body{astro.Sun, astro.Moon, astro.Rahu, astro.Ketu} {
		_, _, _, err := engine.Heliocentric(body, J2000)
		var ube *astro.UnknownBodyError
		require.ErrorAs(t, err, &ube, "expected UnknownBodyError for %s", body)
	}
}

func TestEngine_Positions(t *testing.T) {
	engine := NewEngine()
	positions, err := engine.Positions(context.Background(), J2000)
	require.NoError(t, err)
	require.Len(t, positions, len(astro.Bodies))

	for _, body := range astro.Bodies {
		pos, ok := positions[body]
		require.True(t, ok, "missing body %s", body)
		assert.GreaterOrEqual(t, pos.Longitude, 0.0)
		assert.Less(t, pos.Longitude, 360.0)
		assert.Positive(t, pos.Distance)
	}

	// Fan-out must agree with the serial path exactly.
	serial, err := engine.Geocentric(astro.Moon, J2000)
	require.NoError(t, err)
	assert.Equal(t, serial, positions[astro.Moon])
}

func TestEngine_WithTables(t *testing.T) {
	// An override replaces only the named body; everything else keeps the
	// built-in series.
	override := map[astro.Body]BodyTable{
		astro.Sun: {
			Longitude: Series{Offset: 42},
			Radius:    Series{Offset: 1},
		},
	}
	engine := NewEngine(WithTables(override))

	sun, err := engine.Geocentric(astro.Sun, J2000)
	require.NoError(t, err)
	assert.InDelta(t, 42.0, sun.Longitude, 1e-12)

	stock := NewEngine()
	want, err := stock.Geocentric(astro.Moon, J2000)
	require.NoError(t, err)
	got, err := engine.Geocentric(astro.Moon, J2000)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestEngine_ErrorsUnwrap(t *testing.T) {
	err := &astro.UnknownBodyError{Name: "pluto"}
	assert.EqualError(t, err, "unknown body: pluto")
	var target *astro.UnknownBodyError
	assert.True(t, errors.As(err, &target))
}
