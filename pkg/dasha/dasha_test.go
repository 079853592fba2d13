package dasha

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siddhanta-labs/siddhanta/pkg/astro"
)

var birth = time.Date(1990, 6, 15, 9, 0, 0, 0, time.UTC)

func TestTimeline_StartLord(t *testing.T) {
	tests := []struct {
		nakshatra int
		want      astro.Body
	}{
		{1, astro.Ketu},    // Ashwini
		{3, astro.Sun},     // Krittika
		{8, astro.Saturn},  // Pushya
		{9, astro.Mercury}, // Ashlesha
		{10, astro.Ketu},   // Magha, cycle repeats
		{19, astro.Ketu},   // Mula
		{27, astro.Mercury},
	}

	for _, tt := range tests {
		periods, err := Timeline(tt.nakshatra, 0, birth, 1)
		require.NoError(t, err)
		assert.Equal(t, tt.want, periods[0].Lord, "nakshatra %d", tt.nakshatra)
	}
}

func TestTimeline_FullFirstPeriod(t *testing.T) {
	// Degree zero means the mansion is untraversed: the birth lord gets
	// its full allotment and the nine periods sum to the complete cycle.
	periods, err := Timeline(1, 0, birth, 1)
	require.NoError(t, err)
	require.Len(t, periods, 9)

	assert.Equal(t, astro.Ketu, periods[0].Lord)
	assert.InDelta(t, 7.0, periods[0].Years, 1e-12)
	assert.Equal(t, birth, periods[0].Start)

	var total float64
	for _, p := range periods {
		total += p.Years
	}
	assert.InDelta(t, CycleYears, total, 1e-12)
}

func TestTimeline_Residual(t *testing.T) {
	// Halfway through the mansion leaves half the lord's allotment.
	periods, err := Timeline(1, astro.NakshatraSpan/2, birth, 1)
	require.NoError(t, err)
	assert.InDelta(t, 3.5, periods[0].Years, 1e-9)

	// The remaining eight periods carry their full years.
	assert.InDelta(t, 20.0, periods[1].Years, 1e-12) // Venus
	assert.InDelta(t, 6.0, periods[2].Years, 1e-12)  // Sun

	var total float64
	for _, p := range periods {
		total += p.Years
	}
	assert.InDelta(t, CycleYears-3.5, total, 1e-9)
}

func TestTimeline_Contiguous(t *testing.T) {
	periods, err := Timeline(14, 7.25, birth, 2)
	require.NoError(t, err)

	for i := 0; i < len(periods)-1; i++ {
		assert.Equal(t, periods[i].End, periods[i+1].Start,
			"gap between period %d and %d", i, i+1)
	}
	assert.True(t, periods[0].Start.Equal(birth))
}

func TestTimeline_SubPeriods(t *testing.T) {
	periods, err := Timeline(1, 0, birth, 2)
	require.NoError(t, err)

	for _, p := range periods {
		require.Len(t, p.Sub, 9, "lord %s", p.Lord)

		// The first sub-period belongs to the period's own lord.
		assert.Equal(t, p.Lord, p.Sub[0].Lord)

		// Sub-period durations sum to the parent duration.
		var total float64
		for _, s := range p.Sub {
			total += s.Years
		}
		assert.InDelta(t, p.Years, total, 1e-9)

		// Contiguous, and pinned to the parent's boundaries.
		assert.WithinDuration(t, p.Start, p.Sub[0].Start, time.Millisecond)
		assert.WithinDuration(t, p.End, p.Sub[8].End, time.Millisecond)
		for i := 0; i < 8; i++ {
			assert.Equal(t, p.Sub[i].End, p.Sub[i+1].Start)
		}

		// Sub-period size is proportional: the lord's share of the parent.
		for _, s := range p.Sub {
			assert.InDelta(t, p.Years*LordYears(s.Lord)/CycleYears, s.Years, 1e-12)
		}
	}
}

func TestTimeline_ThreeLevels(t *testing.T) {
	periods, err := Timeline(5, 2.5, birth, 3)
	require.NoError(t, err)

	sub := periods[3].Sub
	require.Len(t, sub, 9)
	subsub := sub[4].Sub
	require.Len(t, subsub, 9)

	// Third level cycles from the second-level lord.
	assert.Equal(t, sub[4].Lord, subsub[0].Lord)

	var total float64
	for _, s := range subsub {
		total += s.Years
	}
	assert.InDelta(t, sub[4].Years, total, 1e-9)

	// Depth stops where requested.
	assert.Nil(t, subsub[0].Sub)
}

func TestTimeline_InvalidInput(t *testing.T) {
	tests := []struct {
		name      string
		nakshatra int
		degree    float64
		field     string
	}{
		{"nakshatra zero", 0, 0, "nakshatra"},
		{"nakshatra too large", 28, 0, "nakshatra"},
		{"negative degree", 1, -0.1, "degree"},
		{"degree at span", 1, astro.NakshatraSpan, "degree"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Timeline(tt.nakshatra, tt.degree, birth, 1)
			var iie *InvalidInputError
			require.ErrorAs(t, err, &iie)
			assert.Equal(t, tt.field, iie.Field)
		})
	}
}

func TestFromMoon(t *testing.T) {
	// Moon at 95 degrees sidereal: Pushya, 1.666... degrees in.
	moon := astro.BodyPosition{
		Body:      astro.Moon,
		Nakshatra: astro.NakshatraOf(95),
	}
	moon.Longitude = 95

	periods, err := FromMoon(moon, birth, 1)
	require.NoError(t, err)
	assert.Equal(t, astro.Saturn, periods[0].Lord)

	want := (astro.NakshatraSpan - astro.DegreeInNakshatra(95)) /
		astro.NakshatraSpan * LordYears(astro.Saturn)
	assert.InDelta(t, want, periods[0].Years, 1e-9)
}

func TestActive(t *testing.T) {
	periods, err := Timeline(1, 0, birth, 2)
	require.NoError(t, err)

	t.Run("inside second period", func(t *testing.T) {
		// Ketu runs 7 years; year 10 falls in the Venus period.
		at := birth.AddDate(10, 0, 0)
		chain := Active(periods, at)
		require.Len(t, chain, 2)
		assert.Equal(t, astro.Venus, chain[0].Lord)
		assert.True(t, !at.Before(chain[1].Start) && at.Before(chain[1].End))
	})

	t.Run("at birth", func(t *testing.T) {
		chain := Active(periods, birth)
		require.NotEmpty(t, chain)
		assert.Equal(t, astro.Ketu, chain[0].Lord)
	})

	t.Run("before birth", func(t *testing.T) {
		assert.Nil(t, Active(periods, birth.Add(-time.Hour)))
	})

	t.Run("after cycle end", func(t *testing.T) {
		assert.Nil(t, Active(periods, birth.AddDate(130, 0, 0)))
	})
}

func TestLordYears_SumsToCycle(t *testing.T) {
	var total float64
	for _, lord := range lordOrder {
		total += LordYears(lord)
	}
	assert.Equal(t, CycleYears, total)
}
