package astro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignOf(t *testing.T) {
	tests := []struct {
		lon  float64
		want Sign
	}{
		{0, Aries},
		{29.999, Aries},
		{30, Taurus},
		{95, Cancer},
		{359.999, Pisces},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SignOf(tt.lon), "lon %v", tt.lon)
	}
}

func TestDegreeInSign(t *testing.T) {
	assert.InDelta(t, 5.0, DegreeInSign(95), 1e-12)
	assert.InDelta(t, 0.0, DegreeInSign(30), 1e-12)
	assert.InDelta(t, 29.999, DegreeInSign(29.999), 1e-12)
}

func TestNakshatraOf(t *testing.T) {
	tests := []struct {
		lon  float64
		want Nakshatra
	}{
		{0, 1},
		{NakshatraSpan - 1e-9, 1},
		{NakshatraSpan, 2},
		{95, 8}, // 95 / 13.333... = 7.125
		{359.999, 27},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NakshatraOf(tt.lon), "lon %v", tt.lon)
	}

	assert.Equal(t, "Pushya", NakshatraOf(95).String())
	assert.Equal(t, "Ashwini", Nakshatra(1).String())
	assert.Equal(t, "Revati", Nakshatra(27).String())
}

func TestPadaOf(t *testing.T) {
	tests := []struct {
		lon  float64
		want int
	}{
		{0, 1},
		{PadaSpan, 2},
		{2 * PadaSpan, 3},
		{3 * PadaSpan, 4},
		{NakshatraSpan - 1e-9, 4},
		{95, 1}, // 95 into Pushya by 1.666..., first quarter
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PadaOf(tt.lon), "lon %v", tt.lon)
	}
}

func TestDegreeInNakshatra(t *testing.T) {
	assert.InDelta(t, 0.0, DegreeInNakshatra(0), 1e-12)
	assert.InDelta(t, 95-7*NakshatraSpan, DegreeInNakshatra(95), 1e-12)
}

func TestParseBody(t *testing.T) {
	for _, body := range Bodies {
		parsed, ok := ParseBody(body.String())
		require.True(t, ok)
		assert.Equal(t, body, parsed)
	}

	// Case-insensitive.
	parsed, ok := ParseBody("Jupiter")
	require.True(t, ok)
	assert.Equal(t, Jupiter, parsed)

	_, ok = ParseBody("pluto")
	assert.False(t, ok)
}

func TestBody_TextRoundTrip(t *testing.T) {
	for _, body := range Bodies {
		text, err := body.MarshalText()
		require.NoError(t, err)

		var back Body
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, body, back)
	}

	var b Body
	err := b.UnmarshalText([]byte("vulcan"))
	var ube *UnknownBodyError
	require.ErrorAs(t, err, &ube)
	assert.Equal(t, "vulcan", ube.Name)
}

func TestSign_Lord(t *testing.T) {
	tests := []struct {
		sign Sign
		want Body
	}{
		{Aries, Mars},
		{Cancer, Moon},
		{Leo, Sun},
		{Libra, Venus},
		{Aquarius, Saturn},
		{Pisces, Jupiter},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.sign.Lord(), "sign %s", tt.sign)
	}
}

func TestDignityOf(t *testing.T) {
	tests := []struct {
		body Body
		sign Sign
		want Dignity
	}{
		{Sun, Aries, DignityExalted},
		{Sun, Libra, DignityDebilitated},
		{Sun, Leo, DignityNeutral},
		{Moon, Taurus, DignityExalted},
		{Saturn, Libra, DignityExalted},
		{Saturn, Aries, DignityDebilitated},
		{Rahu, Taurus, DignityExalted},
		{Ketu, Scorpio, DignityExalted},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DignityOf(tt.body, tt.sign),
			"%s in %s", tt.body, tt.sign)
	}

	// Debilitation always opposes exaltation by six signs.
	for _, body := range Bodies {
		ex := exaltationSigns[body]
		de := debilitationSigns[body]
		assert.Equal(t, (int(ex)+5)%12+1, int(de), "body %s", body)
	}
}

func TestMeanDailyMotion(t *testing.T) {
	assert.InDelta(t, 0.98565, MeanDailyMotion(Sun), 1e-12)
	assert.InDelta(t, 13.17640, MeanDailyMotion(Moon), 1e-12)

	// Nodes regress.
	assert.Negative(t, MeanDailyMotion(Rahu))
	assert.Equal(t, MeanDailyMotion(Rahu), MeanDailyMotion(Ketu))
}
