package ephem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvalTerms(t *testing.T) {
	t.Run("empty sum is zero", func(t *testing.T) {
		assert.Equal(t, 0.0, EvalTerms(nil, 0.5))
	})

	t.Run("constant term", func(t *testing.T) {
		terms := []Term{{Amplitude: 2, Phase: 0, Frequency: 0}}
		assert.InDelta(t, 2.0, EvalTerms(terms, 0), 1e-12)
		assert.InDelta(t, 2.0, EvalTerms(terms, 3.7), 1e-12)
	})

	t.Run("phase shifts the cosine", func(t *testing.T) {
		terms := []Term{{Amplitude: 1, Phase: 90, Frequency: 0}}
		assert.InDelta(t, 0.0, EvalTerms(terms, 0), 1e-12)
	})

	t.Run("frequency advances with time", func(t *testing.T) {
		terms := []Term{{Amplitude: 1, Phase: 0, Frequency: 180}}
		assert.InDelta(t, 1.0, EvalTerms(terms, 0), 1e-12)
		assert.InDelta(t, -1.0, EvalTerms(terms, 1), 1e-12)
		assert.InDelta(t, 1.0, EvalTerms(terms, 2), 1e-12)
	})

	t.Run("terms add", func(t *testing.T) {
		terms := []Term{
			{Amplitude: 3, Phase: 0, Frequency: 0},
			{Amplitude: -1, Phase: 0, Frequency: 0},
		}
		assert.InDelta(t, 2.0, EvalTerms(terms, 0), 1e-12)
	})
}

func TestSeries_Eval(t *testing.T) {
	s := Series{
		Offset: 100,
		Rate:   10,
		Terms:  []Term{{Amplitude: 5, Phase: 0, Frequency: 0}},
	}
	assert.InDelta(t, 105.0, s.Eval(0), 1e-12)
	assert.InDelta(t, 125.0, s.Eval(2), 1e-12)

	// The linear part is untouched by Normalize at this level: a radius
	// series may legitimately exceed 360.
	big := Series{Offset: 700}
	assert.InDelta(t, 700.0, big.Eval(0), 1e-12)
}
