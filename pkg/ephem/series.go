package ephem

import "github.com/siddhanta-labs/siddhanta/pkg/angle"

// Term is one periodic term of a truncated series. Amplitude and Phase
// are in the unit of the evaluated coordinate (degrees or AU); Frequency
// is in degrees per Julian century.
type Term struct {
	Amplitude float64 `yaml:"amplitude"`
	Phase     float64 `yaml:"phase"`
	Frequency float64 `yaml:"frequency"`
}

// EvalTerms evaluates the periodic summation Σ amplitude·cos(phase +
// frequency·T) at the time argument T (Julian centuries since J2000.0).
// A different precision table may be substituted without changing this
// contract.
func EvalTerms(terms []Term, t float64) float64 {
	var sum float64
	for _, term := range terms {
		sum += term.Amplitude * angle.Cos(term.Phase+term.Frequency*t)
	}
	return sum
}

// Series is one coordinate axis of a body: a mean (linear) part plus a
// truncated periodic part.
type Series struct {
	Offset float64 `yaml:"offset"`
	Rate   float64 `yaml:"rate"`
	Terms  []Term  `yaml:"terms"`
}

// Eval returns Offset + Rate·T + the periodic summation. Angle series are
// normalized at the engine boundary, not here, so radius series stay
// untouched.
func (s Series) Eval(t float64) float64 {
	return s.Offset + s.Rate*t + EvalTerms(s.Terms, t)
}
