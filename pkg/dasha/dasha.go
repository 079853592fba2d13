// Package dasha builds Vimshottari planetary-period timelines: the
// 120-year cycle of nine planetary lords, entered at the birth Moon's
// lunar mansion, with one level of sub-periods (antardasha) by default and
// a second level (pratyantardasha) available behind the levels parameter.
package dasha

import (
	"fmt"
	"time"

	"github.com/siddhanta-labs/siddhanta/pkg/astro"
)

// CycleYears is the length of the full Vimshottari cycle.
const CycleYears = 120.0

// daysPerYear converts period years to days for boundary dates.
const daysPerYear = 365.25

// lordOrder is the fixed cyclic order of the nine period lords.
var lordOrder = [9]astro.Body{
	astro.Ketu,
	astro.Venus,
	astro.Sun,
	astro.Moon,
	astro.Mars,
	astro.Rahu,
	astro.Jupiter,
	astro.Saturn,
	astro.Mercury,
}

// lordYears is each lord's allotment in the 120-year cycle.
var lordYears = map[astro.Body]float64{
	astro.Ketu:    7,
	astro.Venus:   20,
	astro.Sun:     6,
	astro.Moon:    10,
	astro.Mars:    7,
	astro.Rahu:    18,
	astro.Jupiter: 16,
	astro.Saturn:  19,
	astro.Mercury: 17,
}

// LordYears returns a lord's full allotment in years.
func LordYears(b astro.Body) float64 {
	return lordYears[b]
}

// Period is one node of the timeline. Sub-period durations sum exactly to
// Years, and sibling periods are contiguous: Sub[i].End == Sub[i+1].Start.
type Period struct {
	Lord  astro.Body `json:"lord"`
	Start time.Time  `json:"start"`
	End   time.Time  `json:"end"`
	Years float64    `json:"years"`
	Sub   []Period   `json:"sub,omitempty"`
}

// InvalidInputError reports a caller contract violation: a nakshatra index
// outside 1..27 or a degree outside the mansion span. Inputs are never
// clamped.
type InvalidInputError struct {
	Field string
	Value float64
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("dasha: %s out of range: %v", e.Field, e.Value)
}

// Timeline builds the nine top-level periods starting from the birth
// Moon's mansion. nakshatra is the mansion index (1..27);
// degreeInNakshatra the Moon's progress into it (degrees); birth the birth
// instant. levels is the subdivision depth: 1 for main periods only, 2
// adds antardasha, 3 adds pratyantardasha.
//
// The first period carries the residual of the birth lord: the untraversed
// fraction of the mansion times the lord's full allotment. Boundary dates
// derive from cumulative years off the birth instant, so sibling periods
// are contiguous and durations sum exactly by construction.
func Timeline(nakshatra int, degreeInNakshatra float64, birth time.Time, levels int) ([]Period, error) {
	if nakshatra < 1 || nakshatra > 27 {
		return nil, &InvalidInputError{Field: "nakshatra", Value: float64(nakshatra)}
	}
	if degreeInNakshatra < 0 || degreeInNakshatra >= astro.NakshatraSpan {
		return nil, &InvalidInputError{Field: "degree", Value: degreeInNakshatra}
	}
	if levels < 1 {
		levels = 1
	}

	startIdx := (nakshatra - 1) % 9
	birthLord := lordOrder[startIdx]
	residual := (astro.NakshatraSpan - degreeInNakshatra) / astro.NakshatraSpan * lordYears[birthLord]

	periods := make([]Period, 0, 9)
	elapsed := 0.0
	for i := 0; i < 9; i++ {
		lord := lordOrder[(startIdx+i)%9]
		years := lordYears[lord]
		if i == 0 {
			years = residual
		}

		p := Period{
			Lord:  lord,
			Start: dateAt(birth, elapsed),
			End:   dateAt(birth, elapsed+years),
			Years: years,
		}
		if levels > 1 {
			p.Sub = subdivide(lord, birth, elapsed, years, levels-1)
		}
		periods = append(periods, p)
		elapsed += years
	}
	return periods, nil
}

// FromMoon derives the timeline from the Moon's sidereal position in a
// chart.
func FromMoon(moon astro.BodyPosition, birth time.Time, levels int) ([]Period, error) {
	return Timeline(int(moon.Nakshatra), astro.DegreeInNakshatra(moon.Longitude), birth, levels)
}

// subdivide splits a period into nine sub-periods cycling from the
// period's own lord, each sized subLordYears/120 of the parent.
// elapsed is the parent's start measured in years from the birth instant;
// boundaries stay on the cumulative scale so they never drift from the
// parent's own.
func subdivide(lord astro.Body, birth time.Time, elapsed, parentYears float64, levels int) []Period {
	startIdx := 0
	for i, l := range lordOrder {
		if l == lord {
			startIdx = i
			break
		}
	}

	subs := make([]Period, 0, 9)
	offset := elapsed
	for i := 0; i < 9; i++ {
		subLord := lordOrder[(startIdx+i)%9]
		years := parentYears * lordYears[subLord] / CycleYears

		p := Period{
			Lord:  subLord,
			Start: dateAt(birth, offset),
			End:   dateAt(birth, offset+years),
			Years: years,
		}
		if levels > 1 {
			p.Sub = subdivide(subLord, birth, offset, years, levels-1)
		}
		subs = append(subs, p)
		offset += years
	}
	return subs
}

// dateAt converts a cumulative year offset from birth to a calendar date.
func dateAt(birth time.Time, years float64) time.Time {
	days := years * daysPerYear
	return birth.Add(time.Duration(days * 24 * float64(time.Hour))).UTC()
}

// Active returns the period containing the given instant, descending into
// sub-periods, or nil when the instant falls outside the timeline.
func Active(periods []Period, at time.Time) []Period {
	for _, p := range periods {
		if at.Before(p.Start) || !at.Before(p.End) {
			continue
		}
		chain := []Period{p}
		if len(p.Sub) > 0 {
			chain = append(chain, Active(p.Sub, at)...)
		}
		return chain
	}
	return nil
}
