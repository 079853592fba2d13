// Package transit projects natal positions forward with mean daily motion
// and detects aspects between transiting and natal bodies.
//
// The projection is a mean-motion linear approximation by design: it does
// NOT re-evaluate the periodic series of the ephemeris engine. Replacing
// it with a full recomputation would change behavior for every body whose
// true motion deviates from its mean (all of them) and must not be done
// silently.
package transit

import (
	"time"

	"github.com/siddhanta-labs/siddhanta/pkg/angle"
	"github.com/siddhanta-labs/siddhanta/pkg/astro"
	"github.com/siddhanta-labs/siddhanta/pkg/chart"
	"github.com/siddhanta-labs/siddhanta/pkg/ephem"
)

// Aspect is a detected angular relationship between two bodies.
type Aspect struct {
	BodyA astro.Body `json:"body_a"`
	BodyB astro.Body `json:"body_b"`
	Kind  Kind       `json:"kind"`
	Angle float64    `json:"angle"`
	Orb   float64    `json:"orb"`
}

// Report is the outcome of a transit computation: the projected positions
// with re-derived attributes, and the aspects they form against the natal
// positions.
type Report struct {
	Target    time.Time                         `json:"target"`
	Positions map[astro.Body]astro.BodyPosition `json:"planets"`
	Aspects   []Aspect                          `json:"aspects"`
}

// Project moves a natal position to a target date by mean daily motion.
// Longitudes stay in the natal chart's sidereal frame; the ayanamsa is not
// applied a second time.
func Project(natal astro.Position, body astro.Body, from, to time.Time) astro.Position {
	days := ephem.TimeToJD(to) - ephem.TimeToJD(from)
	motion := astro.MeanDailyMotion(body)

	projected := natal
	projected.Longitude = angle.Normalize(natal.Longitude + motion*days)
	projected.Speed = motion
	return projected
}

// Compute projects every natal body to the target date, re-derives its
// attributes against the natal ascendant (transits do not move the natal
// ascendant), and detects aspects between each transiting body and each
// natal body. maxOrb of zero selects DefaultMaxOrb.
func Compute(natal *astro.Chart, target time.Time, maxOrb float64) *Report {
	if maxOrb == 0 {
		maxOrb = DefaultMaxOrb
	}

	report := &Report{
		Target:    target,
		Positions: make(map[astro.Body]astro.BodyPosition, len(natal.Bodies)),
	}

	for _, body := range astro.Bodies {
		natalPos, ok := natal.Bodies[body]
		if !ok {
			continue
		}

		pos := Project(natalPos.Position, body, natal.Datetime, target)
		sign := astro.SignOf(pos.Longitude)
		nakshatra := astro.NakshatraOf(pos.Longitude)
		retrograde := pos.Speed < 0
		degree := astro.DegreeInSign(pos.Longitude)
		house := chart.WholeSignHouse(pos.Longitude, natal.Ascendant)

		report.Positions[body] = astro.BodyPosition{
			Body:          body,
			Position:      pos,
			Sign:          sign,
			SignName:      sign.String(),
			DegreeInSign:  degree,
			House:         house,
			Nakshatra:     nakshatra,
			NakshatraName: nakshatra.String(),
			Pada:          astro.PadaOf(pos.Longitude),
			Retrograde:    retrograde,
			Strength:      chart.Strength(body, sign, house, degree, retrograde),
			Dignity:       astro.DignityOf(body, sign),
		}
	}

	report.Aspects = DetectAspects(report.Positions, natal.Bodies, maxOrb)
	return report
}

// DetectAspects finds every aspect between a transiting set and a natal
// set, in canonical body order: transiting body first, natal body second.
func DetectAspects(transiting, natal map[astro.Body]astro.BodyPosition, maxOrb float64) []Aspect {
	var aspects []Aspect
	for _, a := range astro.Bodies {
		ta, ok := transiting[a]
		if !ok {
			continue
		}
		for _, b := range astro.Bodies {
			nb, ok := natal[b]
			if !ok {
				continue
			}
			if kind, orb, found := DetectAspect(ta.Longitude, nb.Longitude, maxOrb); found {
				aspects = append(aspects, Aspect{
					BodyA: a,
					BodyB: b,
					Kind:  kind,
					Angle: kind.Angle(),
					Orb:   orb,
				})
			}
		}
	}
	return aspects
}
