// ABOUTME: One-rep-max table and display target weight derivation.
// ABOUTME: Targets round to the nearest 2.5 kg plate step and never affect completion.
package models

import "math"

// PlateStep is the rounding step for displayed target weights, in kg.
const PlateStep = 2.5

// OneRM maps a lift to the user's one-rep max in kg.
type OneRM map[Lift]float64

// DefaultOneRM returns the table used on first run.
func DefaultOneRM() OneRM {
	return OneRM{
		LiftSnatch:     70,
		LiftCleanJerk:  90,
		LiftDeadlift:   195,
		LiftBench:      110,
		LiftBackSquat:  130,
		LiftFrontSquat: 110,
		LiftPushPress:  80,
	}
}

// Clone returns an independent copy.
func (o OneRM) Clone() OneRM {
	out := make(OneRM, len(o))
	for k, v := range o {
		out[k] = v
	}
	return out
}

// Target returns percent of the lift's max rounded to PlateStep, or 0 when
// either the max or the percent is missing.
func (o OneRM) Target(lift Lift, percent float64) float64 {
	rm := o[lift]
	if rm <= 0 || percent <= 0 {
		return 0
	}
	return RoundTo(percent/100*rm, PlateStep)
}

// RoundTo rounds x to the nearest multiple of step, halves rounding up.
func RoundTo(x, step float64) float64 {
	return math.Floor(x/step+0.5) * step
}
