// Package scoring turns team statistics and optional bookmaker odds into
// ranked confidence tips for a single football match.
//
// Every probability produced here is clamped before it is turned into an
// integer percentage. The package never returns errors: bad input degrades to
// neutral values.
package scoring

import "math"

// Normalize scales v by max and clamps the result to [0,1].
// A zero max always yields 0.
func Normalize(v, max float64) float64 {
	if max == 0 {
		return 0
	}
	return ClampProbability(v / max)
}

// ClampProbability ensures p is a finite value in [0,1].
// +Inf saturates at 1; NaN and -Inf become 0.
func ClampProbability(p float64) float64 {
	return clamp(p, 0, 1)
}

// clamp bounds v to [lo,hi]. Infinities saturate at the matching bound and
// NaN falls to lo.
func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Percent converts a probability into a rounded 0-100 score.
// Halves round up.
func Percent(p float64) int {
	return int(math.Floor(ClampProbability(p)*100 + 0.5))
}
