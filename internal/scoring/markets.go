package scoring

import (
	"math"

	"github.com/yourusername/matchtips/internal/models"
)

const (
	totalGoalsScale   = 4.0
	cornersScale      = 12.0
	under35Steepness  = 1.1
	attackBTTSFactor  = 0.9
	concedeBTTSFactor = 0.6
	minDNBDenominator = 0.0001
)

// Over15 estimates more than 1.5 goals from the combined scoring averages
func Over15(homeGoalsFor, awayGoalsFor float64) float64 {
	return Normalize(homeGoalsFor+awayGoalsFor, totalGoalsScale)
}

// Over25 estimates more than 2.5 goals
func Over25(homeGoalsFor, awayGoalsFor float64) float64 {
	return Normalize(homeGoalsFor+awayGoalsFor-0.5, totalGoalsScale)
}

// Under35 estimates fewer than 3.5 goals, floored at 0
func Under35(homeGoalsFor, awayGoalsFor float64) float64 {
	return math.Max(0, 1-Normalize(homeGoalsFor+awayGoalsFor, totalGoalsScale)*under35Steepness)
}

// BothScore combines attacking output and defensive leakage of both sides
func BothScore(homeGoalsFor, awayGoalsFor, homeGoalsAgainst, awayGoalsAgainst float64) float64 {
	attack := Normalize(homeGoalsFor, goalsScale) * Normalize(awayGoalsFor, goalsScale)
	conceded := Normalize(homeGoalsAgainst, goalsScale) * Normalize(awayGoalsAgainst, goalsScale)
	return math.Min(1, attack*attackBTTSFactor+conceded*concedeBTTSFactor)
}

// Corners5 estimates more than five corners in the match
func Corners5(homeCorners, awayCorners float64) float64 {
	return Normalize(homeCorners+awayCorners, cornersScale)
}

// DrawNoBetProbabilities removes the draw from a 1X2 split
func DrawNoBetProbabilities(r models.ResultProbabilities) models.DrawNoBet {
	denom := math.Max(minDNBDenominator, 1-r.Draw)
	return models.DrawNoBet{
		Home: ClampProbability(r.Home / denom),
		Away: ClampProbability(r.Away / denom),
	}
}

// DoubleChance covers two of the three outcomes, capped at 1
func DoubleChance(a, b float64) float64 {
	return math.Min(1, a+b)
}
