package scoring

import "github.com/yourusername/matchtips/internal/models"

const (
	goalsScale         = 3.0
	winRateScale       = 100.0
	shotsScale         = 20.0
	shotsOnTargetScale = 10.0
)

// TeamStrength derives bounded attack, defense and win signals for one side.
// The advanced variant folds shot volume into the attack signal.
func TeamStrength(stats models.TeamStats, variant Variant) models.Strength {
	s := models.Strength{
		Attack:  Normalize(stats.GoalsFor, goalsScale),
		Defense: 1 - Normalize(stats.GoalsAgainst, goalsScale),
		Win:     Normalize(stats.WinRate, winRateScale),
	}
	if variant == VariantAdvanced {
		s.Attack = ShotAdjustedAttack(s.Attack, stats.Shots, stats.ShotsOnTarget)
	}
	return s
}

// ShotAdjustedAttack blends the goal based attack signal with shot volume:
// min(1, 0.7*attack + 0.2*shots/20 + 0.1*onTarget/10)
func ShotAdjustedAttack(attack, shots, shotsOnTarget float64) float64 {
	blended := 0.7*attack +
		0.2*Normalize(shots, shotsScale) +
		0.1*Normalize(shotsOnTarget, shotsOnTargetScale)
	return ClampProbability(blended)
}

// CombinedStrength weighs a team's signals into a single scalar
func CombinedStrength(s models.Strength, w models.Weights) float64 {
	return s.Attack*w.Attack + s.Defense*w.Defense + s.Win*0.1
}
