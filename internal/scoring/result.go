package scoring

import "github.com/yourusername/matchtips/internal/models"

// Bounds applied to the raw 1X2 values before renormalization
const (
	minSideProbability = 0.03
	maxSideProbability = 0.95
	minDrawProbability = 0.02
	maxDrawProbability = 0.94

	baseSideProbability = 0.33
	strengthDiffFactor  = 0.35
)

// ResultProbabilities turns two team strengths into a normalized home/draw/away split
func ResultProbabilities(home, away models.Strength, w models.Weights) models.ResultProbabilities {
	diff := CombinedStrength(home, w) - CombinedStrength(away, w)

	pHome := baseSideProbability + diff*strengthDiffFactor
	pAway := baseSideProbability - diff*strengthDiffFactor
	pDraw := 1 - (pHome + pAway)

	pHome = clamp(pHome, minSideProbability, maxSideProbability)
	pAway = clamp(pAway, minSideProbability, maxSideProbability)
	pDraw = clamp(pDraw, minDrawProbability, maxDrawProbability)

	return renormalize(pHome, pDraw, pAway)
}

func renormalize(home, draw, away float64) models.ResultProbabilities {
	sum := home + draw + away
	if sum <= 0 {
		third := 1.0 / 3.0
		return models.ResultProbabilities{Home: third, Draw: third, Away: third}
	}
	return models.ResultProbabilities{Home: home / sum, Draw: draw / sum, Away: away / sum}
}
