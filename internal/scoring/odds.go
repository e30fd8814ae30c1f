package scoring

import "github.com/yourusername/matchtips/internal/models"

// Blend weights between the model estimate and the market estimate
const (
	ModelWeight = 0.6
	OddsWeight  = 0.4

	// NeutralImpliedProbability stands in for a missing or invalid price
	NeutralImpliedProbability = 0.33
)

// ImpliedProbability returns 1/odd for a valid decimal price.
// Prices that are missing or not above 1 fall back to the neutral value.
func ImpliedProbability(odd *float64) float64 {
	if odd == nil || *odd <= 1 {
		return NeutralImpliedProbability
	}
	return 1.0 / *odd
}

// RemoveOverround converts a 1X2 set of prices into a fair distribution
// by dividing each implied probability by their sum.
func RemoveOverround(o models.Odds) models.ResultProbabilities {
	return renormalize(
		ImpliedProbability(o.Home),
		ImpliedProbability(o.Draw),
		ImpliedProbability(o.Away),
	)
}

// BlendResult mixes the model 1X2 split with the fair market split and
// renormalizes the outcome.
func BlendResult(model models.ResultProbabilities, o models.Odds) models.ResultProbabilities {
	market := RemoveOverround(o)
	return renormalize(
		ModelWeight*model.Home+OddsWeight*market.Home,
		ModelWeight*model.Draw+OddsWeight*market.Draw,
		ModelWeight*model.Away+OddsWeight*market.Away,
	)
}

// BlendBinary mixes a single-outcome model probability with its market price
func BlendBinary(model float64, odd *float64) float64 {
	return ClampProbability(ModelWeight*model + OddsWeight*ImpliedProbability(odd))
}
