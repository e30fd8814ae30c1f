package scoring

import (
	"fmt"

	"github.com/yourusername/matchtips/internal/models"
)

// Explain returns a one-line justification for a tip
func Explain(key models.TipKey, d *models.Diagnostics) string {
	switch key {
	case models.TipHomeWin:
		return withPenalty(fmt.Sprintf("%s strength about %s%%.", d.HomeName, FormatPercent(d.Result.Home, 0)), d)
	case models.TipAwayWin:
		return withPenalty(fmt.Sprintf("%s strength about %s%%.", d.AwayName, FormatPercent(d.Result.Away, 0)), d)
	case models.TipDraw:
		return withPenalty("Draw likely when strengths are balanced.", d)
	case models.TipOver15:
		return fmt.Sprintf("Goal average: %s.", formatFixed(d.TotalGoals(), 2))
	case models.TipOver25:
		return "Goal average points above 2.5."
	case models.TipUnder35:
		return "Low total expected."
	case models.TipBothScore:
		return "Both sides likely to score."
	case models.TipCorners5:
		return fmt.Sprintf("Corner total: %s.", formatFixed(d.TotalCorners(), 1))
	case models.TipDNBHome, models.TipDNBAway:
		return "Strength edge with the draw refunded."
	case models.TipDCHomeDraw:
		return fmt.Sprintf("Covers %s or draw.", d.HomeName)
	case models.TipDCAwayDraw:
		return fmt.Sprintf("Covers %s or draw.", d.AwayName)
	default:
		return ""
	}
}

func withPenalty(text string, d *models.Diagnostics) string {
	points := Percent(d.CardPenalty)
	if points == 0 {
		return text
	}
	return fmt.Sprintf("%s Card penalty -%d.", text, points)
}

// Explanations maps each tip to its justification, in tip order
func Explanations(tips []models.Tip, d *models.Diagnostics) []string {
	out := make([]string, len(tips))
	for i, tip := range tips {
		out[i] = Explain(tip.Key, d)
	}
	return out
}
