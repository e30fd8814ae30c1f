package scoring

import (
	"math"

	"github.com/yourusername/matchtips/internal/models"
)

const (
	yellowCardPenalty = 0.05
	redCardPenalty    = 0.1
	maxCardPenalty    = 0.2
)

// CardPenalty grows with the combined disciplinary record of both teams
func CardPenalty(home, away models.TeamStats) float64 {
	yellow := math.Max(0, home.YellowCards+away.YellowCards)
	red := math.Max(0, home.RedCards+away.RedCards)
	return math.Min(maxCardPenalty, yellowCardPenalty*yellow+redCardPenalty*red)
}

// ApplyCardPenalty lowers the 1X2 tip scores by the rounded penalty.
// Other markets are left untouched and no score drops below 0.
func ApplyCardPenalty(tips []models.Tip, penalty float64) {
	points := Percent(penalty)
	if points == 0 {
		return
	}
	for i := range tips {
		if !tips[i].Key.IsResultMarket() {
			continue
		}
		tips[i].Score -= points
		if tips[i].Score < 0 {
			tips[i].Score = 0
		}
	}
}
