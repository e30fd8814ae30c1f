package scoring

import (
	"sort"

	"github.com/yourusername/matchtips/internal/models"
)

// DefaultTopN is the number of tips kept for display
const DefaultTopN = 6

// Rank sorts tips by descending score. Equal scores keep their emission order.
func Rank(tips []models.Tip) []models.Tip {
	ranked := make([]models.Tip, len(tips))
	copy(ranked, tips)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// Top returns at most n leading tips
func Top(ranked []models.Tip, n int) []models.Tip {
	if n <= 0 || n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

// ChartData projects tips onto label/value bars
func ChartData(tips []models.Tip) []models.ChartPoint {
	points := make([]models.ChartPoint, 0, len(tips))
	for _, tip := range tips {
		points = append(points, models.ChartPoint{Label: tip.Label, Value: tip.Score})
	}
	return points
}
