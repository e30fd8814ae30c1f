package estimator

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Report formats the estimate as a summary block with the highlighted pick
func Report(e *Estimate) string {
	var b strings.Builder
	for _, g := range []struct {
		name    string
		average float64
		both    float64
		games   int
	}{
		{GroupTeamA, e.TeamA.Average, e.TeamA.BothScored, e.TeamA.Games},
		{GroupTeamB, e.TeamB.Average, e.TeamB.BothScored, e.TeamB.Games},
		{GroupHeadToHead, e.HeadToHead.Average, e.HeadToHead.BothScored, e.HeadToHead.Games},
	} {
		fmt.Fprintf(&b, "%-13s games %d | goals %s | both scored %s%%\n",
			g.name, g.games, fixed(g.average, 2), fixed(g.both*100, 0))
	}
	fmt.Fprintf(&b, "Average goals: %s\n", fixed(e.TotalAverage, 2))
	fmt.Fprintf(&b, "Both scored: %s%%\n", fixed(e.BothScoredPct, 0))
	fmt.Fprintf(&b, "+1.5 goals: %s | +2.5 goals: %s | -3.5 goals: %s | both score: %s\n",
		e.Markets.Over15, e.Markets.Over25, e.Markets.Under35, e.Markets.BothScore)
	fmt.Fprintf(&b, ">> Best pick: %s <<\n", e.BestPick)
	return b.String()
}

func fixed(v float64, places int32) string {
	return decimal.NewFromFloat(v).StringFixed(places)
}
