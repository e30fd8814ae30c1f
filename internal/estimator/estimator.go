// Package estimator derives a single best-bet suggestion from three small
// groups of free-text scorelines.
package estimator

import (
	"regexp"
	"strconv"

	"github.com/yourusername/matchtips/internal/models"
)

var scorelinePattern = regexp.MustCompile(`^\s*(\d+)\s*-\s*(\d+)\s*$`)

// Best pick labels, in ladder order
const (
	PickOver25    = "+2.5 goals"
	PickBothScore = "both score"
	PickOver15    = "+1.5 goals"
	PickUnder35   = "-3.5 goals"
)

// Classification labels
const (
	Likely   = "likely"
	Unlikely = "unlikely"
	High     = "high"
	Medium   = "medium"
	Low      = "low"
)

// Group names used in reports
const (
	GroupTeamA      = "team A"
	GroupTeamB      = "team B"
	GroupHeadToHead = "head to head"
)

// ParseScoreline reads "<int>-<int>" with optional whitespace around the parts
func ParseScoreline(s string) (models.Scoreline, bool) {
	m := scorelinePattern.FindStringSubmatch(s)
	if m == nil {
		return models.Scoreline{}, false
	}
	home, err := strconv.Atoi(m[1])
	if err != nil {
		return models.Scoreline{}, false
	}
	away, err := strconv.Atoi(m[2])
	if err != nil {
		return models.Scoreline{}, false
	}
	return models.Scoreline{HomeGoals: home, AwayGoals: away}, true
}

// Summarize averages the parsable scorelines of one group.
// Unparsable entries are skipped; an empty group yields zeros.
func Summarize(lines []string) models.GroupSummary {
	var goals, both, games int
	for _, line := range lines {
		sl, ok := ParseScoreline(line)
		if !ok {
			continue
		}
		games++
		goals += sl.Total()
		if sl.BothScored() {
			both++
		}
	}
	if games == 0 {
		return models.GroupSummary{}
	}
	return models.GroupSummary{
		Average:    float64(goals) / float64(games),
		BothScored: float64(both) / float64(games),
		Games:      games,
	}
}

// Markets holds the textual verdict for each market
type Markets struct {
	Over15    string `json:"over15"`
	Over25    string `json:"over25"`
	Under35   string `json:"under35"`
	BothScore string `json:"both_score"`
}

// Estimate is the combined view over the three sample groups
type Estimate struct {
	TeamA         models.GroupSummary `json:"team_a"`
	TeamB         models.GroupSummary `json:"team_b"`
	HeadToHead    models.GroupSummary `json:"head_to_head"`
	TotalAverage  float64             `json:"total_average"`
	BothScoredPct float64             `json:"both_scored_pct"`
	Markets       Markets             `json:"markets"`
	BestPick      string              `json:"best_pick"`
}

// Skipped returns how many of the supplied lines could not be parsed
func Skipped(lines []string) int {
	return len(lines) - Summarize(lines).Games
}

// Run summarizes each group and averages the group means uniformly,
// regardless of how many games each group holds.
func Run(teamA, teamB, headToHead []string) *Estimate {
	e := &Estimate{
		TeamA:      Summarize(teamA),
		TeamB:      Summarize(teamB),
		HeadToHead: Summarize(headToHead),
	}
	e.TotalAverage = (e.TeamA.Average + e.TeamB.Average + e.HeadToHead.Average) / 3
	e.BothScoredPct = (e.TeamA.BothScored + e.TeamB.BothScored + e.HeadToHead.BothScored) / 3 * 100
	e.Markets = Classify(e.TotalAverage, e.BothScoredPct)
	e.BestPick = BestPick(e.TotalAverage, e.BothScoredPct)
	return e
}

// Classify applies the fixed thresholds to the combined averages
func Classify(total, bothScoredPct float64) Markets {
	m := Markets{
		Over15:    verdict(total > 1.5),
		Over25:    verdict(total > 2.5),
		Under35:   verdict(total < 3.5),
		BothScore: Low,
	}
	switch {
	case bothScoredPct > 60:
		m.BothScore = High
	case bothScoredPct > 40:
		m.BothScore = Medium
	}
	return m
}

// BestPick walks the priority ladder and returns the first matching label
func BestPick(total, bothScoredPct float64) string {
	switch {
	case total > 3:
		return PickOver25
	case bothScoredPct > 60:
		return PickBothScore
	case total > 1.5:
		return PickOver15
	default:
		return PickUnder35
	}
}

func verdict(ok bool) string {
	if ok {
		return Likely
	}
	return Unlikely
}
