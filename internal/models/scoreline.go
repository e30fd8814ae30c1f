package models

// Scoreline is a parsed "<home>-<away>" result
type Scoreline struct {
	HomeGoals int `json:"home_goals"`
	AwayGoals int `json:"away_goals"`
}

// Total returns the number of goals in the game
func (s Scoreline) Total() int {
	return s.HomeGoals + s.AwayGoals
}

// BothScored reports whether each side scored at least once
func (s Scoreline) BothScored() bool {
	return s.HomeGoals > 0 && s.AwayGoals > 0
}

// GroupSummary aggregates one sample group of scorelines
type GroupSummary struct {
	Average    float64 `json:"average"`
	BothScored float64 `json:"both_scored"`
	Games      int     `json:"games"`
}
