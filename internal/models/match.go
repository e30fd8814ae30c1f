package models

// TeamStats holds the per-match averages entered for one side
type TeamStats struct {
	GoalsFor      float64 `json:"goals_for" yaml:"goals_for"`
	GoalsAgainst  float64 `json:"goals_against" yaml:"goals_against"`
	WinRate       float64 `json:"win_rate" yaml:"win_rate"`
	Corners       float64 `json:"corners" yaml:"corners"`
	Shots         float64 `json:"shots" yaml:"shots"`
	ShotsOnTarget float64 `json:"shots_on_target" yaml:"shots_on_target"`
	YellowCards   float64 `json:"yellow_cards" yaml:"yellow_cards"`
	RedCards      float64 `json:"red_cards" yaml:"red_cards"`
}

// Weights are the user supplied multipliers for attack and defense strength
type Weights struct {
	Attack  float64 `json:"attack" yaml:"attack"`
	Defense float64 `json:"defense" yaml:"defense"`
}

// Default weight values used when a weight is missing or zero
const (
	DefaultAttackWeight  = 0.6
	DefaultDefenseWeight = 0.4
)

// DefaultWeights returns the 0.6/0.4 attack/defense split
func DefaultWeights() Weights {
	return Weights{Attack: DefaultAttackWeight, Defense: DefaultDefenseWeight}
}

// Odds holds optional bookmaker decimal odds. A nil field means no price was supplied.
type Odds struct {
	Home      *float64 `json:"home,omitempty" yaml:"home,omitempty"`
	Draw      *float64 `json:"draw,omitempty" yaml:"draw,omitempty"`
	Away      *float64 `json:"away,omitempty" yaml:"away,omitempty"`
	Over15    *float64 `json:"over15,omitempty" yaml:"over15,omitempty"`
	Over25    *float64 `json:"over25,omitempty" yaml:"over25,omitempty"`
	Under35   *float64 `json:"under35,omitempty" yaml:"under35,omitempty"`
	BothScore *float64 `json:"both,omitempty" yaml:"both,omitempty"`
}

// HasResultOdds reports whether at least one 1X2 price is present
func (o Odds) HasResultOdds() bool {
	return o.Home != nil || o.Draw != nil || o.Away != nil
}

// MatchInput is the full set of values a single scoring run consumes
type MatchInput struct {
	HomeName string    `json:"home_name" yaml:"home_name"`
	AwayName string    `json:"away_name" yaml:"away_name"`
	Home     TeamStats `json:"home" yaml:"home"`
	Away     TeamStats `json:"away" yaml:"away"`
	Weights  Weights   `json:"weights" yaml:"weights"`
	Odds     Odds      `json:"odds" yaml:"odds"`
}
