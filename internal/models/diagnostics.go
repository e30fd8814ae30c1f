package models

// ResultProbabilities is a normalized 1X2 distribution
type ResultProbabilities struct {
	Home float64 `json:"home"`
	Draw float64 `json:"draw"`
	Away float64 `json:"away"`
}

// Sum returns home + draw + away
func (r ResultProbabilities) Sum() float64 {
	return r.Home + r.Draw + r.Away
}

// DrawNoBet holds the draw-no-bet probabilities for both sides
type DrawNoBet struct {
	Home float64 `json:"home"`
	Away float64 `json:"away"`
}

// Strength is the bounded attack/defense/win signal derived for one team
type Strength struct {
	Attack  float64 `json:"attack"`
	Defense float64 `json:"defense"`
	Win     float64 `json:"win"`
}

// Diagnostics keeps the intermediate values behind a set of tips.
// It exists only to build explanations and the summary block.
type Diagnostics struct {
	HomeName string `json:"home_name"`
	AwayName string `json:"away_name"`

	HomeStrength Strength `json:"home_strength"`
	AwayStrength Strength `json:"away_strength"`

	ModelResult ResultProbabilities `json:"model_result"`
	Result      ResultProbabilities `json:"result"`
	OddsBlended bool                `json:"odds_blended"`

	Over15     float64   `json:"over15"`
	Over25     float64   `json:"over25"`
	Under35    float64   `json:"under35"`
	BothScore  float64   `json:"both_score"`
	Corners5   float64   `json:"corners5"`
	DrawNoBet  DrawNoBet `json:"draw_no_bet"`
	DCHomeDraw float64   `json:"dc_home_draw"`
	DCAwayDraw float64   `json:"dc_away_draw"`

	CardPenalty float64 `json:"card_penalty"`

	HomeGoalsFor     float64 `json:"home_goals_for"`
	AwayGoalsFor     float64 `json:"away_goals_for"`
	HomeGoalsAgainst float64 `json:"home_goals_against"`
	AwayGoalsAgainst float64 `json:"away_goals_against"`
	HomeCorners      float64 `json:"home_corners"`
	AwayCorners      float64 `json:"away_corners"`
}

// TotalGoals returns the combined goals-for average of both sides
func (d *Diagnostics) TotalGoals() float64 {
	return d.HomeGoalsFor + d.AwayGoalsFor
}

// TotalCorners returns the combined corner average of both sides
func (d *Diagnostics) TotalCorners() float64 {
	return d.HomeCorners + d.AwayCorners
}
