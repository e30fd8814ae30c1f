package service

import (
	"fmt"

	"github.com/yourusername/matchtips/internal/models"
)

// InputValidator checks a match input for values that are legal but suspicious.
// The engine clamps everything it reads, so findings are warnings rather than errors.
type InputValidator struct{}

// NewInputValidator creates a new input validator
func NewInputValidator() *InputValidator {
	return &InputValidator{}
}

// ValidateMatch validates the whole input and returns one message per finding
func (v *InputValidator) ValidateMatch(input models.MatchInput) []string {
	var warnings []string

	if input.HomeName != "" && input.HomeName == input.AwayName {
		warnings = append(warnings, fmt.Sprintf("home and away team share the name %q", input.HomeName))
	}

	warnings = append(warnings, v.ValidateTeam("home", input.Home)...)
	warnings = append(warnings, v.ValidateTeam("away", input.Away)...)
	warnings = append(warnings, v.ValidateWeights(input.Weights)...)
	warnings = append(warnings, v.ValidateOdds(input.Odds)...)

	return warnings
}

// ValidateTeam validates one side's averages
func (v *InputValidator) ValidateTeam(side string, stats models.TeamStats) []string {
	var warnings []string

	values := []struct {
		name  string
		value float64
	}{
		{"goals_for", stats.GoalsFor},
		{"goals_against", stats.GoalsAgainst},
		{"win_rate", stats.WinRate},
		{"corners", stats.Corners},
		{"shots", stats.Shots},
		{"shots_on_target", stats.ShotsOnTarget},
		{"yellow_cards", stats.YellowCards},
		{"red_cards", stats.RedCards},
	}
	for _, s := range values {
		if s.value < 0 {
			warnings = append(warnings, fmt.Sprintf("%s %s cannot be negative, got %g", side, s.name, s.value))
		}
	}

	if stats.WinRate > 100 {
		warnings = append(warnings, fmt.Sprintf("%s win_rate is a percentage (0-100), got %g", side, stats.WinRate))
	}

	if stats.ShotsOnTarget > stats.Shots && stats.Shots > 0 {
		warnings = append(warnings, fmt.Sprintf("%s shots_on_target %g exceeds shots %g", side, stats.ShotsOnTarget, stats.Shots))
	}

	return warnings
}

// ValidateWeights validates the attack and defense multipliers
func (v *InputValidator) ValidateWeights(w models.Weights) []string {
	var warnings []string

	if w.Attack < 0 || w.Attack > 1 {
		warnings = append(warnings, fmt.Sprintf("attack weight out of range (0-1), got %g", w.Attack))
	}

	if w.Defense < 0 || w.Defense > 1 {
		warnings = append(warnings, fmt.Sprintf("defense weight out of range (0-1), got %g", w.Defense))
	}

	return warnings
}

// ValidateOdds validates that supplied prices are proper decimal odds
func (v *InputValidator) ValidateOdds(o models.Odds) []string {
	var warnings []string

	prices := []struct {
		name string
		odd  *float64
	}{
		{"home", o.Home},
		{"draw", o.Draw},
		{"away", o.Away},
		{"over15", o.Over15},
		{"over25", o.Over25},
		{"under35", o.Under35},
		{"both", o.BothScore},
	}
	for _, p := range prices {
		if p.odd != nil && !v.IsValidOdd(*p.odd) {
			warnings = append(warnings, fmt.Sprintf("%s odds must be greater than 1, got %g; using neutral 0.33", p.name, *p.odd))
		}
	}

	return warnings
}

// IsValidOdd checks if a decimal price implies a probability below one
func (v *InputValidator) IsValidOdd(odd float64) bool {
	return odd > 1
}
