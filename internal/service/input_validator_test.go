package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yourusername/matchtips/internal/models"
)

const expectedWarningsMsg = "expected validation warnings"

func price(v float64) *float64 {
	return &v
}

func validInput() models.MatchInput {
	return models.MatchInput{
		HomeName: "Ponte Preta",
		AwayName: "Náutico",
		Home:     models.TeamStats{GoalsFor: 1.4, GoalsAgainst: 0.9, Corners: 4.2, WinRate: 60, Shots: 12, ShotsOnTarget: 5},
		Away:     models.TeamStats{GoalsFor: 1.1, GoalsAgainst: 1.2, Corners: 3.8, WinRate: 45},
		Weights:  models.DefaultWeights(),
		Odds:     models.Odds{Home: price(2.1), Draw: price(3.3)},
	}
}

func TestInputValidation(t *testing.T) {
	validator := NewInputValidator()

	tests := []struct {
		name        string
		mutate      func(in *models.MatchInput)
		expectValid bool
		shouldHave  string
	}{
		{
			name:        "Valid input",
			mutate:      func(in *models.MatchInput) {},
			expectValid: true,
		},
		{
			name:       "Same team names",
			mutate:     func(in *models.MatchInput) { in.AwayName = in.HomeName },
			shouldHave: "share the name",
		},
		{
			name:       "Negative goals",
			mutate:     func(in *models.MatchInput) { in.Home.GoalsFor = -1 },
			shouldHave: "home goals_for cannot be negative",
		},
		{
			name:       "Win rate above 100",
			mutate:     func(in *models.MatchInput) { in.Away.WinRate = 140 },
			shouldHave: "away win_rate is a percentage",
		},
		{
			name:       "More shots on target than shots",
			mutate:     func(in *models.MatchInput) { in.Home.ShotsOnTarget = 15 },
			shouldHave: "exceeds shots",
		},
		{
			name:       "Attack weight out of range",
			mutate:     func(in *models.MatchInput) { in.Weights.Attack = 1.5 },
			shouldHave: "attack weight out of range",
		},
		{
			name:       "Odds at evens or below",
			mutate:     func(in *models.MatchInput) { in.Odds.Draw = price(0.9) },
			shouldHave: "draw odds must be greater than 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			warnings := validator.ValidateMatch(in)

			if tt.expectValid {
				assert.Empty(t, warnings)
				return
			}
			assert.NotEmpty(t, warnings, expectedWarningsMsg)
			found := false
			for _, w := range warnings {
				if strings.Contains(w, tt.shouldHave) {
					found = true
				}
			}
			assert.True(t, found, "expected warning containing %q, got %v", tt.shouldHave, warnings)
		})
	}
}

func TestIsValidOdd(t *testing.T) {
	validator := NewInputValidator()

	assert.True(t, validator.IsValidOdd(1.01))
	assert.False(t, validator.IsValidOdd(1))
	assert.False(t, validator.IsValidOdd(0))
}

func TestValidateTeamAllowsMissingShots(t *testing.T) {
	validator := NewInputValidator()

	warnings := validator.ValidateTeam("away", models.TeamStats{ShotsOnTarget: 3})
	assert.Empty(t, warnings)
}
