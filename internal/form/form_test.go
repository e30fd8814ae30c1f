package form

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/matchtips/internal/models"
)

func TestParseFloat(t *testing.T) {
	tests := []struct {
		raw      string
		expected float64
		ok       bool
	}{
		{raw: "1.4", expected: 1.4, ok: true},
		{raw: "  60 ", expected: 60, ok: true},
		{raw: "1.4 goals", expected: 1.4, ok: true},
		{raw: ".5", expected: 0.5, ok: true},
		{raw: "-2", expected: -2, ok: true},
		{raw: "+3.25", expected: 3.25, ok: true},
		{raw: "3.", expected: 3, ok: true},
		{raw: "1e2", expected: 100, ok: true},
		{raw: "", expected: 0, ok: false},
		{raw: "abc", expected: 0, ok: false},
		{raw: "-", expected: 0, ok: false},
		{raw: ".", expected: 0, ok: false},
		{raw: "2.5e-1", expected: 0.25, ok: true},
		{raw: "1e308", expected: 1e308, ok: true},
		{raw: "1e400", expected: 0, ok: false},
		{raw: "-1e400", expected: 0, ok: false},
		{raw: "1e-400", expected: 0, ok: false},
		{raw: "9e308", expected: 0, ok: false},
		{raw: "1e20000000", expected: 0, ok: false},
		{raw: "1e99999999999", expected: 0, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseFloat(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.expected, got, 1e-12)
		})
	}
}

func TestExampleInput(t *testing.T) {
	in, invalid := Example().Input()
	assert.Empty(t, invalid)

	assert.Equal(t, "Ponte Preta", in.HomeName)
	assert.Equal(t, "Náutico", in.AwayName)
	assert.Equal(t, models.TeamStats{GoalsFor: 1.4, GoalsAgainst: 0.9, WinRate: 60, Corners: 4.2}, in.Home)
	assert.Equal(t, models.TeamStats{GoalsFor: 1.1, GoalsAgainst: 1.2, WinRate: 45, Corners: 3.8}, in.Away)
	assert.Equal(t, models.DefaultWeights(), in.Weights)
	assert.False(t, in.Odds.HasResultOdds())
}

func TestInputFallbacks(t *testing.T) {
	f := New()
	f.Set(HomeGoalsFor, "lots")
	f.Set(WeightAttack, "0")
	f.Set(WeightDefense, "0.7")
	f.Set(OddsHome, "2.10")
	f.Set(OddsDraw, "n/a")

	in, invalid := f.Input()
	assert.Equal(t, 0.0, in.Home.GoalsFor)
	assert.Equal(t, models.DefaultAttackWeight, in.Weights.Attack)
	assert.Equal(t, 0.7, in.Weights.Defense)
	require.NotNil(t, in.Odds.Home)
	assert.Equal(t, 2.1, *in.Odds.Home)
	assert.Nil(t, in.Odds.Draw)
	assert.Nil(t, in.Odds.Away)
	assert.ElementsMatch(t, []string{HomeGoalsFor, OddsDraw}, invalid)
}

func TestClear(t *testing.T) {
	f := Example()
	f.Clear(true)
	assert.Equal(t, "Ponte Preta", f.Get(HomeName))
	assert.Equal(t, "Náutico", f.Get(AwayName))
	assert.Empty(t, f.Get(HomeGoalsFor))
	assert.Len(t, f, 2)

	f.Clear(false)
	assert.Empty(t, f)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "match.yaml")
	require.NoError(t, Example().Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Example(), loaded)
}

func TestParseRejectsUnknownField(t *testing.T) {
	_, err := Parse([]byte("homeGoalsFor: 1.2\nhomeXG: 1.9\n"))
	assert.Error(t, err)

	f, err := Parse([]byte("homeGoalsFor: 1.2\noddsHome: 2\n"))
	require.NoError(t, err)
	assert.Equal(t, "1.2", f.Get(HomeGoalsFor))
	assert.Equal(t, "2", f.Get(OddsHome))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestInputRejectsOutOfRangeNumbers(t *testing.T) {
	f := Example()
	f.Set(HomeGoalsFor, "1e400")
	f.Set(AwayCorners, "-1e400")

	in, invalid := f.Input()
	assert.Equal(t, 0.0, in.Home.GoalsFor)
	assert.Equal(t, 0.0, in.Away.Corners)
	assert.ElementsMatch(t, []string{HomeGoalsFor, AwayCorners}, invalid)
}
