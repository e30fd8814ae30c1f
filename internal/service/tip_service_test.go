package service

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/matchtips/internal/estimator"
	"github.com/yourusername/matchtips/internal/form"
	"github.com/yourusername/matchtips/internal/models"
	"github.com/yourusername/matchtips/internal/scoring"
)

func newTestService(t *testing.T, variant scoring.Variant) (*TipService, *bytes.Buffer) {
	t.Helper()
	log := logrus.New()
	buf := &bytes.Buffer{}
	log.SetOutput(buf)
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
	return NewTipService(scoring.NewEngine(scoring.Options{Variant: variant}), log, true), buf
}

func logEntries(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestGenerateExample(t *testing.T) {
	svc, buf := newTestService(t, scoring.VariantBasic)

	report, err := svc.Generate(context.Background(), form.Example())
	require.NoError(t, err)

	assert.NotEmpty(t, report.ID.String())
	assert.Empty(t, report.InvalidFields)
	require.Len(t, report.Result.Top, scoring.DefaultTopN)
	assert.Len(t, report.Explanations, scoring.DefaultTopN)
	assert.Equal(t, models.TipDCHomeDraw, report.Result.Top[0].Key)
	assert.Contains(t, report.Summary, "Ponte Preta 37.0%")

	entries := logEntries(t, buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "Tip generation completed", entries[0]["msg"])
	assert.Equal(t, report.ID.String(), entries[0]["report_id"])
	assert.Equal(t, "dcHomeDraw", entries[0]["best_tip"])
}

func TestGenerateReportsInvalidFields(t *testing.T) {
	svc, buf := newTestService(t, scoring.VariantAdvanced)

	f := form.Example()
	f.Set(form.HomeShots, "many")
	f.Set(form.OddsHome, "2.05")

	report, err := svc.Generate(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, []string{form.HomeShots}, report.InvalidFields)
	assert.True(t, report.Result.Diagnostics.OddsBlended)

	entries := logEntries(t, buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "warning", entries[1]["level"])
	assert.Equal(t, float64(1), entries[1]["fallback_count"])
}

func TestScoreCanceledContext(t *testing.T) {
	svc, _ := newTestService(t, scoring.VariantBasic)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Score(ctx, models.MatchInput{})
	assert.ErrorIs(t, err, context.Canceled)

	_, err = svc.Estimate(ctx, nil, nil, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEstimate(t *testing.T) {
	svc, buf := newTestService(t, scoring.VariantBasic)

	report, err := svc.Estimate(context.Background(),
		[]string{"2-1", "3-1", "1-1"},
		[]string{"2-2", "0-1", "??"},
		[]string{"3-2"},
	)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, estimator.PickOver25, report.Estimate.BestPick)
	assert.Contains(t, report.Text, "Best pick: +2.5 goals")

	entries := logEntries(t, buf)
	require.Len(t, entries, 1)
	assert.Equal(t, float64(6), entries[0]["games_used"])
}

func TestEstimateEmptySamples(t *testing.T) {
	svc, buf := newTestService(t, scoring.VariantBasic)

	report, err := svc.Estimate(context.Background(), nil, []string{"x"}, nil)
	require.NoError(t, err)
	assert.Equal(t, estimator.PickUnder35, report.Estimate.BestPick)
	assert.Zero(t, report.Estimate.TotalAverage)

	entries := logEntries(t, buf)
	require.Len(t, entries, 2)
	assert.Equal(t, models.ErrEmptyScorelines.Error(), entries[0]["error"])
}

func TestScoreReportsWarnings(t *testing.T) {
	svc, buf := newTestService(t, scoring.VariantBasic)

	in := validInput()
	in.Home.WinRate = 160

	report, err := svc.Score(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, report.Warnings, 1)
	assert.Contains(t, report.Warnings[0], "home win_rate")

	entries := logEntries(t, buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "Input values look suspicious", entries[1]["msg"])
	assert.Equal(t, float64(1), entries[1]["warning_count"])
}

func TestGenerateSurvivesOutOfRangeNumbers(t *testing.T) {
	log := logrus.New()
	log.SetOutput(&bytes.Buffer{})
	engine := scoring.NewEngine(scoring.Options{Variant: scoring.VariantAdvanced, TopN: len(models.AllTipKeys)})
	svc := NewTipService(engine, log, false)

	f := form.Example()
	f.Set(form.HomeGoalsFor, "1e400")
	f.Set(form.HomeCorners, "1e20000000")

	report, err := svc.Generate(context.Background(), f)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{form.HomeGoalsFor, form.HomeCorners}, report.InvalidFields)
	require.Len(t, report.Explanations, len(models.AllTipKeys))

	in := validInput()
	in.Home.GoalsFor = math.Inf(1)
	in.Away.Corners = math.Inf(1)
	report, err = svc.Score(context.Background(), in)
	require.NoError(t, err)
	for _, tip := range report.Result.Tips {
		assert.GreaterOrEqual(t, tip.Score, 0)
		assert.LessOrEqual(t, tip.Score, 100)
	}
	assert.Contains(t, report.Explanations, "Goal average: +Inf.")
}
