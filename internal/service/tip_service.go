// Package service provides tip generation and scoreline estimation.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/matchtips/internal/estimator"
	"github.com/yourusername/matchtips/internal/form"
	"github.com/yourusername/matchtips/internal/logger"
	"github.com/yourusername/matchtips/internal/metrics"
	"github.com/yourusername/matchtips/internal/models"
	"github.com/yourusername/matchtips/internal/scoring"
)

// TipService runs the scoring engine and the scoreline estimator
type TipService struct {
	engine         *scoring.Engine
	validator      *InputValidator
	logger         *logger.TipLogger
	metricsEnabled bool
	now            func() time.Time
}

// NewTipService creates a new tip service
func NewTipService(engine *scoring.Engine, log *logrus.Logger, metricsEnabled bool) *TipService {
	if metricsEnabled {
		metrics.InitRegistry()
	}
	return &TipService{
		engine:         engine,
		validator:      NewInputValidator(),
		logger:         logger.NewTipLogger(log),
		metricsEnabled: metricsEnabled,
		now:            time.Now,
	}
}

// Report is the outcome of one tip generation
type Report struct {
	ID            uuid.UUID       `json:"id"`
	GeneratedAt   time.Time       `json:"generated_at"`
	Result        *scoring.Result `json:"result"`
	Explanations  []string        `json:"explanations"`
	Summary       string          `json:"summary"`
	InvalidFields []string        `json:"invalid_fields,omitempty"`
	Warnings      []string        `json:"warnings,omitempty"`
}

// EstimateReport is the outcome of one scoreline estimate
type EstimateReport struct {
	ID       uuid.UUID           `json:"id"`
	Estimate *estimator.Estimate `json:"estimate"`
	Text     string              `json:"text"`
	Skipped  int                 `json:"skipped"`
}

// Generate reads a form and scores the match it describes
func (s *TipService) Generate(ctx context.Context, f form.Form) (*Report, error) {
	input, invalid := f.Input()
	report, err := s.Score(ctx, input)
	if err != nil {
		return nil, err
	}
	if len(invalid) > 0 {
		report.InvalidFields = invalid
		s.logger.LogInputFallback(report.ID.String(), invalid)
		if s.metricsEnabled {
			for _, field := range invalid {
				metrics.RecordInputFallback(field)
			}
		}
	}
	return report, nil
}

// Score runs the engine on an already parsed input
func (s *TipService) Score(ctx context.Context, input models.MatchInput) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := s.now()
	result := s.engine.Score(input)
	duration := s.now().Sub(start)

	report := &Report{
		ID:           uuid.New(),
		GeneratedAt:  start,
		Result:       result,
		Explanations: scoring.Explanations(result.Top, &result.Diagnostics),
		Summary:      scoring.Summary(&result.Diagnostics),
		Warnings:     s.validator.ValidateMatch(input),
	}

	id := report.ID.String()
	for i, tip := range result.Tips {
		s.logger.LogTipRanking(id, i+1, string(tip.Key), tip.Label, tip.Score)
	}

	var best models.Tip
	if len(result.Tips) > 0 {
		best = result.Tips[0]
	}
	s.logger.LogTipGeneration(
		id,
		string(result.Variant),
		result.Diagnostics.HomeName,
		result.Diagnostics.AwayName,
		len(result.Tips),
		string(best.Key),
		best.Score,
		float64(duration.Microseconds())/1000,
	)

	if len(report.Warnings) > 0 {
		s.logger.LogInputWarnings(id, report.Warnings)
	}

	if s.metricsEnabled {
		metrics.RecordTipGeneration(string(result.Variant), duration.Seconds())
		for _, tip := range result.Tips {
			metrics.RecordTipConfidence(string(tip.Key), tip.Score)
		}
		if best.Key != "" {
			metrics.RecordBestTip(string(best.Key))
		}
	}

	return report, nil
}

// Estimate averages three groups of scorelines into a best pick
func (s *TipService) Estimate(ctx context.Context, teamA, teamB, headToHead []string) (*EstimateReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	est := estimator.Run(teamA, teamB, headToHead)
	report := &EstimateReport{
		ID:       uuid.New(),
		Estimate: est,
		Text:     estimator.Report(est),
		Skipped:  estimator.Skipped(teamA) + estimator.Skipped(teamB) + estimator.Skipped(headToHead),
	}

	games := est.TeamA.Games + est.TeamB.Games + est.HeadToHead.Games
	if games == 0 {
		s.logger.WithError(models.ErrEmptyScorelines).Warn("Estimate built from empty samples")
	}
	s.logger.LogEstimate(report.ID.String(), games, report.Skipped, est.TotalAverage, est.BothScoredPct, est.BestPick)

	if s.metricsEnabled {
		metrics.RecordEstimate(est.BestPick, report.Skipped)
	}

	return report, nil
}
