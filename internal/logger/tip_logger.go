// Package logger provides tip-specific logging.
package logger

import (
	"github.com/sirupsen/logrus"
)

// TipLogger provides dedicated logging for tip generation.
type TipLogger struct {
	*logrus.Entry
}

// NewTipLogger creates a new tip logger.
func NewTipLogger(baseLogger *logrus.Logger) *TipLogger {
	return &TipLogger{
		Entry: baseLogger.WithField("component", "tips"),
	}
}

// LogTipGeneration logs a completed scoring run.
func (tl *TipLogger) LogTipGeneration(reportID, variant, homeName, awayName string, tipsComputed int, bestTip string, bestScore int, durationMs float64) {
	tl.WithFields(logrus.Fields{
		"report_id":              reportID,
		"variant":                variant,
		"home_name":              homeName,
		"away_name":              awayName,
		"tips_computed":          tipsComputed,
		"best_tip":               bestTip,
		"best_score":             bestScore,
		"generation_duration_ms": durationMs,
	}).Info("Tip generation completed")
}

// LogTipRanking logs one ranked tip at debug level.
func (tl *TipLogger) LogTipRanking(reportID string, rank int, key, label string, score int) {
	tl.WithFields(logrus.Fields{
		"report_id": reportID,
		"rank":      rank,
		"tip_key":   key,
		"label":     label,
		"score":     score,
	}).Debug("Tip ranked")
}

// LogInputFallback logs form fields that could not be read as numbers.
func (tl *TipLogger) LogInputFallback(reportID string, fields []string) {
	tl.WithFields(logrus.Fields{
		"report_id":       reportID,
		"fallback_fields": fields,
		"fallback_count":  len(fields),
	}).Warn("Unparsable input replaced with neutral values")
}

// LogInputWarnings logs suspicious but accepted input values.
func (tl *TipLogger) LogInputWarnings(reportID string, warnings []string) {
	tl.WithFields(logrus.Fields{
		"report_id":     reportID,
		"warnings":      warnings,
		"warning_count": len(warnings),
	}).Warn("Input values look suspicious")
}

// LogEstimate logs a scoreline average estimate.
func (tl *TipLogger) LogEstimate(reportID string, gamesUsed, linesSkipped int, totalAverage, bothScoredPct float64, bestPick string) {
	tl.WithFields(logrus.Fields{
		"report_id":       reportID,
		"event_type":      "estimate",
		"games_used":      gamesUsed,
		"lines_skipped":   linesSkipped,
		"total_average":   totalAverage,
		"both_scored_pct": bothScoredPct,
		"best_pick":       bestPick,
	}).Info("Scoreline estimate completed")
}
