// Package metrics defines tip-specific metrics.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Tip-specific histogram vectors
var (
	TipConfidenceScore = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "matchtips",
		Name:      "tip_confidence_score",
		Help:      "Confidence scores produced per tip key",
		Buckets:   []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
	}, []string{"tip_key"})
)

// Tip-specific counter vectors
var (
	BestTipTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "matchtips",
		Name:      "best_tip_total",
		Help:      "Total number of times each tip key ranked first",
	}, []string{"tip_key"})

	EstimatePicksTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "matchtips",
		Name:      "estimate_picks_total",
		Help:      "Total number of best picks suggested by the scoreline estimator",
	}, []string{"pick"})
)

// RecordTipConfidence records the score of one tip.
func RecordTipConfidence(tipKey string, score int) {
	TipConfidenceScore.WithLabelValues(tipKey).Observe(float64(score))
}

// RecordBestTip records the top-ranked tip of a run.
func RecordBestTip(tipKey string) {
	BestTipTotal.WithLabelValues(tipKey).Inc()
}
