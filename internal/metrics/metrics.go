// Package metrics provides the Prometheus metrics registry for tip generation.
package metrics

import (
	"fmt"
	"io"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	TipGenerationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "matchtips",
		Name:      "tip_generations_total",
		Help:      "Total number of scoring runs by variant",
	}, []string{"variant"})
	EstimatesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "matchtips",
		Name:      "estimates_total",
		Help:      "Total number of scoreline average estimates",
	})
	InputFallbacksTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "matchtips",
		Name:      "input_fallbacks_total",
		Help:      "Total number of form fields replaced by a neutral value",
	}, []string{"field"})
	ScorelinesSkippedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "matchtips",
		Name:      "scorelines_skipped_total",
		Help:      "Total number of unparsable scorelines left out of averages",
	})
	ChartsRenderedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "matchtips",
		Name:      "charts_rendered_total",
		Help:      "Total number of charts rendered",
	})
)

// Histogram metrics
var (
	TipGenerationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "matchtips",
		Name:      "tip_generation_duration_seconds",
		Help:      "Duration of scoring runs in seconds",
		Buckets:   []float64{0.00001, 0.0001, 0.001, 0.01, 0.1},
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(TipGenerationsTotal)
		registry.MustRegister(EstimatesTotal)
		registry.MustRegister(InputFallbacksTotal)
		registry.MustRegister(ScorelinesSkippedTotal)
		registry.MustRegister(ChartsRenderedTotal)

		registry.MustRegister(TipGenerationDuration)

		// Register tip metrics
		registry.MustRegister(TipConfidenceScore)
		registry.MustRegister(BestTipTotal)
		registry.MustRegister(EstimatePicksTotal)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// WriteText writes every registered metric in the Prometheus text format.
func WriteText(w io.Writer) error {
	families, err := GetRegistry().Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to encode metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

// RecordTipGeneration records a scoring run.
func RecordTipGeneration(variant string, durationSeconds float64) {
	TipGenerationsTotal.WithLabelValues(variant).Inc()
	TipGenerationDuration.Observe(durationSeconds)
}

// RecordEstimate records a scoreline estimate.
func RecordEstimate(bestPick string, skipped int) {
	EstimatesTotal.Inc()
	EstimatePicksTotal.WithLabelValues(bestPick).Inc()
	if skipped > 0 {
		ScorelinesSkippedTotal.Add(float64(skipped))
	}
}

// RecordInputFallback records a form field that could not be parsed.
func RecordInputFallback(field string) {
	InputFallbacksTotal.WithLabelValues(field).Inc()
}

// RecordChartRendered records a rendered chart.
func RecordChartRendered() {
	ChartsRenderedTotal.Inc()
}
