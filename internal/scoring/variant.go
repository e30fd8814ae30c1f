package scoring

import (
	"fmt"
	"strings"

	"github.com/yourusername/matchtips/internal/models"
)

// Variant selects which refinements the engine applies
type Variant string

const (
	// VariantBasic scores from goals, corners and win rate only
	VariantBasic Variant = "basic"
	// VariantAdvanced adds shot volume, odds blending, card penalty and stat fallbacks
	VariantAdvanced Variant = "advanced"
)

// ParseVariant resolves a configuration string into a Variant
func ParseVariant(s string) (Variant, error) {
	switch Variant(strings.ToLower(strings.TrimSpace(s))) {
	case "", VariantBasic:
		return VariantBasic, nil
	case VariantAdvanced:
		return VariantAdvanced, nil
	default:
		return "", fmt.Errorf("%w: %q", models.ErrUnknownVariant, s)
	}
}

// ChartPolicy decides which tips feed the chart projection
type ChartPolicy string

const (
	// ChartTop charts only the visible top-N tips
	ChartTop ChartPolicy = "top"
	// ChartAll charts every computed tip
	ChartAll ChartPolicy = "all"
)

// ParseChartPolicy resolves a configuration string into a ChartPolicy
func ParseChartPolicy(s string) (ChartPolicy, error) {
	switch ChartPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", ChartTop:
		return ChartTop, nil
	case ChartAll:
		return ChartAll, nil
	default:
		return "", fmt.Errorf("%w: %q", models.ErrUnknownChartPolicy, s)
	}
}
