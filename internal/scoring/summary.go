package scoring

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/yourusername/matchtips/internal/models"
)

// FormatPercent renders a probability as a percentage with fixed decimals
func FormatPercent(p float64, places int32) string {
	return formatFixed(p*100, places)
}

// formatFixed renders v with a fixed number of decimals. decimal cannot hold
// infinities or NaN, so those are spelled out as "+Inf", "-Inf" or "NaN".
func formatFixed(v float64, places int32) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'f', int(places), 64)
	}
	return decimal.NewFromFloat(v).StringFixed(places)
}

// Summary renders the prose analysis block for a scoring run
func Summary(d *models.Diagnostics) string {
	var b strings.Builder
	fmt.Fprintf(&b, "1X2: %s %s%% | Draw %s%% | %s %s%%\n",
		d.HomeName, FormatPercent(d.Result.Home, 1),
		FormatPercent(d.Result.Draw, 1),
		d.AwayName, FormatPercent(d.Result.Away, 1))
	fmt.Fprintf(&b, "Over 1.5: %s%% | Over 2.5: %s%% | Under 3.5: %s%%\n",
		FormatPercent(d.Over15, 0), FormatPercent(d.Over25, 0), FormatPercent(d.Under35, 0))
	fmt.Fprintf(&b, "Both teams to score: %s%% | Over 5 corners: %s%%\n",
		FormatPercent(d.BothScore, 0), FormatPercent(d.Corners5, 0))
	fmt.Fprintf(&b, "Draw no bet: %s %s%% | %s %s%%\n",
		d.HomeName, FormatPercent(d.DrawNoBet.Home, 0),
		d.AwayName, FormatPercent(d.DrawNoBet.Away, 0))
	fmt.Fprintf(&b, "Double chance: %s/Draw %s%% | %s/Draw %s%%\n",
		d.HomeName, FormatPercent(d.DCHomeDraw, 0),
		d.AwayName, FormatPercent(d.DCAwayDraw, 0))
	if d.OddsBlended {
		fmt.Fprintf(&b, "Model 1X2 before odds: %s%% | %s%% | %s%%\n",
			FormatPercent(d.ModelResult.Home, 1),
			FormatPercent(d.ModelResult.Draw, 1),
			FormatPercent(d.ModelResult.Away, 1))
	}
	if points := Percent(d.CardPenalty); points > 0 {
		fmt.Fprintf(&b, "Card penalty: -%d on 1X2 scores\n", points)
	}
	return b.String()
}
