package scoring

import (
	"fmt"

	"github.com/yourusername/matchtips/internal/models"
)

// Default display names when the form leaves a team unnamed
const (
	DefaultHomeName = "Home"
	DefaultAwayName = "Away"
)

// statFallback replaces a missing stat in the advanced variant
const statFallback = 1.0

// Options configures an Engine
type Options struct {
	Variant     Variant
	TopN        int
	ChartPolicy ChartPolicy
}

// Result is the ranked output of one scoring run
type Result struct {
	Variant     Variant             `json:"variant"`
	Tips        []models.Tip        `json:"tips"`
	Top         []models.Tip        `json:"top"`
	Chart       []models.ChartPoint `json:"chart"`
	Diagnostics models.Diagnostics  `json:"diagnostics"`
}

// Engine computes tips for a match. It holds no state between runs.
type Engine struct {
	opts Options
}

// NewEngine creates an engine, filling unset options with defaults
func NewEngine(opts Options) *Engine {
	if opts.Variant == "" {
		opts.Variant = VariantBasic
	}
	if opts.TopN <= 0 {
		opts.TopN = DefaultTopN
	}
	if opts.ChartPolicy == "" {
		opts.ChartPolicy = ChartTop
	}
	return &Engine{opts: opts}
}

// Score runs the full pipeline: strengths, 1X2, auxiliary and derived
// markets, optional card penalty, then ranking.
func (e *Engine) Score(input models.MatchInput) *Result {
	in := e.prepare(input)
	advanced := e.opts.Variant == VariantAdvanced

	home := TeamStrength(in.Home, e.opts.Variant)
	away := TeamStrength(in.Away, e.opts.Variant)

	model := ResultProbabilities(home, away, in.Weights)
	result := model
	if advanced {
		result = BlendResult(model, in.Odds)
	}

	d := models.Diagnostics{
		HomeName:         in.HomeName,
		AwayName:         in.AwayName,
		HomeStrength:     home,
		AwayStrength:     away,
		ModelResult:      model,
		Result:           result,
		OddsBlended:      advanced,
		Over15:           Over15(in.Home.GoalsFor, in.Away.GoalsFor),
		Over25:           Over25(in.Home.GoalsFor, in.Away.GoalsFor),
		Under35:          Under35(in.Home.GoalsFor, in.Away.GoalsFor),
		BothScore:        BothScore(in.Home.GoalsFor, in.Away.GoalsFor, in.Home.GoalsAgainst, in.Away.GoalsAgainst),
		Corners5:         Corners5(in.Home.Corners, in.Away.Corners),
		HomeGoalsFor:     in.Home.GoalsFor,
		AwayGoalsFor:     in.Away.GoalsFor,
		HomeGoalsAgainst: in.Home.GoalsAgainst,
		AwayGoalsAgainst: in.Away.GoalsAgainst,
		HomeCorners:      in.Home.Corners,
		AwayCorners:      in.Away.Corners,
	}
	if advanced {
		d.Over15 = BlendBinary(d.Over15, in.Odds.Over15)
		d.Over25 = BlendBinary(d.Over25, in.Odds.Over25)
		d.Under35 = BlendBinary(d.Under35, in.Odds.Under35)
		d.BothScore = BlendBinary(d.BothScore, in.Odds.BothScore)
	}
	d.DrawNoBet = DrawNoBetProbabilities(result)
	d.DCHomeDraw = DoubleChance(result.Home, result.Draw)
	d.DCAwayDraw = DoubleChance(result.Away, result.Draw)

	tips := buildTips(&d)
	if advanced {
		d.CardPenalty = CardPenalty(in.Home, in.Away)
		ApplyCardPenalty(tips, d.CardPenalty)
	}

	ranked := Rank(tips)
	top := Top(ranked, e.opts.TopN)
	chartSource := top
	if e.opts.ChartPolicy == ChartAll {
		chartSource = ranked
	}

	return &Result{
		Variant:     e.opts.Variant,
		Tips:        ranked,
		Top:         top,
		Chart:       ChartData(chartSource),
		Diagnostics: d,
	}
}

func (e *Engine) prepare(in models.MatchInput) models.MatchInput {
	if in.HomeName == "" {
		in.HomeName = DefaultHomeName
	}
	if in.AwayName == "" {
		in.AwayName = DefaultAwayName
	}
	if in.Weights.Attack == 0 {
		in.Weights.Attack = models.DefaultAttackWeight
	}
	if in.Weights.Defense == 0 {
		in.Weights.Defense = models.DefaultDefenseWeight
	}
	if e.opts.Variant == VariantAdvanced {
		in.Home = withStatFallback(in.Home)
		in.Away = withStatFallback(in.Away)
	}
	return in
}

// withStatFallback treats zero or negative volume stats as missing data
func withStatFallback(s models.TeamStats) models.TeamStats {
	for _, v := range []*float64{&s.GoalsFor, &s.GoalsAgainst, &s.Corners, &s.Shots, &s.ShotsOnTarget} {
		if *v <= 0 {
			*v = statFallback
		}
	}
	return s
}

func buildTips(d *models.Diagnostics) []models.Tip {
	r := d.Result
	return []models.Tip{
		{Label: fmt.Sprintf("%s to win", d.HomeName), Key: models.TipHomeWin, Score: Percent(r.Home)},
		{Label: "Draw", Key: models.TipDraw, Score: Percent(r.Draw)},
		{Label: fmt.Sprintf("%s to win", d.AwayName), Key: models.TipAwayWin, Score: Percent(r.Away)},
		{Label: "Over 1.5 goals", Key: models.TipOver15, Score: Percent(d.Over15)},
		{Label: "Over 2.5 goals", Key: models.TipOver25, Score: Percent(d.Over25)},
		{Label: "Under 3.5 goals", Key: models.TipUnder35, Score: Percent(d.Under35)},
		{Label: "Both teams to score", Key: models.TipBothScore, Score: Percent(d.BothScore)},
		{Label: "Over 5 corners", Key: models.TipCorners5, Score: Percent(d.Corners5)},
		{Label: fmt.Sprintf("Draw no bet: %s", d.HomeName), Key: models.TipDNBHome, Score: Percent(d.DrawNoBet.Home)},
		{Label: fmt.Sprintf("Draw no bet: %s", d.AwayName), Key: models.TipDNBAway, Score: Percent(d.DrawNoBet.Away)},
		{Label: fmt.Sprintf("Double chance: %s or draw", d.HomeName), Key: models.TipDCHomeDraw, Score: Percent(d.DCHomeDraw)},
		{Label: fmt.Sprintf("Double chance: %s or draw", d.AwayName), Key: models.TipDCAwayDraw, Score: Percent(d.DCAwayDraw)},
	}
}
