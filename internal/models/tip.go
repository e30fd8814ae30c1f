package models

// TipKey identifies one of the fixed outcome markets
type TipKey string

// Tip keys in the order the engine emits them. Ranking ties keep this order.
const (
	TipHomeWin    TipKey = "homeWin"
	TipDraw       TipKey = "draw"
	TipAwayWin    TipKey = "awayWin"
	TipOver15     TipKey = "over15"
	TipOver25     TipKey = "over25"
	TipUnder35    TipKey = "under35"
	TipBothScore  TipKey = "btts"
	TipCorners5   TipKey = "corners5"
	TipDNBHome    TipKey = "dnbHome"
	TipDNBAway    TipKey = "dnbAway"
	TipDCHomeDraw TipKey = "dcHomeDraw"
	TipDCAwayDraw TipKey = "dcAwayDraw"
)

// AllTipKeys lists every market in emission order
var AllTipKeys = []TipKey{
	TipHomeWin, TipDraw, TipAwayWin,
	TipOver15, TipOver25, TipUnder35,
	TipBothScore, TipCorners5,
	TipDNBHome, TipDNBAway,
	TipDCHomeDraw, TipDCAwayDraw,
}

// IsResultMarket reports whether the key is one of the three 1X2 outcomes
func (k TipKey) IsResultMarket() bool {
	return k == TipHomeWin || k == TipDraw || k == TipAwayWin
}

// Tip is one labelled bet suggestion with a 0-100 confidence score
type Tip struct {
	Label string `json:"label" yaml:"label"`
	Key   TipKey `json:"key" yaml:"key"`
	Score int    `json:"score" yaml:"score"`
}

// ChartPoint is a single bar of the confidence chart
type ChartPoint struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}
