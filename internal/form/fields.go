// Package form models the flat set of named input fields a user fills in
// before asking for tips, and converts it into a scoring input.
package form

// Field names
const (
	HomeName = "homeName"
	AwayName = "awayName"

	HomeGoalsFor      = "homeGoalsFor"
	HomeGoalsAgainst  = "homeGoalsAgainst"
	HomeCorners       = "homeCorners"
	HomeWinRate       = "homeWinRate"
	HomeShots         = "homeShots"
	HomeShotsOnTarget = "homeShotsOnTarget"
	HomeYellowCards   = "homeYellowCards"
	HomeRedCards      = "homeRedCards"

	AwayGoalsFor      = "awayGoalsFor"
	AwayGoalsAgainst  = "awayGoalsAgainst"
	AwayCorners       = "awayCorners"
	AwayWinRate       = "awayWinRate"
	AwayShots         = "awayShots"
	AwayShotsOnTarget = "awayShotsOnTarget"
	AwayYellowCards   = "awayYellowCards"
	AwayRedCards      = "awayRedCards"

	OddsHome    = "oddsHome"
	OddsDraw    = "oddsDraw"
	OddsAway    = "oddsAway"
	OddsOver15  = "oddsOver15"
	OddsOver25  = "oddsOver25"
	OddsUnder35 = "oddsUnder35"
	OddsBoth    = "oddsBoth"

	WeightAttack  = "weightAttack"
	WeightDefense = "weightDefense"
)

// Fields lists every known field in display order
var Fields = []string{
	HomeName, AwayName,
	HomeGoalsFor, HomeGoalsAgainst, HomeCorners, HomeWinRate,
	HomeShots, HomeShotsOnTarget, HomeYellowCards, HomeRedCards,
	AwayGoalsFor, AwayGoalsAgainst, AwayCorners, AwayWinRate,
	AwayShots, AwayShotsOnTarget, AwayYellowCards, AwayRedCards,
	OddsHome, OddsDraw, OddsAway, OddsOver15, OddsOver25, OddsUnder35, OddsBoth,
	WeightAttack, WeightDefense,
}

// IsKnown reports whether name is one of Fields
func IsKnown(name string) bool {
	for _, f := range Fields {
		if f == name {
			return true
		}
	}
	return false
}
