package form

import (
	"fmt"
	"os"

	"github.com/yourusername/matchtips/internal/models"
	"gopkg.in/yaml.v3"
)

// Form holds raw field values keyed by field name
type Form map[string]string

// New returns an empty form
func New() Form {
	return Form{}
}

// Get returns the raw value of a field
func (f Form) Get(name string) string {
	return f[name]
}

// Set stores a raw value
func (f Form) Set(name, value string) {
	f[name] = value
}

// Clear empties every field. Team names survive when keepNames is set.
func (f Form) Clear(keepNames bool) {
	for name := range f {
		if keepNames && (name == HomeName || name == AwayName) {
			continue
		}
		delete(f, name)
	}
}

// FillExample loads the canonical demo match
func (f Form) FillExample() {
	f.Clear(false)
	f[HomeName] = "Ponte Preta"
	f[AwayName] = "Náutico"
	f[HomeGoalsFor] = "1.4"
	f[HomeGoalsAgainst] = "0.9"
	f[HomeCorners] = "4.2"
	f[HomeWinRate] = "60"
	f[AwayGoalsFor] = "1.1"
	f[AwayGoalsAgainst] = "1.2"
	f[AwayCorners] = "3.8"
	f[AwayWinRate] = "45"
}

// Example returns a new form holding the demo match
func Example() Form {
	f := New()
	f.FillExample()
	return f
}

// Input converts the form into a scoring input. The second return value
// lists fields that held text but could not be read as numbers; those
// fields fall back to neutral values.
func (f Form) Input() (models.MatchInput, []string) {
	var invalid []string
	number := func(name string) (float64, bool) {
		raw := f[name]
		v, ok := ParseFloat(raw)
		if !ok && raw != "" {
			invalid = append(invalid, name)
		}
		return v, ok
	}
	value := func(name string) float64 {
		v, _ := number(name)
		return v
	}
	odd := func(name string) *float64 {
		v, ok := number(name)
		if !ok {
			return nil
		}
		return &v
	}
	weight := func(name string, fallback float64) float64 {
		v, ok := number(name)
		if !ok || v == 0 {
			return fallback
		}
		return v
	}

	in := models.MatchInput{
		HomeName: f[HomeName],
		AwayName: f[AwayName],
		Home: models.TeamStats{
			GoalsFor:      value(HomeGoalsFor),
			GoalsAgainst:  value(HomeGoalsAgainst),
			WinRate:       value(HomeWinRate),
			Corners:       value(HomeCorners),
			Shots:         value(HomeShots),
			ShotsOnTarget: value(HomeShotsOnTarget),
			YellowCards:   value(HomeYellowCards),
			RedCards:      value(HomeRedCards),
		},
		Away: models.TeamStats{
			GoalsFor:      value(AwayGoalsFor),
			GoalsAgainst:  value(AwayGoalsAgainst),
			WinRate:       value(AwayWinRate),
			Corners:       value(AwayCorners),
			Shots:         value(AwayShots),
			ShotsOnTarget: value(AwayShotsOnTarget),
			YellowCards:   value(AwayYellowCards),
			RedCards:      value(AwayRedCards),
		},
		Weights: models.Weights{
			Attack:  weight(WeightAttack, models.DefaultAttackWeight),
			Defense: weight(WeightDefense, models.DefaultDefenseWeight),
		},
		Odds: models.Odds{
			Home:      odd(OddsHome),
			Draw:      odd(OddsDraw),
			Away:      odd(OddsAway),
			Over15:    odd(OddsOver15),
			Over25:    odd(OddsOver25),
			Under35:   odd(OddsUnder35),
			BothScore: odd(OddsBoth),
		},
	}
	return in, invalid
}

// Load reads a form from a YAML file of field: value pairs
func Load(path string) (Form, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read form file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML field: value pairs. Unknown fields are rejected.
func Parse(data []byte) (Form, error) {
	raw := map[string]string{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse form: %w", err)
	}
	f := New()
	for name, value := range raw {
		if !IsKnown(name) {
			return nil, fmt.Errorf("unknown form field %q", name)
		}
		f[name] = value
	}
	return f, nil
}

// Marshal encodes the non-empty fields as YAML in display order
func (f Form) Marshal() ([]byte, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range Fields {
		value, ok := f[name]
		if !ok || value == "" {
			continue
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: name},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value},
		)
	}
	return yaml.Marshal(node)
}

// Save writes the form to path as YAML
func (f Form) Save(path string) error {
	data, err := f.Marshal()
	if err != nil {
		return fmt.Errorf("failed to encode form: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write form file: %w", err)
	}
	return nil
}
