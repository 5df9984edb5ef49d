package loads

// Factors are the partial safety factors applied to each unfactored load.
// All of them are multiplicative and at least 1.
type Factors struct {
	Wind    float64 `json:"wind" yaml:"wind"`       // γW
	Dead    float64 `json:"dead" yaml:"dead"`       // γD
	Imposed float64 `json:"imposed" yaml:"imposed"` // γQ
	Fixture float64 `json:"fixture" yaml:"fixture"` // γI, fixtures and installation loads
}

// Preset is a named set of load factors.
// Based on BS 5950-1 Table 2 - Partial factors for loads
type Preset struct {
	ID          string
	Description string
	Factors     Factors
}

// Presets lists the factor sets offered by the calculator.
var Presets = []Preset{
	{
		ID:          "imposed",
		Description: "1.4D + 1.6Q (imposed or fixture load governs)",
		Factors:     Factors{Wind: 1.4, Dead: 1.4, Imposed: 1.6, Fixture: 1.6},
	},
	{
		ID:          "wind",
		Description: "1.4D + 1.4W (wind load governs)",
		Factors:     Factors{Wind: 1.4, Dead: 1.4, Imposed: 1.4, Fixture: 1.4},
	},
	{
		ID:          "combined",
		Description: "1.2D + 1.2Q + 1.2W (simultaneous imposed and wind)",
		Factors:     Factors{Wind: 1.2, Dead: 1.2, Imposed: 1.2, Fixture: 1.2},
	},
}

// DefaultFactors is the "imposed" preset.
var DefaultFactors = Presets[0].Factors

// PresetByID finds a preset by its id.
func PresetByID(id string) (Preset, bool) {
	for _, p := range Presets {
		if p.ID == id {
			return p, true
		}
	}
	return Preset{}, false
}

// Named returns the factors with their field names, in a fixed order, for
// validation messages.
func (f Factors) Named() []NamedFactor {
	return []NamedFactor{
		{Field: "factors.wind", Value: f.Wind},
		{Field: "factors.dead", Value: f.Dead},
		{Field: "factors.imposed", Value: f.Imposed},
		{Field: "factors.fixture", Value: f.Fixture},
	}
}

// NamedFactor pairs a factor with the request field it came from.
type NamedFactor struct {
	Field string
	Value float64
}
