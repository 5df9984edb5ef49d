package engine

import (
	"github.com/alexiusacademia/gocfs/internal/capacity"
	"github.com/alexiusacademia/gocfs/internal/loads"
)

// MemberKind selects the member strategy of a request.
type MemberKind string

const (
	KindWallStud      MemberKind = "wall_stud"
	KindCeilingSystem MemberKind = "ceiling_system"
)

// Deflection criteria.
const (
	CriterionL240   = "L/240"
	CriterionL360   = "L/360"
	CriterionCustom = "custom"
)

// Request is everything one calculation needs. Catalog records are referred
// to by id.
type Request struct {
	Member  MemberKind `json:"member" yaml:"member"`
	Section string     `json:"section" yaml:"section"`
	Hanger  string     `json:"hanger,omitempty" yaml:"hanger,omitempty"` // ceiling systems only
	Anchor  string     `json:"anchor,omitempty" yaml:"anchor,omitempty"` // ceiling systems only

	Material   Material      `json:"material" yaml:"material"`
	Geometry   Geometry      `json:"geometry" yaml:"geometry"`
	Factors    loads.Factors `json:"factors" yaml:"factors"`
	Loads      loads.Inputs  `json:"loads" yaml:"loads"`
	Deflection Deflection    `json:"deflection" yaml:"deflection"`
}

// Material is the steel grade the section is checked against.
type Material struct {
	YieldStrength  float64 `json:"yield_strength" yaml:"yield_strength"`   // Py (MPa)
	ElasticModulus float64 `json:"elastic_modulus" yaml:"elastic_modulus"` // E (MPa)
	MaterialFactor float64 `json:"material_factor" yaml:"material_factor"` // γm
}

func (m Material) capacity() capacity.Material {
	return capacity.Material{
		YieldStrength:  m.YieldStrength,
		ElasticModulus: m.ElasticModulus,
		MaterialFactor: m.MaterialFactor,
	}
}

// Geometry of the member. For a ceiling system the span is the hanger
// spacing and the tributary width is the runner spacing.
type Geometry struct {
	Span           float64 `json:"span" yaml:"span"`                       // L (mm)
	TributaryWidth float64 `json:"tributary_width" yaml:"tributary_width"` // Tw (mm)
	BearingLength  float64 `json:"bearing_length" yaml:"bearing_length"`   // Nb (mm)
}

// Deflection is the serviceability criterion L/n.
type Deflection struct {
	Criterion string  `json:"criterion" yaml:"criterion"`               // "L/240", "L/360" or "custom"
	Custom    float64 `json:"custom,omitempty" yaml:"custom,omitempty"` // n when Criterion is "custom"
}

// Denominator returns n. It reports false for an unknown criterion or a
// non-positive custom value.
func (d Deflection) Denominator() (float64, bool) {
	switch d.Criterion {
	case CriterionL240:
		return 240, true
	case CriterionL360:
		return 360, true
	case CriterionCustom:
		return d.Custom, d.Custom > 0
	}
	return 0, false
}

// ReferenceWallStud returns the worked wall stud example: a C75x45x0.8t stud
// of 4100 mm at 406 mm centres carrying a 0.75 kN/m imposed line load
// 1100 mm above the floor.
func ReferenceWallStud() Request {
	return Request{
		Member:  KindWallStud,
		Section: "C75x45x0.8t",
		Material: Material{
			YieldStrength:  200,
			ElasticModulus: 205000,
			MaterialFactor: 1.2,
		},
		Geometry: Geometry{
			Span:           4100,
			TributaryWidth: 406,
			BearingLength:  32,
		},
		Factors: loads.DefaultFactors,
		Loads: loads.Inputs{
			ImposedLoad:   0.75,
			ImposedHeight: 1100,
		},
		Deflection: Deflection{Criterion: CriterionL240},
	}
}

// ReferenceCeilingSystem returns a worked ceiling example: FRC runners at
// 1200 mm hung every 1000 mm on M8 rods with HST3-M8 anchors, two board
// layers and a 0.25 kPa wind pressure.
func ReferenceCeilingSystem() Request {
	return Request{
		Member:  KindCeilingSystem,
		Section: "FRC38x12x0.8t",
		Hanger:  "M8",
		Anchor:  "HST3-M8",
		Material: Material{
			YieldStrength:  200,
			ElasticModulus: 205000,
			MaterialFactor: 1.2,
		},
		Geometry: Geometry{
			Span:           1000,
			TributaryWidth: 1200,
			BearingLength:  32,
		},
		Factors: loads.DefaultFactors,
		Loads: loads.Inputs{
			WindPressure: 0.25,
			BoardLayers:  2,
			BoardWeight:  9.5,
			FrameWeight:  3,
		},
		Deflection: Deflection{Criterion: CriterionL360},
	}
}
