package catalog

import "fmt"

// SectionKind classifies a cold-formed profile by its use.
type SectionKind string

const (
	KindStud   SectionKind = "stud"
	KindRunner SectionKind = "runner"
)

// FastenerKind classifies a fastener record.
type FastenerKind string

const (
	KindHanger FastenerKind = "hanger"
	KindAnchor FastenerKind = "anchor"
)

// Section is a cold-formed steel profile with gross and effective properties.
// Effective properties are reduced for local and distortional buckling.
type Section struct {
	ID   string      `yaml:"id" json:"id"`
	Name string      `yaml:"name" json:"name"`
	Kind SectionKind `yaml:"kind" json:"kind"`

	// Geometry (mm)
	WebHeight    float64 `yaml:"web_height" json:"web_height"`       // D
	FlangeWidth  float64 `yaml:"flange_width" json:"flange_width"`   // B
	Thickness    float64 `yaml:"thickness" json:"thickness"`         // t
	CornerRadius float64 `yaml:"corner_radius" json:"corner_radius"` // r, inside bend radius

	// Gross properties
	Area            float64 `yaml:"area" json:"area"`                           // A (mm²)
	MomentOfInertia float64 `yaml:"moment_of_inertia" json:"moment_of_inertia"` // Ix (mm⁴)
	SectionModulus  float64 `yaml:"section_modulus" json:"section_modulus"`     // Sx (mm³)

	// Effective properties
	EffectiveArea            float64 `yaml:"effective_area" json:"effective_area"`                           // Ae (mm²)
	EffectiveMomentOfInertia float64 `yaml:"effective_moment_of_inertia" json:"effective_moment_of_inertia"` // Ixe (mm⁴)
	EffectiveSectionModulus  float64 `yaml:"effective_section_modulus" json:"effective_section_modulus"`     // Sxe (mm³)
}

// Fastener is a hanger rod or a post-installed anchor.
type Fastener struct {
	ID       string       `yaml:"id" json:"id"`
	Name     string       `yaml:"name" json:"name"`
	Kind     FastenerKind `yaml:"kind" json:"kind"`
	Diameter float64      `yaml:"diameter" json:"diameter"` // mm

	// Hanger rods
	Area            float64 `yaml:"area,omitempty" json:"area,omitempty"`                         // tensile stress area (mm²)
	TensileStrength float64 `yaml:"tensile_strength,omitempty" json:"tensile_strength,omitempty"` // fu (MPa)

	// Anchors (kN), already reduced by the manufacturer
	CharacteristicResistance float64 `yaml:"characteristic_resistance,omitempty" json:"characteristic_resistance,omitempty"`
	DesignResistance         float64 `yaml:"design_resistance,omitempty" json:"design_resistance,omitempty"`
	RecommendedLoad          float64 `yaml:"recommended_load,omitempty" json:"recommended_load,omitempty"`
}

// Validate checks that every property is positive and that the effective
// properties do not exceed the gross ones.
func (s *Section) Validate() error {
	if s.ID == "" {
		return &ValidationError{msg: "section id must not be empty"}
	}
	if s.Kind != KindStud && s.Kind != KindRunner {
		return &ValidationError{msg: fmt.Sprintf("section %s: unknown kind %q", s.ID, s.Kind)}
	}
	positive := []struct {
		name string
		v    float64
	}{
		{"web_height", s.WebHeight},
		{"flange_width", s.FlangeWidth},
		{"thickness", s.Thickness},
		{"corner_radius", s.CornerRadius},
		{"area", s.Area},
		{"moment_of_inertia", s.MomentOfInertia},
		{"section_modulus", s.SectionModulus},
		{"effective_area", s.EffectiveArea},
		{"effective_moment_of_inertia", s.EffectiveMomentOfInertia},
		{"effective_section_modulus", s.EffectiveSectionModulus},
	}
	for _, p := range positive {
		if !(p.v > 0) {
			return &ValidationError{msg: fmt.Sprintf("section %s: %s must be positive", s.ID, p.name)}
		}
	}
	if s.EffectiveArea > s.Area {
		return &ValidationError{msg: fmt.Sprintf("section %s: effective area exceeds gross area", s.ID)}
	}
	if s.EffectiveMomentOfInertia > s.MomentOfInertia {
		return &ValidationError{msg: fmt.Sprintf("section %s: effective moment of inertia exceeds gross", s.ID)}
	}
	if s.EffectiveSectionModulus > s.SectionModulus {
		return &ValidationError{msg: fmt.Sprintf("section %s: effective section modulus exceeds gross", s.ID)}
	}
	return nil
}

// Validate checks the properties the fastener kind relies on.
func (f *Fastener) Validate() error {
	if f.ID == "" {
		return &ValidationError{msg: "fastener id must not be empty"}
	}
	if !(f.Diameter > 0) {
		return &ValidationError{msg: fmt.Sprintf("fastener %s: diameter must be positive", f.ID)}
	}
	switch f.Kind {
	case KindHanger:
		if !(f.Area > 0) || !(f.TensileStrength > 0) {
			return &ValidationError{msg: fmt.Sprintf("hanger %s: area and tensile_strength must be positive", f.ID)}
		}
	case KindAnchor:
		if !(f.RecommendedLoad > 0) {
			return &ValidationError{msg: fmt.Sprintf("anchor %s: recommended_load must be positive", f.ID)}
		}
		if f.DesignResistance > 0 && f.RecommendedLoad > f.DesignResistance {
			return &ValidationError{msg: fmt.Sprintf("anchor %s: recommended_load exceeds design_resistance", f.ID)}
		}
	default:
		return &ValidationError{msg: fmt.Sprintf("fastener %s: unknown kind %q", f.ID, f.Kind)}
	}
	return nil
}

// ValidationError reports a malformed catalog record.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
