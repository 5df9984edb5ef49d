package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gocfs/internal/engine"
	"github.com/alexiusacademia/gocfs/internal/loads"
	"github.com/alexiusacademia/gocfs/internal/request"
	"github.com/spf13/cobra"
)

// memberFlags are the request inputs shared by the member commands. Unset
// bearing, material, factor and deflection flags fall back to the
// configuration.
type memberFlags struct {
	sample bool

	section string
	hanger  string
	anchor  string

	// Geometry (mm)
	span      float64
	tributary float64
	bearing   float64

	// Material
	yield   float64
	modulus float64
	gammaM  float64

	// Load factors
	preset        string
	windFactor    float64
	deadFactor    float64
	imposedFactor float64
	fixtureFactor float64

	// Loads
	wind          float64
	imposed       float64
	imposedHeight float64
	boardLayers   int
	boardWeight   float64
	frameWeight   float64
	insulation    float64
	insulationRho float64
	fixtureMass   float64
	fixtureHeight float64
	fixtureOffset float64

	// Serviceability
	criterion string
	custom    float64
}

func (f *memberFlags) register(cmd *cobra.Command, m engine.MemberKind) {
	fs := cmd.Flags()

	fs.BoolVar(&f.sample, "sample", false, "Check the worked example instead of the flags")
	fs.StringVarP(&f.section, "section", "s", "", "Section id from the catalog [required]")
	fs.Float64VarP(&f.span, "span", "L", 0, "Span (mm) [required]")
	fs.Float64VarP(&f.tributary, "tributary", "t", 0, "Tributary width (mm) [required]")
	fs.Float64Var(&f.bearing, "bearing", 0, "Bearing length at the supports (mm, configured default 32)")

	fs.Float64Var(&f.yield, "py", 0, "Design yield strength Py (MPa)")
	fs.Float64Var(&f.modulus, "modulus", 0, "Elastic modulus E (MPa)")
	fs.Float64Var(&f.gammaM, "gamma-m", 0, "Material factor γm")

	fs.StringVar(&f.preset, "preset", "", "Load factor preset: imposed, wind or combined")
	fs.Float64Var(&f.windFactor, "factor-wind", 0, "Wind load factor γW")
	fs.Float64Var(&f.deadFactor, "factor-dead", 0, "Dead load factor γD")
	fs.Float64Var(&f.imposedFactor, "factor-imposed", 0, "Imposed load factor γQ")
	fs.Float64Var(&f.fixtureFactor, "factor-fixture", 0, "Fixture load factor γI")

	fs.Float64VarP(&f.wind, "wind", "w", 0, "Wind pressure (kPa)")
	fs.IntVar(&f.boardLayers, "boards", 0, "Number of board layers")
	fs.Float64Var(&f.boardWeight, "board-weight", 0, "Weight of one board layer (kgf/m²)")
	fs.Float64Var(&f.frameWeight, "frame-weight", 0, "Weight of the metal frame (kgf/m²)")
	fs.Float64Var(&f.insulation, "insulation", 0, "Insulation thickness (mm)")
	fs.Float64Var(&f.insulationRho, "insulation-density", 0, "Insulation density (kg/m³)")

	fs.Float64Var(&f.fixtureMass, "fixture-mass", 0, "Mass of a fixture on the member (kg)")
	fs.Float64Var(&f.fixtureHeight, "fixture-height", 0, "Fixture position from the lower support or along the span (mm)")
	fs.Float64Var(&f.fixtureOffset, "fixture-offset", 0, "Horizontal offset of the fixture from the member (mm)")

	fs.StringVar(&f.criterion, "criterion", "", "Deflection limit: L/240, L/360 or custom")
	fs.Float64Var(&f.custom, "custom", 0, "n of a custom deflection limit L/n")

	switch m {
	case engine.KindWallStud:
		fs.Float64VarP(&f.imposed, "imposed", "W", 0, "Imposed horizontal line load (kN/m)")
		fs.Float64Var(&f.imposedHeight, "height", 0, "Height of the imposed load above the lower support (mm)")
	case engine.KindCeilingSystem:
		fs.StringVar(&f.hanger, "hanger", "", "Hanger rod id from the catalog [required]")
		fs.StringVar(&f.anchor, "anchor", "", "Anchor id from the catalog [required]")
	}
}

// request builds the request of member kind m from the flags set on cmd.
func (f *memberFlags) request(cmd *cobra.Command, m engine.MemberKind) (engine.Request, error) {
	if f.sample {
		if m == engine.KindCeilingSystem {
			return engine.ReferenceCeilingSystem(), nil
		}
		return engine.ReferenceWallStud(), nil
	}

	changed := cmd.Flags().Changed
	required := []string{"section", "span", "tributary"}
	if m == engine.KindCeilingSystem {
		required = append(required, "hanger", "anchor")
	}
	var missing []string
	for _, name := range required {
		if !changed(name) {
			missing = append(missing, strconv.Quote(name))
		}
	}
	if len(missing) > 0 {
		return engine.Request{}, fmt.Errorf("required flag(s) %s not set", strings.Join(missing, ", "))
	}

	d := defaults()

	req := engine.Request{
		Member:     m,
		Section:    f.section,
		Hanger:     f.hanger,
		Anchor:     f.anchor,
		Material:   d.Material,
		Factors:    d.Factors,
		Deflection: d.Deflection,
		Geometry: engine.Geometry{
			Span:           f.span,
			TributaryWidth: f.tributary,
			BearingLength:  d.Geometry.BearingLength,
		},
		Loads: loads.Inputs{
			WindPressure:  f.wind,
			ImposedLoad:   f.imposed,
			ImposedHeight: f.imposedHeight,
			BoardLayers:   f.boardLayers,
			BoardWeight:   f.boardWeight,
			FrameWeight:   f.frameWeight,
		},
	}

	if changed("bearing") {
		req.Geometry.BearingLength = f.bearing
	}
	if changed("py") {
		req.Material.YieldStrength = f.yield
	}
	if changed("modulus") {
		req.Material.ElasticModulus = f.modulus
	}
	if changed("gamma-m") {
		req.Material.MaterialFactor = f.gammaM
	}

	if f.preset != "" {
		p, ok := loads.PresetByID(f.preset)
		if !ok {
			return req, fmt.Errorf("unknown load factor preset %q, see 'gocfs factors'", f.preset)
		}
		req.Factors = p.Factors
	}
	if changed("factor-wind") {
		req.Factors.Wind = f.windFactor
	}
	if changed("factor-dead") {
		req.Factors.Dead = f.deadFactor
	}
	if changed("factor-imposed") {
		req.Factors.Imposed = f.imposedFactor
	}
	if changed("factor-fixture") {
		req.Factors.Fixture = f.fixtureFactor
	}

	if changed("insulation") {
		req.Loads.Insulation = &loads.Insulation{Thickness: f.insulation, Density: f.insulationRho}
	}
	if changed("fixture-mass") {
		req.Loads.Fixture = &loads.Fixture{Mass: f.fixtureMass, Height: f.fixtureHeight, Offset: f.fixtureOffset}
	}

	if changed("criterion") {
		req.Deflection = engine.Deflection{Criterion: f.criterion, Custom: f.custom}
	}
	return req, nil
}

// defaults are the configured request defaults.
func defaults() request.Defaults {
	return request.Defaults{
		Material:   cfg.MaterialDefaults(),
		Geometry:   cfg.GeometryDefaults(),
		Factors:    cfg.FactorDefaults(),
		Deflection: cfg.DeflectionDefaults(),
	}
}
