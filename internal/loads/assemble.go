// Package loads turns raw service loads into the factored load components
// used by the member checks.
package loads

import "github.com/alexiusacademia/gocfs/internal/expr"

const (
	// Gravity converts kg and kgf to newtons.
	Gravity = 9.81 // m/s²

	// DefaultInsulationDensity is used when an insulation layer gives no density.
	DefaultInsulationDensity = 16.0 // kg/m³
)

// Inputs are the unfactored loads of one request.
type Inputs struct {
	WindPressure  float64 `json:"wind_pressure" yaml:"wind_pressure"`   // ω (kPa)
	ImposedLoad   float64 `json:"imposed_load" yaml:"imposed_load"`     // W (kN/m) line load along the wall
	ImposedHeight float64 `json:"imposed_height" yaml:"imposed_height"` // h (mm) above the lower support

	BoardLayers int     `json:"board_layers" yaml:"board_layers"`
	BoardWeight float64 `json:"board_weight" yaml:"board_weight"` // kgf/m² per layer
	FrameWeight float64 `json:"frame_weight" yaml:"frame_weight"` // kgf/m²

	Insulation *Insulation `json:"insulation,omitempty" yaml:"insulation,omitempty"`
	Fixture    *Fixture    `json:"fixture,omitempty" yaml:"fixture,omitempty"`
}

// Insulation is an optional insulation layer carried by the framing.
type Insulation struct {
	Thickness float64 `json:"thickness" yaml:"thickness"` // mm
	Density   float64 `json:"density" yaml:"density"`     // kg/m³, 0 means DefaultInsulationDensity
}

// Fixture is an item fixed to the member, e.g. a wall cabinet or a light
// fitting.
type Fixture struct {
	Mass   float64 `json:"mass" yaml:"mass"`     // kg
	Height float64 `json:"height" yaml:"height"` // mm from the lower support, or position along the span
	Offset float64 `json:"offset" yaml:"offset"` // mm horizontal offset of the centre of mass from the member
}

// Component is one load with its factored and service values.
type Component struct {
	Factored expr.Node
	Service  expr.Node
}

// Active reports whether the component carries any load.
func (c Component) Active() bool {
	return c.Service != nil && c.Service.Eval() > 0
}

// Loads are the assembled components. Line loads are in N/mm, point loads in
// N and couples in N·mm.
type Loads struct {
	Wind    Component // qW, transverse line load
	Dead    Component // qD, self weight line load
	Imposed Component // P, point load on one member
	Height  expr.Node // h

	Fixture *FixtureLoad
}

// FixtureLoad is the fixture weight and the couple it induces through its
// offset.
type FixtureLoad struct {
	Weight   Component // Pf (N)
	Couple   Component // Mf (N·mm)
	Position expr.Node // hf (mm)
}

// Assemble builds the load components for a member with tributary width tw
// (mm). It forwards every component and leaves the choice of governing case
// to the caller.
func Assemble(in Inputs, f Factors, tw float64) Loads {
	Tw := expr.Var("Tw", tw)

	omega := expr.Var("ω", in.WindPressure)
	windService := expr.Div(expr.Mul(omega, Tw), expr.Const(1000))
	windFactored := expr.Div(expr.Mul(expr.Var("γW", f.Wind), omega, Tw), expr.Const(1000))

	areal := deadWeight(in)
	deadService := expr.Div(expr.Mul(areal, expr.Var("g", Gravity), Tw), expr.Const(1e6))
	deadFactored := expr.Div(expr.Mul(expr.Var("γD", f.Dead), areal, expr.Var("g", Gravity), Tw), expr.Const(1e6))

	W := expr.Var("W", in.ImposedLoad)
	out := Loads{
		Wind: Component{
			Factored: expr.Let("qW", windFactored),
			Service:  expr.Let("qW,s", windService),
		},
		Dead: Component{
			Factored: expr.Let("qD", deadFactored),
			Service:  expr.Let("qD,s", deadService),
		},
		Imposed: Component{
			Factored: expr.Let("P", expr.Mul(expr.Var("γQ", f.Imposed), W, Tw)),
			Service:  expr.Let("Ps", expr.Mul(W, Tw)),
		},
		Height: expr.Var("h", in.ImposedHeight),
	}

	if fx := in.Fixture; fx != nil && fx.Mass > 0 {
		m := expr.Var("m", fx.Mass)
		g := expr.Var("g", Gravity)
		gammaI := expr.Var("γI", f.Fixture)
		e := expr.Var("e", fx.Offset)
		out.Fixture = &FixtureLoad{
			Weight: Component{
				Factored: expr.Let("Pf", expr.Mul(gammaI, m, g)),
				Service:  expr.Let("Pf,s", expr.Mul(m, g)),
			},
			Couple: Component{
				Factored: expr.Let("Mf", expr.Mul(gammaI, m, g, e)),
				Service:  expr.Let("Mf,s", expr.Mul(m, g, e)),
			},
			Position: expr.Var("hf", fx.Height),
		}
	}
	return out
}

// deadWeight is the areal self weight in kgf/m²: board layers, insulation
// and framing.
func deadWeight(in Inputs) expr.Node {
	terms := []expr.Node{
		expr.Mul(expr.Var("n", float64(in.BoardLayers)), expr.Var("wb", in.BoardWeight)),
	}
	if ins := in.Insulation; ins != nil && ins.Thickness > 0 {
		rho := ins.Density
		if rho <= 0 {
			rho = DefaultInsulationDensity
		}
		terms = append(terms, expr.Div(expr.Mul(expr.Var("ti", ins.Thickness), expr.Var("ρi", rho)), expr.Const(1000)))
	}
	terms = append(terms, expr.Var("wf", in.FrameWeight))
	return expr.Add(terms...)
}
