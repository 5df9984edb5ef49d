// Package capacity computes member and fastener resistances to BS 5950-5.
//
// Every resistance is returned as an expression tree so the worksheet can
// print the formula and the substituted values alongside the number.
package capacity

import (
	"github.com/alexiusacademia/gocfs/internal/catalog"
	"github.com/alexiusacademia/gocfs/internal/expr"
)

// Material holds the steel properties used by the resistance formulas.
type Material struct {
	YieldStrength  float64 // Py (MPa)
	ElasticModulus float64 // E (MPa)
	MaterialFactor float64 // γm
}

func (m Material) py() expr.Node     { return expr.Var("Py", m.YieldStrength) }
func (m Material) gammaM() expr.Node { return expr.Var("γm", m.MaterialFactor) }

// Bending returns the moment resistance Mb = Py × Sxe / γm (N·mm).
func Bending(s catalog.Section, m Material) expr.Node {
	return expr.Div(expr.Mul(m.py(), expr.Var("Sxe", s.EffectiveSectionModulus)), m.gammaM())
}

// Shear returns the web shear resistance Vc = pv × D × t (N), where
// pv = min(0.6 Py / γm, (1000 t / D)²).
func Shear(s catalog.Section, m Material) expr.Node {
	d := expr.Var("D", s.WebHeight)
	t := expr.Var("t", s.Thickness)
	pv := expr.Let("pv", expr.Min(
		expr.Div(expr.Mul(expr.Const(ShearYieldRatio), m.py()), m.gammaM()),
		expr.Pow(expr.Div(expr.Mul(expr.Const(ShearBucklingFactor), t), d), 2),
	))
	return expr.Mul(pv, d, t)
}

// Crippling describes the bearing arrangement for web crippling.
type Crippling struct {
	Support    Support
	Restrained bool    // flanges fastened against rotation
	Bearing    float64 // Nb (mm)
}

// WebCrippling returns the concentrated load resistance of a single
// unstiffened web (N):
//
//	Pw = Cr × t² × k × C3 × C4 × C12 × (a − b D/t)(1 + c Nb/t)
//
// with the end or interior coefficients selected by c.Support.
func WebCrippling(s catalog.Section, m Material, c Crippling) expr.Node {
	d := expr.Var("D", s.WebHeight)
	t := expr.Var("t", s.Thickness)
	nb := expr.Var("Nb", c.Bearing)

	cr := 1.0
	if c.Restrained {
		cr = RestrainedFlangeFactor
	}
	k := YieldRatio(m.py(), m.gammaM())
	slender, bearing := webTerm(c.Support, d, t, nb)

	return expr.Mul(
		expr.Var("Cr", cr),
		expr.Pow(t, 2),
		k,
		C3(k),
		C4(expr.Var("r", s.CornerRadius), t),
		C12(expr.Var("θ", CrippleBearingAt)),
		slender,
		bearing,
	)
}

// Hanger returns the tensile resistance of a hanger rod Th = A × fu / γm in
// kN.
func Hanger(f catalog.Fastener, m Material) expr.Node {
	return expr.Div(
		expr.Mul(expr.Var("As", f.Area), expr.Var("fu", f.TensileStrength)),
		expr.Mul(m.gammaM(), expr.Const(1000)),
	)
}

// Anchor returns the recommended pull-out load of an anchor (kN).
func Anchor(f catalog.Fastener) expr.Node {
	return expr.Var("Nrec", f.RecommendedLoad)
}

// Squash returns the axial resistance Pc = Ae × Py / γm (N) used by the
// combined action check.
func Squash(s catalog.Section, m Material) expr.Node {
	return expr.Div(expr.Mul(expr.Var("Ae", s.EffectiveArea), m.py()), m.gammaM())
}
