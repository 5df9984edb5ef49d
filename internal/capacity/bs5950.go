package capacity

import "github.com/alexiusacademia/gocfs/internal/expr"

// BS 5950-5:1998 constants

const (
	// Shear buckling (Section 5.4)
	ShearYieldRatio     = 0.6    // pv ≤ 0.6 py
	ShearBucklingFactor = 1000.0 // pv ≤ (1000 t / D)²

	// Web crippling (Section 5.3)
	CrippleYieldRef  = 228.0 // k = py / 228
	CrippleBearingAt = 90.0  // θ, web perpendicular to the bearing surface

	// Flange restraint factor, web crippling of a restrained member
	RestrainedFlangeFactor = 1.21
)

// Support locates a reaction on the member for web crippling.
type Support int

const (
	// EndSupport is a reaction within 1.5 D of the member end.
	EndSupport Support = iota
	// InteriorSupport is a reaction away from the end, e.g. a hanger point on
	// a continuous runner.
	InteriorSupport
)

func (s Support) String() string {
	if s == InteriorSupport {
		return "interior"
	}
	return "end"
}

// YieldRatio is k = (Py / γm) / 228
// BS 5950-5 Section 5.3.2
func YieldRatio(py, gammaM expr.Node) expr.Node {
	return expr.Let("k", expr.Div(expr.Div(py, gammaM), expr.Const(CrippleYieldRef)))
}

// C3 = 1.33 − 0.33k
func C3(k expr.Node) expr.Node {
	return expr.Let("C3", expr.Sub(expr.Const(1.33), expr.Mul(expr.Const(0.33), k)))
}

// C4 = 1.15 − 0.15 r/t, limited to [0.50, 1.0]
func C4(r, t expr.Node) expr.Node {
	return expr.Let("C4", expr.Clamp(expr.Sub(expr.Const(1.15), expr.Mul(expr.Const(0.15), expr.Div(r, t))), 0.5, 1.0))
}

// C12 = 0.7 + 0.3 (θ / 90)²
func C12(theta expr.Node) expr.Node {
	return expr.Let("C12", expr.Add(expr.Const(0.7), expr.Mul(expr.Const(0.3), expr.Pow(expr.Div(theta, expr.Const(90)), 2))))
}

// webTerm is the slenderness and bearing term of the web crippling formula
// for the given support.
func webTerm(s Support, d, t, nb expr.Node) (slender, bearing expr.Node) {
	if s == InteriorSupport {
		// (3350 − 4.6 D/t)(1 + 0.0013 Nb/t)
		return expr.Sub(expr.Const(3350), expr.Mul(expr.Const(4.6), expr.Div(d, t))),
			expr.Add(expr.Const(1), expr.Mul(expr.Const(0.0013), expr.Div(nb, t)))
	}
	// (1350 − 1.73 D/t)(1 + 0.01 Nb/t)
	return expr.Sub(expr.Const(1350), expr.Mul(expr.Const(1.73), expr.Div(d, t))),
		expr.Add(expr.Const(1), expr.Mul(expr.Const(0.01), expr.Div(nb, t)))
}
