// Package statics holds the closed-form statics of a simply supported member
// of span L under the load actions the product supports.
//
// Sign conventions: x is measured from the lower (left) support, positive
// actions act in the same transverse direction, moments and deflections are
// reported as magnitudes.
package statics

import (
	"math"

	"github.com/alexiusacademia/gocfs/internal/expr"
)

// ActionKind tags the variant of an Action.
type ActionKind int

const (
	KindPointLoad ActionKind = iota + 1
	KindUniformLoad
	KindCouple
)

func (k ActionKind) String() string {
	switch k {
	case KindPointLoad:
		return "point load"
	case KindUniformLoad:
		return "uniform load"
	case KindCouple:
		return "couple"
	}
	return "unknown"
}

// Action is one load acting on the span. The set of variants is closed:
// PointLoad, UniformLoad and Couple.
type Action interface {
	Kind() ActionKind
	isAction()
}

// PointLoad is a concentrated transverse force P (N) at distance A (mm) from
// the lower support.
type PointLoad struct {
	P expr.Node
	A expr.Node
}

// UniformLoad is a transverse line load W (N/mm) over the whole span.
type UniformLoad struct {
	W expr.Node
}

// Couple is a concentrated moment M (N·mm) applied at distance A (mm).
type Couple struct {
	M expr.Node
	A expr.Node
}

func (PointLoad) Kind() ActionKind   { return KindPointLoad }
func (UniformLoad) Kind() ActionKind { return KindUniformLoad }
func (Couple) Kind() ActionKind      { return KindCouple }

func (PointLoad) isAction()   {}
func (UniformLoad) isAction() {}
func (Couple) isAction()      {}

// Reactions returns the support reactions at x = 0 and x = L as magnitudes.
func Reactions(a Action, L expr.Node) (ra, rb expr.Node) {
	switch v := a.(type) {
	case PointLoad:
		// Ra = P(L − a)/L, Rb = Pa/L
		return expr.Div(expr.Mul(v.P, expr.Sub(L, v.A)), L), expr.Div(expr.Mul(v.P, v.A), L)
	case UniformLoad:
		r := expr.Div(expr.Mul(v.W, L), expr.Const(2))
		return r, r
	case Couple:
		r := expr.Div(v.M, L)
		return r, r
	}
	panic("statics: unknown action")
}

// MaxMoment returns the largest bending moment magnitude along the span.
func MaxMoment(a Action, L expr.Node) expr.Node {
	switch v := a.(type) {
	case PointLoad:
		// M = P a (L − a) / L under the load
		return expr.Div(expr.Mul(v.P, v.A, expr.Sub(L, v.A)), L)
	case UniformLoad:
		return expr.Div(expr.Mul(v.W, expr.Pow(L, 2)), expr.Const(8))
	case Couple:
		// jump of M at the couple, the larger side governs
		return expr.Div(expr.Mul(v.M, expr.Max(v.A, expr.Sub(L, v.A))), L)
	}
	panic("statics: unknown action")
}

// MaxDeflection returns the largest deflection magnitude along the span for
// flexural rigidity E × I.
func MaxDeflection(a Action, L, E, I expr.Node) expr.Node {
	switch v := a.(type) {
	case PointLoad:
		// δmax = P s (L² − s²)^1.5 / (9√3 E I L), s the shorter load distance
		s := expr.Let("s", expr.Min(v.A, expr.Sub(L, v.A)))
		return expr.Div(
			expr.Mul(v.P, s, expr.Pow(expr.Sub(expr.Pow(L, 2), expr.Pow(s, 2)), 1.5)),
			expr.Mul(expr.Const(9), expr.Sqrt(expr.Const(3)), E, I, L),
		)
	case UniformLoad:
		return expr.Div(
			expr.Mul(expr.Const(5), v.W, expr.Pow(L, 4)),
			expr.Mul(expr.Const(384), E, I),
		)
	case Couple:
		// bound reached when the couple sits at a support
		return expr.Div(
			expr.Mul(v.M, expr.Pow(L, 2)),
			expr.Mul(expr.Const(9), expr.Sqrt(expr.Const(3)), E, I),
		)
	}
	panic("statics: unknown action")
}

// MomentAt evaluates the bending moment at x. Used for diagrams.
func MomentAt(a Action, L, x float64) float64 {
	switch v := a.(type) {
	case PointLoad:
		p, at := v.P.Eval(), v.A.Eval()
		if x <= at {
			return p * (L - at) * x / L
		}
		return p * at * (L - x) / L
	case UniformLoad:
		return v.W.Eval() * x * (L - x) / 2
	case Couple:
		m, at := v.M.Eval(), v.A.Eval()
		if x < at {
			return -m * x / L
		}
		return m * (L - x) / L
	}
	panic("statics: unknown action")
}

// DeflectionAt evaluates the deflection at x for rigidity ei (N·mm²). Used
// for diagrams.
func DeflectionAt(a Action, L, ei, x float64) float64 {
	switch v := a.(type) {
	case PointLoad:
		p, at := v.P.Eval(), v.A.Eval()
		b := L - at
		if x <= at {
			return p * b * x * (L*L - b*b - x*x) / (6 * ei * L)
		}
		u := L - x
		return p * at * u * (L*L - at*at - u*u) / (6 * ei * L)
	case UniformLoad:
		w := v.W.Eval()
		return w * x * (L*L*L - 2*L*x*x + x*x*x) / (24 * ei)
	case Couple:
		m, at := v.M.Eval(), v.A.Eval()
		b := L - at
		c1 := m * (at*at*at + b*b*b + 3*b*(at*at-b*b)) / (6 * L * L)
		if x <= at {
			return (-m*x*x*x/(6*L) + c1*x) / ei
		}
		c2 := m*(at*at-b*b)/(2*L) - c1
		u := L - x
		return (m*u*u*u/(6*L) + c2*u) / ei
	}
	panic("statics: unknown action")
}

// maxAbs is a helper for sampled diagrams.
func maxAbs(vals []float64) float64 {
	var m float64
	for _, v := range vals {
		m = math.Max(m, math.Abs(v))
	}
	return m
}
