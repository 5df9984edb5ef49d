package engine

import (
	"github.com/alexiusacademia/gocfs/internal/capacity"
	"github.com/alexiusacademia/gocfs/internal/expr"
	"github.com/alexiusacademia/gocfs/internal/statics"
	"github.com/alexiusacademia/gocfs/internal/verdict"
)

// Display units. Moments are printed in kN·mm and fastener forces in kN; the
// conversion is part of the expression so the printed substitution still
// evaluates to the printed result.
const (
	unitMoment     = "kN·mm"
	unitForce      = "N"
	unitFastener   = "kN"
	unitDeflection = "mm"
)

func perKilo(n expr.Node) expr.Node { return expr.Div(n, expr.Const(1000)) }

func bendingCheck(w *Worksheet, ds []statics.Demand) verdict.CheckResult {
	d := ds[statics.Governing(ds, statics.ByMoment)]
	return verdict.Check(verdict.Bending, d.Case,
		verdict.NewTerm("Mc", perKilo(d.Moment), unitMoment),
		verdict.NewTerm("Mb", perKilo(capacity.Bending(w.Section, w.Material)), unitMoment),
	)
}

func shearCheck(w *Worksheet, ds []statics.Demand) verdict.CheckResult {
	d := ds[statics.Governing(ds, statics.ByReaction)]
	return verdict.Check(verdict.Shear, d.Case,
		verdict.NewTerm("Fv", d.Reaction, unitForce),
		verdict.NewTerm("Vc", capacity.Shear(w.Section, w.Material), unitForce),
	)
}

// webCripplingCheck compares the force entering the web at a support with
// Pw. At an interior support the web takes the reactions of both adjacent
// spans.
func webCripplingCheck(w *Worksheet, ds []statics.Demand, c capacity.Crippling) verdict.CheckResult {
	d := ds[statics.Governing(ds, statics.ByReaction)]
	force := d.Reaction
	if c.Support == capacity.InteriorSupport {
		force = expr.Mul(expr.Const(2), expr.Let("Rmax", d.Reaction))
	}
	c.Bearing = w.Request.Geometry.BearingLength
	return verdict.Check(verdict.WebCrippling, d.Case,
		verdict.NewTerm("Fw", force, unitForce),
		verdict.NewTerm("Pw", capacity.WebCrippling(w.Section, w.Material, c), unitForce),
	)
}

func deflectionCheck(w *Worksheet, ds []statics.Demand) verdict.CheckResult {
	d := ds[statics.Governing(ds, statics.ByDeflection)]
	allow := expr.Div(w.Span.L, expr.Var("n", w.Denominator))
	return verdict.Check(verdict.Deflection, d.Case,
		verdict.NewTerm("δmax", d.Deflection, unitDeflection),
		verdict.NewTerm("δallow", allow, unitDeflection),
	)
}

// combinedCheck is the interaction of axial load N and bending:
// N / Pc + Mc / Mb ≤ 1.
func combinedCheck(w *Worksheet, ds []statics.Demand, axial expr.Node) verdict.CheckResult {
	d := ds[statics.Governing(ds, statics.ByMoment)]
	ratio := expr.Add(
		expr.Div(expr.Let("N", axial), expr.Let("Pc", capacity.Squash(w.Section, w.Material))),
		expr.Div(expr.Let("Mc", d.Moment), expr.Let("Mb", capacity.Bending(w.Section, w.Material))),
	)
	return verdict.Check(verdict.Combined, d.Case,
		verdict.NewTerm("N/Pc + Mc/Mb", ratio, ""),
		verdict.NewTerm("limit", expr.Const(1), ""),
	)
}

// hangerForce is the tension in one hanger, T = 2 × Rmax, carrying the
// reactions of the two spans either side of it (kN).
func hangerForce(ds []statics.Demand) (statics.Demand, expr.Node) {
	d := ds[statics.Governing(ds, statics.ByReaction)]
	return d, perKilo(expr.Mul(expr.Const(2), expr.Let("Rmax", d.Reaction)))
}

func hangerCheck(w *Worksheet, ds []statics.Demand) verdict.CheckResult {
	d, t := hangerForce(ds)
	return verdict.Check(verdict.HangerTension, d.Case,
		verdict.NewTerm("T", t, unitFastener),
		verdict.NewTerm("Th", capacity.Hanger(*w.Hanger, w.Material), unitFastener),
	)
}

func anchorCheck(w *Worksheet, ds []statics.Demand) verdict.CheckResult {
	d, t := hangerForce(ds)
	return verdict.Check(verdict.AnchorPullOut, d.Case,
		verdict.NewTerm("T", t, unitFastener),
		verdict.NewTerm("Nrec", capacity.Anchor(*w.Anchor), unitFastener),
	)
}
