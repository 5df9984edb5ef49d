package statics

import (
	"math"
	"testing"

	"github.com/alexiusacademia/gocfs/internal/expr"
	"github.com/stretchr/testify/assert"
)

func span(L float64) Span {
	return Span{L: expr.Var("L", L), E: expr.Var("E", 205000), I: expr.Var("Ixe", 125552)}
}

func TestPointLoadAtHeight(t *testing.T) {
	s := span(4100)
	p := PointLoad{P: expr.Var("P", 487.2), A: expr.Var("h", 1100)}

	m := MaxMoment(p, s.L)
	assert.Equal(t, "P × h × (L − h) / L", expr.Formula(m))
	assert.InDelta(t, 392136.59, m.Eval(), 0.01)

	ra, rb := Reactions(p, s.L)
	assert.InDelta(t, 356.4878, ra.Eval(), 1e-4)
	assert.InDelta(t, 130.7122, rb.Eval(), 1e-4)
	assert.InDelta(t, 487.2, ra.Eval()+rb.Eval(), 1e-9)

	service := PointLoad{P: expr.Var("Ps", 304.5), A: expr.Var("h", 1100)}
	d := MaxDeflection(service, s.L, s.E, s.I)
	assert.InDelta(t, 12.5459, d.Eval(), 1e-4)
	assert.Equal(t, "Ps × s × (L² − s²)^1.5 / (9 × √3 × E × Ixe × L)", expr.Formula(d))
}

func TestPointLoadDeflectionIsSymmetric(t *testing.T) {
	s := span(4000)
	low := MaxDeflection(PointLoad{P: expr.Const(500), A: expr.Const(1000)}, s.L, s.E, s.I)
	high := MaxDeflection(PointLoad{P: expr.Const(500), A: expr.Const(3000)}, s.L, s.E, s.I)
	assert.InDelta(t, low.Eval(), high.Eval(), 1e-9)
}

func TestCentralPointLoadMatchesTextbook(t *testing.T) {
	s := span(3000)
	p := PointLoad{P: expr.Const(1000), A: expr.Const(1500)}

	assert.InDelta(t, 1000*3000/4.0, MaxMoment(p, s.L).Eval(), 1e-6)
	want := 1000 * math.Pow(3000, 3) / (48 * 205000 * 125552)
	assert.InDelta(t, want, MaxDeflection(p, s.L, s.E, s.I).Eval(), 1e-9)
	assert.InDelta(t, want, DeflectionAt(p, 3000, 205000*125552, 1500), 1e-9)
}

func TestUniformLoad(t *testing.T) {
	s := span(2000)
	u := UniformLoad{W: expr.Var("w", 0.5)}

	assert.InDelta(t, 0.5*2000*2000/8, MaxMoment(u, s.L).Eval(), 1e-9)
	ra, rb := Reactions(u, s.L)
	assert.Equal(t, 500.0, ra.Eval())
	assert.Equal(t, 500.0, rb.Eval())

	want := 5 * 0.5 * math.Pow(2000, 4) / (384 * 205000 * 125552)
	assert.InDelta(t, want, MaxDeflection(u, s.L, s.E, s.I).Eval(), 1e-12)
	assert.InDelta(t, want, DeflectionAt(u, 2000, 205000*125552, 1000), 1e-12)
	assert.InDelta(t, MaxMoment(u, s.L).Eval(), MomentAt(u, 2000, 1000), 1e-9)
}

func TestCoupleDeflectionBoundAndDiagram(t *testing.T) {
	L := 3000.0
	s := span(L)
	ei := 205000 * 125552.0

	atEnd := Couple{M: expr.Const(1e5), A: expr.Const(0)}
	bound := MaxDeflection(atEnd, s.L, s.E, s.I).Eval()

	var peak float64
	for i := 0; i <= 3000; i++ {
		peak = math.Max(peak, math.Abs(DeflectionAt(atEnd, L, ei, float64(i))))
	}
	assert.InDelta(t, bound, peak, bound*1e-4)

	mid := Couple{M: expr.Const(1e5), A: expr.Const(1000)}
	var midPeak float64
	for i := 0; i <= 3000; i++ {
		midPeak = math.Max(midPeak, math.Abs(DeflectionAt(mid, L, ei, float64(i))))
	}
	assert.Less(t, midPeak, bound)

	// deflection is continuous across the couple
	left := DeflectionAt(mid, L, ei, 1000)
	right := DeflectionAt(mid, L, ei, 1000+1e-6)
	assert.InDelta(t, left, right, 1e-6)

	assert.InDelta(t, 1e5*2000/3000, MaxMoment(mid, s.L).Eval(), 1e-9)
	assert.InDelta(t, -1e5*1000/3000, MomentAt(mid, L, 999.999999), 1e-3)
}

func TestComputeSumsAndEnvelopes(t *testing.T) {
	s := span(4100)
	imposed := LoadCase{
		Name:     "Imposed load",
		Factored: []Action{PointLoad{P: expr.Const(487.2), A: expr.Const(1100)}},
		Service:  []Action{PointLoad{P: expr.Const(304.5), A: expr.Const(1100)}},
	}
	wind := LoadCase{
		Name:     "Wind load",
		Factored: []Action{UniformLoad{W: expr.Const(0.1)}},
		Service:  []Action{UniformLoad{W: expr.Const(0.07)}},
	}

	ds := []Demand{Compute(imposed, s), Compute(wind, s)}
	assert.InDelta(t, 356.4878, ds[0].Reaction.Eval(), 1e-4)
	assert.InDelta(t, 0.1*4100/2, ds[1].Reaction.Eval(), 1e-9)

	assert.Equal(t, 0, Governing(ds, ByMoment))
	assert.Equal(t, 0, Governing(ds, ByReaction))
	assert.Equal(t, Envelope{}, NewEnvelope(ds))

	both := LoadCase{
		Name:     "both",
		Factored: append(append([]Action{}, imposed.Factored...), wind.Factored...),
		Service:  append(append([]Action{}, imposed.Service...), wind.Service...),
	}
	d := Compute(both, s)
	assert.InDelta(t, ds[0].Moment.Eval()+ds[1].Moment.Eval(), d.Moment.Eval(), 1e-6)

	p := Sample(both, s, 400)
	assert.LessOrEqual(t, p.PeakMoment(), d.Moment.Eval()+1e-6)
	assert.LessOrEqual(t, p.PeakDeflection(), d.Deflection.Eval()+1e-9)
}

func TestComputeEmptyCase(t *testing.T) {
	d := Compute(LoadCase{Name: "none"}, span(1000))
	assert.Equal(t, 0.0, d.Moment.Eval())
	assert.Equal(t, 0.0, d.Reaction.Eval())
	assert.Equal(t, 0.0, d.Deflection.Eval())
}

func TestActionKinds(t *testing.T) {
	assert.Equal(t, "point load", PointLoad{}.Kind().String())
	assert.Equal(t, "uniform load", UniformLoad{}.Kind().String())
	assert.Equal(t, "couple", Couple{}.Kind().String())
}
