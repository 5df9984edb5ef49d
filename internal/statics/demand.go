package statics

import "github.com/alexiusacademia/gocfs/internal/expr"

// Span is a simply supported member: span length and flexural rigidity terms.
type Span struct {
	L expr.Node // mm
	E expr.Node // MPa
	I expr.Node // mm⁴, the effective second moment of area
}

// LoadCase is one arrangement of simultaneous actions. Factored actions feed
// the strength checks, service actions the deflection check.
type LoadCase struct {
	Name     string
	Factored []Action
	Service  []Action
}

// Demand is the set of load effects of one case.
type Demand struct {
	Case       string
	Moment     expr.Node // N·mm, factored
	Reaction   expr.Node // N, larger support reaction, factored
	Deflection expr.Node // mm, service
}

// Compute evaluates the demands of c on s.
//
// Reactions of every action are added in the unfavourable sense, so the
// reaction demand is exact for same-direction loads and an upper bound when a
// couple is present. Moment and deflection are the sum of the per-action
// maxima: exact for a single action and an upper bound otherwise.
func Compute(c LoadCase, s Span) Demand {
	d := Demand{Case: c.Name}

	var moments, ras, rbs []expr.Node
	for _, a := range c.Factored {
		moments = append(moments, MaxMoment(a, s.L))
		ra, rb := Reactions(a, s.L)
		ras = append(ras, ra)
		rbs = append(rbs, rb)
	}
	var deflections []expr.Node
	for _, a := range c.Service {
		deflections = append(deflections, MaxDeflection(a, s.L, s.E, s.I))
	}

	d.Moment = sumOrZero(moments)
	if len(ras) > 0 {
		d.Reaction = expr.Max(expr.Add(ras...), expr.Add(rbs...))
	} else {
		d.Reaction = expr.Const(0)
	}
	d.Deflection = sumOrZero(deflections)
	return d
}

// Governing returns the index of the case whose quantity q is largest. Ties
// keep the earlier case.
func Governing(ds []Demand, q func(Demand) expr.Node) int {
	best := 0
	for i := 1; i < len(ds); i++ {
		if q(ds[i]).Eval() > q(ds[best]).Eval() {
			best = i
		}
	}
	return best
}

// Quantity selectors for Governing.
var (
	ByMoment     = func(d Demand) expr.Node { return d.Moment }
	ByReaction   = func(d Demand) expr.Node { return d.Reaction }
	ByDeflection = func(d Demand) expr.Node { return d.Deflection }
)

// Envelope holds the index of the governing case for each quantity.
type Envelope struct {
	Moment     int
	Reaction   int
	Deflection int
}

// NewEnvelope picks the governing case of ds per quantity.
func NewEnvelope(ds []Demand) Envelope {
	return Envelope{
		Moment:     Governing(ds, ByMoment),
		Reaction:   Governing(ds, ByReaction),
		Deflection: Governing(ds, ByDeflection),
	}
}

// Profile is a sampled moment and deflection diagram of one case.
type Profile struct {
	X          []float64 // mm
	Moment     []float64 // N·mm, factored
	Deflection []float64 // mm, service
}

// PeakMoment returns the largest sampled moment magnitude.
func (p Profile) PeakMoment() float64 { return maxAbs(p.Moment) }

// PeakDeflection returns the largest sampled deflection magnitude.
func (p Profile) PeakDeflection() float64 { return maxAbs(p.Deflection) }

// Sample evaluates the superposed diagrams of c at n+1 equally spaced points.
func Sample(c LoadCase, s Span, n int) Profile {
	if n < 1 {
		n = 1
	}
	L := s.L.Eval()
	ei := s.E.Eval() * s.I.Eval()
	p := Profile{
		X:          make([]float64, n+1),
		Moment:     make([]float64, n+1),
		Deflection: make([]float64, n+1),
	}
	for i := 0; i <= n; i++ {
		x := L * float64(i) / float64(n)
		p.X[i] = x
		for _, a := range c.Factored {
			p.Moment[i] += MomentAt(a, L, x)
		}
		for _, a := range c.Service {
			p.Deflection[i] += DeflectionAt(a, L, ei, x)
		}
	}
	return p
}

func sumOrZero(terms []expr.Node) expr.Node {
	if len(terms) == 0 {
		return expr.Const(0)
	}
	return expr.Add(terms...)
}
