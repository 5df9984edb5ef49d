package engine

import (
	"github.com/alexiusacademia/gocfs/internal/capacity"
	"github.com/alexiusacademia/gocfs/internal/catalog"
	"github.com/alexiusacademia/gocfs/internal/expr"
	"github.com/alexiusacademia/gocfs/internal/statics"
	"github.com/alexiusacademia/gocfs/internal/verdict"
)

// Load case names.
const (
	CaseImposed     = "Imposed load"
	CaseWind        = "Wind load"
	CaseImposedWind = "Imposed + wind"
	CaseDead        = "Dead load"
	CaseDeadWind    = "Dead + wind"
)

// Member is the strategy of one member type: which catalog records it
// needs, the load cases it sees and the ordered set of checks it runs.
type Member interface {
	Kind() MemberKind
	SectionKind() catalog.SectionKind
	// PointLoad reports whether the imposed point load applies, in which case
	// its height must lie inside the span.
	PointLoad() bool
	// Fastened reports whether hanger and anchor ids are required.
	Fastened() bool

	LoadCases(w *Worksheet) []statics.LoadCase
	Checks(w *Worksheet, ds []statics.Demand) []verdict.CheckResult
}

var members = map[MemberKind]Member{
	KindWallStud:      WallStud{},
	KindCeilingSystem: CeilingSystem{},
}

// MemberFor returns the strategy for kind.
func MemberFor(kind MemberKind) (Member, bool) {
	m, ok := members[kind]
	return m, ok
}

// WallStud is a vertical stud spanning floor to ceiling between its tracks.
// The imposed line load acts as a point load at height h, wind acts as a
// uniform pressure, and a fixture bolted to the face adds a couple. The self
// weight of the wall is carried axially. The imposed and wind actions are
// also applied together, after the single-action cases so that ties keep the
// single-action case.
type WallStud struct{}

func (WallStud) Kind() MemberKind                 { return KindWallStud }
func (WallStud) SectionKind() catalog.SectionKind { return catalog.KindStud }
func (WallStud) PointLoad() bool                  { return true }
func (WallStud) Fastened() bool                   { return false }

func (WallStud) LoadCases(w *Worksheet) []statics.LoadCase {
	l := w.Loads
	imposed := statics.LoadCase{
		Name:     CaseImposed,
		Factored: []statics.Action{statics.PointLoad{P: l.Imposed.Factored, A: l.Height}},
		Service:  []statics.Action{statics.PointLoad{P: l.Imposed.Service, A: l.Height}},
	}
	wind := statics.LoadCase{
		Name:     CaseWind,
		Factored: []statics.Action{statics.UniformLoad{W: l.Wind.Factored}},
		Service:  []statics.Action{statics.UniformLoad{W: l.Wind.Service}},
	}
	both := statics.LoadCase{
		Name:     CaseImposedWind,
		Factored: []statics.Action{imposed.Factored[0], wind.Factored[0]},
		Service:  []statics.Action{imposed.Service[0], wind.Service[0]},
	}
	if f := l.Fixture; f != nil {
		for _, c := range []*statics.LoadCase{&imposed, &wind, &both} {
			c.Factored = append(c.Factored, statics.Couple{M: f.Couple.Factored, A: f.Position})
			c.Service = append(c.Service, statics.Couple{M: f.Couple.Service, A: f.Position})
		}
	}
	return []statics.LoadCase{imposed, wind, both}
}

func (WallStud) Checks(w *Worksheet, ds []statics.Demand) []verdict.CheckResult {
	return []verdict.CheckResult{
		bendingCheck(w, ds),
		shearCheck(w, ds),
		webCripplingCheck(w, ds, capacity.Crippling{Support: capacity.EndSupport, Restrained: true}),
		deflectionCheck(w, ds),
		combinedCheck(w, ds, axialLoad(w)),
	}
}

// axialLoad is the factored weight the stud carries: wall self weight over
// its height plus the fixture weight.
func axialLoad(w *Worksheet) expr.Node {
	n := expr.Mul(w.Loads.Dead.Factored, w.Span.L)
	if f := w.Loads.Fixture; f != nil {
		return expr.Add(n, f.Weight.Factored)
	}
	return n
}

// CeilingSystem is a runner spanning between hangers, each hanger hung from
// a soffit anchor. The span is the hanger spacing and the tributary width is
// the runner spacing. Dead load and wind act as uniform loads, a fixture as
// a point load.
type CeilingSystem struct{}

func (CeilingSystem) Kind() MemberKind                 { return KindCeilingSystem }
func (CeilingSystem) SectionKind() catalog.SectionKind { return catalog.KindRunner }
func (CeilingSystem) PointLoad() bool                  { return false }
func (CeilingSystem) Fastened() bool                   { return true }

func (CeilingSystem) LoadCases(w *Worksheet) []statics.LoadCase {
	l := w.Loads
	dead := statics.LoadCase{
		Name:     CaseDead,
		Factored: []statics.Action{statics.UniformLoad{W: l.Dead.Factored}},
		Service:  []statics.Action{statics.UniformLoad{W: l.Dead.Service}},
	}
	deadWind := statics.LoadCase{
		Name:     CaseDeadWind,
		Factored: []statics.Action{statics.UniformLoad{W: l.Dead.Factored}, statics.UniformLoad{W: l.Wind.Factored}},
		Service:  []statics.Action{statics.UniformLoad{W: l.Dead.Service}, statics.UniformLoad{W: l.Wind.Service}},
	}
	if f := l.Fixture; f != nil {
		for _, c := range []*statics.LoadCase{&dead, &deadWind} {
			c.Factored = append(c.Factored, statics.PointLoad{P: f.Weight.Factored, A: f.Position})
			c.Service = append(c.Service, statics.PointLoad{P: f.Weight.Service, A: f.Position})
		}
	}
	return []statics.LoadCase{dead, deadWind}
}

func (CeilingSystem) Checks(w *Worksheet, ds []statics.Demand) []verdict.CheckResult {
	return []verdict.CheckResult{
		bendingCheck(w, ds),
		shearCheck(w, ds),
		webCripplingCheck(w, ds, capacity.Crippling{Support: capacity.InteriorSupport}),
		deflectionCheck(w, ds),
		hangerCheck(w, ds),
		anchorCheck(w, ds),
	}
}
