// Package engine verifies cold-formed steel wall studs and ceiling systems.
//
// One pipeline serves every member: validate the request, resolve catalog
// ids, assemble the loads, compute the demands of each load case, and compare
// them with the capacities of the member's check set. The member strategy
// supplies the load cases and the check set.
package engine

import (
	"github.com/alexiusacademia/gocfs/internal/capacity"
	"github.com/alexiusacademia/gocfs/internal/catalog"
	"github.com/alexiusacademia/gocfs/internal/expr"
	"github.com/alexiusacademia/gocfs/internal/loads"
	"github.com/alexiusacademia/gocfs/internal/statics"
	"github.com/alexiusacademia/gocfs/internal/verdict"
)

// Engine runs calculations against a catalog. It holds no other state and
// is safe for concurrent use.
type Engine struct {
	reg *catalog.Registry
}

// New creates an engine backed by reg.
func New(reg *catalog.Registry) *Engine {
	return &Engine{reg: reg}
}

// Worksheet is the resolved, assembled state of one request that the member
// strategies read from.
type Worksheet struct {
	Request  Request
	Section  catalog.Section
	Hanger   *catalog.Fastener // nil unless the member is fastened
	Anchor   *catalog.Fastener
	Material capacity.Material
	Loads    loads.Loads
	Span     statics.Span

	// Denominator is n of the deflection criterion L/n.
	Denominator float64
}

type parts struct {
	section        catalog.Section
	hanger, anchor *catalog.Fastener
}

// Check verifies req. It returns either a complete result or a single *Error
// and no result.
func (e *Engine) Check(req Request) (*verdict.CalculationResult, error) {
	m, w, err := e.prepare(req)
	if err != nil {
		return nil, err
	}

	cases := m.LoadCases(w)
	demands := make([]statics.Demand, len(cases))
	for i, c := range cases {
		demands[i] = statics.Compute(c, w.Span)
	}

	checks := m.Checks(w, demands)
	if err := finite(checks); err != nil {
		return nil, err
	}
	return verdict.Aggregate(string(m.Kind()), w.Section.ID, checks), nil
}

// CaseProfile is the sampled diagram of one load case.
type CaseProfile struct {
	Case    string
	Profile statics.Profile
}

// Profiles samples the moment and deflection diagrams of every load case of
// req at n+1 points.
func (e *Engine) Profiles(req Request, n int) ([]CaseProfile, error) {
	m, w, err := e.prepare(req)
	if err != nil {
		return nil, err
	}
	cases := m.LoadCases(w)
	out := make([]CaseProfile, len(cases))
	for i, c := range cases {
		out[i] = CaseProfile{Case: c.Name, Profile: statics.Sample(c, w.Span, n)}
	}
	return out, nil
}

func (e *Engine) prepare(req Request) (Member, *Worksheet, error) {
	m, ok := MemberFor(req.Member)
	if !ok {
		return nil, nil, inputError("member", "unknown member %q, want %s or %s", req.Member, KindWallStud, KindCeilingSystem)
	}
	if err := validate(req, m); err != nil {
		return nil, nil, err
	}
	if e.reg == nil {
		return nil, nil, &Error{Kind: ReferenceNotFound, Field: "section", Msg: "no catalog loaded"}
	}
	p, err := resolve(e.reg, req, m)
	if err != nil {
		return nil, nil, err
	}

	n, _ := req.Deflection.Denominator()
	w := &Worksheet{
		Request:  req,
		Section:  p.section,
		Hanger:   p.hanger,
		Anchor:   p.anchor,
		Material: req.Material.capacity(),
		Loads:    loads.Assemble(req.Loads, req.Factors, req.Geometry.TributaryWidth),
		Span: statics.Span{
			L: expr.Var("L", req.Geometry.Span),
			E: expr.Var("E", req.Material.ElasticModulus),
			I: expr.Var("Ixe", p.section.EffectiveMomentOfInertia),
		},
		Denominator: n,
	}
	return m, w, nil
}
