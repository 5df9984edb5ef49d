package engine

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gocfs/internal/catalog"
	"github.com/alexiusacademia/gocfs/internal/verdict"
)

// validate checks every numeric field before any arithmetic runs.
func validate(req Request, m Member) error {
	mat := req.Material
	if !positive(mat.YieldStrength) {
		return inputError("material.yield_strength", "must be positive, got %g", mat.YieldStrength)
	}
	if !positive(mat.ElasticModulus) {
		return inputError("material.elastic_modulus", "must be positive, got %g", mat.ElasticModulus)
	}
	if !factor(mat.MaterialFactor) {
		return factorError("material.material_factor", mat.MaterialFactor)
	}
	for _, f := range req.Factors.Named() {
		if !factor(f.Value) {
			return factorError(f.Field, f.Value)
		}
	}

	g := req.Geometry
	if !positive(g.Span) {
		return geometryError("geometry.span", "must be positive, got %g", g.Span)
	}
	if !positive(g.TributaryWidth) {
		return geometryError("geometry.tributary_width", "must be positive, got %g", g.TributaryWidth)
	}
	if !positive(g.BearingLength) {
		return geometryError("geometry.bearing_length", "must be positive, got %g", g.BearingLength)
	}

	in := req.Loads
	nonNegative := []namedValue{
		{"loads.wind_pressure", in.WindPressure},
		{"loads.imposed_load", in.ImposedLoad},
		{"loads.board_layers", float64(in.BoardLayers)},
		{"loads.board_weight", in.BoardWeight},
		{"loads.frame_weight", in.FrameWeight},
	}
	if ins := in.Insulation; ins != nil {
		nonNegative = append(nonNegative,
			namedValue{"loads.insulation.thickness", ins.Thickness},
			namedValue{"loads.insulation.density", ins.Density},
		)
	}
	if fx := in.Fixture; fx != nil {
		nonNegative = append(nonNegative,
			namedValue{"loads.fixture.mass", fx.Mass},
			namedValue{"loads.fixture.offset", fx.Offset},
		)
	}
	for _, p := range nonNegative {
		if !(p.v >= 0) || math.IsInf(p.v, 1) {
			return inputError(p.field, "must be zero or positive, got %g", p.v)
		}
	}

	if m.PointLoad() {
		if !within(in.ImposedHeight, g.Span) {
			return geometryError("loads.imposed_height", "must lie strictly between 0 and the span %g, got %g", g.Span, in.ImposedHeight)
		}
	}
	if fx := in.Fixture; fx != nil {
		if fx.Mass > 0 && !within(fx.Height, g.Span) {
			return geometryError("loads.fixture.height", "must lie strictly between 0 and the span %g, got %g", g.Span, fx.Height)
		}
	}

	if _, ok := req.Deflection.Denominator(); !ok {
		if req.Deflection.Criterion == CriterionCustom {
			return inputError("deflection.custom", "must be positive, got %g", req.Deflection.Custom)
		}
		return inputError("deflection.criterion", "unknown criterion %q, want %s, %s or %s",
			req.Deflection.Criterion, CriterionL240, CriterionL360, CriterionCustom)
	}
	return nil
}

// resolve looks up the catalog records the member needs.
func resolve(reg *catalog.Registry, req Request, m Member) (parts, error) {
	var p parts

	s, err := reg.Section(req.Section)
	if err != nil {
		return p, &Error{Kind: ReferenceNotFound, Field: "section", Msg: fmt.Sprintf("unknown section %q", req.Section), Err: err}
	}
	if s.Kind != m.SectionKind() {
		return p, inputError("section", "%s is a %s, a %s needs a %s", s.ID, s.Kind, m.Kind(), m.SectionKind())
	}
	p.section = s

	if !m.Fastened() {
		return p, nil
	}
	h, err := reg.Fastener(req.Hanger)
	if err != nil {
		return p, &Error{Kind: ReferenceNotFound, Field: "hanger", Msg: fmt.Sprintf("unknown hanger %q", req.Hanger), Err: err}
	}
	if h.Kind != catalog.KindHanger {
		return p, inputError("hanger", "%s is not a hanger", h.ID)
	}
	a, err := reg.Fastener(req.Anchor)
	if err != nil {
		return p, &Error{Kind: ReferenceNotFound, Field: "anchor", Msg: fmt.Sprintf("unknown anchor %q", req.Anchor), Err: err}
	}
	if a.Kind != catalog.KindAnchor {
		return p, inputError("anchor", "%s is not an anchor", a.ID)
	}
	p.hanger, p.anchor = &h, &a
	return p, nil
}

// finite rejects a result carrying NaN or Inf, which can only come from a
// degenerate geometry.
func finite(checks []verdict.CheckResult) error {
	for _, c := range checks {
		for _, v := range []float64{c.Demand.Value, c.Capacity.Value, c.Ratio} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return geometryError("geometry", "%s check does not evaluate to a finite number", c.Mode)
			}
		}
	}
	return nil
}

type namedValue struct {
	field string
	v     float64
}

func positive(v float64) bool { return v > 0 && !math.IsInf(v, 1) }

func factor(v float64) bool { return v >= 1 && !math.IsInf(v, 1) }

// within reports 0 < v < span.
func within(v, span float64) bool { return v > 0 && v < span }
