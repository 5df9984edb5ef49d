// Package report prints calculation worksheets: every check with its
// formula, substitution and result, for the terminal, as JSON or as PDF.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/alexiusacademia/gocfs/internal/diagram"
	"github.com/alexiusacademia/gocfs/internal/engine"
	"github.com/alexiusacademia/gocfs/internal/expr"
	"github.com/alexiusacademia/gocfs/internal/verdict"
	"golang.org/x/text/message"
)

const (
	banner = "═══════════════════════════════════════════════════════════════"
	rule   = "───────────────────────────────────────────────────────────────"
)

// Sheet is one calculation to report.
type Sheet struct {
	CalcID  string                     `json:"calc_id,omitempty"`
	Request engine.Request             `json:"request"`
	Result  *verdict.CalculationResult `json:"result"`
}

// Title is the heading of the worksheet of a member kind.
func Title(m engine.MemberKind) string {
	if m == engine.KindCeilingSystem {
		return "Ceiling system verification"
	}
	return "Wall stud verification"
}

// Summary is the localized overall verdict line.
func Summary(r *verdict.CalculationResult, p *message.Printer) string {
	failed := r.Failed()
	if len(failed) == 0 {
		return p.Sprintf("All %d checks satisfied", len(r.Checks))
	}
	names := make([]string, len(failed))
	for i, c := range failed {
		names[i] = p.Sprintf(modeLabels[c.Mode])
	}
	return p.Sprintf("Inadequate: %s", strings.Join(names, ", "))
}

// Write prints the worksheet of s in the language of p.
func Write(w io.Writer, s Sheet, p *message.Printer) error {
	var buf bytes.Buffer
	req := s.Request

	buf.WriteString("\n" + banner + "\n")
	fmt.Fprintf(&buf, "     %s - BS 5950-5\n", strings.ToUpper(p.Sprintf(Title(req.Member))))
	buf.WriteString(banner + "\n")
	if s.CalcID != "" {
		fmt.Fprintf(&buf, "  %s: %s\n", p.Sprintf("Calculation id"), s.CalcID)
	}
	buf.WriteString("\n")

	section(&buf, p, "INPUT DATA")
	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	row(tw, p, "Section", req.Section)
	if req.Hanger != "" {
		row(tw, p, "Hanger", req.Hanger)
	}
	if req.Anchor != "" {
		row(tw, p, "Anchor", req.Anchor)
	}
	row(tw, p, "Span (L)", num(req.Geometry.Span, "mm"))
	row(tw, p, "Tributary width (Tw)", num(req.Geometry.TributaryWidth, "mm"))
	row(tw, p, "Bearing length (Nb)", num(req.Geometry.BearingLength, "mm"))
	row(tw, p, "Yield strength (Py)", num(req.Material.YieldStrength, "MPa"))
	row(tw, p, "Elastic modulus (E)", num(req.Material.ElasticModulus, "MPa"))
	row(tw, p, "Material factor (γm)", expr.FormatNumber(req.Material.MaterialFactor))
	f := req.Factors
	row(tw, p, "Load factors", fmt.Sprintf("γW %s, γD %s, γQ %s, γI %s",
		expr.FormatNumber(f.Wind), expr.FormatNumber(f.Dead), expr.FormatNumber(f.Imposed), expr.FormatNumber(f.Fixture)))
	if n, ok := req.Deflection.Denominator(); ok {
		row(tw, p, "Deflection limit", "L / "+expr.FormatNumber(n))
	}
	tw.Flush()
	buf.WriteString("\n")

	section(&buf, p, "LOADS")
	tw = tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	l := req.Loads
	if l.WindPressure > 0 {
		row(tw, p, "Wind pressure", num(l.WindPressure, "kPa"))
	}
	if l.ImposedLoad > 0 {
		row(tw, p, "Imposed line load (W)", num(l.ImposedLoad, "kN/m"))
		row(tw, p, "Imposed load height (h)", num(l.ImposedHeight, "mm"))
	}
	if l.BoardLayers > 0 {
		row(tw, p, "Board layers", fmt.Sprintf("%d × %s", l.BoardLayers, num(l.BoardWeight, "kgf/m²")))
	}
	if l.FrameWeight > 0 {
		row(tw, p, "Frame weight", num(l.FrameWeight, "kgf/m²"))
	}
	if ins := l.Insulation; ins != nil {
		row(tw, p, "Insulation", fmt.Sprintf("%s, %s", num(ins.Thickness, "mm"), num(ins.Density, "kg/m³")))
	}
	if fx := l.Fixture; fx != nil {
		row(tw, p, "Fixture", fmt.Sprintf("%s @ %s, e = %s", num(fx.Mass, "kg"), num(fx.Height, "mm"), num(fx.Offset, "mm")))
	}
	tw.Flush()
	buf.WriteString("\n")

	if r := s.Result; r != nil {
		section(&buf, p, "CHECKS")
		for i, c := range r.Checks {
			writeCheck(&buf, p, i+1, c)
		}

		section(&buf, p, "RESULT")
		verdictLabel := "ADEQUATE"
		if !r.Pass {
			verdictLabel = "INADEQUATE"
		}
		buf.WriteString(diagram.DrawSummaryBox(p.Sprintf(verdictLabel), []string{Summary(r, p)}))
		buf.WriteString("\n")
	}

	_, err := buf.WriteTo(w)
	return err
}

func section(buf *bytes.Buffer, p *message.Printer, key string) {
	buf.WriteString(p.Sprintf(key) + ":\n")
	buf.WriteString(rule + "\n")
}

func row(tw *tabwriter.Writer, p *message.Printer, key, value string) {
	fmt.Fprintf(tw, "  %s:\t%s\n", p.Sprintf(key), value)
}

func num(v float64, unit string) string {
	return expr.FormatNumber(v) + " " + unit
}

func writeCheck(buf *bytes.Buffer, p *message.Printer, n int, c verdict.CheckResult) {
	fmt.Fprintf(buf, "  %d. %s  [%s: %s]\n", n, p.Sprintf(modeLabels[c.Mode]), p.Sprintf("Load case"), c.Case)
	writeTerm(buf, c.Demand)
	writeTerm(buf, c.Capacity)

	status := "✓ " + p.Sprintf("OK")
	if !c.Pass {
		status = "✗ " + p.Sprintf("NOT OK")
	}
	fmt.Fprintf(buf, "       %s = %s  %s\n\n", p.Sprintf("Ratio"), expr.FormatFixed(c.Ratio, 3), status)
}

func writeTerm(buf *bytes.Buffer, t verdict.Term) {
	indent := strings.Repeat(" ", utf8.RuneCountInString(t.Symbol))
	fmt.Fprintf(buf, "       %s = %s\n", t.Symbol, t.Formula)
	if t.Substitution != t.Formula {
		fmt.Fprintf(buf, "       %s = %s\n", indent, t.Substitution)
	}
	fmt.Fprintf(buf, "       %s = %s\n", indent, t.Result)
}

// WriteJSON encodes the sheets as an indented JSON array.
func WriteJSON(w io.Writer, sheets []Sheet) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(sheets); err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	return nil
}
