package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/alexiusacademia/gocfs/internal/expr"
	"github.com/phpdave11/gofpdf"
	"golang.org/x/text/message"
)

// The core PDF fonts only cover cp1252, so symbols outside it are spelled
// out before translation.
var pdfSymbols = strings.NewReplacer(
	"−", "-",
	"√", "sqrt",
	"γ", "g",
	"δ", "d",
	"θ", "theta",
	"π", "pi",
	"≤", "<=",
	"≥", ">=",
)

// WritePDF renders one worksheet page per sheet. PDF output is always in
// English.
func WritePDF(w io.Writer, sheets []Sheet) error {
	if len(sheets) == 0 {
		return fmt.Errorf("no calculations to report")
	}
	p := Printer("en")

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("gocfs calculation worksheet", true)
	cp1252 := pdf.UnicodeTranslatorFromDescriptor("")
	text := func(s string) string { return cp1252(pdfSymbols.Replace(s)) }

	for _, s := range sheets {
		writePage(pdf, text, p, s)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("report generation error: %w", err)
	}
	return nil
}

func writePage(pdf *gofpdf.Fpdf, text func(string) string, p *message.Printer, s Sheet) {
	req := s.Request

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, text(p.Sprintf(Title(req.Member))+" - BS 5950-5"))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	if s.CalcID != "" {
		pdf.Cell(0, 5, text("Calculation id: "+s.CalcID))
		pdf.Ln(5)
	}
	pdf.Cell(0, 5, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(8)

	heading := func(key string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, text(p.Sprintf(key)))
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 10)
	}
	field := func(key, value string) {
		pdf.CellFormat(60, 6, text(p.Sprintf(key)), "1", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, text(value), "1", 1, "L", false, 0, "")
	}

	heading("INPUT DATA")
	field("Section", req.Section)
	if req.Hanger != "" {
		field("Hanger", req.Hanger)
		field("Anchor", req.Anchor)
	}
	field("Span (L)", num(req.Geometry.Span, "mm"))
	field("Tributary width (Tw)", num(req.Geometry.TributaryWidth, "mm"))
	field("Bearing length (Nb)", num(req.Geometry.BearingLength, "mm"))
	field("Yield strength (Py)", num(req.Material.YieldStrength, "MPa"))
	field("Elastic modulus (E)", num(req.Material.ElasticModulus, "MPa"))
	field("Material factor (γm)", expr.FormatNumber(req.Material.MaterialFactor))
	if n, ok := req.Deflection.Denominator(); ok {
		field("Deflection limit", "L / "+expr.FormatNumber(n))
	}
	pdf.Ln(6)

	r := s.Result
	if r == nil {
		return
	}

	heading("CHECKS")
	for i, c := range r.Checks {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.Cell(0, 6, text(fmt.Sprintf("%d. %s (%s: %s)", i+1, p.Sprintf(modeLabels[c.Mode]), p.Sprintf("Load case"), c.Case)))
		pdf.Ln(6)
		pdf.SetFont("Courier", "", 9)
		for _, t := range []struct{ sym, formula, sub, result string }{
			{c.Demand.Symbol, c.Demand.Formula, c.Demand.Substitution, c.Demand.Result},
			{c.Capacity.Symbol, c.Capacity.Formula, c.Capacity.Substitution, c.Capacity.Result},
		} {
			pdf.MultiCell(0, 5, text(fmt.Sprintf("%s = %s = %s = %s", t.sym, t.formula, t.sub, t.result)), "", "L", false)
		}

		status, red := "OK", 0
		if !c.Pass {
			status, red = "NOT OK", 200
		}
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetTextColor(red, 0, 0)
		pdf.Cell(0, 6, text(fmt.Sprintf("%s = %s  %s", p.Sprintf("Ratio"), expr.FormatFixed(c.Ratio, 3), p.Sprintf(status))))
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(8)
	}

	heading("RESULT")
	verdictLabel := "ADEQUATE"
	if !r.Pass {
		verdictLabel = "INADEQUATE"
	}
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, text(p.Sprintf(verdictLabel)+": "+Summary(r, p)), "1", 1, "L", false, 0, "")
}
