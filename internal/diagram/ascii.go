// Package diagram draws the sampled moment and deflection diagrams of a
// calculation, as text for the terminal or as image files.
package diagram

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/alexiusacademia/gocfs/internal/engine"
	"github.com/alexiusacademia/gocfs/internal/statics"
	"github.com/guptarohit/asciigraph"
)

// Quantity selects which diagram of a profile is drawn.
type Quantity int

const (
	Moment     Quantity = iota // factored bending moment
	Deflection                 // service deflection
)

func (q Quantity) String() string {
	if q == Deflection {
		return "Deflection"
	}
	return "Bending moment"
}

// Unit is the unit the diagram is drawn in.
func (q Quantity) Unit() string {
	if q == Deflection {
		return "mm"
	}
	return "kN·mm"
}

// Values returns the ordinates of p in the diagram's unit.
func (q Quantity) Values(p statics.Profile) []float64 {
	if q == Deflection {
		return append([]float64(nil), p.Deflection...)
	}
	v := make([]float64, len(p.Moment))
	for i, m := range p.Moment {
		v[i] = m / 1000
	}
	return v
}

// Plot dimensions in characters.
const (
	plotHeight = 10
	plotWidth  = 60
)

// DrawASCII plots one quantity of every load case, one graph per case.
func DrawASCII(cps []engine.CaseProfile, q Quantity) string {
	var sb strings.Builder
	for _, cp := range cps {
		v := q.Values(cp.Profile)
		if len(v) == 0 {
			continue
		}
		span := cp.Profile.X[len(cp.Profile.X)-1]
		caption := fmt.Sprintf("%s (%s), case %s, 0 to %.0f mm", q, q.Unit(), cp.Case, span)

		sb.WriteString("\n")
		sb.WriteString(asciigraph.Plot(v,
			asciigraph.Height(plotHeight),
			asciigraph.Width(plotWidth),
			asciigraph.Precision(2),
			asciigraph.Caption(caption),
		))
		sb.WriteString("\n")
	}
	return sb.String()
}

// DrawSummaryBox frames a title and lines in a double-ruled box.
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	width := utf8.RuneCountInString(title)
	for _, line := range lines {
		width = max(width, utf8.RuneCountInString(line))
	}
	width += 4

	border := strings.Repeat("═", width)
	pad := func(s string) string {
		return s + strings.Repeat(" ", width-2-utf8.RuneCountInString(s))
	}
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s║\n", pad(title)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s║\n", pad(line)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
