package diagram

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexiusacademia/gocfs/internal/engine"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Export writes the diagram of one quantity of every load case to filename.
// The format follows the extension: .png, .svg or .pdf. Any other name gets
// a .png extension appended. It returns the path written.
func Export(cps []engine.CaseProfile, q Quantity, title, filename string) (string, error) {
	if len(cps) == 0 {
		return "", fmt.Errorf("no load cases to draw")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Position along span (mm)"
	p.Y.Label.Text = fmt.Sprintf("%s (%s)", q, q.Unit())
	p.Add(plotter.NewGrid())

	for i, cp := range cps {
		v := q.Values(cp.Profile)
		pts := make(plotter.XYs, len(v))
		for j := range v {
			pts[j] = plotter.XY{X: cp.Profile.X[j], Y: v[j]}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return "", fmt.Errorf("case %s: %w", cp.Case, err)
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = plotutil.Color(i)
		line.LineStyle.Dashes = plotutil.Dashes(i)
		p.Add(line)
		p.Legend.Add(cp.Case, line)
	}
	p.Legend.Top = true

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
	default:
		filename += ".png"
	}

	if dir := filepath.Dir(filename); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	if err := p.Save(8*vg.Inch, 5*vg.Inch, filename); err != nil {
		return "", fmt.Errorf("failed to save diagram: %w", err)
	}
	return filename, nil
}
