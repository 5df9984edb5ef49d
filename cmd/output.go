package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/gocfs/internal/diagram"
	"github.com/alexiusacademia/gocfs/internal/report"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// outputFlags control how worksheets are written.
type outputFlags struct {
	format  string
	pdf     string
	diagram string
	plot    bool
	samples int
}

func (o *outputFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&o.format, "output", "o", "text", "Output format: text or json")
	fs.StringVar(&o.pdf, "pdf", "", "Also write the worksheets to this PDF file")
	fs.StringVar(&o.diagram, "diagram", "", "Write moment and deflection diagrams next to this path (.png, .svg or .pdf)")
	fs.BoolVar(&o.plot, "plot", false, "Print moment and deflection diagrams in the terminal")
	fs.IntVar(&o.samples, "samples", 40, "Number of intervals the diagrams are sampled at")
}

func (o *outputFlags) validate() error {
	switch o.format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown output format %q, want text or json", o.format)
	}
	if o.samples < 1 {
		return fmt.Errorf("--samples must be at least 1, got %d", o.samples)
	}
	return nil
}

// emit writes the worksheets and any requested diagrams.
func (o *outputFlags) emit(cmd *cobra.Command, sheets []report.Sheet) error {
	w := cmd.OutOrStdout()

	switch o.format {
	case "json":
		if err := report.WriteJSON(w, sheets); err != nil {
			return err
		}
	default:
		p := report.Printer(cfg.Report.Language)
		for _, s := range sheets {
			if err := report.Write(w, s, p); err != nil {
				return err
			}
		}
	}

	if o.plot || o.diagram != "" {
		for i, s := range sheets {
			if err := o.diagrams(cmd, s, i, len(sheets)); err != nil {
				return err
			}
		}
	}

	if o.pdf != "" {
		if err := writePDF(o.pdf, sheets); err != nil {
			return err
		}
		logger.Info("worksheet written", zap.String("path", o.pdf), zap.Int("calculations", len(sheets)))
	}
	return nil
}

func (o *outputFlags) diagrams(cmd *cobra.Command, s report.Sheet, i, n int) error {
	cps, err := newEngine().Profiles(s.Request, o.samples)
	if err != nil {
		return err
	}
	if o.plot && o.format == "text" {
		fmt.Fprint(cmd.OutOrStdout(), diagram.DrawASCII(cps, diagram.Moment))
		fmt.Fprint(cmd.OutOrStdout(), diagram.DrawASCII(cps, diagram.Deflection))
	}
	if o.diagram == "" {
		return nil
	}

	for _, q := range []diagram.Quantity{diagram.Moment, diagram.Deflection} {
		name := diagramPath(o.diagram, q, i, n)
		path, err := diagram.Export(cps, q, s.Request.Section, name)
		if err != nil {
			return err
		}
		logger.Info("diagram written", zap.String("path", path), zap.String("calc_id", s.CalcID))
	}
	return nil
}

// diagramPath turns out/stud.png into out/stud-moment.png, numbering the
// files when there is more than one calculation.
func diagramPath(base string, q diagram.Quantity, i, n int) string {
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if n > 1 {
		stem = fmt.Sprintf("%s-%d", stem, i+1)
	}
	suffix := "moment"
	if q == diagram.Deflection {
		suffix = "deflection"
	}
	return fmt.Sprintf("%s-%s%s", stem, suffix, ext)
}

func writePDF(path string, sheets []report.Sheet) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := report.WritePDF(f, sheets); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
