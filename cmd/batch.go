package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gocfs/internal/batch"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	batchFile        string
	batchOut         string
	batchConcurrency int
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Check a schedule of members and write the results to a file",
	Long: `Check every request of a schedule concurrently and write a results file.

Input is a JSON or YAML request list, or an Excel workbook with one request
per row of its first sheet. The first row names the columns:

  ` + strings.Join(batch.Columns, ", ") + `

Only member, section, span and tributary_width are required. Blank cells use
the configured defaults.

The results file is an Excel workbook (.xlsx) with a summary sheet and a
sheet listing every check with its formulas, or a JSON array (.json).

Examples:
  gocfs batch --file schedule.xlsx --out results.xlsx
  gocfs batch --file schedule.yaml --out results.json --concurrency 8`,
	Args: cobra.NoArgs,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchFile, "file", "f", "", "Request file (.json, .yaml, .yml or .xlsx) [required]")
	batchCmd.Flags().StringVar(&batchOut, "out", "", "Results file (.xlsx or .json) [required]")
	batchCmd.Flags().IntVarP(&batchConcurrency, "concurrency", "j", 0, "Calculations run at once (default from config)")
	batchCmd.MarkFlagRequired("file")
	batchCmd.MarkFlagRequired("out")
}

func runBatch(cmd *cobra.Command, args []string) error {
	write := batch.WriteJSON
	switch strings.ToLower(filepath.Ext(batchOut)) {
	case ".xlsx":
		write = batch.WriteXLSX
	case ".json":
	default:
		return fmt.Errorf("unsupported results file %s: want .xlsx or .json", batchOut)
	}

	items, err := readItems(batchFile)
	if err != nil {
		return err
	}

	limit := cfg.Batch.Concurrency
	if cmd.Flags().Changed("concurrency") {
		limit = batchConcurrency
	}
	outcomes, err := batch.NewRunner(newEngine(), logger, limit).Run(background(cmd), items)
	if err != nil {
		return err
	}

	f, err := os.Create(batchOut)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", batchOut, err)
	}
	if err := write(f, outcomes); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	logger.Info("results written", zap.String("path", batchOut), zap.Int("requests", len(outcomes)))

	// Summary table
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tID\tMember\tSection\tGoverning\tRatio\tStatus\n")
	fmt.Fprintf(w, "  ─\t──\t──────\t───────\t─────────\t─────\t──────\n")
	passed := 0
	for i, o := range outcomes {
		if o.Err != nil {
			fmt.Fprintf(w, "  %d\t%s\t%s\t%s\t\t\t✗ %v\n", i+1, label(o.ID, i), o.Request.Member, o.Request.Section, o.Err)
			continue
		}
		governing, ratio := "", 0.0
		if g, ok := o.Result.Governing(); ok {
			governing, ratio = string(g.Mode), g.Ratio
		}
		status := "✗ NOT OK"
		if o.Result.Pass {
			status = "✓ OK"
			passed++
		}
		fmt.Fprintf(w, "  %d\t%s\t%s\t%s\t%s\t%.3f\t%s\n", i+1, label(o.ID, i), o.Result.Member, o.Result.Section, governing, ratio, status)
	}
	w.Flush()
	fmt.Fprintf(cmd.OutOrStdout(), "\n  %d of %d members adequate. Results written to %s\n", passed, len(outcomes), batchOut)
	return nil
}
