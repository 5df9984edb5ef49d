package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/gocfs/internal/batch"
	"github.com/alexiusacademia/gocfs/internal/report"
	"github.com/alexiusacademia/gocfs/internal/request"
	"github.com/spf13/cobra"
)

var (
	checkFile string
	checkOut  outputFlags
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the requests in a JSON, YAML or Excel file",
	Long: `Check every request in a file and print a worksheet for each.

A JSON or YAML file holds one request or a list of them. An Excel file holds
one request per row of its first sheet; see 'gocfs batch --help' for the
columns. Unset material, factors and deflection limit come from the
configuration.

Examples:
  gocfs check --file stud.yaml
  gocfs check --file schedule.json --output json
  gocfs check --file schedule.xlsx --pdf schedule.pdf --lang ja`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&checkFile, "file", "f", "", "Request file (.json, .yaml, .yml or .xlsx) [required]")
	checkOut.register(checkCmd)
	checkCmd.MarkFlagRequired("file")
}

func runCheck(cmd *cobra.Command, args []string) error {
	if err := checkOut.validate(); err != nil {
		return err
	}
	items, err := readItems(checkFile)
	if err != nil {
		return err
	}

	outcomes, err := batch.NewRunner(newEngine(), logger, cfg.Batch.Concurrency).Run(background(cmd), items)
	if err != nil {
		return err
	}

	var (
		sheets   []report.Sheet
		rejected int
	)
	for i, o := range outcomes {
		if o.Err != nil {
			rejected++
			fmt.Fprintf(cmd.ErrOrStderr(), "request %s: %v\n", label(o.ID, i), o.Err)
			continue
		}
		sheets = append(sheets, report.Sheet{CalcID: o.CalcID, Request: o.Request, Result: o.Result})
	}
	if len(sheets) > 0 {
		if err := checkOut.emit(cmd, sheets); err != nil {
			return err
		}
	}
	if rejected > 0 {
		return fmt.Errorf("%d of %d requests rejected", rejected, len(outcomes))
	}
	return nil
}

// readItems reads requests from a JSON, YAML or Excel file.
func readItems(path string) ([]request.Item, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open workbook: %w", err)
		}
		defer f.Close()
		return batch.ReadXLSX(f, defaults())
	}
	return request.ReadFile(path, defaults())
}

// label names a request by its id or its position in the file.
func label(id string, i int) string {
	if id != "" {
		return id
	}
	return fmt.Sprintf("#%d", i+1)
}

// background is the context of commands run outside Execute, e.g. in tests.
func background(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
