package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/alexiusacademia/gocfs/internal/expr"
	"github.com/alexiusacademia/gocfs/internal/loads"
	"github.com/spf13/cobra"
)

var factorsCmd = &cobra.Command{
	Use:   "factors",
	Short: "List the load factor presets",
	Long: `List the partial load factor presets of BS 5950-1 Table 2 and the
factors configured as default.

Use a preset on a member command with --preset, or override single factors
with --factor-wind, --factor-dead, --factor-imposed and --factor-fixture.

Examples:
  gocfs factors
  gocfs wallstud ... --preset wind`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "LOAD FACTOR PRESETS (BS 5950-1 Table 2):")
		fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")

		configured := cfg.FactorDefaults()
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  ID\tγW\tγD\tγQ\tγI\tDescription\n")
		fmt.Fprintf(w, "  ──\t──\t──\t──\t──\t───────────\n")
		for _, p := range loads.Presets {
			marker := ""
			if p.Factors == configured {
				marker = " ← DEFAULT"
			}
			f := p.Factors
			fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\t%s%s\n", p.ID,
				expr.FormatNumber(f.Wind), expr.FormatNumber(f.Dead),
				expr.FormatNumber(f.Imposed), expr.FormatNumber(f.Fixture),
				p.Description, marker)
		}
		w.Flush()
		fmt.Fprintln(out)
	},
}

func init() {
	rootCmd.AddCommand(factorsCmd)
}
