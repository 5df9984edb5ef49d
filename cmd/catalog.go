package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/alexiusacademia/gocfs/internal/catalog"
	"github.com/spf13/cobra"
)

var catalogKind string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the sections and fasteners available to a check",
	Long: `List the cold-formed sections, hanger rods and anchors of the catalog.

The built-in tables can be replaced with --catalog or catalog.path in the
configuration.

Examples:
  gocfs catalog
  gocfs catalog --kind runner
  gocfs catalog --kind anchor --catalog site-catalog.yaml`,
	Args: cobra.NoArgs,
	RunE: runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.Flags().StringVarP(&catalogKind, "kind", "k", "", "Only list one kind: stud, runner, hanger or anchor")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	var sections, hangers, anchors bool
	switch catalogKind {
	case "":
		sections, hangers, anchors = true, true, true
	case string(catalog.KindStud), string(catalog.KindRunner):
		sections = true
	case string(catalog.KindHanger):
		hangers = true
	case string(catalog.KindAnchor):
		anchors = true
	default:
		return fmt.Errorf("unknown kind %q, want stud, runner, hanger or anchor", catalogKind)
	}

	if sections {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "SECTIONS:")
		fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  ID\tKind\tD×B×t (mm)\tAe (mm²)\tIxe (mm⁴)\tSxe (mm³)\n")
		for _, s := range registry.Sections(catalog.SectionKind(catalogKind)) {
			fmt.Fprintf(w, "  %s\t%s\t%g×%g×%g\t%.1f\t%.0f\t%.0f\n",
				s.ID, s.Kind, s.WebHeight, s.FlangeWidth, s.Thickness,
				s.EffectiveArea, s.EffectiveMomentOfInertia, s.EffectiveSectionModulus)
		}
		w.Flush()
	}

	if hangers {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "HANGER RODS:")
		fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  ID\tØ (mm)\tAs (mm²)\tfu (MPa)\n")
		for _, f := range registry.Fasteners(catalog.KindHanger) {
			fmt.Fprintf(w, "  %s\t%g\t%.1f\t%.0f\n", f.ID, f.Diameter, f.Area, f.TensileStrength)
		}
		w.Flush()
	}

	if anchors {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "ANCHORS:")
		fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  ID\tØ (mm)\tNRk (kN)\tNRd (kN)\tNrec (kN)\n")
		for _, f := range registry.Fasteners(catalog.KindAnchor) {
			fmt.Fprintf(w, "  %s\t%g\t%.1f\t%.1f\t%.1f\n", f.ID, f.Diameter,
				f.CharacteristicResistance, f.DesignResistance, f.RecommendedLoad)
		}
		w.Flush()
	}
	fmt.Fprintln(out)
	return nil
}
