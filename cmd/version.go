package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gocfs/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gocfs",
	// the version needs no configuration
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.String())
		fmt.Fprintln(cmd.OutOrStdout(), "Cold-Formed Steel Framing Verification Tool")
		fmt.Fprintln(cmd.OutOrStdout(), "Based on BS 5950-5 (Code of practice for design of cold formed thin gauge sections)")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
