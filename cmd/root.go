package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gocfs/internal/catalog"
	"github.com/alexiusacademia/gocfs/internal/config"
	"github.com/alexiusacademia/gocfs/internal/engine"
	"github.com/alexiusacademia/gocfs/internal/logging"
	"github.com/alexiusacademia/gocfs/internal/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	cfgFile     string
	logLevel    string
	logFormat   string
	catalogPath string
	reportLang  string

	// Set up before every command runs
	cfg      *config.Config
	logger   = zap.NewNop()
	registry *catalog.Registry
)

var rootCmd = &cobra.Command{
	Use:   "gocfs",
	Short: "Cold-Formed Steel Framing Verification Tool",
	Long: `gocfs - Go Cold-Formed Steel framing checker

A CLI tool for the verification of light-gauge steel framing
to BS 5950-5 (cold-formed thin gauge sections).

This tool helps engineers check:
  - Partition wall studs under imposed, wind and fixture loads
  - Suspended ceiling runners, hanger rods and post-installed anchors
  - Bending, shear, web crippling, deflection and combined action
  - Whole schedules of members from JSON, YAML or Excel files

Every check prints its formula, the substituted values and the result.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gocfs v%-49s║\n", version.Version)
		fmt.Println("  ║   Go Cold-Formed Steel Framing Checker                    ║")
		fmt.Printf("  ║   %s ©  %-36s║\n", version.Author, version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the verification of cold-formed steel framing")
		fmt.Println("  based on BS 5950-5.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Wall stud checks with imposed, wind and fixture loads")
		fmt.Println("    • Ceiling runner, hanger and anchor checks")
		fmt.Println("    • Full calculation trail for every check")
		fmt.Println("    • Batch runs from JSON, YAML or Excel schedules")
		fmt.Println()
		fmt.Println("  Use 'gocfs --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: gocfs.yaml in ., ./configs or $HOME/.gocfs)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: console or json")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Section and fastener catalog file (default: built-in tables)")
	rootCmd.PersistentFlags().StringVar(&reportLang, "lang", "", "Worksheet language: en, ja or zh-Hant")
}

// setup loads the configuration, the logger and the catalog. Flags win over
// the configuration.
func setup(cmd *cobra.Command, args []string) error {
	c, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		c.Log.Level = logLevel
	}
	if flags.Changed("log-format") {
		c.Log.Format = logFormat
	}
	if flags.Changed("catalog") {
		c.Catalog.Path = catalogPath
	}
	if flags.Changed("lang") {
		c.Report.Language = reportLang
	}

	l, err := logging.New(c.Log.Level, c.Log.Format)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	var reg *catalog.Registry
	if c.Catalog.Path != "" {
		reg, err = catalog.LoadFile(c.Catalog.Path)
	} else {
		reg, err = catalog.Default()
	}
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	cfg, logger, registry = c, l, reg
	logger.Debug("configuration loaded",
		zap.String("catalog", c.Catalog.Path),
		zap.String("language", c.Report.Language),
		zap.Int("concurrency", c.Batch.Concurrency),
	)
	return nil
}

func newEngine() *engine.Engine {
	return engine.New(registry)
}
