package cmd

import (
	"os"

	"benchsuite/packages/core/config"
	"benchsuite/packages/core/env"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var (
	flagQuiet   bool
	flagNoColor bool
	cfg         = config.DefaultConfig()
)

var rootCmd = &cobra.Command{
	Use:   "benchsuite",
	Short: "Run and report framework benchmarks",
	Long: `benchsuite orchestrates framework benchmark runs: it discovers the
frameworks and test implementations under the benchmarks directory and
renders verification summaries with a durable plain-text transcript.

The benchmarks directory is resolved from TFB_HOME, then ~/.tfb, then
the current working directory.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if root, err := env.BenchmarksDir(env.OSDirs{}); err == nil {
			if loaded, err := config.FindAndLoad(root); err == nil {
				cfg = loaded
			}
		}
		if flagNoColor || cfg.GetNoColor() {
			color.NoColor = true
		}
	},
}

func Execute(v, bt string) {
	version = v
	buildTime = bt
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func quiet() bool {
	return flagQuiet || cfg.GetQuiet()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress console output (transcripts are still written)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}
