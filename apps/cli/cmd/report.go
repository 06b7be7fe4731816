package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"benchsuite/packages/logging"
	"benchsuite/packages/results"
	"benchsuite/packages/verify"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report <outcomes.json>",
	Short: "Render a verification summary from an outcomes file",
	Long: `Render the verification summary for a set of recorded outcomes.

A new timestamped directory is created under the results root, the
summary is printed to the console and appended, stripped of color, to
benchmark.txt inside it, and the run is recorded in the history index.`,
	Args: cobra.ExactArgs(1),
	RunE: reportCommand,
}

func reportCommand(cmd *cobra.Command, args []string) error {
	verifications, err := loadVerifications(args[0])
	if err != nil {
		return err
	}

	run := results.NewRun(version)
	resultsRoot := cfg.GetResultsDir()

	opts := []logging.Option{
		logging.WithWriter(cmd.OutOrStdout()),
		logging.WithQuiet(quiet()),
	}
	// Transcript setup is best effort: without a run directory the
	// summary still reaches the console.
	if dir, err := run.CreateDir(resultsRoot); err == nil {
		opts = append(opts, logging.InDir(dir))
	}
	logger := logging.New(opts...)

	if err := verify.ReportVerifications(verifications, logger); err != nil {
		return err
	}

	recordHistory(logger, resultsRoot, run, verify.Count(verifications))
	return nil
}

func loadVerifications(path string) ([]verify.Verification, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read outcomes file: %w", err)
	}
	var verifications []verify.Verification
	if err := json.Unmarshal(data, &verifications); err != nil {
		return nil, fmt.Errorf("failed to parse outcomes file %s: %w", path, err)
	}
	return verifications, nil
}

// recordHistory appends the run to the history index. Failures degrade to
// a console warning; losing a history row must not fail the report.
func recordHistory(logger logging.Logger, resultsRoot string, run *results.Run, totals verify.Totals) {
	h, err := results.OpenHistory(filepath.Join(resultsRoot, results.HistoryName))
	if err != nil {
		_ = logger.Error(fmt.Sprintf("history index unavailable: %v", err))
		return
	}
	defer h.Close()

	if err := h.RecordRun(run, totals); err != nil {
		_ = logger.Error(fmt.Sprintf("failed to record run in history: %v", err))
	}
}
