package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"benchsuite/packages/results"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent benchmark runs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := results.OpenHistory(filepath.Join(cfg.GetResultsDir(), results.HistoryName))
		if err != nil {
			return err
		}
		defer h.Close()

		records, err := h.RecentRuns(historyLimit)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, rec := range records {
			fmt.Fprintf(out, "%s  %s  pass=%d warn=%d error=%d\n",
				rec.StartedAt.Format(time.RFC3339), rec.ID,
				rec.Totals.Passed, rec.Totals.Warned, rec.Totals.Errored)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum number of runs to show")
}
