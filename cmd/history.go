package cmd

import (
	"encoding/json"
	"fmt"

	"model-compare/core/config"
	"model-compare/core/database"
	"model-compare/core/history"

	"github.com/spf13/cobra"
)

var (
	historyLimit int
	historyJSON  bool
)

// historyCmd lists recorded comparison runs
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded comparison runs, newest first",
	Long:  `Lists the runs stored with --record. Requires the history database (DATABASE_* settings).`,
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", history.DefaultLimit, "Maximum number of runs to list")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "Print runs as JSON")
	RootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return err
	}

	store := history.NewStore(db)
	if err := store.Migrate(ctx); err != nil {
		return err
	}
	runs, err := store.List(ctx, historyLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if historyJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}

	if len(runs) == 0 {
		fmt.Fprintln(out, "No recorded runs.")
		return nil
	}
	for _, r := range runs {
		fmt.Fprintln(out, formatRun(r))
	}
	return nil
}

func formatRun(r history.Run) string {
	return fmt.Sprintf("%s  %s  %s vs %s  first=%d second=%d only_first=%d only_second=%d common=%d",
		r.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
		r.ID,
		r.FirstSource,
		r.SecondSource,
		r.TotalFirst,
		r.TotalSecond,
		r.OnlyInFirst,
		r.OnlyInSecond,
		r.Common,
	)
}
