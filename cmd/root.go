package cmd

import (
	"fmt"
	"os"

	"model-compare/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd compares two model exports when called with two arguments.
var RootCmd = &cobra.Command{
	Use:   "model-compare <file1> <file2>",
	Short: "Compare the node sets of two graph model exports",
	Long: `Model Compare reports which graph nodes were added, removed or kept between
two versions of a model export, keyed by nodeid.

Sources are local JSON/YAML files or s3://<bucket>/<object> references.

Examples:
  # Write compare_architecture_v1_vs_architecture_v2_results.txt
  model-compare architecture_v1.json architecture_v2.json

  # JSON report at a chosen path, recorded in the run history
  model-compare v1.json v2.json --format json -o diff.json --record`,
	Args:          cobra.ExactArgs(2),
	RunE:          runCompare,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits with status 1 on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console logger with ISO8601 timestamps
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
