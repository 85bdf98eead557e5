package cmd

import (
	"context"
	"fmt"

	"model-compare/core/config"
	"model-compare/core/database"
	"model-compare/core/document"
	"model-compare/core/graph"
	"model-compare/core/history"
	"model-compare/core/logger"
	"model-compare/core/reconcile"
	"model-compare/core/report"
	"model-compare/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the compare (root) command
	outputPath   string
	reportFormat string
	recordRun    bool
	uploadReport bool
)

func init() {
	RootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Report path (default compare_<file1>_vs_<file2>_results.<ext>)")
	RootCmd.Flags().StringVar(&reportFormat, "format", "", "Report format: text or json (default from REPORT_FORMAT, else text)")
	RootCmd.Flags().BoolVar(&recordRun, "record", false, "Record the run summary in the history database")
	RootCmd.Flags().BoolVar(&uploadReport, "upload", false, "Upload the report to the storage bucket")
}

func runCompare(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	first, second := args[0], args[1]

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logg.Sync()

	format := cfg.Report.Format
	if reportFormat != "" {
		format = reportFormat
	}
	reportFmt, err := report.ParseFormat(format)
	if err != nil {
		return err
	}

	// Storage is only needed for s3:// sources or uploads
	var client storage.Client
	if isObjectSource(first) || isObjectSource(second) || uploadReport {
		client, err = storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
	}

	firstDoc, secondDoc, err := document.NewLoader(client).LoadPair(ctx, first, second)
	if err != nil {
		return err
	}

	firstNodes, firstStats := graph.ExtractWithStats(firstDoc)
	logExtractStats(logg, first, firstStats)
	secondNodes, secondStats := graph.ExtractWithStats(secondDoc)
	logExtractStats(logg, second, secondStats)

	res := reconcile.Reconcile(firstNodes, secondNodes)

	out := outputPath
	if out == "" {
		out = report.OutputName(first, second, reportFmt)
	}
	if err := report.WriteFile(out, reportFmt, res); err != nil {
		return err
	}

	logg.Info("Comparison complete",
		zap.String("output", out),
		zap.Int("total_first", res.Summary.TotalFirst),
		zap.Int("total_second", res.Summary.TotalSecond),
		zap.Int("only_in_first", res.Summary.OnlyInFirst),
		zap.Int("only_in_second", res.Summary.OnlyInSecond),
		zap.Int("common", res.Summary.Common),
	)

	if uploadReport {
		key, err := report.Upload(ctx, client, cfg.Storage.Bucket, cfg.Report.UploadPrefix, out)
		if err != nil {
			return err
		}
		logg.Info("Uploaded report", zap.String("bucket", cfg.Storage.Bucket), zap.String("object", key))
	}

	if recordRun {
		run, err := recordComparison(ctx, cfg.Database, first, second, out, res.Summary)
		if err != nil {
			return err
		}
		logg.Info("Recorded run", zap.String("id", run.ID))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Results written to %s\n", out)
	return nil
}

func recordComparison(ctx context.Context, cfg database.Config, first, second, output string, summary reconcile.Summary) (*history.Run, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}

	store := history.NewStore(db)
	if err := store.Migrate(ctx); err != nil {
		return nil, err
	}
	return store.Record(ctx, first, second, output, summary)
}

func logExtractStats(logg *zap.Logger, src string, stats graph.Stats) {
	l := logg.With(zap.String("source", src))

	if stats.MissingGraph {
		l.Warn("Document has no graph field; treating it as empty")
		return
	}
	if stats.GraphsWithoutNodes > 0 {
		l.Warn("Graphs without a nodes list were skipped", zap.Int("count", stats.GraphsWithoutNodes))
	}
	if stats.SkippedNodes > 0 {
		l.Warn("Nodes without a nodeid were skipped", zap.Int("count", stats.SkippedNodes))
	}
	if stats.DuplicateIDs > 0 {
		l.Warn("Duplicate nodeids found; the last record wins", zap.Int("count", stats.DuplicateIDs))
	}
}

func isObjectSource(src string) bool {
	_, _, ok := storage.ParseURI(src)
	return ok
}
