package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bizzlechizzle/atlas-cli/internal/matcher"
)

var (
	matchInput   string
	matchState   string
	matchSource  string
	matchOut     string
	matchWorkers int
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Classify incoming points against the catalog",
	Long:  "Reads reference points from a CSV, XLSX, or JSON file, classifies each against a catalog snapshot, and writes a batch report as JSON.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		points, err := readPoints(ctx, matchInput, matchSource)
		if err != nil {
			return err
		}
		if len(points) == 0 {
			zap.L().Warn("no points parsed from input", zap.String("input", matchInput))
		}

		src, err := openCatalog(ctx)
		if err != nil {
			return err
		}
		defer src.Close()

		candidates, err := src.Snapshot(ctx, matchState)
		if err != nil {
			return err
		}

		workers := matchWorkers
		if workers == 0 {
			workers = cfg.Batch.Workers
		}

		m := matcher.New(cfg.Match)
		report, err := m.BatchMatchParallel(ctx, points, candidates, workers)
		if err != nil {
			return err
		}

		zap.L().Info("batch complete",
			zap.String("report", report.ID),
			zap.Int("points", len(report.Outcomes)),
			zap.Int("errors", report.Errors),
			zap.Any("counts", report.Counts),
		)

		return writeOutput(matchOut, report)
	},
}

func init() {
	matchCmd.Flags().StringVar(&matchInput, "input", "", "points file, .csv/.xlsx/.json (required)")
	matchCmd.Flags().StringVar(&matchState, "state", "", "limit the catalog snapshot to one state")
	matchCmd.Flags().StringVar(&matchSource, "source", "", "source tag applied to points without one")
	matchCmd.Flags().StringVar(&matchOut, "out", "", "report output path (default stdout)")
	matchCmd.Flags().IntVar(&matchWorkers, "workers", 0, "parallel workers (default from config)")
	_ = matchCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(matchCmd)
}
