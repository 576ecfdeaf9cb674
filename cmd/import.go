package main

import (
	"fmt"
	"os/signal"
	"sort"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bizzlechizzle/atlas-cli/internal/catalog"
	"github.com/bizzlechizzle/atlas-cli/internal/matcher"
)

var (
	importInput  string
	importSource string
	importOut    string
)

// importedPoint is one normalized output record. Points sharing a
// coordinate are merged: the best-scoring name wins and the rest land in
// AlternateNames.
type importedPoint struct {
	catalog.ReferencePoint
	AlternateNames string `json:"alternate_names,omitempty"`
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Normalize a points export into JSON",
	Long:  "Reads a CSV or XLSX export, merges records sharing a coordinate under the best-quality name, and writes normalized points as JSON ready for the match command.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		points, err := readPoints(ctx, importInput, importSource)
		if err != nil {
			return err
		}

		merged := mergeByCoordinate(points)

		zap.L().Info("import complete",
			zap.String("input", importInput),
			zap.Int("read", len(points)),
			zap.Int("written", len(merged)),
		)

		return writeOutput(importOut, merged)
	},
}

// coordKey collapses coordinates to ~1 m so re-exports of the same record
// with trailing-digit jitter still merge.
func coordKey(lat, lng float64) string {
	return fmt.Sprintf("%.5f,%.5f", lat, lng)
}

func mergeByCoordinate(points []catalog.ReferencePoint) []importedPoint {
	groups := make(map[string][]catalog.ReferencePoint)
	var order []string
	for _, p := range points {
		key := coordKey(p.Lat, p.Lng)
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], p)
	}
	sort.Strings(order)

	out := make([]importedPoint, 0, len(groups))
	for _, key := range order {
		group := groups[key]

		names := make([]string, len(group))
		for i, p := range group {
			names[i] = p.Name
		}
		best := matcher.BestName(names)

		merged := importedPoint{ReferencePoint: group[0]}
		merged.Name = best
		merged.AlternateNames = matcher.AlternateNames(names, best)
		out = append(out, merged)
	}
	return out
}

func init() {
	importCmd.Flags().StringVar(&importInput, "input", "", "points file, .csv or .xlsx (required)")
	importCmd.Flags().StringVar(&importSource, "source", "", "source tag applied to points without one")
	importCmd.Flags().StringVar(&importOut, "out", "", "output path (default stdout)")
	_ = importCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(importCmd)
}
