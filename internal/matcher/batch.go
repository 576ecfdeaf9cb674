package matcher

import (
	"context"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/bizzlechizzle/atlas-cli/internal/catalog"
)

// PointOutcome pairs one input point with its classification or its
// per-point error. Exactly one of Result/Err is meaningful.
type PointOutcome struct {
	Point  catalog.ReferencePoint `json:"point"`
	Result Result                 `json:"result"`
	Err    string                 `json:"error,omitempty"`
}

// Report is the outcome of a whole batch. Outcomes keep input order so the
// report is stable regardless of execution parallelism.
type Report struct {
	ID       string         `json:"id"`
	Outcomes []PointOutcome `json:"outcomes"`
	Counts   map[string]int `json:"counts"`
	Errors   int            `json:"errors"`
}

// BatchMatch classifies points sequentially with cooperative cancellation
// between points. Per-point failures are collected into the report; only
// cancellation aborts the batch.
func (m *Matcher) BatchMatch(ctx context.Context, points []catalog.ReferencePoint, candidates []catalog.Entry) (*Report, error) {
	report := newReport(len(points))

	for i, p := range points {
		if err := ctx.Err(); err != nil {
			return nil, eris.Wrap(err, "matcher: batch canceled")
		}
		report.Outcomes[i] = m.classify(p, candidates)
	}

	report.tally()
	return report, nil
}

// BatchMatchParallel classifies points with up to workers goroutines. Each
// point depends only on the immutable snapshot, so the work is an
// embarrassingly parallel map; results land at their input index.
func (m *Matcher) BatchMatchParallel(ctx context.Context, points []catalog.ReferencePoint, candidates []catalog.Entry, workers int) (*Report, error) {
	if workers <= 1 {
		return m.BatchMatch(ctx, points, candidates)
	}

	report := newReport(len(points))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, p := range points {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			report.Outcomes[i] = m.classify(p, candidates)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, eris.Wrap(err, "matcher: batch canceled")
	}

	report.tally()
	return report, nil
}

func (m *Matcher) classify(p catalog.ReferencePoint, candidates []catalog.Entry) PointOutcome {
	result, err := m.Match(p, candidates)
	if err != nil {
		zap.L().Debug("matcher: point rejected",
			zap.String("name", p.Name),
			zap.Error(err),
		)
		return PointOutcome{Point: p, Err: err.Error()}
	}
	return PointOutcome{Point: p, Result: result}
}

func newReport(n int) *Report {
	return &Report{
		ID:       uuid.NewString(),
		Outcomes: make([]PointOutcome, n),
		Counts:   make(map[string]int),
	}
}

// tally derives the per-kind counts and error total from the outcomes.
func (r *Report) tally() {
	for _, o := range r.Outcomes {
		if o.Err != "" {
			r.Errors++
			continue
		}
		r.Counts[o.Result.Kind.String()]++
	}
}
