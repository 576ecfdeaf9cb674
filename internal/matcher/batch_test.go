package matcher

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizzlechizzle/atlas-cli/internal/catalog"
)

func batchFixture() ([]catalog.ReferencePoint, []catalog.Entry) {
	points := []catalog.ReferencePoint{
		{Name: "Old Stone Mill", Lat: 43.0, Lng: -77.0},
		{Name: "Broken Point", Lat: math.NaN(), Lng: -77.0},
		{Name: "Rolling Hills Asylum", Lat: 42.97, Lng: -78.15},
		{Name: "Nowhere Special", Lat: 41.0, Lng: -75.0},
	}
	candidates := []catalog.Entry{
		entry("c1", "Old Stone Mill", 43.0+metersNorth(60), -77.0),
		entryNoGPS("c2", "Rolling Hills Asylum"),
	}
	return points, candidates
}

func TestBatchMatchPartialFailure(t *testing.T) {
	m := New(DefaultConfig())
	points, candidates := batchFixture()

	report, err := m.BatchMatch(context.Background(), points, candidates)
	require.NoError(t, err)
	require.Len(t, report.Outcomes, 4)
	assert.NotEmpty(t, report.ID)

	// The NaN point fails alone; the rest classify normally.
	assert.Empty(t, report.Outcomes[0].Err)
	assert.Equal(t, KindExactDuplicate, report.Outcomes[0].Result.Kind)

	assert.NotEmpty(t, report.Outcomes[1].Err)

	assert.Equal(t, KindEnrichmentOpportunity, report.Outcomes[2].Result.Kind)
	assert.Equal(t, KindNoMatch, report.Outcomes[3].Result.Kind)

	assert.Equal(t, 1, report.Errors)
	assert.Equal(t, 1, report.Counts["exact_duplicate"])
	assert.Equal(t, 1, report.Counts["enrichment_opportunity"])
	assert.Equal(t, 1, report.Counts["no_match"])
}

func TestBatchMatchCancellation(t *testing.T) {
	m := New(DefaultConfig())
	points, candidates := batchFixture()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.BatchMatch(ctx, points, candidates)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBatchMatchParallelMatchesSequential(t *testing.T) {
	m := New(DefaultConfig())
	points, candidates := batchFixture()

	seq, err := m.BatchMatch(context.Background(), points, candidates)
	require.NoError(t, err)

	par, err := m.BatchMatchParallel(context.Background(), points, candidates, 4)
	require.NoError(t, err)

	require.Len(t, par.Outcomes, len(seq.Outcomes))
	for i := range seq.Outcomes {
		assert.Equal(t, seq.Outcomes[i].Result.Kind, par.Outcomes[i].Result.Kind, "outcome %d", i)
		assert.Equal(t, seq.Outcomes[i].Err != "", par.Outcomes[i].Err != "", "outcome %d", i)
	}
	assert.Equal(t, seq.Counts, par.Counts)
	assert.Equal(t, seq.Errors, par.Errors)
}

func TestBatchMatchParallelSingleWorkerFallsBack(t *testing.T) {
	m := New(DefaultConfig())
	points, candidates := batchFixture()

	report, err := m.BatchMatchParallel(context.Background(), points, candidates, 1)
	require.NoError(t, err)
	assert.Len(t, report.Outcomes, 4)
}

func TestBatchMatchEmpty(t *testing.T) {
	m := New(DefaultConfig())

	report, err := m.BatchMatch(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, report.Outcomes)
	assert.Zero(t, report.Errors)
}
