// Package matcher classifies incoming reference points against catalog
// entries, deciding whether a point is already a known location.
package matcher

import (
	"github.com/rotisserie/eris"

	"github.com/bizzlechizzle/atlas-cli/internal/catalog"
	"github.com/bizzlechizzle/atlas-cli/internal/geodist"
	"github.com/bizzlechizzle/atlas-cli/internal/similarity"
)

// ErrInvalidCoordinate rejects a single point whose lat/lng is NaN,
// non-finite, or out of range. It never aborts a batch.
var ErrInvalidCoordinate = eris.New("matcher: invalid coordinate")

// Kind is the closed set of match outcomes.
type Kind int

const (
	// KindNoMatch means no candidate satisfied any rule.
	KindNoMatch Kind = iota
	// KindEnrichmentOpportunity flags a GPS-less catalog entry whose name
	// matches well enough that the incoming point could backfill its GPS.
	KindEnrichmentOpportunity
	// KindProbableDuplicate means close by and named alike.
	KindProbableDuplicate
	// KindExactDuplicate means within the exact radius, name ignored.
	KindExactDuplicate
)

// String returns the wire/report label for a match kind.
func (k Kind) String() string {
	switch k {
	case KindExactDuplicate:
		return "exact_duplicate"
	case KindProbableDuplicate:
		return "probable_duplicate"
	case KindEnrichmentOpportunity:
		return "enrichment_opportunity"
	default:
		return "no_match"
	}
}

// Config carries the consolidated matching thresholds. The numeric defaults
// are load-bearing: the 500 m probable cap exists because name-only matching
// with no distance bound once merged records that were miles apart.
type Config struct {
	ExactRadiusMeters                 float64 `yaml:"exact_radius_meters" mapstructure:"exact_radius_meters"`
	ProbableRadiusMeters              float64 `yaml:"probable_radius_meters" mapstructure:"probable_radius_meters"`
	NameSimilarityThreshold           float64 `yaml:"name_similarity_threshold" mapstructure:"name_similarity_threshold"`
	EnrichmentNameSimilarityThreshold float64 `yaml:"enrichment_name_similarity_threshold" mapstructure:"enrichment_name_similarity_threshold"`
}

// DefaultConfig returns the documented threshold defaults.
func DefaultConfig() Config {
	return Config{
		ExactRadiusMeters:                 150,
		ProbableRadiusMeters:              500,
		NameSimilarityThreshold:           0.85,
		EnrichmentNameSimilarityThreshold: 0.85,
	}
}

// Result is the outcome of classifying one point. Entry is nil for
// KindNoMatch; DistanceMeters is nil when the matched entry has no GPS.
type Result struct {
	Kind           Kind           `json:"kind"`
	Entry          *catalog.Entry `json:"entry,omitempty"`
	NameSimilarity float64        `json:"name_similarity"`
	DistanceMeters *float64       `json:"distance_meters,omitempty"`
}

// Matcher classifies points against catalog snapshots. It holds only
// immutable config and is safe for concurrent use.
type Matcher struct {
	cfg Config
}

// New creates a Matcher, filling zero thresholds from the defaults.
func New(cfg Config) *Matcher {
	def := DefaultConfig()
	if cfg.ExactRadiusMeters <= 0 {
		cfg.ExactRadiusMeters = def.ExactRadiusMeters
	}
	if cfg.ProbableRadiusMeters <= 0 {
		cfg.ProbableRadiusMeters = def.ProbableRadiusMeters
	}
	if cfg.NameSimilarityThreshold <= 0 {
		cfg.NameSimilarityThreshold = def.NameSimilarityThreshold
	}
	if cfg.EnrichmentNameSimilarityThreshold <= 0 {
		cfg.EnrichmentNameSimilarityThreshold = def.EnrichmentNameSimilarityThreshold
	}
	return &Matcher{cfg: cfg}
}

// Match classifies one point against every candidate and keeps the
// best-ranked result. Candidates with GPS are ranked by the tier rules;
// a candidate farther than the probable radius is never a match no matter
// how similar its name reads.
func (m *Matcher) Match(point catalog.ReferencePoint, candidates []catalog.Entry) (Result, error) {
	if !geodist.ValidCoordinate(point.Lat, point.Lng) {
		return Result{}, eris.Wrapf(ErrInvalidCoordinate, "point %q (%v, %v)", point.Name, point.Lat, point.Lng)
	}

	pointName := similarity.NormalizeName(point.Name)
	best := Result{Kind: KindNoMatch}

	for i := range candidates {
		cand := &candidates[i]
		sim := similarity.JaroWinkler(pointName, similarity.NormalizeName(cand.Name))

		var r Result
		if cand.HasGPS() {
			d := geodist.Meters(point.Lat, point.Lng, *cand.Lat, *cand.Lng)
			switch {
			case d <= m.cfg.ExactRadiusMeters:
				r = Result{Kind: KindExactDuplicate, Entry: cand, NameSimilarity: sim, DistanceMeters: &d}
			case d <= m.cfg.ProbableRadiusMeters && sim >= m.cfg.NameSimilarityThreshold:
				r = Result{Kind: KindProbableDuplicate, Entry: cand, NameSimilarity: sim, DistanceMeters: &d}
			default:
				continue
			}
		} else {
			if sim < m.cfg.EnrichmentNameSimilarityThreshold {
				continue
			}
			r = Result{Kind: KindEnrichmentOpportunity, Entry: cand, NameSimilarity: sim}
		}

		if betterResult(r, best) {
			best = r
		}
	}

	return best, nil
}

// betterResult ranks two candidate results deterministically: kind first,
// then smaller distance, then higher name similarity, then entry id
// ascending. Arrival order never decides.
func betterResult(a, b Result) bool {
	if b.Kind == KindNoMatch {
		return true
	}
	if a.Kind != b.Kind {
		return a.Kind > b.Kind
	}
	if a.DistanceMeters != nil && b.DistanceMeters != nil && *a.DistanceMeters != *b.DistanceMeters {
		return *a.DistanceMeters < *b.DistanceMeters
	}
	if a.NameSimilarity != b.NameSimilarity {
		return a.NameSimilarity > b.NameSimilarity
	}
	return a.Entry.ID < b.Entry.ID
}
