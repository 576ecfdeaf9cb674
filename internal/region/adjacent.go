package region

import (
	"sort"

	"github.com/bizzlechizzle/atlas-cli/internal/geodist"
)

// AdjacentOptions bounds the neighbor-state region search.
type AdjacentOptions struct {
	MaxDistanceMiles float64
	MaxAdjacent      int
}

// DefaultAdjacentOptions returns the stock adjacency bounds.
func DefaultAdjacentOptions() AdjacentOptions {
	return AdjacentOptions{MaxDistanceMiles: 25, MaxAdjacent: 3}
}

// FilterAdjacentRegions produces the candidate region list for a selection
// UI: every region of the current state in canonical order, then up to
// MaxAdjacent neighbor-state regions whose centroids are within
// MaxDistanceMiles of the point, nearest first. With no coordinate only the
// current-state regions are returned. Output is deterministic for identical
// inputs.
func (d *Dataset) FilterAdjacentRegions(state string, lat, lng *float64, opts AdjacentOptions) []string {
	if opts.MaxDistanceMiles <= 0 {
		opts.MaxDistanceMiles = 25
	}
	if opts.MaxAdjacent <= 0 {
		opts.MaxAdjacent = 3
	}

	out := append([]string(nil), d.RegionsForState(state)...)
	if lat == nil || lng == nil {
		return out
	}

	type scored struct {
		name  string
		miles float64
	}
	var candidates []scored

	for _, neighbor := range Neighbors(state) {
		for _, name := range d.RegionsForState(neighbor) {
			c, ok := d.Centroid(name)
			if !ok {
				continue
			}
			miles := geodist.Miles(*lat, *lng, c[0], c[1])
			if miles <= opts.MaxDistanceMiles {
				candidates = append(candidates, scored{name, miles})
			}
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].miles != candidates[j].miles {
			return candidates[i].miles < candidates[j].miles
		}
		return candidates[i].name < candidates[j].name
	})

	if len(candidates) > opts.MaxAdjacent {
		candidates = candidates[:opts.MaxAdjacent]
	}
	for _, c := range candidates {
		out = append(out, c.name)
	}
	return out
}
