package region

import (
	"math"

	"github.com/rotisserie/eris"

	"github.com/bizzlechizzle/atlas-cli/internal/geodist"
)

// indexedRegion is one region prepared for point lookup: its closed ring,
// bounding box prefilter, and centroid.
type indexedRegion struct {
	name     string
	ring     []Vertex
	centroid Vertex
	minLat   float64
	maxLat   float64
	minLng   float64
	maxLng   float64
}

// Index answers "which cultural region is this point in" for any coordinate.
// Lookup is total: a point outside every polygon falls back to the nearest
// region centroid with no distance cutoff.
type Index struct {
	regions []indexedRegion
}

// NewIndex builds a polygon index over the dataset's regions.
func NewIndex(ds *Dataset) (*Index, error) {
	if ds == nil || len(ds.Regions) == 0 {
		return nil, eris.Wrap(ErrConfigMissing, "polygon index needs a dataset")
	}

	idx := &Index{regions: make([]indexedRegion, 0, len(ds.Regions))}
	for _, r := range ds.Regions {
		c, _ := ds.Centroid(r.Name)
		ir := indexedRegion{name: r.Name, centroid: c}

		if len(r.Polygon) >= 3 {
			ir.ring = closeRing(r.Polygon)
			ir.minLat, ir.maxLat = math.Inf(1), math.Inf(-1)
			ir.minLng, ir.maxLng = math.Inf(1), math.Inf(-1)
			for _, v := range ir.ring {
				ir.minLat = math.Min(ir.minLat, v[0])
				ir.maxLat = math.Max(ir.maxLat, v[0])
				ir.minLng = math.Min(ir.minLng, v[1])
				ir.maxLng = math.Max(ir.maxLng, v[1])
			}
		}

		idx.regions = append(idx.regions, ir)
	}
	return idx, nil
}

// Locate returns the cultural region for a coordinate and whether the point
// was actually inside that region's polygon. contained=false means the
// nearest-centroid fallback supplied the answer.
//
// When more than one polygon contains the point the one with the nearest
// centroid wins, keeping overlap handling deterministic.
func (idx *Index) Locate(lat, lng float64) (name string, contained bool) {
	bestDist := math.Inf(1)
	for i := range idx.regions {
		r := &idx.regions[i]
		if r.ring == nil {
			continue
		}
		if lat < r.minLat || lat > r.maxLat || lng < r.minLng || lng > r.maxLng {
			continue
		}
		if !pointInRing(lat, lng, r.ring) {
			continue
		}
		d := geodist.Meters(lat, lng, r.centroid[0], r.centroid[1])
		if d < bestDist || (d == bestDist && (name == "" || r.name < name)) {
			bestDist = d
			name = r.name
			contained = true
		}
	}
	if contained {
		return name, true
	}
	return idx.nearestCentroid(lat, lng), false
}

// CulturalRegion returns the region name for any coordinate. Total by
// construction: there is no "no match" case.
func (idx *Index) CulturalRegion(lat, lng float64) string {
	name, _ := idx.Locate(lat, lng)
	return name
}

func (idx *Index) nearestCentroid(lat, lng float64) string {
	best := ""
	bestDist := math.Inf(1)
	for i := range idx.regions {
		r := &idx.regions[i]
		d := geodist.Meters(lat, lng, r.centroid[0], r.centroid[1])
		if d < bestDist || (d == bestDist && r.name < best) {
			bestDist = d
			best = r.name
		}
	}
	return best
}

// pointInRing is a standard ray-casting containment test over a closed
// lat/lng ring. Points exactly on an edge may land on either side; region
// borders are not survey-grade.
func pointInRing(lat, lng float64, ring []Vertex) bool {
	inside := false
	for i, j := 0, len(ring)-1; i < len(ring); j, i = i, i+1 {
		yi, xi := ring[i][0], ring[i][1]
		yj, xj := ring[j][0], ring[j][1]
		if (yi > lat) != (yj > lat) &&
			lng < (xj-xi)*(lat-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}
	return inside
}

func closeRing(ring []Vertex) []Vertex {
	if ring[0] == ring[len(ring)-1] {
		return ring
	}
	closed := make([]Vertex, len(ring)+1)
	copy(closed, ring)
	closed[len(ring)] = ring[0]
	return closed
}
