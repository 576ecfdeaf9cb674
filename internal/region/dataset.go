// Package region implements the cultural-region layer: the polygon index,
// the eight-field classification resolver, and the adjacent-region filter.
// All static tables are loaded once at startup and never mutated.
package region

import (
	"os"
	"sort"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy"
	"gopkg.in/yaml.v3"
)

// ErrConfigMissing marks a fatal initialization failure: the region dataset
// is absent or malformed. No query may be served past this.
var ErrConfigMissing = eris.New("region: configuration missing")

// Vertex is one polygon ring vertex in [lat, lng] order, matching the
// dataset file layout.
type Vertex [2]float64

// Region is one named cultural region: its owning state, an optional
// explicit centroid, and a closed polygon ring.
type Region struct {
	Name     string   `yaml:"name"`
	State    string   `yaml:"state"`
	Centroid *Vertex  `yaml:"centroid,omitempty"`
	Polygon  []Vertex `yaml:"polygon,omitempty"`
}

// StateEntry carries the per-state portion of the dataset: the default
// region and the canonical display order of the state's regions.
type StateEntry struct {
	DefaultRegion string   `yaml:"default_region"`
	Regions       []string `yaml:"regions"`
}

// Dataset is the immutable cultural-region configuration: polygons,
// centroids, county and state lookup tables. Loaded once per process.
type Dataset struct {
	Version  int                          `yaml:"version"`
	Regions  []Region                     `yaml:"regions"`
	States   map[string]StateEntry        `yaml:"states"`
	Counties map[string]map[string]string `yaml:"counties"`

	centroids map[string]Vertex
	byState   map[string][]string
}

// LoadDataset reads and validates a region dataset from a YAML file.
// Any failure here is fatal for the process; callers must not serve
// queries without a dataset.
func LoadDataset(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(ErrConfigMissing, "read dataset %s: %v", path, err)
	}

	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, eris.Wrapf(ErrConfigMissing, "parse dataset %s: %v", path, err)
	}

	if err := ds.init(); err != nil {
		return nil, err
	}
	return &ds, nil
}

// NewDataset validates an in-memory dataset. Test code and the dataset
// builder use this to avoid touching the filesystem.
func NewDataset(regions []Region, states map[string]StateEntry, counties map[string]map[string]string) (*Dataset, error) {
	ds := &Dataset{Regions: regions, States: states, Counties: counties}
	if err := ds.init(); err != nil {
		return nil, err
	}
	return ds, nil
}

func (d *Dataset) init() error {
	if len(d.Regions) == 0 {
		return eris.Wrap(ErrConfigMissing, "dataset has no regions")
	}

	d.centroids = make(map[string]Vertex, len(d.Regions))
	d.byState = make(map[string][]string)

	seen := make(map[string]bool, len(d.Regions))
	for i := range d.Regions {
		r := &d.Regions[i]
		if r.Name == "" {
			return eris.Wrapf(ErrConfigMissing, "region %d has no name", i)
		}
		if seen[r.Name] {
			return eris.Wrapf(ErrConfigMissing, "duplicate region %q", r.Name)
		}
		seen[r.Name] = true

		switch {
		case r.Centroid != nil:
			d.centroids[r.Name] = *r.Centroid
		case len(r.Polygon) >= 3:
			c, err := ringCentroid(r.Polygon)
			if err != nil {
				return eris.Wrapf(ErrConfigMissing, "region %q centroid: %v", r.Name, err)
			}
			d.centroids[r.Name] = c
		default:
			return eris.Wrapf(ErrConfigMissing, "region %q has neither centroid nor polygon", r.Name)
		}

		if r.State != "" {
			d.byState[r.State] = append(d.byState[r.State], r.Name)
		}
	}
	for st := range d.byState {
		sort.Strings(d.byState[st])
	}

	return nil
}

// ringCentroid computes a polygon ring centroid using go-geom. The ring is
// closed if the dataset left it open.
func ringCentroid(ring []Vertex) (Vertex, error) {
	flat := make([]float64, 0, (len(ring)+1)*2)
	for _, v := range ring {
		flat = append(flat, v[1], v[0]) // geom is (x=lng, y=lat)
	}
	if ring[0] != ring[len(ring)-1] {
		flat = append(flat, ring[0][1], ring[0][0])
	}

	poly := geom.NewPolygonFlat(geom.XY, flat, []int{len(flat)})
	c, err := xy.Centroid(poly)
	if err != nil {
		return Vertex{}, err
	}
	return Vertex{c.Y(), c.X()}, nil
}

// Centroid returns the centroid for a region name.
func (d *Dataset) Centroid(name string) (Vertex, bool) {
	c, ok := d.centroids[name]
	return c, ok
}

// RegionsForState returns the state's region names. When the state entry
// declares a canonical order that order wins; otherwise names sort
// lexically so output stays deterministic.
func (d *Dataset) RegionsForState(state string) []string {
	if e, ok := d.States[state]; ok && len(e.Regions) > 0 {
		return e.Regions
	}
	return d.byState[state]
}

// DefaultRegion returns the state's default cultural region.
func (d *Dataset) DefaultRegion(state string) (string, bool) {
	e, ok := d.States[state]
	if !ok || e.DefaultRegion == "" {
		return "", false
	}
	return e.DefaultRegion, true
}

// FirstRegion returns the first region listed for a state, the last-resort
// source for the culturalRegion field.
func (d *Dataset) FirstRegion(state string) (string, bool) {
	names := d.RegionsForState(state)
	if len(names) == 0 {
		return "", false
	}
	return names[0], true
}

// CountyRegion looks up the cultural region mapped to (state, county).
func (d *Dataset) CountyRegion(state, county string) (string, bool) {
	m, ok := d.Counties[state]
	if !ok {
		return "", false
	}
	r, ok := m[county]
	return r, ok
}

// Save writes the dataset to a YAML file. Used by the dataset builder.
func (d *Dataset) Save(path string) error {
	data, err := yaml.Marshal(d)
	if err != nil {
		return eris.Wrap(err, "region: marshal dataset")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrapf(err, "region: write dataset %s", path)
	}
	return nil
}
