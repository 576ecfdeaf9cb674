package region

import (
	"strings"

	"github.com/jonas-p/go-shp"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// BuildOptions names the shapefile attribute columns carrying the region
// name and owning state.
type BuildOptions struct {
	NameField  string
	StateField string
}

// BuildDatasetFromShapefile reads a cultural-region polygon shapefile and
// produces a Dataset ready to save as YAML. Only the outer ring of each
// polygon is kept; region lookup does not need holes. Records without a
// name or a usable polygon are skipped.
func BuildDatasetFromShapefile(shpPath string, opts BuildOptions) (*Dataset, error) {
	if opts.NameField == "" {
		opts.NameField = "NAME"
	}
	if opts.StateField == "" {
		opts.StateField = "STATE"
	}

	reader, err := shp.Open(shpPath)
	if err != nil {
		return nil, eris.Wrapf(err, "region: open shapefile %s", shpPath)
	}
	defer func() { _ = reader.Close() }()

	nameIdx := fieldIndex(reader, opts.NameField)
	stateIdx := fieldIndex(reader, opts.StateField)
	if nameIdx < 0 {
		return nil, eris.Errorf("region: shapefile field %q not found", opts.NameField)
	}

	var (
		regions []Region
		states  = make(map[string]StateEntry)
		skipped int
	)

	for reader.Next() {
		n, shape := reader.Shape()

		name := strings.TrimSpace(strings.TrimRight(reader.Attribute(nameIdx), "\x00"))
		if name == "" {
			skipped++
			continue
		}
		state := ""
		if stateIdx >= 0 {
			state = strings.TrimSpace(strings.TrimRight(reader.Attribute(stateIdx), "\x00"))
		}

		poly, ok := shape.(*shp.Polygon)
		if !ok || poly.NumParts == 0 || len(poly.Points) == 0 {
			zap.L().Debug("region: skipping non-polygon record", zap.Int("record", n))
			skipped++
			continue
		}

		ring := outerRing(poly)
		if len(ring) < 3 {
			skipped++
			continue
		}

		regions = append(regions, Region{Name: name, State: state, Polygon: ring})
		if state != "" {
			e := states[state]
			e.Regions = append(e.Regions, name)
			if e.DefaultRegion == "" {
				e.DefaultRegion = name
			}
			states[state] = e
		}
	}

	if skipped > 0 {
		zap.L().Debug("region: skipped shapefile records", zap.Int("skipped", skipped))
	}

	return NewDataset(regions, states, nil)
}

// outerRing extracts the first part of a shapefile polygon as a lat/lng ring.
func outerRing(p *shp.Polygon) []Vertex {
	end := len(p.Points)
	if p.NumParts > 1 {
		end = int(p.Parts[1])
	}
	ring := make([]Vertex, 0, end)
	for _, pt := range p.Points[:end] {
		ring = append(ring, Vertex{pt.Y, pt.X})
	}
	return ring
}

func fieldIndex(reader *shp.Reader, name string) int {
	for i, f := range reader.Fields() {
		if strings.EqualFold(strings.TrimRight(f.String(), "\x00"), name) {
			return i
		}
	}
	return -1
}
