// Package ingest parses incoming reference points from CSV and XLSX files.
// Both readers share one header-driven row mapper: columns are located by
// name so export order does not matter.
package ingest

import (
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/bizzlechizzle/atlas-cli/internal/catalog"
)

// ErrNoHeader is returned when a file is empty or its header row carries
// none of the recognized column names.
var ErrNoHeader = eris.New("ingest: no usable header row")

// Options configures parsing. Column names are matched case-insensitively;
// zero values fall back to the conventional export headers.
type Options struct {
	NameColumn   string // default "name"
	LatColumn    string // default "latitude"
	LngColumn    string // default "longitude"
	SourceColumn string // default "source"
	StateColumn  string // default "state"
	CountyColumn string // default "county"
	Source       string // applied to every point when the file has no source column
}

func (o Options) withDefaults() Options {
	if o.NameColumn == "" {
		o.NameColumn = "name"
	}
	if o.LatColumn == "" {
		o.LatColumn = "latitude"
	}
	if o.LngColumn == "" {
		o.LngColumn = "longitude"
	}
	if o.SourceColumn == "" {
		o.SourceColumn = "source"
	}
	if o.StateColumn == "" {
		o.StateColumn = "state"
	}
	if o.CountyColumn == "" {
		o.CountyColumn = "county"
	}
	return o
}

// columnMap resolves header names to indexes. -1 means absent.
type columnMap struct {
	name, lat, lng, source, state, county int
}

func mapColumns(header []string, opts Options) (columnMap, error) {
	cm := columnMap{name: -1, lat: -1, lng: -1, source: -1, state: -1, county: -1}
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case strings.ToLower(opts.NameColumn):
			cm.name = i
		case strings.ToLower(opts.LatColumn), "lat":
			cm.lat = i
		case strings.ToLower(opts.LngColumn), "lng", "lon":
			cm.lng = i
		case strings.ToLower(opts.SourceColumn):
			cm.source = i
		case strings.ToLower(opts.StateColumn):
			cm.state = i
		case strings.ToLower(opts.CountyColumn):
			cm.county = i
		}
	}
	if cm.name == -1 && cm.lat == -1 && cm.lng == -1 {
		return cm, ErrNoHeader
	}
	return cm, nil
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseRow converts one data row into a reference point. Rows without a
// name or with an unparsable coordinate are rejected; the caller decides
// whether to skip or fail.
func parseRow(row []string, cm columnMap, opts Options) (catalog.ReferencePoint, error) {
	pt := catalog.ReferencePoint{
		Name:   cell(row, cm.name),
		Source: cell(row, cm.source),
		State:  cell(row, cm.state),
		County: cell(row, cm.county),
	}
	if pt.Name == "" {
		return pt, eris.New("ingest: row missing name")
	}
	if pt.Source == "" {
		pt.Source = opts.Source
	}

	latStr, lngStr := cell(row, cm.lat), cell(row, cm.lng)
	if latStr == "" || lngStr == "" {
		return pt, eris.Errorf("ingest: row %q missing coordinates", pt.Name)
	}
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return pt, eris.Wrapf(err, "ingest: row %q: parse latitude", pt.Name)
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return pt, eris.Wrapf(err, "ingest: row %q: parse longitude", pt.Name)
	}
	pt.Lat, pt.Lng = lat, lng

	return pt, nil
}

// parseRows maps data rows after the header. Bad rows are skipped with a
// debug log so one malformed export line does not sink a whole import.
func parseRows(rows [][]string, cm columnMap, opts Options) []catalog.ReferencePoint {
	points := make([]catalog.ReferencePoint, 0, len(rows))
	for i, row := range rows {
		pt, err := parseRow(row, cm, opts)
		if err != nil {
			zap.L().Debug("skipping row", zap.Int("row", i+2), zap.Error(err))
			continue
		}
		points = append(points, pt)
	}
	return points
}
