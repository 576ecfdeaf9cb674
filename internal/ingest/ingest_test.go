package ingest

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"
)

func TestReadCSV_Basic(t *testing.T) {
	input := "name,latitude,longitude,state,county\n" +
		"Kodak Tower,43.1663,-77.6206,NY,Monroe\n" +
		"Bethlehem Steel,42.8270,-78.8320,NY,Erie\n"

	points, err := ReadCSV(context.Background(), strings.NewReader(input), Options{})
	require.NoError(t, err)
	require.Len(t, points, 2)

	assert.Equal(t, "Kodak Tower", points[0].Name)
	assert.InDelta(t, 43.1663, points[0].Lat, 1e-9)
	assert.InDelta(t, -77.6206, points[0].Lng, 1e-9)
	assert.Equal(t, "NY", points[0].State)
	assert.Equal(t, "Monroe", points[0].County)
	assert.Equal(t, "Bethlehem Steel", points[1].Name)
}

func TestReadCSV_ColumnOrderIrrelevant(t *testing.T) {
	input := "longitude,name,latitude\n-77.6206,Kodak Tower,43.1663\n"

	points, err := ReadCSV(context.Background(), strings.NewReader(input), Options{})
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, "Kodak Tower", points[0].Name)
	assert.InDelta(t, 43.1663, points[0].Lat, 1e-9)
	assert.InDelta(t, -77.6206, points[0].Lng, 1e-9)
}

func TestReadCSV_ShortHeaderAliases(t *testing.T) {
	input := "name,lat,lon\nKodak Tower,43.1663,-77.6206\n"

	points, err := ReadCSV(context.Background(), strings.NewReader(input), Options{})
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.InDelta(t, -77.6206, points[0].Lng, 1e-9)
}

func TestReadCSV_SkipsBadRows(t *testing.T) {
	input := "name,latitude,longitude\n" +
		"Good Point,43.0,-77.0\n" +
		",42.0,-78.0\n" + // missing name
		"No Coords,,\n" +
		"Bad Lat,notanumber,-78.0\n" +
		"Another Good,42.5,-77.5\n"

	points, err := ReadCSV(context.Background(), strings.NewReader(input), Options{})
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, "Good Point", points[0].Name)
	assert.Equal(t, "Another Good", points[1].Name)
}

func TestReadCSV_DefaultSource(t *testing.T) {
	input := "name,latitude,longitude,source\nA,43.0,-77.0,survey\nB,42.0,-78.0,\n"

	points, err := ReadCSV(context.Background(), strings.NewReader(input), Options{Source: "import"})
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, "survey", points[0].Source)
	assert.Equal(t, "import", points[1].Source)
}

func TestReadCSV_EmptyFile(t *testing.T) {
	_, err := ReadCSV(context.Background(), strings.NewReader(""), Options{})
	assert.ErrorIs(t, err, ErrNoHeader)
}

func TestReadCSV_UnrecognizedHeader(t *testing.T) {
	_, err := ReadCSV(context.Background(), strings.NewReader("foo,bar\n1,2\n"), Options{})
	assert.ErrorIs(t, err, ErrNoHeader)
}

func TestReadCSV_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ReadCSV(ctx, strings.NewReader("name,latitude,longitude\nA,1,2\n"), Options{})
	assert.ErrorIs(t, err, context.Canceled)
}

func createTestXLSX(t *testing.T, rows [][]string) string {
	t.Helper()
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Sheet1")
	require.NoError(t, err)
	for _, rowData := range rows {
		row := sheet.AddRow()
		for _, cellData := range rowData {
			row.AddCell().SetString(cellData)
		}
	}
	path := filepath.Join(t.TempDir(), "points.xlsx")
	require.NoError(t, f.Save(path))
	return path
}

func TestReadXLSX_Basic(t *testing.T) {
	path := createTestXLSX(t, [][]string{
		{"Name", "Latitude", "Longitude", "State"},
		{"Kodak Tower", "43.1663", "-77.6206", "NY"},
		{"Bethlehem Steel", "42.8270", "-78.8320", "NY"},
	})

	points, err := ReadXLSX(path, Options{})
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, "Kodak Tower", points[0].Name)
	assert.InDelta(t, 43.1663, points[0].Lat, 1e-9)
	assert.Equal(t, "NY", points[0].State)
}

func TestReadXLSX_SkipsBadRows(t *testing.T) {
	path := createTestXLSX(t, [][]string{
		{"name", "latitude", "longitude"},
		{"Good", "43.0", "-77.0"},
		{"", "42.0", "-78.0"},
	})

	points, err := ReadXLSX(path, Options{})
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, "Good", points[0].Name)
}

func TestReadXLSX_MissingFile(t *testing.T) {
	_, err := ReadXLSX(filepath.Join(t.TempDir(), "nope.xlsx"), Options{})
	assert.Error(t, err)
}
