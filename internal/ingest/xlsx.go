package ingest

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/bizzlechizzle/atlas-cli/internal/catalog"
)

// ReadXLSX parses reference points from the first sheet of a workbook.
// The first row must be a header.
func ReadXLSX(path string, opts Options) ([]catalog.ReferencePoint, error) {
	opts = opts.withDefaults()

	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "ingest: open xlsx")
	}
	if len(f.Sheets) == 0 {
		return nil, ErrNoHeader
	}
	sheet := f.Sheets[0]
	if len(sheet.Rows) == 0 {
		return nil, ErrNoHeader
	}

	cm, err := mapColumns(rowToStrings(sheet.Rows[0]), opts)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(sheet.Rows)-1)
	for _, row := range sheet.Rows[1:] {
		rows = append(rows, rowToStrings(row))
	}

	return parseRows(rows, cm, opts), nil
}

func rowToStrings(row *xlsx.Row) []string {
	cells := make([]string, len(row.Cells))
	for i, c := range row.Cells {
		cells[i] = c.String()
	}
	return cells
}
