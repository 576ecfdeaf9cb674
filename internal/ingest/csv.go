package ingest

import (
	"context"
	"encoding/csv"
	"io"

	"github.com/rotisserie/eris"

	"github.com/bizzlechizzle/atlas-cli/internal/catalog"
)

// ReadCSV parses reference points from a CSV stream. The first row must be
// a header; rows with variable field counts are tolerated.
func ReadCSV(ctx context.Context, r io.Reader, opts Options) ([]catalog.ReferencePoint, error) {
	opts = opts.withDefaults()

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, eris.Wrap(err, "ingest: read csv header")
	}

	cm, err := mapColumns(header, opts)
	if err != nil {
		return nil, err
	}

	var rows [][]string
	for {
		if ctx.Err() != nil {
			return nil, eris.Wrap(ctx.Err(), "ingest: csv read cancelled")
		}
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrap(err, "ingest: read csv row")
		}
		rows = append(rows, record)
	}

	return parseRows(rows, cm, opts), nil
}
