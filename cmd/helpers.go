package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/bizzlechizzle/atlas-cli/internal/catalog"
	"github.com/bizzlechizzle/atlas-cli/internal/ingest"
	"github.com/bizzlechizzle/atlas-cli/internal/region"
)

// openCatalog opens the configured catalog source. For sqlite the
// database_url key is the database file path.
func openCatalog(ctx context.Context) (catalog.Source, error) {
	switch cfg.Catalog.Driver {
	case "sqlite":
		if cfg.Catalog.DatabaseURL == "" {
			return nil, eris.New("catalog database path is required (ATLAS_CATALOG_DATABASE_URL)")
		}
		return catalog.OpenSQLite(cfg.Catalog.DatabaseURL)
	case "postgres":
		if cfg.Catalog.DatabaseURL == "" {
			return nil, eris.New("catalog database URL is required (ATLAS_CATALOG_DATABASE_URL)")
		}
		pool, err := pgxpool.New(ctx, cfg.Catalog.DatabaseURL)
		if err != nil {
			return nil, eris.Wrap(err, "connect postgres")
		}
		return catalog.NewPostgres(pool), nil
	default:
		return nil, eris.Errorf("unknown catalog driver %q", cfg.Catalog.Driver)
	}
}

// loadRegionEngine loads the dataset and builds the polygon index and
// resolver on top of it.
func loadRegionEngine() (*region.Dataset, *region.Resolver, error) {
	ds, err := region.LoadDataset(cfg.Regions.DatasetPath)
	if err != nil {
		return nil, nil, err
	}
	idx, err := region.NewIndex(ds)
	if err != nil {
		return nil, nil, err
	}
	resolver, err := region.NewResolver(ds, idx, region.DefaultDirectionConfig())
	if err != nil {
		return nil, nil, err
	}
	return ds, resolver, nil
}

func adjacentOptions() region.AdjacentOptions {
	return region.AdjacentOptions{
		MaxDistanceMiles: cfg.Regions.MaxDistanceMiles,
		MaxAdjacent:      cfg.Regions.MaxAdjacent,
	}
}

// readPoints parses reference points from a CSV, XLSX, or JSON file,
// dispatching on extension.
func readPoints(ctx context.Context, path, source string) ([]catalog.ReferencePoint, error) {
	opts := ingest.Options{Source: source}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, eris.Wrap(err, "open input")
		}
		defer f.Close()
		return ingest.ReadCSV(ctx, f, opts)
	case ".xlsx":
		return ingest.ReadXLSX(path, opts)
	case ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, eris.Wrap(err, "open input")
		}
		var points []catalog.ReferencePoint
		if err := json.Unmarshal(data, &points); err != nil {
			return nil, eris.Wrap(err, "parse input json")
		}
		return points, nil
	default:
		return nil, eris.Errorf("unsupported input format %q (want .csv, .xlsx, or .json)", filepath.Ext(path))
	}
}

// writeOutput writes v as indented JSON to path, or stdout when path is
// empty.
func writeOutput(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return eris.Wrap(err, "encode output")
	}
	data = append(data, '\n')

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrap(err, "write output")
	}
	return nil
}
