package catalog

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/rotisserie/eris"
)

// PgxPool is the slice of the pgx pool API the catalog needs. pgxmock
// satisfies it in tests.
type PgxPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Close()
}

// PostgresSource reads catalog snapshots from a Postgres deployment of the
// archive.
type PostgresSource struct {
	pool PgxPool
}

// NewPostgres wraps an existing pool as a catalog source.
func NewPostgres(pool PgxPool) *PostgresSource {
	return &PostgresSource{pool: pool}
}

// Snapshot loads catalog entries, optionally filtered to one state, ordered
// by id for reproducible downstream tie-breaks.
func (s *PostgresSource) Snapshot(ctx context.Context, state string) ([]Entry, error) {
	query := `SELECT id, name, latitude, longitude, state FROM map_points`
	args := []any{}
	if state != "" {
		query += ` WHERE state = $1`
		args = append(args, state)
	}
	query += ` ORDER BY id`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "catalog: snapshot query")
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e        Entry
			lat, lng *float64
			st       *string
		)
		if err := rows.Scan(&e.ID, &e.Name, &lat, &lng, &st); err != nil {
			return nil, eris.Wrap(err, "catalog: scan snapshot row")
		}
		if lat != nil && lng != nil {
			e.Lat, e.Lng = lat, lng
		}
		if st != nil {
			e.State = *st
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "catalog: iterate snapshot rows")
	}
	return entries, nil
}

// Close releases the pool.
func (s *PostgresSource) Close() error {
	s.pool.Close()
	return nil
}
