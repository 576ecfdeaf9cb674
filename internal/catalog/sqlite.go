package catalog

import (
	"context"
	"database/sql"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"
)

// Source supplies catalog snapshots, optionally pre-filtered by state.
type Source interface {
	Snapshot(ctx context.Context, state string) ([]Entry, error)
	Close() error
}

// SQLiteSource reads catalog snapshots from the archive's SQLite database.
type SQLiteSource struct {
	db *sql.DB
}

// OpenSQLite opens the archive database read-only for snapshotting.
func OpenSQLite(dsn string) (*SQLiteSource, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "catalog: open sqlite")
	}
	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		_ = db.Close()
		return nil, eris.Wrap(err, "catalog: set busy_timeout")
	}
	return &SQLiteSource{db: db}, nil
}

// Snapshot loads catalog entries, optionally filtered to one state. Rows
// come back ordered by id so downstream tie-breaks are reproducible.
func (s *SQLiteSource) Snapshot(ctx context.Context, state string) ([]Entry, error) {
	query := `SELECT id, name, latitude, longitude, state FROM map_points`
	args := []any{}
	if state != "" {
		query += ` WHERE state = ?`
		args = append(args, state)
	}
	query += ` ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "catalog: snapshot query")
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e        Entry
			lat, lng sql.NullFloat64
			st       sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.Name, &lat, &lng, &st); err != nil {
			return nil, eris.Wrap(err, "catalog: scan snapshot row")
		}
		if lat.Valid && lng.Valid {
			e.Lat, e.Lng = &lat.Float64, &lng.Float64
		}
		e.State = st.String
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "catalog: iterate snapshot rows")
	}
	return entries, nil
}

// Close releases the database handle.
func (s *SQLiteSource) Close() error {
	return s.db.Close()
}
