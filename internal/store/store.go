// Package store persists generated themes to a local SQLite database so
// they can be listed, re-applied, and copied later.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/davidlopes/tinge/internal/core"
	"github.com/davidlopes/tinge/internal/theme"
)

const schema = `
CREATE TABLE IF NOT EXISTS themes (
	id         TEXT PRIMARY KEY,
	source     TEXT NOT NULL,
	mode       TEXT NOT NULL,
	radius     TEXT NOT NULL,
	roles      TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_themes_created_at ON themes(created_at);
`

// Record is a stored theme with its provenance.
type Record struct {
	ID        string
	Source    string
	Theme     theme.Theme
	CreatedAt time.Time
}

// Store is a SQLite-backed theme history.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the per-user history database location.
func DefaultPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "tinge", "history.db")
	}
	return filepath.Join(".tinge", "history.db")
}

// Open opens (creating if needed) the history database at dbPath.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
		return nil, core.ErrIO("STORE_DIR", "creating store directory").WithCause(err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, core.ErrState("STORE_OPEN", "opening history database").WithCause(err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, core.ErrState("STORE_MIGRATE", "initializing schema").WithCause(err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save records a generated theme and returns the stored record.
func (s *Store) Save(ctx context.Context, source string, th theme.Theme) (Record, error) {
	roles, err := json.Marshal(th.Roles)
	if err != nil {
		return Record{}, core.ErrState("STORE_ENCODE", "encoding roles").WithCause(err)
	}

	rec := Record{
		ID:        uuid.NewString(),
		Source:    source,
		Theme:     th,
		CreatedAt: time.Now().UTC(),
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO themes (id, source, mode, radius, roles, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Source, string(th.Mode), th.Radius, string(roles),
		rec.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return Record{}, core.ErrState("STORE_INSERT", "saving theme").WithCause(err)
	}
	return rec, nil
}

// List returns the most recent records, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source, mode, radius, roles, created_at FROM themes ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, core.ErrState("STORE_QUERY", "listing themes").WithCause(err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, core.ErrState("STORE_QUERY", "iterating themes").WithCause(err)
	}
	return records, nil
}

// Latest returns the newest record, or a not-found error when the history
// is empty.
func (s *Store) Latest(ctx context.Context) (Record, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, source, mode, radius, roles, created_at FROM themes ORDER BY created_at DESC, id LIMIT 1`)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, core.ErrState(core.CodeThemeNotFound, "no themes generated yet")
	}
	return rec, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (Record, error) {
	var (
		rec       Record
		mode      string
		radius    string
		rolesJSON string
		createdAt string
	)
	if err := row.Scan(&rec.ID, &rec.Source, &mode, &radius, &rolesJSON, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, err
		}
		return Record{}, core.ErrState("STORE_SCAN", "reading theme row").WithCause(err)
	}

	roles := make(map[theme.Role]string)
	if err := json.Unmarshal([]byte(rolesJSON), &roles); err != nil {
		return Record{}, core.ErrState("STORE_DECODE",
			fmt.Sprintf("decoding roles for %s", rec.ID)).WithCause(err)
	}

	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return Record{}, core.ErrState("STORE_DECODE",
			fmt.Sprintf("decoding timestamp for %s", rec.ID)).WithCause(err)
	}

	rec.Theme = theme.Theme{Mode: theme.Mode(mode), Roles: roles, Radius: radius}
	rec.CreatedAt = ts
	return rec, nil
}
