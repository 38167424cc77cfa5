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

	_ "modernc.org/sqlite"

	"github.com/orayew2002/pitch-card/domain"
)

const schema = `CREATE TABLE IF NOT EXISTS drafts (
	key        TEXT PRIMARY KEY,
	body       TEXT NOT NULL,
	updated_at INTEGER NOT NULL
)`

var pragmas = []string{
	"PRAGMA journal_mode=WAL",
	"PRAGMA busy_timeout=10000",
	"PRAGMA synchronous=NORMAL",
}

// SQLite stores the draft as JSON in a single-row table.
type SQLite struct {
	db  *sql.DB
	now func() time.Time
}

var _ Store = (*SQLite)(nil)

// OpenSQLite opens (or creates) the database at path and applies the schema.
func OpenSQLite(path string) (*SQLite, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, storageErr("store.open", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, storageErr("store.open", fmt.Errorf("open %s: %w", path, err))
	}

	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, storageErr("store.open", fmt.Errorf("%s: %w", p, err))
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, storageErr("store.open", fmt.Errorf("schema: %w", err))
	}

	return &SQLite{db: db, now: time.Now}, nil
}

// Close releases the database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// Load returns the saved draft; ok is false when none exists.
func (s *SQLite) Load(ctx context.Context) ([]domain.Pitch, bool, error) {
	var body string
	err := s.db.QueryRowContext(ctx, `SELECT body FROM drafts WHERE key = ?`, DraftKey).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, storageErr("store.load", err)
	}

	var pitches []domain.Pitch
	if err := json.Unmarshal([]byte(body), &pitches); err != nil {
		return nil, false, storageErr("store.load", fmt.Errorf("decode draft: %w", err))
	}
	return pitches, true, nil
}

// Save replaces the draft.
func (s *SQLite) Save(ctx context.Context, pitches []domain.Pitch) error {
	if pitches == nil {
		pitches = []domain.Pitch{}
	}
	body, err := json.Marshal(pitches)
	if err != nil {
		return storageErr("store.save", fmt.Errorf("encode draft: %w", err))
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO drafts (key, body, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`,
		DraftKey, string(body), s.now().UTC().Unix())
	if err != nil {
		return storageErr("store.save", err)
	}
	return nil
}

// Clear deletes the draft.
func (s *SQLite) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM drafts WHERE key = ?`, DraftKey); err != nil {
		return storageErr("store.clear", err)
	}
	return nil
}

func storageErr(op string, err error) error {
	return &domain.OpError{Op: op, Kind: domain.KindStorage, Err: err}
}
