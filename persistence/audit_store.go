package persistence

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Record is one logged lens resolution.
type Record struct {
	ID        int64
	File      string
	Line      int
	Character int
	Symbol    string
	Label     string
	Targets   int
	Outcome   string
	CreatedAt time.Time
}

// AuditStore appends lens resolutions to a SQLite database for later
// inspection. It is a log, not a cache: nothing recorded here ever feeds
// back into a resolution.
type AuditStore struct {
	db *sql.DB
}

// NewAuditStore opens/creates the database at dbPath.
func NewAuditStore(dbPath string) (*AuditStore, error) {
	if dbPath == "" {
		return nil, errors.New("audit store path required")
	}
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}
	store := &AuditStore{db: db}
	if err := store.initSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *AuditStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS resolutions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		file TEXT NOT NULL,
		line INTEGER NOT NULL,
		character INTEGER NOT NULL,
		symbol TEXT,
		label TEXT NOT NULL,
		targets INTEGER NOT NULL,
		outcome TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_resolutions_file ON resolutions(file);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Append stores one record.
func (s *AuditStore) Append(ctx context.Context, rec Record) error {
	created := rec.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO resolutions
		(file, line, character, symbol, label, targets, outcome, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.File, rec.Line, rec.Character, rec.Symbol, rec.Label, rec.Targets, rec.Outcome, created)
	return err
}

// Recent returns the latest records, newest first.
func (s *AuditStore) Recent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `SELECT id, file, line, character, symbol, label, targets, outcome, created_at
		FROM resolutions ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.File, &rec.Line, &rec.Character, &rec.Symbol, &rec.Label, &rec.Targets, &rec.Outcome, &rec.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Close releases the database handle.
func (s *AuditStore) Close() error {
	return s.db.Close()
}
