package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/feemjesusbr/backend/internal/model/contributor"
)

// SQLiteStore implements contributor.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS contributors (
		id              TEXT PRIMARY KEY,
		name            TEXT NOT NULL,
		email           TEXT NOT NULL,
		donation_amount REAL NOT NULL DEFAULT 0,
		special_message TEXT,
		created_at      TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_contributors_created ON contributors(created_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Save inserts one contributor row.
func (s *SQLiteStore) Save(ctx context.Context, c contributor.Contributor) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO contributors (id, name, email, donation_amount, special_message, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.Email, c.DonationAmount, c.SpecialMessage, c.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert contributor: %w", err)
	}
	return nil
}

// List returns all contributors, newest first.
func (s *SQLiteStore) List(ctx context.Context) ([]contributor.Contributor, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, email, donation_amount, special_message, created_at
		 FROM contributors ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query contributors: %w", err)
	}
	defer rows.Close()

	var items []contributor.Contributor
	for rows.Next() {
		var c contributor.Contributor
		var message sql.NullString
		var createdAt string
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.DonationAmount, &message, &createdAt); err != nil {
			return nil, fmt.Errorf("scan contributor: %w", err)
		}
		c.SpecialMessage = message.String
		if ts, err := time.Parse(time.RFC3339, createdAt); err == nil {
			c.CreatedAt = ts
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
