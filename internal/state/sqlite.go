package state

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS user_state (
	user_id    INTEGER PRIMARY KEY,
	record     TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL
);`

// SQLite keeps one row per user with the record encoded as JSON.
type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// a single connection keeps writes ordered
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Close() error { return s.db.Close() }

// Load skips rows whose JSON cannot be decoded.
func (s *SQLite) Load() (map[int64]UserRecord, error) {
	rows, err := s.db.Query(`SELECT user_id, record FROM user_state`)
	if err != nil {
		return nil, fmt.Errorf("failed to query user state: %w", err)
	}
	defer rows.Close()

	out := map[int64]UserRecord{}
	for rows.Next() {
		var (
			id  int64
			raw string
		)
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("failed to scan user state row: %w", err)
		}
		var rec UserRecord
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			log.Printf("⚠️ skipping undecodable state row for user %d: %v", id, err)
			continue
		}
		out[id] = rec
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate user state rows: %w", err)
	}
	return out, nil
}

func (s *SQLite) Save(records map[int64]UserRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO user_state (user_id, record, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET record = excluded.record, updated_at = excluded.updated_at`)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("prepare upsert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for id, rec := range records {
		raw, err := json.Marshal(rec)
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("encode user %d: %w", id, err)
		}
		if _, err := stmt.Exec(id, string(raw), now); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("upsert user %d: %w", id, err)
		}
	}
	return tx.Commit()
}
