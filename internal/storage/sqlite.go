// Package storage provides SQLite-based persistence for the island world and
// expedition scores. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-island/internal/island"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a finished expedition: how much fruit was gathered
// and how the run ended.
type ScoreEntry struct {
	ID        int64
	Score     int
	Outcome   string // "caught", "instant", "quit"
	CreatedAt time.Time
}

// Expedition outcomes persisted with each score.
const (
	OutcomeCaught  = "caught"
	OutcomeInstant = "instant"
	OutcomeQuit    = "quit"
)

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist. The worlds table
// holds at most one row; trees and rocks hang off it.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS worlds (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			seed INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS world_trees (
			world_id INTEGER NOT NULL REFERENCES worlds(id) ON DELETE CASCADE,
			tree_id INTEGER NOT NULL,
			x REAL NOT NULL,
			y REAL NOT NULL,
			fruit TEXT NOT NULL,
			instant_hazard INTEGER NOT NULL DEFAULT 0,
			shaken INTEGER NOT NULL DEFAULT 0,
			hazard_spent INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (world_id, tree_id)
		);

		CREATE TABLE IF NOT EXISTS world_rocks (
			world_id INTEGER NOT NULL REFERENCES worlds(id) ON DELETE CASCADE,
			rock_id INTEGER NOT NULL,
			x REAL NOT NULL,
			y REAL NOT NULL,
			PRIMARY KEY (world_id, rock_id)
		);

		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			outcome TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveWorld persists the world record, replacing any previous save. The
// write is transactional so a crash never leaves trees without a world row.
func (s *Store) SaveWorld(rec island.Record) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin world save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`INSERT INTO worlds (id, seed, updated_at) VALUES (1, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(id) DO UPDATE SET seed = excluded.seed, updated_at = CURRENT_TIMESTAMP`,
		rec.Seed,
	); err != nil {
		return fmt.Errorf("storage: cannot save world row: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM world_trees WHERE world_id = 1"); err != nil {
		return fmt.Errorf("storage: cannot clear trees: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM world_rocks WHERE world_id = 1"); err != nil {
		return fmt.Errorf("storage: cannot clear rocks: %w", err)
	}

	treeStmt, err := tx.Prepare(
		`INSERT INTO world_trees (world_id, tree_id, x, y, fruit, instant_hazard, shaken, hazard_spent)
		 VALUES (1, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot prepare tree insert: %w", err)
	}
	defer treeStmt.Close()
	for _, t := range rec.Trees {
		if _, err := treeStmt.Exec(t.ID, t.X, t.Y, t.Fruit, t.InstantHazard, t.Shaken, t.HazardSpent); err != nil {
			return fmt.Errorf("storage: cannot save tree %d: %w", t.ID, err)
		}
	}

	rockStmt, err := tx.Prepare(
		"INSERT INTO world_rocks (world_id, rock_id, x, y) VALUES (1, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("storage: cannot prepare rock insert: %w", err)
	}
	defer rockStmt.Close()
	for _, r := range rec.Rocks {
		if _, err := rockStmt.Exec(r.ID, r.X, r.Y); err != nil {
			return fmt.Errorf("storage: cannot save rock %d: %w", r.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit world save: %w", err)
	}
	return nil
}

// LoadWorld retrieves the persisted world record. The second return value is
// false when no world has been saved yet.
func (s *Store) LoadWorld() (island.Record, bool, error) {
	var rec island.Record

	err := s.db.QueryRow("SELECT seed FROM worlds WHERE id = 1").Scan(&rec.Seed)
	if err == sql.ErrNoRows {
		return rec, false, nil
	}
	if err != nil {
		return rec, false, fmt.Errorf("storage: cannot query world: %w", err)
	}

	rows, err := s.db.Query(
		`SELECT tree_id, x, y, fruit, instant_hazard, shaken, hazard_spent
		 FROM world_trees WHERE world_id = 1 ORDER BY tree_id`,
	)
	if err != nil {
		return rec, false, fmt.Errorf("storage: cannot query trees: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var t island.TreeRecord
		if err := rows.Scan(&t.ID, &t.X, &t.Y, &t.Fruit, &t.InstantHazard, &t.Shaken, &t.HazardSpent); err != nil {
			return rec, false, fmt.Errorf("storage: cannot scan tree: %w", err)
		}
		rec.Trees = append(rec.Trees, t)
	}
	if err := rows.Err(); err != nil {
		return rec, false, fmt.Errorf("storage: tree iteration error: %w", err)
	}

	rockRows, err := s.db.Query(
		"SELECT rock_id, x, y FROM world_rocks WHERE world_id = 1 ORDER BY rock_id",
	)
	if err != nil {
		return rec, false, fmt.Errorf("storage: cannot query rocks: %w", err)
	}
	defer rockRows.Close()
	for rockRows.Next() {
		var r island.RockRecord
		if err := rockRows.Scan(&r.ID, &r.X, &r.Y); err != nil {
			return rec, false, fmt.Errorf("storage: cannot scan rock: %w", err)
		}
		rec.Rocks = append(rec.Rocks, r)
	}
	if err := rockRows.Err(); err != nil {
		return rec, false, fmt.Errorf("storage: rock iteration error: %w", err)
	}

	return rec, true, nil
}

// ClearWorld deletes the persisted world so the next session regenerates.
func (s *Store) ClearWorld() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin world clear: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		"DELETE FROM world_trees WHERE world_id = 1",
		"DELETE FROM world_rocks WHERE world_id = 1",
		"DELETE FROM worlds WHERE id = 1",
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("storage: cannot clear world: %w", err)
		}
	}
	return tx.Commit()
}

// SaveScore records a finished expedition.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(score int, outcome string) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (score, outcome) VALUES (?, ?)",
		score, outcome,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N expedition scores, best first.
func (s *Store) TopScores(limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, score, outcome, created_at
		 FROM scores
		 ORDER BY score DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Score, &e.Outcome, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the best expedition score.
// Returns 0 if no scores exist.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM scores").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all expedition scores.
func (s *Store) ClearScores() error {
	_, err := s.db.Exec("DELETE FROM scores")
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// parseTimestamp normalizes a scanned DATETIME, which the driver may hand
// back as either time.Time or string.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
