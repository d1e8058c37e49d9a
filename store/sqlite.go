package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// DB persists state values across runs in SQLite. Saving a key that is already
// stored adds the visits and keeps the better reward.
type DB struct {
	conn *sql.DB
}

func Open(path string) (*DB, error) {
	conn, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	conn.SetMaxOpenConns(1) // SQLite only supports one writer

	db := &DB{conn: conn}
	if err := db.initSchema(); err != nil {
		conn.Close()
		return nil, err
	}
	return db, nil
}

func (db *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		mode TEXT NOT NULL,
		started_at DATETIME NOT NULL,
		duration_ms INTEGER NOT NULL,
		positions INTEGER NOT NULL,
		start_best REAL NOT NULL
	);

	CREATE TABLE IF NOT EXISTS state_values (
		key TEXT PRIMARY KEY,          -- Canonical key
		visits INTEGER NOT NULL,
		best REAL NOT NULL,
		position TEXT NOT NULL,        -- Board that produced best
		run_id TEXT REFERENCES runs(id) -- Run that produced best
	);
	`
	if _, err := db.conn.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Save stores a run and merges its records in a single transaction.
func (db *DB) Save(run RunRecord, records []Record) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT INTO runs (id, mode, started_at, duration_ms, positions, start_best) VALUES (?, ?, ?, ?, ?, ?)",
		run.ID, run.Mode, run.StartTime, run.Duration.Milliseconds(), run.Positions, run.StartBest,
	)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO state_values (key, visits, best, position, run_id) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			visits = visits + excluded.visits,
			best = MAX(best, excluded.best),
			position = CASE WHEN excluded.best > best THEN excluded.position ELSE position END,
			run_id = CASE WHEN excluded.best > best THEN excluded.run_id ELSE run_id END`)
	if err != nil {
		return fmt.Errorf("failed to prepare state value statement: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.Exec(r.Key, r.Visits, r.Best, r.Position, run.ID); err != nil {
			return fmt.Errorf("failed to save state value %s: %w", r.Key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Load returns every stored state value ordered by key.
func (db *DB) Load() ([]Record, error) {
	rows, err := db.conn.Query("SELECT key, visits, best, position, COALESCE(run_id, '') FROM state_values ORDER BY key")
	if err != nil {
		return nil, fmt.Errorf("failed to query state values: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.Key, &r.Visits, &r.Best, &r.Position, &r.RunID); err != nil {
			return nil, fmt.Errorf("failed to scan state value: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Runs returns the number of stored runs.
func (db *DB) Runs() (int, error) {
	var n int
	if err := db.conn.QueryRow("SELECT COUNT(*) FROM runs").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count runs: %w", err)
	}
	return n, nil
}

func (db *DB) Close() error {
	return db.conn.Close()
}
