// Package store keeps snapshots of solved layouts in SQLite so a later solve
// can be checked against them.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/glebarez/sqlite"
)

// DB wraps the SQLite database connection
type DB struct {
	*sql.DB
}

// Open opens the SQLite database and creates tables if needed
func Open(dbPath string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := sqlDB.Exec("PRAGMA journal_mode=WAL"); err != nil {
		sqlDB.Close()
		return nil, err
	}

	db := &DB{DB: sqlDB}

	// Create tables
	if err := db.createTables(); err != nil {
		sqlDB.Close()
		return nil, err
	}

	return db, nil
}

// createTables creates the necessary database tables
func (db *DB) createTables() error {
	query := `
	CREATE TABLE IF NOT EXISTS snapshots (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		timestamp INTEGER NOT NULL,
		engine_version TEXT NOT NULL,
		width INTEGER NOT NULL,
		height INTEGER NOT NULL,
		cols TEXT NOT NULL,
		rows TEXT NOT NULL,
		widgets TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_snapshots_name ON snapshots(name, timestamp DESC);
	`

	_, err := db.Exec(query)
	return err
}

// SaveSnapshot stores s and returns its id.
func (db *DB) SaveSnapshot(s Snapshot) (int64, error) {
	cols, err := json.Marshal(s.Cols)
	if err != nil {
		return 0, fmt.Errorf("failed to encode columns: %w", err)
	}
	rows, err := json.Marshal(s.Rows)
	if err != nil {
		return 0, fmt.Errorf("failed to encode rows: %w", err)
	}
	widgets, err := json.Marshal(s.Widgets)
	if err != nil {
		return 0, fmt.Errorf("failed to encode widgets: %w", err)
	}
	if s.Timestamp.IsZero() {
		s.Timestamp = time.Now()
	}

	query := `
	INSERT INTO snapshots (name, timestamp, engine_version, width, height, cols, rows, widgets)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	res, err := db.Exec(
		query,
		s.Name,
		s.Timestamp.UnixNano(),
		s.EngineVersion,
		s.Width,
		s.Height,
		string(cols),
		string(rows),
		string(widgets),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

const snapshotColumns = `id, name, timestamp, engine_version, width, height, cols, rows, widgets`

// LatestSnapshot returns the most recent snapshot of the named layout, or
// nil if there is none.
func (db *DB) LatestSnapshot(name string) (*Snapshot, error) {
	query := `
	SELECT ` + snapshotColumns + `
	FROM snapshots
	WHERE name = ?
	ORDER BY timestamp DESC, id DESC
	LIMIT 1
	`

	s, err := scanSnapshot(db.QueryRow(query, name))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// RecentSnapshots returns up to limit snapshots, newest first.
func (db *DB) RecentSnapshots(limit int) ([]Snapshot, error) {
	query := `
	SELECT ` + snapshotColumns + `
	FROM snapshots
	ORDER BY timestamp DESC, id DESC
	LIMIT ?
	`

	rows, err := db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshots []Snapshot
	for rows.Next() {
		s, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, *s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return snapshots, nil
}

// DeleteSnapshot deletes a snapshot
func (db *DB) DeleteSnapshot(id int64) error {
	_, err := db.Exec("DELETE FROM snapshots WHERE id = ?", id)
	return err
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.DB.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row scanner) (*Snapshot, error) {
	var (
		s                   Snapshot
		ts                  int64
		cols, rows, widgets string
	)
	err := row.Scan(&s.ID, &s.Name, &ts, &s.EngineVersion, &s.Width, &s.Height, &cols, &rows, &widgets)
	if err != nil {
		return nil, err
	}
	s.Timestamp = time.Unix(0, ts)

	if err := json.Unmarshal([]byte(cols), &s.Cols); err != nil {
		return nil, fmt.Errorf("snapshot %d: bad columns: %w", s.ID, err)
	}
	if err := json.Unmarshal([]byte(rows), &s.Rows); err != nil {
		return nil, fmt.Errorf("snapshot %d: bad rows: %w", s.ID, err)
	}
	if err := json.Unmarshal([]byte(widgets), &s.Widgets); err != nil {
		return nil, fmt.Errorf("snapshot %d: bad widgets: %w", s.ID, err)
	}
	return &s, nil
}
