package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	*sql.DB
}

func New(dbPath string) (*DB, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Open database
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &DB{db}, nil
}

func (db *DB) Migrate() error {
	queries := []string{
		// Rooms table
		`CREATE TABLE IF NOT EXISTS rooms (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			is_active INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// At most one active room at a time. Enforced here rather than in
		// application code so concurrent activations cannot race.
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_rooms_single_active
			ON rooms(is_active) WHERE is_active = 1`,

		// Tables table
		`CREATE TABLE IF NOT EXISTS tables (
			id TEXT PRIMARY KEY,
			room_id TEXT NOT NULL,
			number INTEGER NOT NULL,
			FOREIGN KEY (room_id) REFERENCES rooms(id) ON DELETE CASCADE,
			UNIQUE(room_id, number)
		)`,

		// Users table
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			nickname TEXT NOT NULL,
			table_id TEXT NOT NULL,
			room_id TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (table_id) REFERENCES tables(id) ON DELETE CASCADE,
			FOREIGN KEY (room_id) REFERENCES rooms(id) ON DELETE CASCADE
		)`,

		// Notes table
		`CREATE TABLE IF NOT EXISTS notes (
			id TEXT PRIMARY KEY,
			room_id TEXT NOT NULL,
			sender_user_id TEXT NOT NULL,
			from_table_id TEXT NOT NULL,
			to_table_id TEXT NOT NULL,
			text TEXT NOT NULL CHECK(length(text) BETWEEN 1 AND 140),
			is_anonymous INTEGER NOT NULL DEFAULT 1,
			status TEXT NOT NULL DEFAULT 'pending'
				CHECK(status IN ('pending', 'accepted', 'ignored')),
			created_at DATETIME NOT NULL,
			FOREIGN KEY (room_id) REFERENCES rooms(id) ON DELETE CASCADE,
			FOREIGN KEY (sender_user_id) REFERENCES users(id) ON DELETE CASCADE,
			FOREIGN KEY (from_table_id) REFERENCES tables(id) ON DELETE CASCADE,
			FOREIGN KEY (to_table_id) REFERENCES tables(id) ON DELETE CASCADE
		)`,

		// Indexes for performance
		`CREATE INDEX IF NOT EXISTS idx_tables_room ON tables(room_id)`,
		`CREATE INDEX IF NOT EXISTS idx_users_table ON users(table_id)`,
		`CREATE INDEX IF NOT EXISTS idx_notes_to_table ON notes(to_table_id, status)`,
		`CREATE INDEX IF NOT EXISTS idx_notes_from_table ON notes(from_table_id)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}
