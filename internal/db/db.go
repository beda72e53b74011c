package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	_ "modernc.org/sqlite"
)

// CurrentSchemaVersion is the latest schema version.
// Bump this when adding migrations.
const CurrentSchemaVersion = 1

// memCounter gives each in-memory database a distinct name so that
// separate Init calls (and parallel tests) never share state.
var memCounter atomic.Int64

// Init opens the SQLite database at the given file path, running
// migrations and seeding the sample catalog if the store is empty.
// An empty path opens a process-local in-memory database; the catalog
// then lives and dies with the process, which is the intended lifecycle.
func Init(path string) (*sql.DB, error) {
	var dsn string
	memory := path == ""
	if memory {
		dsn = fmt.Sprintf("file:shopmate%d?mode=memory&cache=shared&_pragma=busy_timeout(5000)", memCounter.Add(1))
	} else {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0700); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		dsn = path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	}

	database, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One connection serializes all catalog and cart mutations, matching
	// the run-to-completion model the rest of the code assumes. For the
	// shared-cache in-memory database it also keeps the data alive.
	database.SetMaxOpenConns(1)
	database.SetMaxIdleConns(1)

	if err := migrate(database); err != nil {
		database.Close()
		return nil, err
	}

	if err := seedIfEmpty(database); err != nil {
		database.Close()
		return nil, err
	}

	return database, nil
}

// ConfigurePool applies connection pool settings. In-memory databases
// stay capped at one connection no matter what is requested.
func ConfigurePool(database *sql.DB, maxOpenConns int, memory bool) {
	if memory || maxOpenConns <= 0 {
		return
	}
	database.SetMaxOpenConns(maxOpenConns)
	database.SetMaxIdleConns(maxOpenConns)
}

// migrate applies schema migrations based on user_version.
func migrate(database *sql.DB) error {
	version, err := GetUserVersion(database)
	if err != nil {
		return err
	}

	// Migration 0 -> 1: Initial schema (v1)
	if version < 1 {
		// AUTOINCREMENT keeps product IDs monotonic across catalog
		// clears, so two submissions never produce overlapping IDs.
		schema := `
		CREATE TABLE IF NOT EXISTS products (
		  id             INTEGER PRIMARY KEY AUTOINCREMENT,
		  name           TEXT NOT NULL,
		  description    TEXT NOT NULL,
		  price          TEXT NOT NULL,
		  original_price TEXT,
		  image_url      TEXT NOT NULL,
		  product_url    TEXT NOT NULL,
		  store          TEXT NOT NULL,
		  category       TEXT NOT NULL,
		  rating         TEXT,
		  review_count   INTEGER,
		  ai_match_score INTEGER,
		  is_available   INTEGER NOT NULL DEFAULT 1,
		  created_at     INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS cart_items (
		  id         INTEGER PRIMARY KEY AUTOINCREMENT,
		  session_id TEXT NOT NULL,
		  product_id INTEGER NOT NULL,
		  quantity   INTEGER NOT NULL DEFAULT 1,
		  created_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_cart_items_session
		ON cart_items(session_id);

		CREATE TABLE IF NOT EXISTS checklist_items (
		  id             INTEGER PRIMARY KEY AUTOINCREMENT,
		  session_id     TEXT NOT NULL,
		  original_text  TEXT NOT NULL,
		  processed_text TEXT NOT NULL DEFAULT '',
		  is_processed   INTEGER NOT NULL DEFAULT 0,
		  created_at     INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_checklist_items_session
		ON checklist_items(session_id);
		`
		if _, err := database.Exec(schema); err != nil {
			return fmt.Errorf("migration 1 failed: %w", err)
		}
		if err := SetUserVersion(database, 1); err != nil {
			return err
		}
	}

	// Future migrations go here:
	// if version < 2 { ... }

	return nil
}

// GetUserVersion returns the current schema version (user_version pragma).
func GetUserVersion(database *sql.DB) (int, error) {
	var version int
	if err := database.QueryRow("PRAGMA user_version;").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to get user_version: %w", err)
	}
	return version, nil
}

// SetUserVersion sets the schema version (user_version pragma).
func SetUserVersion(database *sql.DB, version int) error {
	_, err := database.Exec(fmt.Sprintf("PRAGMA user_version=%d", version))
	if err != nil {
		return fmt.Errorf("failed to set user_version: %w", err)
	}
	return nil
}

// seedIfEmpty inserts the sample catalog when the products table has no rows.
func seedIfEmpty(database *sql.DB) error {
	var count int
	if err := database.QueryRow("SELECT COUNT(*) FROM products").Scan(&count); err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		return nil
	}
	if _, err := InsertProducts(database, SampleSeed()); err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}
	return nil
}
