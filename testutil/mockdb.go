package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

const createItemTable = `
	CREATE TABLE IF NOT EXISTS ItemTable (
		key TEXT PRIMARY KEY,
		value TEXT
	)`

// CreateStorageDB creates a client storage database in a temp directory and
// returns its path. Each item is inserted as a key/value row.
func CreateStorageDB(t *testing.T, items map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "storage.db")

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer func() { _ = db.Close() }()

	if _, err := db.Exec(createItemTable); err != nil {
		t.Fatalf("Failed to create ItemTable: %v", err)
	}

	for key, value := range items {
		InsertItem(t, db, key, value)
	}
	return path
}

// OpenDB opens the database at path and closes it when the test ends
func OpenDB(t *testing.T, path string) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// InsertItem inserts a row into ItemTable
func InsertItem(t *testing.T, db *sql.DB, key, value string) {
	t.Helper()
	if _, err := db.Exec("INSERT INTO ItemTable (key, value) VALUES (?, ?)", key, value); err != nil {
		t.Fatalf("Failed to insert item %s: %v", key, err)
	}
}

// ReadItem returns the value stored under key, failing the test if absent
func ReadItem(t *testing.T, db *sql.DB, key string) string {
	t.Helper()
	var value string
	if err := db.QueryRow("SELECT value FROM ItemTable WHERE key = ?", key).Scan(&value); err != nil {
		t.Fatalf("Failed to read item %s: %v", key, err)
	}
	return value
}
