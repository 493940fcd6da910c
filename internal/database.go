package internal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const createItemTableSQL = `CREATE TABLE IF NOT EXISTS ItemTable (
	key TEXT PRIMARY KEY,
	value TEXT
)`

// OpenDatabase opens (creating if needed) the SQLite database backing client
// storage and makes sure the ItemTable exists.
func OpenDatabase(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create storage directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// ItemTable access is serialized on one connection
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if _, err := db.Exec(createItemTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create ItemTable: %w", err)
	}

	return db, nil
}

// QueryItem reads a single value from ItemTable. The boolean is false when
// the key is absent or its value is NULL.
func QueryItem(db *sql.DB, key string) (string, bool, error) {
	var value sql.NullString
	err := db.QueryRow("SELECT value FROM ItemTable WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("query failed: %w", err)
	}
	if !value.Valid {
		return "", false, nil
	}
	return value.String, true, nil
}

// UpsertItem writes a key/value pair to ItemTable
func UpsertItem(db *sql.DB, key, value string) error {
	_, err := db.Exec(
		"INSERT INTO ItemTable (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	if err != nil {
		return fmt.Errorf("upsert failed: %w", err)
	}
	return nil
}

// DeleteItem removes a key from ItemTable
func DeleteItem(db *sql.DB, key string) error {
	if _, err := db.Exec("DELETE FROM ItemTable WHERE key = ?", key); err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}
	return nil
}

// KeyValuePair represents a row from ItemTable
type KeyValuePair struct {
	Key   string
	Value string
}

// QueryItems lists every non-NULL row of ItemTable, ordered by key
func QueryItems(db *sql.DB) ([]KeyValuePair, error) {
	rows, err := db.Query("SELECT key, value FROM ItemTable WHERE value IS NOT NULL ORDER BY key")
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var pairs []KeyValuePair
	for rows.Next() {
		var pair KeyValuePair
		if err := rows.Scan(&pair.Key, &pair.Value); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		pairs = append(pairs, pair)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return pairs, nil
}
