package internal

import (
	"database/sql"
	"sync"
)

// ClientStorage is the profile-scoped key/value store the client persists
// its state in. It plays the role a browser's local storage plays for a web page.
type ClientStorage interface {
	GetItem(key string) (string, bool, error)
	SetItem(key, value string) error
	RemoveItem(key string) error
	Close() error
}

// SQLiteStorage stores items in the ItemTable of a SQLite database
type SQLiteStorage struct {
	db   *sql.DB
	path string
}

// NewSQLiteStorage wraps an already opened database
func NewSQLiteStorage(db *sql.DB, path string) *SQLiteStorage {
	return &SQLiteStorage{db: db, path: path}
}

// Path returns the database file backing the store
func (s *SQLiteStorage) Path() string {
	return s.path
}

// GetItem returns the value stored under key
func (s *SQLiteStorage) GetItem(key string) (string, bool, error) {
	value, ok, err := QueryItem(s.db, key)
	if err != nil {
		return "", false, &StorageError{Path: s.path, Op: "get", Err: err}
	}
	return value, ok, nil
}

// SetItem stores value under key, replacing any previous value
func (s *SQLiteStorage) SetItem(key, value string) error {
	if err := UpsertItem(s.db, key, value); err != nil {
		return &StorageError{Path: s.path, Op: "set", Err: err}
	}
	return nil
}

// RemoveItem deletes key. Removing an absent key is not an error.
func (s *SQLiteStorage) RemoveItem(key string) error {
	if err := DeleteItem(s.db, key); err != nil {
		return &StorageError{Path: s.path, Op: "remove", Err: err}
	}
	return nil
}

// Items lists everything in the store
func (s *SQLiteStorage) Items() ([]KeyValuePair, error) {
	pairs, err := QueryItems(s.db)
	if err != nil {
		return nil, &StorageError{Path: s.path, Op: "get", Err: err}
	}
	return pairs, nil
}

// Close closes the underlying database
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// MemoryStorage keeps items for the life of the process only
type MemoryStorage struct {
	mu    sync.RWMutex
	items map[string]string
}

// NewMemoryStorage creates an empty MemoryStorage
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{items: make(map[string]string)}
}

// GetItem returns the value stored under key
func (m *MemoryStorage) GetItem(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.items[key]
	return value, ok, nil
}

// SetItem stores value under key
func (m *MemoryStorage) SetItem(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}

// RemoveItem deletes key
func (m *MemoryStorage) RemoveItem(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

// Close is a no-op
func (m *MemoryStorage) Close() error {
	return nil
}

// OpenClientStorage opens the SQLite store at path. Any failure degrades to a
// MemoryStorage so callers always get a usable store; the returned error
// only reports why the degradation happened.
func OpenClientStorage(path string) (ClientStorage, error) {
	if path == "" {
		return NewMemoryStorage(), &StorageError{Path: path, Op: "open", Err: errNoStoragePath}
	}

	db, err := OpenDatabase(path)
	if err != nil {
		LogWarn("Client storage unavailable, keeping state in memory: %v", err)
		return NewMemoryStorage(), &StorageError{Path: path, Op: "open", Err: err}
	}

	LogDebug("Opened client storage at %s", path)
	return NewSQLiteStorage(db, path), nil
}
