package internal

import (
	"strings"

	"github.com/google/uuid"
)

// SessionKey is the storage key the session identifier lives under
const SessionKey = "sid"

// pageStorage holds the identifier when persistent storage is unusable, so it
// stays stable for the rest of the process.
var pageStorage = NewMemoryStorage()

// NewSessionID returns a fresh random alphanumeric token. It separates
// sessions; it is not a credential.
func NewSessionID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// GetOrCreateSessionID returns the identifier persisted in store, creating and
// persisting one on first use. It never fails: storage errors are logged and
// the identifier falls back to process memory.
func GetOrCreateSessionID(store ClientStorage) string {
	if store != nil {
		id, ok, err := store.GetItem(SessionKey)
		if err == nil && ok && id != "" {
			return id
		}
		if err != nil {
			LogWarn("Failed to read session id: %v", err)
			store = nil
		}
	}

	if id, ok, _ := pageStorage.GetItem(SessionKey); ok && id != "" {
		return id
	}

	id := NewSessionID()
	if store != nil {
		err := store.SetItem(SessionKey, id)
		if err == nil {
			LogDebug("Created session id %s", id)
			return id
		}
		LogWarn("Failed to persist session id, keeping it in memory: %v", err)
	}

	_ = pageStorage.SetItem(SessionKey, id)
	return id
}

// ClearSessionID removes the persisted identifier; the next
// GetOrCreateSessionID call creates a new one.
func ClearSessionID(store ClientStorage) error {
	_ = pageStorage.RemoveItem(SessionKey)
	if store == nil {
		return nil
	}
	return store.RemoveItem(SessionKey)
}
