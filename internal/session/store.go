package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ErrNotFound is returned by Store.Load when no session is persisted.
var ErrNotFound = errors.New("no stored session")

// Store persists the session blob under a single key. A corrupt blob is
// treated as absent, matching the original client's invalidate-on-parse-
// failure behavior.
type Store interface {
	Load() (*Session, error)
	Save(*Session) error
	Clear() error
}

// FileStore keeps the session as a JSON file.
type FileStore struct {
	path string
}

// NewFileStore creates a store at the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (fs *FileStore) Load() (*Session, error) {
	raw, err := os.ReadFile(fs.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil || sess.Token == "" {
		// Unreadable blob: drop it rather than loop on it at every launch.
		_ = os.Remove(fs.path)
		return nil, ErrNotFound
	}
	return &sess, nil
}

func (fs *FileStore) Save(sess *Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(fs.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session dir: %w", err)
	}
	if err := os.WriteFile(fs.path, raw, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

func (fs *FileStore) Clear() error {
	if err := os.Remove(fs.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// MemoryStore holds the session in memory, for tests.
type MemoryStore struct {
	mu   sync.Mutex
	sess *Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (ms *MemoryStore) Load() (*Session, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if ms.sess == nil {
		return nil, ErrNotFound
	}
	copied := *ms.sess
	return &copied, nil
}

func (ms *MemoryStore) Save(sess *Session) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	copied := *sess
	ms.sess = &copied
	return nil
}

func (ms *MemoryStore) Clear() error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.sess = nil
	return nil
}
