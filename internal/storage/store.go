// Package storage persists named JSON documents on disk. Absence,
// emptiness, and corruption are collapsed into a single "absent" outcome
// so callers can heal all three the same way.
package storage

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Document names used by the application.
const (
	SessionDocument = "current_session.json"
	HistoryDocument = "completed.json"
)

// Store reads and writes JSON documents under a data directory.
type Store struct {
	dir string
}

// New creates the data directory if needed and returns a store over it.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Path returns the on-disk path of a named document.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// Load reads the named document into v. It returns false when the
// document is absent: the file does not exist, is empty or
// whitespace-only, or does not parse as JSON. No distinction between
// those cases is surfaced; they all heal identically.
func (s *Store) Load(name string, v any) bool {
	path := s.Path(name)

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("storage: read %s: %v", path, err)
		}
		return false
	}

	if strings.TrimSpace(string(data)) == "" {
		log.Printf("storage: %s is empty", path)
		return false
	}

	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("storage: %s is corrupt: %v", path, err)
		return false
	}

	return true
}

// Save writes v as the named document. The write goes through a temp
// file and rename so a partially written document is never observable.
func (s *Store) Save(name string, v any) error {
	path := s.Path(name)

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Printf("storage: marshal %s: %v", path, err)
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		log.Printf("storage: write %s: %v", tmpPath, err)
		return fmt.Errorf("failed to write %s: %w", name, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		log.Printf("storage: rename %s: %v", tmpPath, err)
		return fmt.Errorf("failed to rename %s: %w", name, err)
	}

	return nil
}
