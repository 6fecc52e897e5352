package core

import (
	"fmt"
	"sync"

	"github.com/Greninja110/QA-Checklist/internal/storage"
)

// HistoryManager owns the completed-history document. Entries are
// created only by session completion and destroyed only by explicit
// deletion. A mutex serializes load-mutate-save cycles since requests
// are handled concurrently.
type HistoryManager struct {
	mu    sync.Mutex
	store *storage.Store
}

// NewHistoryManager returns a history manager over the given store.
func NewHistoryManager(store *storage.Store) *HistoryManager {
	return &HistoryManager{store: store}
}

// load reads the history document, re-initializing it to an empty list
// when absent. There is no template to regenerate history from, so a
// failed re-init is a hard error.
func (m *HistoryManager) load() ([]CompletedEntry, error) {
	var entries []CompletedEntry
	if m.store.Load(storage.HistoryDocument, &entries) {
		if entries == nil {
			entries = []CompletedEntry{}
		}
		return entries, nil
	}

	entries = []CompletedEntry{}
	if err := m.store.Save(storage.HistoryDocument, entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHistoryUnavailable, err)
	}
	return entries, nil
}

// ListAll returns all completed entries in insertion order.
func (m *HistoryManager) ListAll() ([]CompletedEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.load()
}

// Append assigns the entry an id and persists it. The id is the current
// history length + 1, not max+1: after a deletion this can produce a
// duplicate id. That matches the shipped behavior and is kept for
// compatibility with existing history files.
func (m *HistoryManager) Append(entry CompletedEntry) (*CompletedEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries, err := m.load()
	if err != nil {
		return nil, err
	}

	entry.ID = len(entries) + 1
	entries = append(entries, entry)

	if err := m.store.Save(storage.HistoryDocument, entries); err != nil {
		return nil, err
	}
	return &entry, nil
}

// DeleteByID removes every entry with the given id (the count-based id
// scheme can produce duplicates). Missing ids are a no-op.
func (m *HistoryManager) DeleteByID(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries, err := m.load()
	if err != nil {
		return err
	}

	kept := make([]CompletedEntry, 0, len(entries))
	for _, e := range entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}

	return m.store.Save(storage.HistoryDocument, kept)
}
