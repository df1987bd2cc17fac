package eventlog

import (
	"sort"
	"sync"
	"time"
)

// MemoryStore is an in-memory event log store for testing.
// Data is lost when the process exits.
type MemoryStore struct {
	mu     sync.RWMutex
	runs   map[string][]Entry
	closed bool
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates a new in-memory event log store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		runs: make(map[string][]Entry),
	}
}

// Append implements Store.
func (m *MemoryStore) Append(runID string, entry Entry) (Entry, error) {
	if runID == "" {
		return Entry{}, ErrRunIDRequired
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return Entry{}, ErrStoreClosed
	}

	entry.RunID = runID
	entry.Sequence = len(m.runs[runID]) + 1
	entry.Timestamp = time.Now().UTC()
	m.runs[runID] = append(m.runs[runID], entry)
	return entry, nil
}

// Load implements Store.
func (m *MemoryStore) Load(runID string) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	entries, ok := m.runs[runID]
	if !ok {
		return nil, ErrNotFound
	}

	// Copy so callers cannot alter the stored log
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out, nil
}

// Runs implements Store.
func (m *MemoryStore) Runs() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	runs := make([]string, 0, len(m.runs))
	for id := range m.runs {
		runs = append(runs, id)
	}
	sort.Strings(runs)
	return runs, nil
}

// DeleteRun implements Store.
func (m *MemoryStore) DeleteRun(runID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	delete(m.runs, runID)
	return nil
}

// Close implements Store.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.runs = nil
	return nil
}
