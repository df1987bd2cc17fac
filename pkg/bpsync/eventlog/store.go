// Package eventlog persists the sequence of events fired during a run so it
// can be inspected and replayed against a catalog.
package eventlog

import (
	"errors"
	"time"
)

// Entry is one fired event in a run's log.
type Entry struct {
	RunID     string
	Sequence  int
	EventName string
	EventID   string
	Kind      string
	Timestamp time.Time
}

// Store persists event logs.
// Implementations must be safe for concurrent use.
type Store interface {
	// Append adds entry to the end of the run's log.
	// The store assigns Sequence (starting at 1) and Timestamp and returns
	// the stored entry.
	Append(runID string, entry Entry) (Entry, error)

	// Load returns the run's entries ordered by sequence.
	// Returns ErrNotFound if the run has no entries.
	Load(runID string) ([]Entry, error)

	// Runs returns the IDs of all runs with entries, sorted.
	Runs() ([]string, error)

	// DeleteRun removes a run's log.
	// Returns nil if the run has no entries.
	DeleteRun(runID string) error

	// Close releases any resources (connections, files).
	Close() error
}

// Sentinel errors for event log operations.
var (
	// ErrNotFound indicates a run without entries.
	ErrNotFound = errors.New("run not found")

	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("event log store closed")

	// ErrNilEvent indicates Record was called without an event.
	ErrNilEvent = errors.New("event cannot be nil")

	// ErrRunIDRequired indicates an empty run ID.
	ErrRunIDRequired = errors.New("run ID required")
)
