package eventlog_test

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/bpsync/pkg/bpsync/eventlog"
)

// storeFactory creates a store instance for testing.
type storeFactory func(t *testing.T) eventlog.Store

func memoryFactory(t *testing.T) eventlog.Store {
	return eventlog.NewMemoryStore()
}

func sqliteFactory(t *testing.T) eventlog.Store {
	store, err := eventlog.NewSQLiteStore(":memory:")
	require.NoError(t, err)
	return store
}

func TestStoreContract(t *testing.T) {
	storeContractTest(t, "Memory", memoryFactory)
	storeContractTest(t, "SQLite", sqliteFactory)
}

// storeContractTest runs contract tests against any Store implementation.
func storeContractTest(t *testing.T, name string, factory storeFactory) {
	t.Run(name+"/Append_and_Load", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		for _, n := range []string{"AddHot", "AddCold", "AddHot"} {
			_, err := store.Append("run-1", eventlog.Entry{EventName: n, EventID: "id-" + n, Kind: "Addition"})
			require.NoError(t, err)
		}

		entries, err := store.Load("run-1")
		require.NoError(t, err)
		require.Len(t, entries, 3)
		for i, want := range []string{"AddHot", "AddCold", "AddHot"} {
			assert.Equal(t, i+1, entries[i].Sequence)
			assert.Equal(t, want, entries[i].EventName)
			assert.Equal(t, "id-"+want, entries[i].EventID)
			assert.Equal(t, "Addition", entries[i].Kind)
			assert.Equal(t, "run-1", entries[i].RunID)
			assert.False(t, entries[i].Timestamp.IsZero())
		}
	})

	t.Run(name+"/Append_AssignsSequencePerRun", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		a1, err := store.Append("run-a", eventlog.Entry{EventName: "x"})
		require.NoError(t, err)
		b1, err := store.Append("run-b", eventlog.Entry{EventName: "x"})
		require.NoError(t, err)
		a2, err := store.Append("run-a", eventlog.Entry{EventName: "y", Sequence: 99})
		require.NoError(t, err)

		assert.Equal(t, 1, a1.Sequence)
		assert.Equal(t, 1, b1.Sequence)
		assert.Equal(t, 2, a2.Sequence, "caller sequence is ignored")
	})

	t.Run(name+"/Append_RequiresRunID", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		_, err := store.Append("", eventlog.Entry{EventName: "x"})
		assert.ErrorIs(t, err, eventlog.ErrRunIDRequired)
	})

	t.Run(name+"/Load_NotFound", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		_, err := store.Load("run-missing")
		assert.ErrorIs(t, err, eventlog.ErrNotFound)
	})

	t.Run(name+"/Runs", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		runs, err := store.Runs()
		require.NoError(t, err)
		assert.Empty(t, runs)

		for _, id := range []string{"run-b", "run-a", "run-b"} {
			_, err := store.Append(id, eventlog.Entry{EventName: "x"})
			require.NoError(t, err)
		}

		runs, err = store.Runs()
		require.NoError(t, err)
		assert.Equal(t, []string{"run-a", "run-b"}, runs)
	})

	t.Run(name+"/DeleteRun", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		_, err := store.Append("run-1", eventlog.Entry{EventName: "x"})
		require.NoError(t, err)

		require.NoError(t, store.DeleteRun("run-1"))
		require.NoError(t, store.DeleteRun("run-1"), "deleting twice is fine")

		_, err = store.Load("run-1")
		assert.ErrorIs(t, err, eventlog.ErrNotFound)

		// Sequence restarts after deletion.
		entry, err := store.Append("run-1", eventlog.Entry{EventName: "x"})
		require.NoError(t, err)
		assert.Equal(t, 1, entry.Sequence)
	})

	t.Run(name+"/Closed", func(t *testing.T) {
		store := factory(t)
		require.NoError(t, store.Close())
		require.NoError(t, store.Close(), "close is idempotent")

		_, err := store.Append("run-1", eventlog.Entry{EventName: "x"})
		assert.ErrorIs(t, err, eventlog.ErrStoreClosed)
		_, err = store.Load("run-1")
		assert.ErrorIs(t, err, eventlog.ErrStoreClosed)
		_, err = store.Runs()
		assert.ErrorIs(t, err, eventlog.ErrStoreClosed)
		assert.ErrorIs(t, store.DeleteRun("run-1"), eventlog.ErrStoreClosed)
	})

	t.Run(name+"/Concurrent", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		const goroutines = 20
		const perGoroutine = 10

		var wg sync.WaitGroup
		for i := range goroutines {
			wg.Add(1)
			go func(id int) {
				defer wg.Done()
				for j := range perGoroutine {
					_, err := store.Append("shared", eventlog.Entry{EventName: fmt.Sprintf("e-%d-%d", id, j)})
					assert.NoError(t, err)
					_, _ = store.Load("shared")
				}
			}(i)
		}
		wg.Wait()

		entries, err := store.Load("shared")
		require.NoError(t, err)
		require.Len(t, entries, goroutines*perGoroutine)
		for i, e := range entries {
			assert.Equal(t, i+1, e.Sequence)
		}
	})
}

func TestSQLiteStore_Persistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")

	store1, err := eventlog.NewSQLiteStore(dbPath)
	require.NoError(t, err)
	_, err = store1.Append("run-1", eventlog.Entry{EventName: "Tick", EventID: "id-1", Kind: "Event"})
	require.NoError(t, err)
	require.NoError(t, store1.Close())

	store2, err := eventlog.NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer store2.Close()

	entries, err := store2.Load("run-1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Tick", entries[0].EventName)

	next, err := store2.Append("run-1", eventlog.Entry{EventName: "Tock"})
	require.NoError(t, err)
	assert.Equal(t, 2, next.Sequence)
}

func TestSQLiteStore_CorruptTimestamp(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")

	store, err := eventlog.NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer store.Close()
	_, err = store.Append("run-1", eventlog.Entry{EventName: "Tick", EventID: "id-1", Kind: "Event"})
	require.NoError(t, err)

	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	_, err = db.Exec(`UPDATE fired_events SET timestamp = 'yesterday' WHERE run_id = 'run-1'`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = store.Load("run-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scan entry 1 timestamp")
	assert.NotErrorIs(t, err, eventlog.ErrNotFound)
}

func TestSQLiteStore_InvalidPath(t *testing.T) {
	_, err := eventlog.NewSQLiteStore("/nonexistent/path/runs.db")
	assert.Error(t, err)
}

func TestMemoryStore_LoadReturnsCopy(t *testing.T) {
	store := eventlog.NewMemoryStore()
	_, err := store.Append("run-1", eventlog.Entry{EventName: "Tick"})
	require.NoError(t, err)

	entries, err := store.Load("run-1")
	require.NoError(t, err)
	entries[0].EventName = "changed"

	again, err := store.Load("run-1")
	require.NoError(t, err)
	assert.Equal(t, "Tick", again[0].EventName)
}
