package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreRecordAndQuery(t *testing.T) {
	store := openTestStore(t)

	for _, c := range []Completion{
		{Player: "ada", SessionID: "s1", LevelID: "02-cover", Moves: 12},
		{Player: "ada", SessionID: "s1", LevelID: "01-first-light", Moves: 2},
		{Player: "ada", SessionID: "s2", LevelID: "02-cover", Moves: 8},
		{Player: "bob", SessionID: "s3", LevelID: "03-switchback", Moves: 4},
	} {
		_, err := store.RecordCompletion(c)
		require.NoError(t, err)
	}

	ids, err := store.CompletedLevels("ada")
	require.NoError(t, err)
	assert.Equal(t, []string{"01-first-light", "02-cover"}, ids)

	best, ok, err := store.BestMoves("ada", "02-cover")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 8, best)

	_, ok, err = store.BestMoves("ada", "03-switchback")
	require.NoError(t, err)
	assert.False(t, ok, "bob's completion does not count for ada")

	stats, err := store.Stats("ada")
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, "02-cover", stats[1].LevelID)
	assert.Equal(t, 2, stats[1].Completions)
	assert.Equal(t, 8, stats[1].BestMoves)
	assert.False(t, stats[1].LastCompleted.IsZero())

	all, err := store.Stats("")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	recent, err := store.Recent("", 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "bob", recent[0].Player)
	assert.Equal(t, "s2", recent[1].SessionID)
}

func TestStoreRejectsEmptyLevel(t *testing.T) {
	store := openTestStore(t)

	_, err := store.RecordCompletion(Completion{Player: "ada"})
	assert.Error(t, err)
}

func TestStoreClearProgress(t *testing.T) {
	store := openTestStore(t)

	store.RecordCompletion(Completion{Player: "ada", LevelID: "a", Moves: 1})
	store.RecordCompletion(Completion{Player: "bob", LevelID: "a", Moves: 1})

	require.NoError(t, store.ClearProgress("ada"))

	ids, err := store.CompletedLevels("ada")
	require.NoError(t, err)
	assert.Empty(t, ids)

	ids, err = store.CompletedLevels("bob")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, ids, "other players are not affected")
}

func TestTracker(t *testing.T) {
	store := openTestStore(t)
	var logs bytes.Buffer
	logger := log.New(&logs)

	tr := NewTracker(store, "ada", logger)
	_, err := uuid.Parse(tr.SessionID())
	require.NoError(t, err, "session id is a uuid")

	tr.LevelCompleted("01-first-light", 2)
	tr.LevelCompleted("01-first-light", 3)

	recent, err := store.Recent("ada", 10)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	for _, c := range recent {
		assert.Equal(t, tr.SessionID(), c.SessionID)
	}

	other := NewTracker(store, "ada", nil)
	assert.NotEqual(t, tr.SessionID(), other.SessionID())

	// Write failures are logged instead of returned.
	store.Close()
	tr.LevelCompleted("02-cover", 5)
	assert.Contains(t, logs.String(), "failed to record completion")
}
