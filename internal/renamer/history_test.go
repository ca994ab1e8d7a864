// internal/renamer/history_test.go
package renamer

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryStore_AddAndList(t *testing.T) {
	store := setupHistory(t)

	for _, e := range []*HistoryEntry{
		{OldPath: "/m/a.mkv", NewPath: "/m/A (2000).mkv", Kind: "movie"},
		{OldPath: "/t/b.mkv", NewPath: "/t/B - S01E01.mkv", Kind: "tv"},
		{OldPath: "/t/c.mkv", NewPath: "/t/C - S01E02.mkv", Kind: "tv"},
	} {
		require.NoError(t, store.Add(e))
		assert.NotZero(t, e.ID)
		assert.False(t, e.CreatedAt.IsZero())
	}

	all, err := store.List(HistoryFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "/t/c.mkv", all[0].OldPath, "newest first")

	limited, err := store.List(HistoryFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	kind := "tv"
	tv, err := store.List(HistoryFilter{Kind: &kind})
	require.NoError(t, err)
	assert.Len(t, tv, 2)
}

func TestHistoryStore_Empty(t *testing.T) {
	entries, err := setupHistory(t).List(HistoryFilter{Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestOpenHistory_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "history.db")

	store, db, err := OpenHistory(path)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	require.NoError(t, store.Add(&HistoryEntry{OldPath: "a", NewPath: "b"}))
	assert.FileExists(t, path)
}
