// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/openshelf/pkg/types"
)

func testStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "history.db")
	store, err := NewStore(types.HistoryConfig{Path: path})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store, path
}

func TestRecordAndList(t *testing.T) {
	store, _ := testStore(t)
	ctx := context.Background()

	require.NoError(t, store.Record(ctx, "Dune", "", 1, 45))
	require.NoError(t, store.Record(ctx, "The Hobbit", "Tolkien", 1, 120))
	require.NoError(t, store.Record(ctx, "Dune", "", 2, 45))

	entries, err := store.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Newest first.
	assert.Equal(t, "Dune", entries[0].Title)
	assert.Equal(t, 2, entries[0].Page)
	assert.Equal(t, "The Hobbit", entries[1].Title)
	assert.Equal(t, "Tolkien", entries[1].Author)
	assert.Equal(t, 45, entries[2].NumFound)
	assert.False(t, entries[0].SearchedAt.IsZero())
}

func TestListLimit(t *testing.T) {
	store, _ := testStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, store.Record(ctx, "Dune", "", i+1, 45))
	}

	entries, err := store.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestClear(t *testing.T) {
	store, _ := testStore(t)
	ctx := context.Background()

	require.NoError(t, store.Record(ctx, "Dune", "", 1, 45))
	require.NoError(t, store.Clear(ctx))

	entries, err := store.List(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestReopenKeepsEntries(t *testing.T) {
	store, path := testStore(t)
	ctx := context.Background()

	require.NoError(t, store.Record(ctx, "Neuromancer", "Gibson", 1, 12))
	require.NoError(t, store.Close())

	reopened, err := NewStore(types.HistoryConfig{Path: path})
	require.NoError(t, err)
	defer reopened.Close()

	entries, err := reopened.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Neuromancer", entries[0].Title)
}
