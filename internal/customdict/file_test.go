package customdict

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "userdict.txt")
	store := NewFile(path)

	words, err := store.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, words)

	require.NoError(t, store.Add(ctx, "kubernetes"))
	require.NoError(t, store.Add(ctx, "grpc"))
	require.NoError(t, store.Add(ctx, "kubernetes")) // duplicate is a no-op

	words, err = store.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"kubernetes", "grpc"}, words)

	require.NoError(t, store.Remove(ctx, "kubernetes"))
	words, err = store.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"grpc"}, words)

	// a fresh store over the same path sees the persisted words
	reopened := NewFile(path)
	words, err = reopened.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"grpc"}, words)
}

func TestFileStoreRemoveLast(t *testing.T) {
	ctx := context.Background()
	store := NewFile(filepath.Join(t.TempDir(), "userdict.txt"))

	require.NoError(t, store.Add(ctx, "solo"))
	require.NoError(t, store.Remove(ctx, "solo"))

	words, err := store.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, words)
}
