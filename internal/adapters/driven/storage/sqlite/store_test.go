package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-captions/internal/core/domain"
)

// setupTestStore creates a temporary SQLite index store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)
	t.Cleanup(func() { assert.NoError(t, store.Close()) })
	return store
}

func TestNewStore_Success(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(dir, IndexFileName), store.Path())
	_, err = os.Stat(store.Path())
	assert.NoError(t, err)
}

func TestNewStore_DirectoryCreation(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewStore_MigrationsRecorded(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	version, err := store.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, 1, version)
	require.NoError(t, store.Close())

	// Reopening must not re-run applied migrations.
	reopened, err := NewStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	var count int
	require.NoError(t, reopened.db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count))
	assert.Equal(t, 1, count)
}

func testDocument(id string) *domain.IndexedDocument {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return &domain.IndexedDocument{
		ID:           id,
		ContentText:  "Vós sois o sal da terra",
		Tokens:       []string{"sois", "sal", "terra"},
		ContentHash:  "hash-" + id,
		TokenVersion: 2,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestIndexStore_PutAndGet(t *testing.T) {
	store := setupTestStore(t)
	idx := store.IndexStore()
	ctx := context.Background()

	doc := testDocument("vid-1")
	require.NoError(t, idx.Put(ctx, doc))

	got, err := idx.Get(ctx, "vid-1")
	require.NoError(t, err)
	assert.Equal(t, doc.ID, got.ID)
	assert.Equal(t, doc.ContentText, got.ContentText)
	assert.Equal(t, doc.Tokens, got.Tokens)
	assert.Equal(t, doc.ContentHash, got.ContentHash)
	assert.Equal(t, doc.TokenVersion, got.TokenVersion)
	assert.True(t, doc.CreatedAt.Equal(got.CreatedAt))
	assert.True(t, doc.UpdatedAt.Equal(got.UpdatedAt))
}

func TestIndexStore_PutOverwrites(t *testing.T) {
	store := setupTestStore(t)
	idx := store.IndexStore()
	ctx := context.Background()

	doc := testDocument("vid-1")
	require.NoError(t, idx.Put(ctx, doc))

	doc.ContentText = "A luz do mundo"
	doc.Tokens = []string{"luz", "mundo"}
	require.NoError(t, idx.Put(ctx, doc))

	got, err := idx.Get(ctx, "vid-1")
	require.NoError(t, err)
	assert.Equal(t, "A luz do mundo", got.ContentText)
	assert.Equal(t, []string{"luz", "mundo"}, got.Tokens)
}

func TestIndexStore_Get_NotFound(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.IndexStore().Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestIndexStore_EmptyTokens(t *testing.T) {
	store := setupTestStore(t)
	idx := store.IndexStore()
	ctx := context.Background()

	doc := testDocument("empty")
	doc.ContentText = ""
	doc.Tokens = nil
	require.NoError(t, idx.Put(ctx, doc))

	got, err := idx.Get(ctx, "empty")
	require.NoError(t, err)
	assert.Empty(t, got.Tokens)
	assert.False(t, got.HasContent())
}

func TestIndexStore_List_OrderedByID(t *testing.T) {
	store := setupTestStore(t)
	idx := store.IndexStore()
	ctx := context.Background()

	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, idx.Put(ctx, testDocument(id)))
	}

	docs, err := idx.List(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, "a", docs[0].ID)
	assert.Equal(t, "b", docs[1].ID)
	assert.Equal(t, "c", docs[2].ID)
}

func TestIndexStore_BatchCommit(t *testing.T) {
	store := setupTestStore(t)
	idx := store.IndexStore()
	ctx := context.Background()

	assert.Equal(t, MaxBatchOps, idx.MaxBatchOps())

	batch := idx.NewBatch()
	batch.Put(testDocument("a"))
	batch.Put(testDocument("b"))
	assert.Equal(t, 2, batch.Len())

	_, err := idx.Get(ctx, "a")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, batch.Commit(ctx))
	assert.Equal(t, 0, batch.Len())

	docs, err := idx.List(ctx)
	require.NoError(t, err)
	assert.Len(t, docs, 2)
}

func TestIndexStore_BatchTooLarge(t *testing.T) {
	store := setupTestStore(t)
	idx := store.IndexStore()
	ctx := context.Background()

	batch := idx.NewBatch()
	for i := 0; i <= MaxBatchOps; i++ {
		batch.Put(testDocument("doc"))
	}

	err := batch.Commit(ctx)
	assert.ErrorIs(t, err, domain.ErrPersistenceFailed)

	_, err = idx.Get(ctx, "doc")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResolveDataDir(t *testing.T) {
	dir, err := ResolveDataDir("/srv/index")
	require.NoError(t, err)
	assert.Equal(t, "/srv/index", dir)

	t.Setenv("HOME", "/home/tester")
	dir, err = ResolveDataDir("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/tester", ".sercha-captions", "data"), dir)
}
