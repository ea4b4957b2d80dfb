package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/radarchunk/internal/core/domain"
)

// setupTestStore creates a SQLite store in a temporary directory.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})
	return store
}

func testDocument(id, uri string) *domain.Document {
	return &domain.Document{
		ID:      id,
		URI:     uri,
		Content: "Techniques\nAdopt\n1. 1% canary\nTrial",
		Provenance: map[string]any{
			domain.ProvenanceSource:       uri,
			domain.ProvenanceCreationDate: "2025-04-01T09:30:00+00:00",
		},
		Metadata: domain.DocumentMetadata{
			CreationDate: "2025-04-01T09:30:00+00:00",
			Filename:     filepath.Base(uri),
			Title:        "Technology Radar Vol",
			Volume:       "32",
			Period:       "April 2025",
		},
		CreatedAt: time.Date(2025, 4, 1, 9, 30, 0, 0, time.UTC),
	}
}

func TestNewStore(t *testing.T) {
	t.Run("creates database in data dir", func(t *testing.T) {
		dir := t.TempDir()
		store, err := NewStore(dir)
		require.NoError(t, err)
		defer store.Close()

		assert.Equal(t, filepath.Join(dir, DatabaseFile), store.Path())
		assert.FileExists(t, store.Path())
	})

	t.Run("creates missing data dir", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "data")
		store, err := NewStore(dir)
		require.NoError(t, err)
		defer store.Close()

		assert.DirExists(t, dir)
	})

	t.Run("reopen skips applied migrations", func(t *testing.T) {
		dir := t.TempDir()
		store, err := NewStore(dir)
		require.NoError(t, err)
		require.NoError(t, store.SaveDocument(context.Background(), testDocument("doc-1", "/r/a.pdf")))
		require.NoError(t, store.Close())

		reopened, err := NewStore(dir)
		require.NoError(t, err)
		defer reopened.Close()

		var version int
		require.NoError(t, reopened.db.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version))
		assert.Equal(t, 1, version)

		docs, err := reopened.ListDocuments(context.Background())
		require.NoError(t, err)
		assert.Len(t, docs, 1)
	})
}

func TestStore_DocumentRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)

	doc := testDocument("doc-1", "/radars/tr_technology_radar_vol_32_en.pdf")
	require.NoError(t, store.SaveDocument(ctx, doc))

	got, err := store.GetDocument(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, doc.ID, got.ID)
	assert.Equal(t, doc.URI, got.URI)
	assert.Equal(t, doc.Content, got.Content)
	assert.Equal(t, doc.Metadata, got.Metadata)
	assert.Equal(t, doc.Provenance, got.Provenance)
	assert.True(t, doc.CreatedAt.Equal(got.CreatedAt))

	t.Run("update overwrites", func(t *testing.T) {
		doc.Content = "updated"
		require.NoError(t, store.SaveDocument(ctx, doc))

		got, err := store.GetDocument(ctx, "doc-1")
		require.NoError(t, err)
		assert.Equal(t, "updated", got.Content)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := store.GetDocument(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestStore_SaveDocument_Invalid(t *testing.T) {
	store := setupTestStore(t)
	assert.ErrorIs(t, store.SaveDocument(context.Background(), nil), domain.ErrInvalidInput)
	assert.ErrorIs(t, store.SaveDocument(context.Background(), &domain.Document{}), domain.ErrInvalidInput)
}

func TestStore_SaveChunks(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)
	doc := testDocument("doc-1", "/r/a.pdf")
	require.NoError(t, store.SaveDocument(ctx, doc))

	tag := &domain.StructuralTag{Quadrant: domain.QuadrantLanguagesAndFrameworks, Ring: domain.RingHold}

	t.Run("keeps heterogeneous metadata and order", func(t *testing.T) {
		require.NoError(t, store.SaveChunks(ctx, doc.ID, []domain.Chunk{
			{ID: "c2", Position: 2, Content: "12. Legacy ORM\nHold", Metadata: doc.Metadata, Structure: tag},
			{ID: "c0", Position: 0, Content: "Overview", Metadata: doc.Metadata},
			{ID: "c1", Position: 1, Content: "Untagged", Metadata: doc.Metadata},
		}))

		chunks, err := store.GetChunks(ctx, doc.ID)
		require.NoError(t, err)
		require.Len(t, chunks, 3)

		assert.Equal(t, []string{"c0", "c1", "c2"}, []string{chunks[0].ID, chunks[1].ID, chunks[2].ID})
		for _, c := range chunks {
			assert.Equal(t, doc.ID, c.DocumentID)
			assert.Equal(t, doc.Metadata, c.Metadata)
		}
		assert.Nil(t, chunks[0].Structure)
		assert.NotContains(t, chunks[0].FlatMetadata(), domain.MetaRing)
		assert.Equal(t, tag, chunks[2].Structure)
		assert.Equal(t, "Languages and Frameworks", chunks[2].FlatMetadata()[domain.MetaQuadrant])
	})

	t.Run("replaces previous chunks", func(t *testing.T) {
		require.NoError(t, store.SaveChunks(ctx, doc.ID, []domain.Chunk{
			{ID: "n0", Position: 0, Content: "new"},
		}))

		chunks, err := store.GetChunks(ctx, doc.ID)
		require.NoError(t, err)
		require.Len(t, chunks, 1)
		assert.Equal(t, "n0", chunks[0].ID)
	})

	t.Run("empty clears", func(t *testing.T) {
		require.NoError(t, store.SaveChunks(ctx, doc.ID, nil))

		chunks, err := store.GetChunks(ctx, doc.ID)
		require.NoError(t, err)
		assert.Empty(t, chunks)
	})

	t.Run("empty document id", func(t *testing.T) {
		assert.ErrorIs(t, store.SaveChunks(ctx, "", nil), domain.ErrInvalidInput)
	})

	t.Run("unknown document violates foreign key", func(t *testing.T) {
		err := store.SaveChunks(ctx, "missing", []domain.Chunk{{ID: "x", Content: "x"}})
		assert.Error(t, err)
	})
}

func TestStore_ReplaceDocument(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)

	doc := testDocument("doc-1", "/r/a.pdf")
	require.NoError(t, store.ReplaceDocument(ctx, doc, []domain.Chunk{
		{ID: "a0", Position: 0, Content: "first", Metadata: doc.Metadata},
		{ID: "a1", Position: 1, Content: "second", Metadata: doc.Metadata},
	}))

	chunks, err := store.GetChunks(ctx, "doc-1")
	require.NoError(t, err)
	require.Len(t, chunks, 2)

	t.Run("failed chunk write keeps previous version", func(t *testing.T) {
		updated := testDocument("doc-1", "/r/a.pdf")
		updated.Content = "rewritten"

		err := store.ReplaceDocument(ctx, updated, []domain.Chunk{
			{ID: "dup", Position: 0, Content: "x"},
			{ID: "dup", Position: 1, Content: "y"},
		})
		require.Error(t, err)

		got, err := store.GetDocument(ctx, "doc-1")
		require.NoError(t, err)
		assert.Equal(t, doc.Content, got.Content)

		chunks, err := store.GetChunks(ctx, "doc-1")
		require.NoError(t, err)
		require.Len(t, chunks, 2)
		assert.Equal(t, "first", chunks[0].Content)
	})

	t.Run("failed chunk write stores no new document", func(t *testing.T) {
		err := store.ReplaceDocument(ctx, testDocument("doc-2", "/r/b.pdf"), []domain.Chunk{
			{ID: "a0", Position: 0, Content: "clashes with doc-1"},
		})
		require.Error(t, err)

		_, err = store.GetDocument(ctx, "doc-2")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("invalid", func(t *testing.T) {
		assert.ErrorIs(t, store.ReplaceDocument(ctx, nil, nil), domain.ErrInvalidInput)
		assert.ErrorIs(t, store.ReplaceDocument(ctx, &domain.Document{}, nil), domain.ErrInvalidInput)
	})
}

func TestStore_DeleteDocument(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)
	doc := testDocument("doc-1", "/r/a.pdf")
	require.NoError(t, store.SaveDocument(ctx, doc))
	require.NoError(t, store.SaveChunks(ctx, doc.ID, []domain.Chunk{{ID: "c0", Content: "text"}}))

	require.NoError(t, store.DeleteDocument(ctx, doc.ID))

	_, err := store.GetDocument(ctx, doc.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	chunks, err := store.GetChunks(ctx, doc.ID)
	require.NoError(t, err)
	assert.Empty(t, chunks, "chunks are removed with their document")

	assert.ErrorIs(t, store.DeleteDocument(ctx, doc.ID), domain.ErrNotFound)
}

func TestStore_ListDocuments(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)

	docs, err := store.ListDocuments(ctx)
	require.NoError(t, err)
	assert.Empty(t, docs)

	require.NoError(t, store.SaveDocument(ctx, testDocument("b", "/r/vol_32.pdf")))
	require.NoError(t, store.SaveDocument(ctx, testDocument("a", "/r/vol_31.pdf")))

	docs, err = store.ListDocuments(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "/r/vol_31.pdf", docs[0].URI)
	assert.Equal(t, "/r/vol_32.pdf", docs[1].URI)
}
