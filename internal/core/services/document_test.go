package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/radarchunk/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/radarchunk/internal/core/domain"
)

func seededDocumentService(t *testing.T) *DocumentService {
	t.Helper()
	ctx := context.Background()
	store := memory.NewChunkStore()

	require.NoError(t, store.SaveDocument(ctx, &domain.Document{ID: "doc-1", URI: pathA}))
	require.NoError(t, store.SaveChunks(ctx, "doc-1", []domain.Chunk{
		{ID: "c0", Position: 0, Content: "preamble"},
		{ID: "c1", Position: 1, Content: "1. A", Structure: &domain.StructuralTag{Quadrant: domain.QuadrantTools, Ring: domain.RingAdopt}},
		{ID: "c2", Position: 2, Content: "2. B", Structure: &domain.StructuralTag{Quadrant: domain.QuadrantTools, Ring: domain.RingHold}},
		{ID: "c3", Position: 3, Content: "3. C", Structure: &domain.StructuralTag{Quadrant: domain.QuadrantPlatforms, Ring: domain.RingAdopt}},
	}))

	return NewDocumentService(store)
}

func TestDocumentService_List(t *testing.T) {
	service := seededDocumentService(t)

	docs, err := service.List(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "doc-1", docs[0].ID)
}

func TestDocumentService_Get(t *testing.T) {
	service := seededDocumentService(t)

	doc, err := service.Get(context.Background(), "doc-1")
	require.NoError(t, err)
	assert.Equal(t, pathA, doc.URI)

	_, err = service.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = service.Get(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDocumentService_Chunks(t *testing.T) {
	service := seededDocumentService(t)

	chunks, err := service.Chunks(context.Background(), "doc-1")
	require.NoError(t, err)
	require.Len(t, chunks, 4)
	assert.Equal(t, "c0", chunks[0].ID)

	_, err = service.Chunks(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentService_Details(t *testing.T) {
	service := seededDocumentService(t)

	details, err := service.Details(context.Background(), "doc-1")
	require.NoError(t, err)

	assert.Equal(t, "doc-1", details.Document.ID)
	assert.Equal(t, 4, details.ChunkCount)
	assert.Equal(t, 3, details.TaggedChunks)
	assert.Equal(t, map[domain.Ring]int{domain.RingAdopt: 2, domain.RingHold: 1}, details.Rings)
}

func TestDocumentService_Delete(t *testing.T) {
	service := seededDocumentService(t)
	ctx := context.Background()

	require.NoError(t, service.Delete(ctx, "doc-1"))

	_, err := service.Get(ctx, "doc-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, service.Delete(ctx, "doc-1"), domain.ErrNotFound)
	assert.ErrorIs(t, service.Delete(ctx, ""), domain.ErrInvalidInput)
}
