package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/radarchunk/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/radarchunk/internal/core/domain"
	"github.com/custodia-labs/radarchunk/internal/core/ports/driven"
	"github.com/custodia-labs/radarchunk/internal/logger"
	"github.com/custodia-labs/radarchunk/internal/normalisers/radar"
	"github.com/custodia-labs/radarchunk/internal/postprocessors"
)

const (
	pathA = "/radars/tr_technology_radar_vol_31_en.pdf"
	pathB = "/radars/tr_technology_radar_vol_32_en.pdf"
	pathC = "/radars/tr_technology_radar_vol_33_en.pdf"
)

func newTestIngestor(t *testing.T, source *mockSource, extractor *mockExtractor, store driven.ChunkStore) *Ingestor {
	t.Helper()
	pipeline, err := postprocessors.NewRadarPipeline(domain.DefaultSettings(), logger.Nop())
	require.NoError(t, err)
	return NewIngestor(source, extractor, radar.New(nil), pipeline, store, 2, logger.Nop())
}

func TestNewIngestor_DefaultWorkers(t *testing.T) {
	i := NewIngestor(nil, nil, nil, nil, nil, 0, nil)
	assert.Equal(t, domain.DefaultWorkers, i.workers)
}

func TestIngestor_IngestFolder(t *testing.T) {
	store := memory.NewChunkStore()
	source := &mockSource{root: "/radars", paths: []string{pathA, pathB, pathC}}
	extractor := &mockExtractor{
		texts: map[string]string{pathA: radarText, pathB: radarText},
		errs:  map[string]error{pathC: errors.New("corrupt PDF")},
	}
	ingestor := newTestIngestor(t, source, extractor, store)

	report, err := ingestor.IngestFolder(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, report.Documents)
	assert.Equal(t, 6, report.Chunks)
	assert.Equal(t, 4, report.TaggedChunks)
	require.Equal(t, 1, report.ErrorCount())
	assert.ErrorContains(t, report.Failures[pathC], "corrupt PDF")
	assert.Equal(t, 3, extractor.calls)

	docs, err := store.ListDocuments(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, pathA, docs[0].URI)
	assert.Equal(t, "Technology Radar Vol 31", docs[0].Metadata.Title)

	chunks, err := store.GetChunks(context.Background(), radar.DocumentID(pathB))
	require.NoError(t, err)
	require.Len(t, chunks, 3)
	assert.Equal(t, "1. 1% canary\nAdopt\nCanary body.", chunks[2].Content)
	require.NotNil(t, chunks[2].Structure)
	assert.Equal(t, domain.RingAdopt, chunks[2].Structure.Ring)
	assert.Equal(t, "32", chunks[2].Metadata.Volume)
}

func TestIngestor_IngestFolder_NothingLoaded(t *testing.T) {
	source := &mockSource{paths: []string{pathA}}
	extractor := &mockExtractor{errs: map[string]error{pathA: errors.New("boom")}}
	ingestor := newTestIngestor(t, source, extractor, memory.NewChunkStore())

	report, err := ingestor.IngestFolder(context.Background())
	assert.ErrorIs(t, err, domain.ErrNothingLoaded)
	require.NotNil(t, report)
	assert.Equal(t, 1, report.ErrorCount())
}

func TestIngestor_IngestFolder_ListError(t *testing.T) {
	source := &mockSource{listErr: domain.ErrNoDocuments}
	ingestor := newTestIngestor(t, source, &mockExtractor{}, nil)

	report, err := ingestor.IngestFolder(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoDocuments)
	assert.Nil(t, report)
}

func TestIngestor_IngestFolder_NoSource(t *testing.T) {
	ingestor := NewIngestor(nil, nil, nil, nil, nil, 1, nil)

	_, err := ingestor.IngestFolder(context.Background())
	assert.Error(t, err)
}

func TestIngestor_IngestFolder_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	source := &mockSource{paths: []string{pathA, pathB}}
	extractor := &mockExtractor{texts: map[string]string{pathA: radarText, pathB: radarText}}
	ingestor := newTestIngestor(t, source, extractor, memory.NewChunkStore())

	_, err := ingestor.IngestFolder(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, extractor.calls)
}

func TestIngestor_IngestFile_Rejected(t *testing.T) {
	store := memory.NewChunkStore()
	source := &mockSource{reject: map[string]error{"/tmp/other.pdf": domain.ErrNotRadarFile}}
	extractor := &mockExtractor{texts: map[string]string{"/tmp/other.pdf": radarText}}
	ingestor := newTestIngestor(t, source, extractor, store)

	_, err := ingestor.IngestFile(context.Background(), "/tmp/other.pdf")
	assert.ErrorIs(t, err, domain.ErrNotRadarFile)
	assert.Equal(t, 0, extractor.calls)

	docs, err := store.ListDocuments(context.Background())
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestIngestor_IngestFile_ReplacesChunks(t *testing.T) {
	ctx := context.Background()
	store := memory.NewChunkStore()
	extractor := &mockExtractor{texts: map[string]string{pathA: radarText}}
	ingestor := newTestIngestor(t, &mockSource{}, extractor, store)

	_, err := ingestor.IngestFile(ctx, pathA)
	require.NoError(t, err)
	_, err = ingestor.IngestFile(ctx, pathA)
	require.NoError(t, err)

	docs, err := store.ListDocuments(ctx)
	require.NoError(t, err)
	assert.Len(t, docs, 1)

	chunks, err := store.GetChunks(ctx, radar.DocumentID(pathA))
	require.NoError(t, err)
	assert.Len(t, chunks, 3)
}

// failingStore rejects every combined document and chunk write.
type failingStore struct {
	*memory.ChunkStore
	err error
}

func (f failingStore) ReplaceDocument(context.Context, *domain.Document, []domain.Chunk) error {
	return f.err
}

func TestIngestor_IngestFile_StoreError(t *testing.T) {
	ctx := context.Background()
	errDisk := errors.New("disk full")
	store := failingStore{ChunkStore: memory.NewChunkStore(), err: errDisk}
	extractor := &mockExtractor{texts: map[string]string{pathA: radarText}}
	ingestor := newTestIngestor(t, &mockSource{}, extractor, store)

	_, err := ingestor.IngestFile(ctx, pathA)

	require.ErrorIs(t, err, errDisk)
	assert.Contains(t, err.Error(), pathA)

	docs, err := store.ListDocuments(ctx)
	require.NoError(t, err)
	assert.Empty(t, docs, "no document is left behind without its chunks")
}

func TestIngestor_ProcessFile_DoesNotStore(t *testing.T) {
	ctx := context.Background()
	store := memory.NewChunkStore()
	extractor := &mockExtractor{texts: map[string]string{pathA: radarText}}
	ingestor := newTestIngestor(t, &mockSource{}, extractor, store)

	result, err := ingestor.ProcessFile(ctx, pathA)
	require.NoError(t, err)
	assert.Len(t, result.Chunks, 3)
	assert.Equal(t, 2, result.TaggedChunks())

	docs, err := store.ListDocuments(ctx)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestIngestor_ProcessFile_ExtractError(t *testing.T) {
	extractor := &mockExtractor{errs: map[string]error{pathA: domain.ErrEmptyFile}}
	ingestor := newTestIngestor(t, &mockSource{}, extractor, nil)

	_, err := ingestor.ProcessFile(context.Background(), pathA)
	assert.ErrorIs(t, err, domain.ErrEmptyFile)
	assert.Contains(t, err.Error(), "extract")
}

func TestIngestor_Process(t *testing.T) {
	ingestor := newTestIngestor(t, &mockSource{}, &mockExtractor{}, nil)
	raw := &domain.RawDocument{
		Text:       radarText,
		Provenance: map[string]any{domain.ProvenanceSource: pathB},
	}

	result, err := ingestor.Process(context.Background(), raw)
	require.NoError(t, err)

	assert.Equal(t, radar.DocumentID(pathB), result.Document.ID)
	assert.NotContains(t, result.Document.Content, "Thoughtworks")
	require.Len(t, result.Chunks, 3)
	assert.Equal(t, "Techniques\nAdopt", result.Chunks[0].Content)
	assert.Nil(t, result.Chunks[0].Structure)
	for _, chunk := range result.Chunks {
		assert.Equal(t, "Technology Radar Vol 32", chunk.Metadata.Title)
		assert.Equal(t, domain.DefaultPeriod, chunk.Metadata.Period)
	}
}

func TestIngestor_Process_Errors(t *testing.T) {
	ingestor := newTestIngestor(t, &mockSource{}, &mockExtractor{}, nil)

	_, err := ingestor.Process(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	pipelineErr := errors.New("pipeline broke")
	failing := NewIngestor(nil, nil, radar.New(nil), &failingPipeline{err: pipelineErr}, nil, 1, nil)
	_, err = failing.Process(context.Background(), &domain.RawDocument{Text: "x"})
	assert.ErrorIs(t, err, pipelineErr)
	assert.Contains(t, err.Error(), "post-process")
}
