package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/radarchunk/internal/core/domain"
	"github.com/custodia-labs/radarchunk/internal/core/ports/driven"
	"github.com/custodia-labs/radarchunk/internal/core/ports/driving"
	"github.com/custodia-labs/radarchunk/internal/logger"
)

// Ensure Ingestor implements the interface.
var _ driving.IngestService = (*Ingestor)(nil)

// Ingestor coordinates extraction, normalisation, chunking and storage.
type Ingestor struct {
	source     driven.DocumentSource
	extractor  driven.TextExtractor
	normaliser driven.Normaliser
	pipeline   driven.PostProcessorPipeline
	store      driven.ChunkStore
	workers    int
	log        *logger.Logger
}

// NewIngestor creates a new ingestor.
// The store is optional: without one, results are computed but not saved.
// Workers bounds how many documents are processed at once.
func NewIngestor(
	source driven.DocumentSource,
	extractor driven.TextExtractor,
	normaliser driven.Normaliser,
	pipeline driven.PostProcessorPipeline,
	store driven.ChunkStore,
	workers int,
	log *logger.Logger,
) *Ingestor {
	if workers <= 0 {
		workers = domain.DefaultWorkers
	}
	return &Ingestor{
		source:     source,
		extractor:  extractor,
		normaliser: normaliser,
		pipeline:   pipeline,
		store:      store,
		workers:    workers,
		log:        log,
	}
}

// IngestFolder processes every radar PDF the source lists.
// A file that fails is logged and recorded in the report; the rest of the
// folder is still processed. It is an error when nothing could be stored.
func (i *Ingestor) IngestFolder(ctx context.Context) (*driving.IngestReport, error) {
	if i.source == nil {
		return nil, fmt.Errorf("list documents: document source not configured")
	}

	paths, err := i.source.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	i.log.Section("Ingest " + i.source.Root())
	i.log.Info("Found %d radar files, processing with %d workers", len(paths), i.workers)

	report := &driving.IngestReport{Failures: make(map[string]error)}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(i.workers)

	for _, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			result, err := i.IngestFile(gctx, path)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}
				i.log.Warn("Skipping %s: %v", path, err)
				report.Failures[path] = err
				return nil
			}

			report.Documents++
			report.Chunks += len(result.Chunks)
			report.TaggedChunks += result.TaggedChunks()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return report, err
	}

	if report.Documents == 0 {
		return report, fmt.Errorf("%w: %d of %d files failed", domain.ErrNothingLoaded, report.ErrorCount(), len(paths))
	}

	return report, nil
}

// IngestFile validates, processes and stores a single PDF.
func (i *Ingestor) IngestFile(ctx context.Context, path string) (*driving.IngestResult, error) {
	if i.source != nil {
		if err := i.source.Accept(path); err != nil {
			return nil, err
		}
	}

	result, err := i.ProcessFile(ctx, path)
	if err != nil {
		return nil, err
	}

	if i.store != nil {
		if err := i.store.ReplaceDocument(ctx, &result.Document, result.Chunks); err != nil {
			return nil, fmt.Errorf("save %s: %w", path, err)
		}
	}

	i.log.Info("Ingested %s: %d chunks, %d tagged", path, len(result.Chunks), result.TaggedChunks())

	return result, nil
}

// ProcessFile extracts and chunks a PDF without storing it.
func (i *Ingestor) ProcessFile(ctx context.Context, path string) (*driving.IngestResult, error) {
	if i.extractor == nil {
		return nil, fmt.Errorf("extract: text extractor not configured")
	}

	raw, err := i.extractor.Extract(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}

	return i.Process(ctx, raw)
}

// Process normalises an extracted document and runs the chunking pipeline.
func (i *Ingestor) Process(ctx context.Context, raw *domain.RawDocument) (*driving.IngestResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	// 1. NORMALISE (produces Document with Content)
	normalised, err := i.normaliser.Normalise(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("normalise: %w", err)
	}
	doc := normalised.Document

	// 2. RUN POST-PROCESSOR PIPELINE (segment, then tag)
	chunks, err := i.pipeline.Process(ctx, &doc)
	if err != nil {
		return nil, fmt.Errorf("post-process: %w", err)
	}

	return &driving.IngestResult{
		Document: doc,
		Chunks:   chunks,
	}, nil
}
