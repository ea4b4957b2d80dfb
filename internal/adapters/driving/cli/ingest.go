package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/radarchunk/internal/connectors/filesystem"
	"github.com/custodia-labs/radarchunk/internal/core/domain"
	"github.com/custodia-labs/radarchunk/internal/core/ports/driving"
	"github.com/custodia-labs/radarchunk/internal/core/services"
	"github.com/custodia-labs/radarchunk/internal/normalisers/radar"
)

var ingestWatch bool

var ingestCmd = &cobra.Command{
	Use:   "ingest [dir]",
	Short: "Chunk and store every radar PDF in a folder",
	Long: `Discovers Technology Radar PDFs in a folder (non-empty *.pdf files whose
name matches filename_pattern), extracts and chunks them and stores the
chunks in the local database. Files that fail are reported and skipped.

With --watch the command keeps running and re-ingests radar PDFs as they
are added or changed. Removed files are deleted from the database.

--mode picks the chunking pipeline: metadata (entry chunks tagged with
report metadata, quadrant and ring), basic (entry chunks carrying only
creation date and filename) or plain (size-based chunks, no entry
boundaries).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().BoolVarP(&ingestWatch, "watch", "w", false, "keep watching the folder for changes")
	ingestCmd.Flags().Int(flagWorkers, 0, "number of PDFs processed in parallel (overrides config)")
	addPipelineFlags(ingestCmd)
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	source, err := a.source(dir)
	if err != nil {
		return err
	}
	store, err := a.chunkStore()
	if err != nil {
		return err
	}
	ingestor, err := a.ingestor(source, store)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	cmd.Printf("Ingesting radar PDFs from %s...\n", source.Root())

	report, err := ingestor.IngestFolder(ctx)
	if report != nil {
		printIngestReport(cmd, report)
	}
	if err != nil {
		// An empty folder is not fatal while watching; files may arrive later.
		if !ingestWatch || !errors.Is(err, domain.ErrNoDocuments) {
			return fmt.Errorf("ingest failed: %w", err)
		}
		cmd.Printf("No radar PDFs yet in %s\n", source.Root())
	}

	if !ingestWatch {
		return nil
	}
	return watchFolder(ctx, cmd, source, ingestor, services.NewDocumentService(store))
}

func printIngestReport(cmd *cobra.Command, report *driving.IngestReport) {
	cmd.Printf("Stored %d documents: %d chunks, %d tagged\n",
		report.Documents, report.Chunks, report.TaggedChunks)

	if report.ErrorCount() == 0 {
		return
	}
	cmd.Printf("%d files failed:\n", report.ErrorCount())
	paths := make([]string, 0, len(report.Failures))
	for path := range report.Failures {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	for _, path := range paths {
		cmd.Printf("  %s: %v\n", filepath.Base(path), report.Failures[path])
	}
}

// watchFolder re-ingests changed radar PDFs until ctx is cancelled.
func watchFolder(
	ctx context.Context,
	cmd *cobra.Command,
	source *filesystem.Source,
	ingestor driving.IngestService,
	documents driving.DocumentService,
) error {
	changes, err := source.Watch(ctx, filesystem.DefaultSettle)
	if err != nil {
		return fmt.Errorf("watch failed: %w", err)
	}
	cmd.Printf("Watching %s for changes (Ctrl+C to stop)\n", source.Root())

	for change := range changes {
		name := filepath.Base(change.Path)

		if change.Type == filesystem.ChangeRemoved {
			err := documents.Delete(ctx, radar.DocumentID(change.Path))
			switch {
			case errors.Is(err, domain.ErrNotFound):
			case err != nil:
				cmd.PrintErrf("Remove %s: %v\n", name, err)
			default:
				cmd.Printf("Removed %s\n", name)
			}
			continue
		}

		result, err := ingestor.IngestFile(ctx, change.Path)
		if err != nil {
			cmd.PrintErrf("Ingest %s: %v\n", name, err)
			continue
		}
		cmd.Printf("Ingested %s: %d chunks, %d tagged\n", name, len(result.Chunks), result.TaggedChunks())
	}

	if err := ctx.Err(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
