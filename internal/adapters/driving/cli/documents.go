package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/radarchunk/internal/core/domain"
)

var documentsJSON bool

var documentsCmd = &cobra.Command{
	Use:     "documents",
	Aliases: []string{"docs"},
	Short:   "List stored radar documents",
	Args:    cobra.NoArgs,
	RunE:    runDocumentsList,
}

var documentsShowCmd = &cobra.Command{
	Use:   "show [doc-id]",
	Short: "Show a stored document and its chunks",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentsShow,
}

var documentsDeleteCmd = &cobra.Command{
	Use:   "delete [doc-id]",
	Short: "Delete a stored document and its chunks",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentsDelete,
}

func init() {
	documentsShowCmd.Flags().BoolVar(&documentsJSON, "json", false, "output chunks as JSON lines")

	documentsCmd.AddCommand(documentsShowCmd)
	documentsCmd.AddCommand(documentsDeleteCmd)
	rootCmd.AddCommand(documentsCmd)
}

func runDocumentsList(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	svc, err := a.documentService()
	if err != nil {
		return err
	}

	docs, err := svc.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	if len(docs) == 0 {
		cmd.Println("No documents stored.")
		return nil
	}

	for i := range docs {
		cmd.Printf("%s\n", docs[i].ID)
		cmd.Printf("  File:    %s\n", docs[i].Metadata.Filename)
		if docs[i].Metadata.Title != "" {
			cmd.Printf("  Title:   %s (volume %s)\n", docs[i].Metadata.Title, docs[i].Metadata.Volume)
		}
		cmd.Printf("  Period:  %s\n", docs[i].Metadata.Period)
		cmd.Println()
	}
	cmd.Printf("Total: %d documents\n", len(docs))
	return nil
}

func runDocumentsShow(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	svc, err := a.documentService()
	if err != nil {
		return err
	}

	details, err := svc.Details(cmd.Context(), args[0])
	if err != nil {
		return documentError(args[0], err)
	}
	chunks, err := svc.Chunks(cmd.Context(), args[0])
	if err != nil {
		return documentError(args[0], err)
	}

	if documentsJSON {
		return writeJSONLines(cmd.OutOrStdout(), chunks)
	}

	doc := details.Document
	cmd.Printf("Document: %s\n\n", doc.ID)
	cmd.Printf("  URI:       %s\n", doc.URI)
	cmd.Printf("  Title:     %s\n", doc.Metadata.Title)
	cmd.Printf("  Volume:    %s\n", doc.Metadata.Volume)
	cmd.Printf("  Period:    %s\n", doc.Metadata.Period)
	cmd.Printf("  Created:   %s\n", doc.Metadata.CreationDate)
	cmd.Printf("  Ingested:  %s\n", doc.CreatedAt.Format("2006-01-02 15:04:05"))
	cmd.Printf("  Chunks:    %d (%d tagged)\n", details.ChunkCount, details.TaggedChunks)
	cmd.Printf("  Rings:     %s\n\n", ringSummary(details.Rings))

	printChunks(cmd.OutOrStdout(), chunks)
	return nil
}

func runDocumentsDelete(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	svc, err := a.documentService()
	if err != nil {
		return err
	}

	if err := svc.Delete(cmd.Context(), args[0]); err != nil {
		return documentError(args[0], err)
	}
	cmd.Printf("Deleted document %s\n", args[0])
	return nil
}

func documentError(id string, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("document %s not found", id)
	}
	return fmt.Errorf("document %s: %w", id, err)
}
