package cli

import (
	"github.com/spf13/cobra"
)

var chunksJSON bool

var chunksCmd = &cobra.Command{
	Use:   "chunks [file.pdf]",
	Short: "Print the chunks of one radar PDF",
	Long: `Runs the extraction and chunking pipeline on a single PDF and prints the
resulting chunks without storing them. Use --json for one JSON object per
chunk with its text and flat metadata.`,
	Args: cobra.ExactArgs(1),
	RunE: runChunks,
}

func init() {
	chunksCmd.Flags().BoolVar(&chunksJSON, "json", false, "output JSON lines")
	addPipelineFlags(chunksCmd)
	rootCmd.AddCommand(chunksCmd)
}

func runChunks(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	ingestor, err := a.ingestor(nil, nil)
	if err != nil {
		return err
	}

	result, err := ingestor.ProcessFile(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if chunksJSON {
		return writeJSONLines(cmd.OutOrStdout(), result.Chunks)
	}

	printChunks(cmd.OutOrStdout(), result.Chunks)
	cmd.Printf("%d chunks, %d tagged\n", len(result.Chunks), result.TaggedChunks())
	return nil
}
