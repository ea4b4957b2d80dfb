// Package cli implements the radarchunk command line.
package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// version is set at build time through Execute.
var version = "dev"

// Global flags.
var (
	configPath string
	dataDir    string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "radarchunk",
	Short: "Segment Technology Radar PDFs into tagged chunks",
	Long: `radarchunk extracts the text of Technology Radar PDF reports, splits it
into one chunk per radar entry and tags each chunk with its quadrant and ring
plus document metadata, ready for a vector index.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.radarchunk/config.toml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory of the chunk database (default ~/.radarchunk/data)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")
}

// Execute runs the root command.
func Execute(ctx context.Context, v string) error {
	if v != "" {
		version = v
	}
	return rootCmd.ExecuteContext(ctx)
}
