package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/radarchunk/internal/adapters/driven/config/file"
	"github.com/custodia-labs/radarchunk/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/radarchunk/internal/connectors/filesystem"
	"github.com/custodia-labs/radarchunk/internal/core/domain"
	"github.com/custodia-labs/radarchunk/internal/core/ports/driven"
	"github.com/custodia-labs/radarchunk/internal/core/services"
	"github.com/custodia-labs/radarchunk/internal/extractors/pdf"
	"github.com/custodia-labs/radarchunk/internal/logger"
	"github.com/custodia-labs/radarchunk/internal/normalisers/radar"
	"github.com/custodia-labs/radarchunk/internal/postprocessors"
)

// Flags shared by commands that run the pipeline.
const (
	flagPeriod       = "period"
	flagChunkSize    = "chunk-size"
	flagChunkOverlap = "chunk-overlap"
	flagWorkers      = "workers"
	flagMode         = "mode"
)

// app holds what a single command invocation needs.
type app struct {
	log         *logger.Logger
	settings    domain.Settings
	settingsSvc *services.SettingsService
	store       *sqlite.Store
}

// newApp loads settings from the config file and applies flag overrides.
func newApp(cmd *cobra.Command) (*app, error) {
	log := logger.New(cmd.ErrOrStderr(), verbose)

	configStore, err := file.NewConfigStore(configPath)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	settingsSvc := services.NewSettingsService(configStore)

	settings, err := settingsSvc.Get()
	if err != nil {
		return nil, err
	}
	if err := applyOverrides(cmd, &settings); err != nil {
		return nil, err
	}
	log.Debug("Settings: mode=%s chunk_size=%d chunk_overlap=%d period=%q workers=%d",
		settings.Mode, settings.ChunkSize, settings.ChunkOverlap, settings.Period, settings.Workers)

	return &app{
		log:         log,
		settings:    settings,
		settingsSvc: settingsSvc,
	}, nil
}

// applyOverrides copies explicitly set flags onto settings.
func applyOverrides(cmd *cobra.Command, s *domain.Settings) error {
	if dataDir != "" {
		s.DataDir = dataDir
	}

	flags := cmd.Flags()
	if flags.Lookup(flagPeriod) != nil && flags.Changed(flagPeriod) {
		v, err := flags.GetString(flagPeriod)
		if err != nil {
			return err
		}
		s.Period = v
	}
	if flags.Lookup(flagMode) != nil && flags.Changed(flagMode) {
		v, err := flags.GetString(flagMode)
		if err != nil {
			return err
		}
		mode, err := domain.ParseMode(v)
		if err != nil {
			return err
		}
		s.Mode = mode
	}
	for name, target := range map[string]*int{
		flagChunkSize:    &s.ChunkSize,
		flagChunkOverlap: &s.ChunkOverlap,
		flagWorkers:      &s.Workers,
	} {
		if flags.Lookup(name) == nil || !flags.Changed(name) {
			continue
		}
		v, err := flags.GetInt(name)
		if err != nil {
			return err
		}
		*target = v
	}
	return s.Validate()
}

// addPipelineFlags registers the per-run overrides on cmd.
func addPipelineFlags(cmd *cobra.Command) {
	cmd.Flags().String(flagMode, "", "chunking mode: metadata, basic or plain (overrides config)")
	cmd.Flags().String(flagPeriod, "", "reporting period stamped on every chunk (overrides config)")
	cmd.Flags().Int(flagChunkSize, 0, "size ceiling of one chunk in characters (overrides config)")
	cmd.Flags().Int(flagChunkOverlap, 0, "overlap when splitting oversized entries (overrides config)")
}

// chunkStore opens the SQLite store once per invocation.
func (a *app) chunkStore() (*sqlite.Store, error) {
	if a.store != nil {
		return a.store, nil
	}
	store, err := sqlite.NewStore(a.settings.DataDir)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	a.log.Debug("Using database %s", store.Path())
	a.store = store
	return store, nil
}

// close releases the store if one was opened.
func (a *app) close() {
	if a.store == nil {
		return
	}
	if err := a.store.Close(); err != nil {
		a.log.Warn("Closing store: %v", err)
	}
}

// documentService returns the stored document view.
func (a *app) documentService() (*services.DocumentService, error) {
	store, err := a.chunkStore()
	if err != nil {
		return nil, err
	}
	return services.NewDocumentService(store), nil
}

// source returns the radar folder connector for dir.
func (a *app) source(dir string) (*filesystem.Source, error) {
	return filesystem.New(dir, a.settings.FilenamePattern, a.log)
}

// ingestor wires extraction, normalisation and the radar pipeline.
// Source and store may be nil.
func (a *app) ingestor(source driven.DocumentSource, store driven.ChunkStore) (*services.Ingestor, error) {
	pipeline, err := postprocessors.NewRadarPipeline(a.settings, a.log)
	if err != nil {
		return nil, fmt.Errorf("build pipeline: %w", err)
	}
	return services.NewIngestor(
		source,
		pdf.New(a.log),
		radar.New(a.log),
		pipeline,
		store,
		a.settings.Workers,
		a.log,
	), nil
}
