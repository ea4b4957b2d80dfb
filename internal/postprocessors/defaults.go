package postprocessors

import (
	"github.com/custodia-labs/radarchunk/internal/core/domain"
	"github.com/custodia-labs/radarchunk/internal/core/ports/driven"
	"github.com/custodia-labs/radarchunk/internal/logger"
	"github.com/custodia-labs/radarchunk/internal/postprocessors/chunker"
	"github.com/custodia-labs/radarchunk/internal/postprocessors/segmenter"
	"github.com/custodia-labs/radarchunk/internal/postprocessors/tagger"
)

// Config keys understood by the built-in processors.
const (
	ConfigChunkSize = "chunk_size"
	ConfigOverlap   = "overlap"
	ConfigPeriod    = "period"
)

// RegisterDefaults registers all built-in processors with the registry.
// Processors log through log.
func RegisterDefaults(r *Registry, log *logger.Logger) {
	r.Register("chunker", func(cfg map[string]any) (driven.PostProcessor, error) {
		return chunker.New(splitterOptions(cfg, log)...), nil
	})
	r.Register("segmenter", func(cfg map[string]any) (driven.PostProcessor, error) {
		return segmenter.New(log, splitterOptions(cfg, log)...), nil
	})
	r.Register(tagger.NameTagger, func(cfg map[string]any) (driven.PostProcessor, error) {
		period, _ := getStringFromConfig(cfg, ConfigPeriod)
		return tagger.New(period, log), nil
	})
	r.Register(tagger.NameProvenance, func(map[string]any) (driven.PostProcessor, error) {
		return tagger.NewProvenance(log), nil
	})
}

// RadarStages returns the stages for settings.Mode:
//
//	metadata  segmenter, tagger
//	basic     segmenter, provenance
//	plain     chunker, provenance
//
// An empty mode is treated as metadata.
func RadarStages(settings domain.Settings) []Stage {
	split := map[string]any{
		ConfigChunkSize: settings.ChunkSize,
		ConfigOverlap:   settings.ChunkOverlap,
	}

	switch settings.Mode {
	case domain.ModeBasic:
		return []Stage{{Name: "segmenter", Config: split}, {Name: tagger.NameProvenance}}
	case domain.ModePlain:
		return []Stage{{Name: "chunker", Config: split}, {Name: tagger.NameProvenance}}
	default:
		return []Stage{
			{Name: "segmenter", Config: split},
			{Name: tagger.NameTagger, Config: map[string]any{ConfigPeriod: settings.Period}},
		}
	}
}

// NewRadarPipeline builds the pipeline for settings.
func NewRadarPipeline(settings domain.Settings, log *logger.Logger) (*Pipeline, error) {
	if _, err := domain.ParseMode(string(settings.Mode)); err != nil {
		return nil, err
	}
	r := NewRegistry()
	RegisterDefaults(r, log)
	return r.BuildPipeline(RadarStages(settings)...)
}

// splitterOptions reads the splitter settings from generic config.
// Supported config keys:
//   - chunk_size (int): Characters per chunk (default: 1000)
//   - overlap (int): Overlapping characters between chunks (default: 200)
func splitterOptions(cfg map[string]any, log *logger.Logger) []chunker.Option {
	opts := []chunker.Option{chunker.WithLogger(log)}

	if size, ok := getIntFromConfig(cfg, ConfigChunkSize); ok {
		opts = append(opts, chunker.WithChunkSize(size))
	}
	if overlap, ok := getIntFromConfig(cfg, ConfigOverlap); ok {
		opts = append(opts, chunker.WithOverlap(overlap))
	}

	return opts
}

// getIntFromConfig safely extracts an int from generic config map.
// Handles int, int64, and float64 types that may come from TOML/JSON parsing.
func getIntFromConfig(cfg map[string]any, key string) (int, bool) {
	val, ok := cfg[key]
	if !ok {
		return 0, false
	}

	switch v := val.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

func getStringFromConfig(cfg map[string]any, key string) (string, bool) {
	s, ok := cfg[key].(string)
	return s, ok
}
