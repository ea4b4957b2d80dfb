package services

import (
	"fmt"

	"github.com/custodia-labs/radarchunk/internal/core/domain"
	"github.com/custodia-labs/radarchunk/internal/core/ports/driven"
	"github.com/custodia-labs/radarchunk/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyChunkSize       = "chunk_size"
	keyChunkOverlap    = "chunk_overlap"
	keyPeriod          = "period"
	keyFilenamePattern = "filename_pattern"
	keyWorkers         = "workers"
	keyMode            = "mode"
	keyDataDir         = "data_dir"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get returns stored settings with defaults for anything unset.
func (s *SettingsService) Get() (domain.Settings, error) {
	defaults := domain.DefaultSettings()

	settings := domain.Settings{
		ChunkSize:       s.getInt(keyChunkSize, defaults.ChunkSize),
		ChunkOverlap:    s.getInt(keyChunkOverlap, defaults.ChunkOverlap),
		Period:          s.getString(keyPeriod, defaults.Period),
		FilenamePattern: s.getString(keyFilenamePattern, defaults.FilenamePattern),
		Workers:         s.getInt(keyWorkers, defaults.Workers),
		Mode:            domain.Mode(s.getString(keyMode, string(defaults.Mode))),
		DataDir:         s.configStore.GetString(keyDataDir), // No default - resolved by the caller
	}

	if err := settings.Validate(); err != nil {
		return settings, fmt.Errorf("config %s: %w", s.configStore.Path(), err)
	}
	return settings, nil
}

// Save validates and persists settings.
func (s *SettingsService) Save(settings domain.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	values := []struct {
		key   string
		value any
	}{
		{keyChunkSize, settings.ChunkSize},
		{keyChunkOverlap, settings.ChunkOverlap},
		{keyPeriod, settings.Period},
		{keyFilenamePattern, settings.FilenamePattern},
		{keyWorkers, settings.Workers},
		{keyMode, string(settings.WithDefaults().Mode)},
	}
	if settings.DataDir != "" {
		values = append(values, struct {
			key   string
			value any
		}{keyDataDir, settings.DataDir})
	}

	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// Init writes the default settings.
func (s *SettingsService) Init(force bool) (domain.Settings, error) {
	if s.configStore.Exists() && !force {
		return domain.Settings{}, fmt.Errorf("config %s: %w", s.configStore.Path(), domain.ErrAlreadyExists)
	}

	defaults := domain.DefaultSettings()
	if err := s.Save(defaults); err != nil {
		return domain.Settings{}, err
	}
	return defaults, nil
}

// Path returns the configuration file location.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

// getInt returns the stored integer, or def when the key is unset.
func (s *SettingsService) getInt(key string, def int) int {
	if _, ok := s.configStore.Get(key); !ok {
		return def
	}
	return s.configStore.GetInt(key)
}

// getString returns the stored string, or def when unset or empty.
func (s *SettingsService) getString(key, def string) string {
	if v := s.configStore.GetString(key); v != "" {
		return v
	}
	return def
}
