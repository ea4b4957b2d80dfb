package driving

import "github.com/custodia-labs/radarchunk/internal/core/domain"

// SettingsService reads and writes the configuration file.
type SettingsService interface {
	// Get returns the effective settings: file values over defaults.
	Get() (domain.Settings, error)

	// Save validates and persists settings.
	Save(settings domain.Settings) error

	// Init writes the default settings. It fails with
	// domain.ErrAlreadyExists when a config file exists unless force is set.
	Init(force bool) (domain.Settings, error)

	// Path returns the configuration file location.
	Path() string
}
