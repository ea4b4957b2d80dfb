package driven

// ConfigStore persists key-value configuration.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	Get(key string) (any, bool)

	// GetString retrieves a string value, or "" if unset or not a string.
	GetString(key string) string

	// GetInt retrieves an integer value, or 0 if unset or not an integer.
	GetInt(key string) int

	// Set stores a configuration value and persists immediately.
	Set(key string, value any) error

	// Save persists the current configuration.
	Save() error

	// Load re-reads configuration from its backing file.
	Load() error

	// Exists reports whether the backing file has been written.
	Exists() bool

	// Path returns the backing file path.
	Path() string
}
