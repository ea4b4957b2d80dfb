package domain

import "fmt"

// Default settings values.
const (
	DefaultChunkSize       = 1000
	DefaultChunkOverlap    = 200
	DefaultPeriod          = "April 2025"
	DefaultFilenamePattern = "tr_technology_radar"
	DefaultWorkers         = 4
)

// Mode selects which stages turn a document into chunks.
type Mode string

const (
	// ModeMetadata segments at entry boundaries and tags every chunk with
	// report metadata and, where known, quadrant and ring.
	ModeMetadata Mode = "metadata"

	// ModeBasic segments at entry boundaries and carries only what the
	// extractor recorded (creation date and filename).
	ModeBasic Mode = "basic"

	// ModePlain ignores entry boundaries and splits by size alone.
	ModePlain Mode = "plain"
)

// DefaultMode is used when no mode is configured.
const DefaultMode = ModeMetadata

// Modes lists the valid modes.
func Modes() []Mode {
	return []Mode{ModeMetadata, ModeBasic, ModePlain}
}

// ParseMode converts a mode name. Empty input yields DefaultMode.
func ParseMode(s string) (Mode, error) {
	if s == "" {
		return DefaultMode, nil
	}
	for _, m := range Modes() {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: unknown mode %q (want metadata, basic or plain)", ErrInvalidInput, s)
}

// Settings holds ingestion configuration.
type Settings struct {
	// ChunkSize is the size ceiling for one chunk, in characters.
	ChunkSize int `toml:"chunk_size"`

	// ChunkOverlap is the overlap between sub-chunks of an oversized entry.
	ChunkOverlap int `toml:"chunk_overlap"`

	// Period is the reporting period label stamped on every chunk.
	Period string `toml:"period"`

	// FilenamePattern is a regular expression radar filenames must match.
	FilenamePattern string `toml:"filename_pattern"`

	// Workers bounds how many documents are processed in parallel.
	Workers int `toml:"workers"`

	// Mode picks the chunking pipeline. Empty means DefaultMode.
	Mode Mode `toml:"mode"`

	// DataDir is where the chunk database lives. Empty means the default.
	DataDir string `toml:"data_dir,omitempty"`
}

// DefaultSettings returns the built-in configuration.
func DefaultSettings() Settings {
	return Settings{
		ChunkSize:       DefaultChunkSize,
		ChunkOverlap:    DefaultChunkOverlap,
		Period:          DefaultPeriod,
		FilenamePattern: DefaultFilenamePattern,
		Workers:         DefaultWorkers,
		Mode:            DefaultMode,
	}
}

// WithDefaults fills zero-valued fields from DefaultSettings.
func (s Settings) WithDefaults() Settings {
	d := DefaultSettings()
	if s.ChunkSize <= 0 {
		s.ChunkSize = d.ChunkSize
	}
	if s.ChunkOverlap < 0 {
		s.ChunkOverlap = d.ChunkOverlap
	}
	if s.Period == "" {
		s.Period = d.Period
	}
	if s.FilenamePattern == "" {
		s.FilenamePattern = d.FilenamePattern
	}
	if s.Workers <= 0 {
		s.Workers = d.Workers
	}
	if s.Mode == "" {
		s.Mode = d.Mode
	}
	return s
}

// Validate checks the settings for consistency.
func (s Settings) Validate() error {
	if s.ChunkSize <= 0 {
		return fmt.Errorf("%w: chunk_size must be positive", ErrInvalidInput)
	}
	if s.ChunkOverlap < 0 || s.ChunkOverlap >= s.ChunkSize {
		return fmt.Errorf("%w: chunk_overlap must be in [0, chunk_size)", ErrInvalidInput)
	}
	if s.Workers <= 0 {
		return fmt.Errorf("%w: workers must be positive", ErrInvalidInput)
	}
	if _, err := ParseMode(string(s.Mode)); err != nil {
		return err
	}
	return nil
}
