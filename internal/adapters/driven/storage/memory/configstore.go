package memory

import (
	"sync"

	"github.com/custodia-labs/radarchunk/internal/core/ports/driven"
)

// MemoryPath is what ConfigStore.Path reports.
const MemoryPath = ":memory:"

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore keeps settings in a map. Exists becomes true after the first
// Set or Save, mirroring a config file being written.
type ConfigStore struct {
	mu      sync.RWMutex
	values  map[string]any
	written bool
}

// NewConfigStore creates an empty in-memory config store.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{values: make(map[string]any)}
}

// Get retrieves a configuration value by key.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.values[key]
	return val, ok
}

// GetString returns the value when it is a string.
func (s *ConfigStore) GetString(key string) string {
	str, _ := lookup[string](s, key)
	return str
}

// GetInt returns the value when it is numeric.
func (s *ConfigStore) GetInt(key string) int {
	val, ok := s.Get(key)
	if !ok {
		return 0
	}
	switch n := val.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}

// Set stores a value.
func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	s.values[key] = value
	s.written = true
	s.mu.Unlock()
	return nil
}

// Save marks the configuration as written.
func (s *ConfigStore) Save() error {
	s.mu.Lock()
	s.written = true
	s.mu.Unlock()
	return nil
}

// Load is a no-op.
func (s *ConfigStore) Load() error { return nil }

// Exists reports whether Set or Save has been called.
func (s *ConfigStore) Exists() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.written
}

// Path returns MemoryPath.
func (s *ConfigStore) Path() string { return MemoryPath }

func lookup[T any](s *ConfigStore, key string) (T, bool) {
	var zero T
	val, ok := s.Get(key)
	if !ok {
		return zero, false
	}
	typed, ok := val.(T)
	return typed, ok
}
