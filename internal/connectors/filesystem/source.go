// Package filesystem discovers Technology Radar PDFs in a local folder.
package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/custodia-labs/radarchunk/internal/core/domain"
	"github.com/custodia-labs/radarchunk/internal/core/ports/driven"
	"github.com/custodia-labs/radarchunk/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.DocumentSource = (*Source)(nil)

const pdfExt = ".pdf"

// Source lists radar PDFs directly inside a folder. Subfolders are not
// searched.
type Source struct {
	root    string
	pattern *regexp.Regexp
	log     *logger.Logger
}

// New creates a source for root. Filenames must match pattern, a regular
// expression applied to the lower-cased base name. An empty pattern
// accepts every PDF.
func New(root, pattern string, log *logger.Logger) (*Source, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("filename pattern %q: %w", pattern, err)
	}
	return &Source{root: root, pattern: re, log: log}, nil
}

// Root returns the folder being listed.
func (s *Source) Root() string {
	return s.root
}

// Validate checks that the root exists and is a directory.
func (s *Source) Validate(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	info, err := os.Stat(s.root)
	if os.IsNotExist(err) {
		return fmt.Errorf("path does not exist: %s", s.root)
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", s.root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", s.root)
	}
	return nil
}

// List returns the accepted PDFs in the folder, sorted by name.
// Returns domain.ErrNoDocuments when the folder holds no PDFs at all.
// PDFs that fail Accept are skipped with a warning.
func (s *Source) List(ctx context.Context) ([]string, error) {
	if err := s.Validate(ctx); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.root, err)
	}

	var candidates []string
	for _, entry := range entries {
		if entry.IsDir() || isHidden(entry.Name()) || !hasPDFExt(entry.Name()) {
			continue
		}
		candidates = append(candidates, filepath.Join(s.root, entry.Name()))
	}
	if len(candidates) == 0 {
		s.log.Warn("No PDF files found in directory: %s", s.root)
		return nil, fmt.Errorf("%s: %w", s.root, domain.ErrNoDocuments)
	}
	sort.Strings(candidates)

	paths := make([]string, 0, len(candidates))
	for _, path := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := s.Accept(path); err != nil {
			s.log.Warn("Skipping %s: %v", filepath.Base(path), err)
			continue
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// Accept reports whether path is a non-empty PDF whose name matches the
// filename pattern.
func (s *Source) Accept(path string) error {
	if err := s.Match(path); err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory: %w", path, domain.ErrInvalidInput)
	}
	if info.Size() == 0 {
		return fmt.Errorf("%s: %w", path, domain.ErrEmptyFile)
	}
	return nil
}

// Match applies the name checks of Accept without touching the file.
func (s *Source) Match(path string) error {
	name := filepath.Base(path)
	if !hasPDFExt(name) {
		return fmt.Errorf("%s: not a PDF file: %w", path, domain.ErrInvalidInput)
	}
	if !s.pattern.MatchString(strings.ToLower(name)) {
		return fmt.Errorf("%s: %w", path, domain.ErrNotRadarFile)
	}
	return nil
}

func hasPDFExt(name string) bool {
	return strings.EqualFold(filepath.Ext(name), pdfExt)
}

// isHidden reports whether any element of path starts with a dot.
func isHidden(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if len(part) > 1 && strings.HasPrefix(part, ".") && part != ".." {
			return true
		}
	}
	return false
}
