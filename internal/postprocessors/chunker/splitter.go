package chunker

import (
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/radarchunk/internal/logger"
)

// DefaultChunkSize is the default number of characters per chunk.
const DefaultChunkSize = 1000

// DefaultChunkOverlap is the default number of overlapping characters.
const DefaultChunkOverlap = 200

// DefaultSeparators are tried in order: paragraph, line, sentence, word,
// then single characters. Lines come before sentences so that an entry's
// ordinal stays on the same piece as its title.
var DefaultSeparators = []string{"\n\n", "\n", ". ", " ", ""}

// Splitter breaks text into pieces of at most chunkSize characters,
// preferring the coarsest separator that occurs in the text.
// Lengths are counted in Unicode code points.
type Splitter struct {
	chunkSize  int
	overlap    int
	separators []string
	log        *logger.Logger
}

// Option configures a Splitter.
type Option func(*Splitter)

// WithChunkSize sets the chunk size in characters.
func WithChunkSize(size int) Option {
	return func(s *Splitter) {
		if size > 0 {
			s.chunkSize = size
		}
	}
}

// WithOverlap sets the overlap between chunks in characters.
func WithOverlap(overlap int) Option {
	return func(s *Splitter) {
		if overlap >= 0 {
			s.overlap = overlap
		}
	}
}

// WithSeparators replaces the separator hierarchy.
// The empty separator splits into single characters.
func WithSeparators(separators ...string) Option {
	return func(s *Splitter) {
		if len(separators) > 0 {
			s.separators = separators
		}
	}
}

// WithLogger sets the logger used for oversize warnings.
func WithLogger(log *logger.Logger) Option {
	return func(s *Splitter) {
		s.log = log
	}
}

// NewSplitter creates a splitter with the given options.
func NewSplitter(opts ...Option) *Splitter {
	s := &Splitter{
		chunkSize:  DefaultChunkSize,
		overlap:    DefaultChunkOverlap,
		separators: DefaultSeparators,
	}

	for _, opt := range opts {
		opt(s)
	}

	// Ensure overlap doesn't exceed chunk size
	if s.overlap >= s.chunkSize {
		s.overlap = s.chunkSize / 4
	}

	return s
}

// ChunkSize returns the configured ceiling in characters.
func (s *Splitter) ChunkSize() int {
	return s.chunkSize
}

// Overlap returns the configured overlap in characters.
func (s *Splitter) Overlap() int {
	return s.overlap
}

// Split divides text into trimmed, non-empty pieces in text order.
// Adjacent pieces share up to overlap characters when they were merged
// from the same separator level.
func (s *Splitter) Split(text string) []string {
	return s.split(text, s.separators)
}

func (s *Splitter) split(text string, separators []string) []string {
	separator := separators[len(separators)-1]
	var finer []string
	for i, sep := range separators {
		if sep == "" {
			separator = sep
			break
		}
		if strings.Contains(text, sep) {
			separator = sep
			finer = separators[i+1:]
			break
		}
	}

	var (
		result []string
		small  []string
	)
	for _, piece := range splitKeepEnd(text, separator) {
		if length(piece) < s.chunkSize {
			small = append(small, piece)
			continue
		}
		if len(small) > 0 {
			result = append(result, s.merge(small)...)
			small = nil
		}
		if len(finer) == 0 {
			result = append(result, piece)
			continue
		}
		result = append(result, s.split(piece, finer)...)
	}
	if len(small) > 0 {
		result = append(result, s.merge(small)...)
	}

	return result
}

// merge packs consecutive pieces into chunks no longer than chunkSize,
// carrying up to overlap characters from the end of one chunk into the next.
func (s *Splitter) merge(pieces []string) []string {
	var (
		chunks  []string
		current []string
		total   int
	)

	for _, piece := range pieces {
		n := length(piece)
		if total+n > s.chunkSize {
			if total > s.chunkSize {
				s.log.Warn("Created a chunk of size %d, which is longer than the specified %d", total, s.chunkSize)
			}
			if len(current) > 0 {
				if chunk := join(current); chunk != "" {
					chunks = append(chunks, chunk)
				}
				for total > s.overlap || (total+n > s.chunkSize && total > 0) {
					total -= length(current[0])
					current = current[1:]
				}
			}
		}
		current = append(current, piece)
		total += n
	}

	if chunk := join(current); chunk != "" {
		chunks = append(chunks, chunk)
	}

	return chunks
}

// splitKeepEnd splits text after each separator, keeping the separator at
// the end of the preceding piece. An empty separator yields characters.
func splitKeepEnd(text, separator string) []string {
	if separator == "" {
		pieces := make([]string, 0, utf8.RuneCountInString(text))
		for _, r := range text {
			pieces = append(pieces, string(r))
		}
		return pieces
	}

	parts := strings.SplitAfter(text, separator)
	pieces := parts[:0]
	for _, p := range parts {
		if p != "" {
			pieces = append(pieces, p)
		}
	}
	return pieces
}

func join(pieces []string) string {
	return strings.TrimSpace(strings.Join(pieces, ""))
}

func length(s string) int {
	return utf8.RuneCountInString(s)
}
