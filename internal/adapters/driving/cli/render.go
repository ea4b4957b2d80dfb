package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/custodia-labs/radarchunk/internal/core/domain"
)

// Colour palette shared by styled output.
var (
	colourPrimary = lipgloss.Color("#7C3AED")
	colourMuted   = lipgloss.Color("#6C7086")
	colourBorder  = lipgloss.Color("#45475A")

	ringColours = map[domain.Ring]lipgloss.Color{
		domain.RingAdopt:  lipgloss.Color("#A6E3A1"),
		domain.RingTrial:  lipgloss.Color("#06B6D4"),
		domain.RingAssess: lipgloss.Color("#F9E2AF"),
		domain.RingHold:   lipgloss.Color("#F38BA8"),
	}
)

// chunkStyles holds the lipgloss styles for chunk listings.
type chunkStyles struct {
	header lipgloss.Style
	muted  lipgloss.Style
	body   lipgloss.Style
}

func newChunkStyles() chunkStyles {
	return chunkStyles{
		header: lipgloss.NewStyle().Bold(true).Foreground(colourPrimary),
		muted:  lipgloss.NewStyle().Foreground(colourMuted),
		body: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(colourBorder).
			PaddingLeft(1),
	}
}

func (s chunkStyles) ring(r domain.Ring) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(ringColours[r])
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// printChunks writes chunks as a readable listing, styled when w is a
// terminal.
func printChunks(w io.Writer, chunks []domain.Chunk) {
	if isTerminal(w) {
		printChunksStyled(w, chunks, newChunkStyles())
		return
	}
	printChunksPlain(w, chunks)
}

func printChunksPlain(w io.Writer, chunks []domain.Chunk) {
	for i := range chunks {
		c := &chunks[i]
		fmt.Fprintf(w, "--- chunk %d", c.Position)
		if c.Structure != nil {
			fmt.Fprintf(w, " [%s / %s]", c.Structure.Quadrant, c.Structure.Ring)
		}
		fmt.Fprintf(w, " (%d chars)\n", len([]rune(c.Content)))
		fmt.Fprintln(w, c.Content)
		fmt.Fprintln(w)
	}
}

func printChunksStyled(w io.Writer, chunks []domain.Chunk, st chunkStyles) {
	for i := range chunks {
		c := &chunks[i]
		header := st.header.Render(fmt.Sprintf("Chunk %d", c.Position))
		if c.Structure != nil {
			header += "  " + st.muted.Render(c.Structure.Quadrant.String()+" /") +
				" " + st.ring(c.Structure.Ring).Render(c.Structure.Ring.String())
		}
		header += "  " + st.muted.Render(fmt.Sprintf("%d chars", len([]rune(c.Content))))

		fmt.Fprintln(w, header)
		fmt.Fprintln(w, st.body.Render(strings.TrimRight(c.Content, "\n")))
		fmt.Fprintln(w)
	}
}

// chunkRecord is the JSON line emitted per chunk.
type chunkRecord struct {
	Text     string            `json:"text"`
	Metadata map[string]string `json:"metadata"`
}

// writeJSONLines writes one JSON object per chunk.
func writeJSONLines(w io.Writer, chunks []domain.Chunk) error {
	enc := json.NewEncoder(w)
	for i := range chunks {
		record := chunkRecord{
			Text:     chunks[i].Content,
			Metadata: chunks[i].FlatMetadata(),
		}
		if err := enc.Encode(record); err != nil {
			return fmt.Errorf("encode chunk %d: %w", chunks[i].Position, err)
		}
	}
	return nil
}

// ringSummary formats per-ring counts in ring order, e.g. "Adopt 3, Hold 1".
func ringSummary(counts map[domain.Ring]int) string {
	parts := make([]string, 0, len(counts))
	for _, r := range domain.Rings() {
		if n := counts[r]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", r, n))
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}
