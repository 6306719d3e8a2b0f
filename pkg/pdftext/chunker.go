package pdftext

import (
	"fmt"
	"strings"
)

// DefaultMaxChunkChars bounds how much page text goes into a single LLM
// call. Pages are never split across chunks.
const DefaultMaxChunkChars = 5000

// Chunk is a group of whole pages, sized for one model call. Text keeps
// an inline "[PAGE n]" marker ahead of every included page so record
// provenance survives extraction.
type Chunk struct {
	ID        string `json:"chunk_id"`
	PageRange string `json:"page_range"`
	Text      string `json:"text"`
}

// ChunkPages groups ordered pages into chunks of at most maxChars
// characters of page text. A page larger than maxChars is placed alone
// in its own chunk. Chunk IDs derive from the document stem plus a
// sequence number.
func ChunkPages(stem string, pages []Page, maxChars int) []Chunk {
	if maxChars <= 0 {
		maxChars = DefaultMaxChunkChars
	}

	var chunks []Chunk
	var current []Page
	currentLen := 0

	flush := func() {
		if len(current) == 0 {
			return
		}
		chunks = append(chunks, buildChunk(stem, len(chunks)+1, current))
		current = nil
		currentLen = 0
	}

	for _, page := range pages {
		pageLen := len(page.Text)
		if currentLen > 0 && currentLen+pageLen > maxChars {
			flush()
		}
		current = append(current, page)
		currentLen += pageLen
		// Oversized page: ship it alone rather than splitting it.
		if pageLen > maxChars {
			flush()
		}
	}
	flush()

	return chunks
}

func buildChunk(stem string, seq int, pages []Page) Chunk {
	var b strings.Builder
	for _, page := range pages {
		fmt.Fprintf(&b, "[PAGE %d]\n", page.PageNumber)
		b.WriteString(page.Text)
		b.WriteString("\n")
	}

	first := pages[0].PageNumber
	last := pages[len(pages)-1].PageNumber

	return Chunk{
		ID:        fmt.Sprintf("%s_c%03d", stem, seq),
		PageRange: fmt.Sprintf("%d–%d", first, last),
		Text:      b.String(),
	}
}

// StripPageMarkers removes the inline markers, returning the raw page
// text content of a chunk.
func StripPageMarkers(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(line, "[PAGE ") && strings.HasSuffix(line, "]") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
