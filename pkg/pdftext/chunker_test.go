package pdftext

import (
	"fmt"
	"strings"
	"testing"
)

func makePages(sizes ...int) []Page {
	pages := make([]Page, len(sizes))
	for i, size := range sizes {
		pages[i] = Page{
			PageNumber: i + 1,
			Text:       strings.Repeat("x", size),
		}
	}
	return pages
}

func TestChunkPagesNeverSplitsAPage(t *testing.T) {
	pages := makePages(3000, 3000, 3000)
	chunks := ChunkPages("doc", pages, 5000)

	if len(chunks) != 3 {
		t.Fatalf("chunks = %d, want 3 (3000+3000 > 5000 forces one page per chunk)", len(chunks))
	}
	for i, c := range chunks {
		wantRange := fmt.Sprintf("%d–%d", i+1, i+1)
		if c.PageRange != wantRange {
			t.Errorf("chunk %d PageRange = %q, want %q", i, c.PageRange, wantRange)
		}
	}
}

func TestChunkPagesGroupsSmallPages(t *testing.T) {
	pages := makePages(1000, 1000, 1000, 1000)
	chunks := ChunkPages("doc", pages, 5000)

	if len(chunks) != 1 {
		t.Fatalf("chunks = %d, want 1", len(chunks))
	}
	if chunks[0].PageRange != "1–4" {
		t.Errorf("PageRange = %q, want 1–4", chunks[0].PageRange)
	}
	if chunks[0].ID != "doc_c001" {
		t.Errorf("ID = %q, want doc_c001", chunks[0].ID)
	}
}

func TestChunkPagesOversizedPageStandsAlone(t *testing.T) {
	pages := makePages(100, 9000, 100)
	chunks := ChunkPages("doc", pages, 5000)

	if len(chunks) != 3 {
		t.Fatalf("chunks = %d, want 3", len(chunks))
	}
	if !strings.Contains(chunks[1].Text, "[PAGE 2]") {
		t.Errorf("oversized page chunk missing its marker: %q", chunks[1].PageRange)
	}
	if chunks[1].PageRange != "2–2" {
		t.Errorf("oversized page range = %q, want 2–2", chunks[1].PageRange)
	}
}

func TestChunkPagesMarkersCoverEveryPage(t *testing.T) {
	pages := makePages(10, 0, 10) // empty page still gets a marker
	chunks := ChunkPages("doc", pages, 5000)

	joined := ""
	for _, c := range chunks {
		joined += c.Text
	}
	for n := 1; n <= 3; n++ {
		marker := fmt.Sprintf("[PAGE %d]", n)
		if !strings.Contains(joined, marker) {
			t.Errorf("missing marker %s", marker)
		}
	}
}

// Chunk coverage: stripping markers and concatenating chunk text must
// reconstruct the extracted characters without loss.
func TestChunkPagesCoverage(t *testing.T) {
	pages := []Page{
		{PageNumber: 1, Text: "alpha line one\nalpha line two"},
		{PageNumber: 2, Text: ""},
		{PageNumber: 3, Text: "gamma"},
	}
	chunks := ChunkPages("doc", pages, 20) // force multiple chunks

	var got strings.Builder
	for _, c := range chunks {
		got.WriteString(StripPageMarkers(c.Text))
	}

	var want strings.Builder
	for _, p := range pages {
		want.WriteString(p.Text)
		want.WriteString("\n")
	}

	if got.String() != want.String() {
		t.Errorf("reconstructed text mismatch:\ngot  %q\nwant %q", got.String(), want.String())
	}
}

func TestChunkPagesEmptyInput(t *testing.T) {
	if chunks := ChunkPages("doc", nil, 5000); len(chunks) != 0 {
		t.Errorf("chunks from no pages = %d, want 0", len(chunks))
	}
}
