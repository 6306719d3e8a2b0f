package pdftext

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"vofc-ingest-be/pkg/pipeline"
)

// Page is one PDF page with its extracted text. Line breaks between
// rows are preserved; spans within a row are joined by single spaces.
type Page struct {
	PageNumber int    `json:"page_number"`
	Text       string `json:"text"`
}

// Metadata carries the document-info fields the classifier feeds on.
type Metadata struct {
	Title       string
	Subject     string
	Keywords    string
	Description string
	Creator     string
}

// ExtractPages opens the PDF at path and returns one Page per page, in
// order. Empty pages are emitted with Text: "" so page numbers stay
// contiguous. A PDF that cannot be opened wraps pipeline.ErrExtraction.
func ExtractPages(path string) ([]Page, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", pipeline.ErrExtraction, path, err)
	}
	defer f.Close()

	numPages := reader.NumPage()
	pages := make([]Page, 0, numPages)

	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, Page{PageNumber: i, Text: ""})
			continue
		}
		pages = append(pages, Page{PageNumber: i, Text: extractPageText(page)})
	}

	return pages, nil
}

// extractPageText walks text rows in reading order. Non-text content is
// skipped; a page whose rows fail to parse is emitted empty rather than
// dropped.
func extractPageText(page pdf.Page) string {
	rows, err := page.GetTextByRow()
	if err != nil {
		return ""
	}

	var lines []string
	for _, row := range rows {
		var spans []string
		for _, word := range row.Content {
			s := strings.TrimSpace(word.S)
			if s == "" {
				continue
			}
			spans = append(spans, s)
		}
		if len(spans) == 0 {
			continue
		}
		lines = append(lines, strings.Join(spans, " "))
	}

	return strings.Join(lines, "\n")
}

// ExtractMetadata reads the PDF document-info dictionary. Missing keys
// come back empty; a missing Info dict is not an error.
func ExtractMetadata(path string) (Metadata, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("%w: open %s: %v", pipeline.ErrExtraction, path, err)
	}
	defer f.Close()

	info := reader.Trailer().Key("Info")
	if info.IsNull() {
		return Metadata{}, nil
	}

	return Metadata{
		Title:       infoString(info, "Title"),
		Subject:     infoString(info, "Subject"),
		Keywords:    infoString(info, "Keywords"),
		Description: infoString(info, "Description"),
		Creator:     infoString(info, "Creator"),
	}, nil
}

func infoString(info pdf.Value, key string) string {
	v := info.Key(key)
	if v.IsNull() {
		return ""
	}
	return strings.TrimSpace(v.RawString())
}
