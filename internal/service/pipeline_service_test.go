package service

import (
	"strings"
	"testing"

	"vofc-ingest-be/pkg/extract"
	"vofc-ingest-be/pkg/pdftext"
	"vofc-ingest-be/pkg/taxonomy"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func classification(sector, subsector string, confidence float64) taxonomy.Classification {
	c := taxonomy.Classification{Confidence: confidence}
	if sector != "" {
		id := uuid.New()
		c.SectorID = &id
		c.SectorName = &sector
	}
	if subsector != "" {
		id := uuid.New()
		c.SubsectorID = &id
		c.SubsectorName = &subsector
	}
	return c
}

func TestApplyClassificationDocumentWins(t *testing.T) {
	record := &extract.NormalizedRecord{}
	doc := classification("Government Facilities", "Educational Facilities", 0.95)
	recordLevel := classification("Commercial Facilities", "Retail Centers", 0.60)

	applyClassification(record, doc, recordLevel)

	assert.Equal(t, "Government Facilities", *record.SectorName)
	assert.Equal(t, "Educational Facilities", *record.SubsectorName)
}

func TestApplyClassificationRecordWinsOnHigherConfidence(t *testing.T) {
	record := &extract.NormalizedRecord{}
	doc := classification("Government Facilities", "Educational Facilities", 0.40)
	recordLevel := classification("Commercial Facilities", "Retail Centers", 0.90)

	applyClassification(record, doc, recordLevel)

	assert.Equal(t, "Commercial Facilities", *record.SectorName)
	assert.Equal(t, "Retail Centers", *record.SubsectorName)
}

func TestApplyClassificationEqualConfidenceKeepsDocument(t *testing.T) {
	record := &extract.NormalizedRecord{}
	doc := classification("Government Facilities", "Courthouses", 0.60)
	recordLevel := classification("Energy", "", 0.60)

	applyClassification(record, doc, recordLevel)

	assert.Equal(t, "Government Facilities", *record.SectorName)
}

func TestApplyClassificationNullRecordLevelIgnored(t *testing.T) {
	record := &extract.NormalizedRecord{}
	doc := classification("Transportation Systems", "Mass Transit", 0.30)

	applyClassification(record, doc, taxonomy.Classification{Confidence: 0.90})

	assert.Equal(t, "Transportation Systems", *record.SectorName)
}

func TestApplyClassificationBothNullLeavesRecordUntouched(t *testing.T) {
	record := &extract.NormalizedRecord{}

	applyClassification(record, taxonomy.Classification{}, taxonomy.Classification{})

	assert.Nil(t, record.SectorName)
	assert.Nil(t, record.SubsectorName)
}

func TestLeadingTextTakesFirstPagesAndCaps(t *testing.T) {
	pages := []pdftext.Page{
		{PageNumber: 1, Text: "first page"},
		{PageNumber: 2, Text: "second page"},
		{PageNumber: 3, Text: "third page"},
		{PageNumber: 4, Text: "fourth page"},
	}

	text := leadingText(pages, 3)
	assert.Contains(t, text, "first page")
	assert.Contains(t, text, "third page")
	assert.NotContains(t, text, "fourth page")

	huge := []pdftext.Page{{PageNumber: 1, Text: strings.Repeat("x", 20000)}}
	assert.Equal(t, 8000, len(leadingText(huge, 3)))
}
