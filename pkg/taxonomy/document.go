package taxonomy

import (
	"strings"

	"github.com/google/uuid"
)

// SectorRef and SubsectorRef are taxonomy store rows used to attach
// UUIDs to resolved names. Offline runs classify by name only.
type SectorRef struct {
	ID   uuid.UUID
	Name string
}

type SubsectorRef struct {
	ID         uuid.UUID
	SectorID   uuid.UUID
	Name       string
	SectorName string
}

// DocumentContext carries the evidence a classifier scores: PDF
// metadata, the source file name and a slice of extracted body text.
type DocumentContext struct {
	FileName    string
	Title       string
	Subject     string
	Keywords    string
	Description string
	BodyText    string
}

// Classification is a sector/subsector assignment with a confidence in
// [0,1]. All-nil names mean the document could not be classified.
type Classification struct {
	SectorID      *uuid.UUID
	SectorName    *string
	SubsectorID   *uuid.UUID
	SubsectorName *string
	Confidence    float64
}

func (c Classification) IsNull() bool {
	return c.SectorName == nil
}

const (
	// Metadata and file-name hits count double: a title mentioning
	// schools is stronger evidence than a body mention.
	headTextWeight = 2.0

	// KnownSectorBoost favors subsectors under a caller-supplied sector
	// hint without excluding the rest.
	KnownSectorBoost = 1.25

	// DefaultMinConfidence is the floor below which classification
	// returns null names.
	DefaultMinConfidence = 0.25

	// Raw-label resolutions carry fixed confidences so record-level
	// labels can be compared against the document-level result.
	subsectorLabelConfidence = 0.90
	sectorLabelConfidence    = 0.60

	confidenceScale = 10.0
)

// DocumentClassifier assigns a critical-infrastructure sector and
// subsector to a whole document, and resolves per-record sector and
// subsector labels. Read-only after construction.
type DocumentClassifier struct {
	sectorRefs    map[string]SectorRef
	subsectorRefs map[string]SubsectorRef
	semantic      *SemanticScorer
	minConfidence float64
}

func NewDocumentClassifier(sectors []SectorRef, subsectors []SubsectorRef, semantic *SemanticScorer) *DocumentClassifier {
	c := &DocumentClassifier{
		sectorRefs:    make(map[string]SectorRef, len(sectors)),
		subsectorRefs: make(map[string]SubsectorRef, len(subsectors)),
		semantic:      semantic,
		minConfidence: DefaultMinConfidence,
	}
	for _, ref := range sectors {
		c.sectorRefs[strings.ToLower(ref.Name)] = ref
	}
	for _, ref := range subsectors {
		c.subsectorRefs[strings.ToLower(ref.Name)] = ref
	}

	for _, s := range Subsectors {
		semantic.Prime("subsector:"+s.Name, s.SemanticSeeds)
	}
	return c
}

// Classify scores every subsector against the document context.
// A non-empty override names the subsector directly and yields
// confidence 1.0; knownSector boosts subsectors under that sector.
func (c *DocumentClassifier) Classify(doc DocumentContext, knownSector, override string) Classification {
	if override != "" {
		if entry, ok := SubsectorByName(override); ok {
			return c.fromEntry(entry, 1.0)
		}
	}

	head := strings.ToLower(strings.Join([]string{
		doc.FileName, doc.Title, doc.Subject, doc.Keywords, doc.Description,
	}, " "))
	body := strings.ToLower(doc.BodyText)
	headTokens := tokenize(head)
	bodyTokens := tokenize(body)
	query := c.semantic.Embed(strings.TrimSpace(doc.Title + " " + doc.Subject + " " + firstChars(doc.BodyText, 2000)))

	var bestEntry SubsectorEntry
	bestScore := 0.0
	for _, s := range Subsectors {
		score := headTextWeight*c.vocabularyScore(head, headTokens, s) +
			c.vocabularyScore(body, bodyTokens, s) +
			WeightSemantic*c.semantic.Score(query, "subsector:"+s.Name)

		if knownSector != "" && strings.EqualFold(s.SectorName, knownSector) {
			score *= KnownSectorBoost
		}

		if score > bestScore {
			bestScore = score
			bestEntry = s
		}
	}

	confidence := bestScore / confidenceScale
	if confidence > 1.0 {
		confidence = 1.0
	}
	if bestEntry.Name == "" || confidence < c.minConfidence {
		return Classification{Confidence: confidence}
	}
	return c.fromEntry(bestEntry, confidence)
}

// ResolveLabels resolves per-record sector/subsector strings coming out
// of the language model. An explicit subsector label outranks a
// sector-only label.
func (c *DocumentClassifier) ResolveLabels(sector, subsector string) Classification {
	if subsector != "" {
		if entry, ok := SubsectorByName(subsector); ok {
			return c.fromEntry(entry, subsectorLabelConfidence)
		}
	}
	if sector != "" {
		if ref, ok := c.sectorRefs[strings.ToLower(strings.TrimSpace(sector))]; ok {
			name := ref.Name
			id := ref.ID
			return Classification{SectorID: &id, SectorName: &name, Confidence: sectorLabelConfidence}
		}
		// Sector names resolve without a store too, for offline runs.
		for _, s := range Subsectors {
			if equalFoldTrim(s.SectorName, sector) {
				name := s.SectorName
				return Classification{SectorName: &name, Confidence: sectorLabelConfidence}
			}
		}
	}
	return Classification{}
}

func (c *DocumentClassifier) vocabularyScore(lowerText string, tokens map[string]bool, s SubsectorEntry) float64 {
	return WeightKeyword*float64(keywordScore(lowerText, tokens, s.Keywords)) +
		WeightPhrase*float64(phraseScore(lowerText, s.Phrases))
}

func (c *DocumentClassifier) fromEntry(entry SubsectorEntry, confidence float64) Classification {
	subName := entry.Name
	secName := entry.SectorName
	res := Classification{
		SubsectorName: &subName,
		SectorName:    &secName,
		Confidence:    confidence,
	}
	if ref, ok := c.subsectorRefs[strings.ToLower(entry.Name)]; ok {
		subID := ref.ID
		res.SubsectorID = &subID
		if ref.SectorID != uuid.Nil {
			secID := ref.SectorID
			res.SectorID = &secID
		}
	}
	if res.SectorID == nil {
		if ref, ok := c.sectorRefs[strings.ToLower(entry.SectorName)]; ok {
			secID := ref.ID
			res.SectorID = &secID
		}
	}
	return res
}

func firstChars(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
