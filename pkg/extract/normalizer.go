package extract

import (
	"fmt"
	"strings"
)

// Value domains for persisted records. Everything outside the domain is
// coerced to the middle value rather than rejected.
var (
	ConfidenceValues = []string{"High", "Medium", "Low"}
	ImpactValues     = []string{"High", "Moderate", "Low"}
)

// CoerceConfidence maps free text onto {High, Medium, Low}; unknown
// values become Medium.
func CoerceConfidence(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "high":
		return "High"
	case "medium", "moderate", "med":
		return "Medium"
	case "low":
		return "Low"
	default:
		return "Medium"
	}
}

// CoerceImpact maps free text onto {High, Moderate, Low}; unknown
// values become Moderate.
func CoerceImpact(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "high":
		return "High"
	case "moderate", "medium", "med":
		return "Moderate"
	case "low":
		return "Low"
	default:
		return "Moderate"
	}
}

// NormalizeRecord validates and repairs a merged raw record. A record
// with no vulnerability text or no usable option cannot be keyed or
// linked and is dropped (the error is recorded in the run payload).
// Taxonomy IDs are attached afterwards by the resolvers.
func NormalizeRecord(raw RawRecord, chunkID string) (*NormalizedRecord, error) {
	vulnerability := strings.TrimSpace(raw.Vulnerability)
	if vulnerability == "" {
		return nil, fmt.Errorf("record has no vulnerability text")
	}

	options := make([]string, 0, len(raw.Options))
	for _, opt := range raw.Options {
		if trimmed := strings.TrimSpace(opt); trimmed != "" {
			options = append(options, trimmed)
		}
	}
	if len(options) == 0 {
		return nil, fmt.Errorf("record %q has no options for consideration", truncate(vulnerability, 60))
	}

	var pageRef *string
	if raw.Page != "" {
		p := string(raw.Page)
		pageRef = &p
	}

	var chunkRef *string
	if chunkID != "" {
		chunkRef = &chunkID
	}

	return &NormalizedRecord{
		Vulnerability: vulnerability,
		Options:       options,
		Confidence:    CoerceConfidence(raw.Confidence),
		ImpactLevel:   CoerceImpact(raw.ImpactLevel),
		DedupeKey:     DedupeKey(vulnerability, options[0]),
		PageRef:       pageRef,
		ChunkID:       chunkRef,
		UnresolvedRaw: RawTaxonomy{
			Discipline: strings.TrimSpace(raw.Discipline),
			Sector:     strings.TrimSpace(raw.Sector),
			Subsector:  strings.TrimSpace(raw.Subsector),
		},
	}, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
