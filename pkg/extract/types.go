package extract

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
)

// FlexibleStrings accepts either a JSON array of strings or a single
// string (the model occasionally returns a lone option unwrapped).
type FlexibleStrings []string

func (f *FlexibleStrings) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*f = list
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*f = nil
		} else {
			*f = []string{single}
		}
		return nil
	}
	// Malformed entries degrade to empty rather than failing the chunk.
	*f = nil
	return nil
}

// FlexibleString tolerates numbers where a string is expected (page
// numbers come back as either).
type FlexibleString string

func (f *FlexibleString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexibleString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexibleString(n.String())
		return nil
	}
	*f = ""
	return nil
}

// RawRecord is the per-record shape the model returns. Every field is
// optional and may be malformed; normalization repairs what it can.
type RawRecord struct {
	Vulnerability string          `json:"vulnerability"`
	Options       FlexibleStrings `json:"options"`
	Discipline    string          `json:"discipline"`
	Sector        string          `json:"sector"`
	Subsector     string          `json:"subsector"`
	Confidence    string          `json:"confidence"`
	ImpactLevel   string          `json:"impact_level"`
	Page          FlexibleString  `json:"page"`

	// ChunkID is stamped by the merger from the contributing chunk; a
	// merged record keeps the first contributor's ID.
	ChunkID string `json:"-"`
}

// ChunkResult is what one chunk contributed: records on success, an
// error note on parse/model failure (the chunk then contributes zero
// records and the pipeline continues).
type ChunkResult struct {
	ChunkID   string      `json:"chunk_id"`
	PageRange string      `json:"page_range"`
	Records   []RawRecord `json:"records"`
	Error     string      `json:"error,omitempty"`
}

// RawTaxonomy keeps the model's free-text taxonomy fields for
// provenance after resolution has replaced them with IDs.
type RawTaxonomy struct {
	Discipline string `json:"discipline,omitempty"`
	Sector     string `json:"sector,omitempty"`
	Subsector  string `json:"subsector,omitempty"`
}

// NormalizedRecord is the validated, resolver-annotated record that the
// persistence layer consumes and the result JSON carries.
type NormalizedRecord struct {
	Vulnerability  string      `json:"vulnerability"`
	Options        []string    `json:"options"`
	DisciplineID   *uuid.UUID  `json:"discipline_id"`
	DisciplineName *string     `json:"discipline"`
	SubtypeName    *string     `json:"discipline_subtype,omitempty"`
	SectorID       *uuid.UUID  `json:"sector_id"`
	SectorName     *string     `json:"sector"`
	SubsectorID    *uuid.UUID  `json:"subsector_id"`
	SubsectorName  *string     `json:"subsector"`
	Confidence     string      `json:"confidence"`
	ImpactLevel    string      `json:"impact_level"`
	DedupeKey      string      `json:"dedupe_key"`
	PageRef        *string     `json:"page_ref"`
	ChunkID        *string     `json:"chunk_id"`
	UnresolvedRaw  RawTaxonomy `json:"unresolved_raw"`
}

// MergeKey identifies a vulnerability within one submission: SHA-256 of
// the lowercased, trimmed vulnerability text.
func MergeKey(vulnerability string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(vulnerability))))
	return hex.EncodeToString(sum[:])
}

// DedupeKey identifies a vulnerability across submissions: SHA-256 of
// the lowercased vulnerability text concatenated with its first OFC.
func DedupeKey(vulnerability, firstOption string) string {
	h := sha256.New()
	h.Write([]byte(strings.ToLower(strings.TrimSpace(vulnerability))))
	h.Write([]byte(firstOption))
	return hex.EncodeToString(h.Sum(nil))
}
