package entity

import (
	"time"

	"github.com/google/uuid"
)

// Vulnerability is a deduplicated finding. DedupeKey is the stable hash
// of the normalized vulnerability text plus its first OFC; a later
// submission carrying the same key reuses this row.
type Vulnerability struct {
	Id                uuid.UUID
	SubmissionId      uuid.UUID
	DedupeKey         string
	VulnerabilityText string
	DisciplineId      *uuid.UUID
	SubtypeName       *string
	SectorId          *uuid.UUID
	SubsectorId       *uuid.UUID
	Confidence        string
	ImpactLevel       string
	CreatedAt         time.Time
}
