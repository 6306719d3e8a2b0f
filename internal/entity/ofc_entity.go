package entity

import (
	"time"

	"github.com/google/uuid"
)

// Ofc is an option for consideration, shared across vulnerabilities by
// exact option text.
type Ofc struct {
	Id           uuid.UUID
	SubmissionId uuid.UUID
	OptionText   string
	CreatedAt    time.Time
}

// VulnerabilityOfcLink ties one OFC to one vulnerability, preserving
// first-seen order via Position.
type VulnerabilityOfcLink struct {
	Id              uuid.UUID
	SubmissionId    uuid.UUID
	VulnerabilityId uuid.UUID
	OfcId           uuid.UUID
	Position        int
	CreatedAt       time.Time
}

// OfcSource records which source document contributed an OFC.
type OfcSource struct {
	Id        uuid.UUID
	OfcId     uuid.UUID
	SourceId  uuid.UUID
	PageRef   *string
	CreatedAt time.Time
}
