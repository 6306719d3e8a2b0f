package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Submission is the root record of one ingest run. Payload holds the
// full result JSON, including per-record errors captured during
// persistence.
type Submission struct {
	Id           uuid.UUID
	SourceFile   string
	Status       string
	ModelVersion string
	Payload      json.RawMessage
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

const (
	SubmissionStatusPendingReview = "pending_review"
	SubmissionStatusApproved      = "approved"
	SubmissionStatusRejected      = "rejected"
)
