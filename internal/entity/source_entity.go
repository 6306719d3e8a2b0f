package entity

import (
	"time"

	"github.com/google/uuid"
)

// Source is one distinct source document encountered during a run.
type Source struct {
	Id           uuid.UUID
	SubmissionId uuid.UUID
	FileName     string
	Title        string
	PageCount    int
	CreatedAt    time.Time
}
