package entity

import (
	"time"

	"github.com/google/uuid"
)

// LearningEvent is one per-run metrics record. Events only accumulate;
// they never influence the run that produced them.
type LearningEvent struct {
	Id                       uuid.UUID
	ModelVersion             string
	SourceFile               string
	VulnerabilitiesExtracted int
	OfcsExtracted            int
	ElapsedSeconds           float64
	CreatedAt                time.Time
}

// ModelStats is the rolling aggregate row per model version.
type ModelStats struct {
	ModelVersion         string
	TotalRuns            int64
	TotalVulnerabilities int64
	TotalOfcs            int64
	AvgVulnerabilities   float64
	AvgOfcs              float64
	AvgElapsedSeconds    float64
	UpdatedAt            time.Time
}
