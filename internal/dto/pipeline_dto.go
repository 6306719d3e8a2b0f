package dto

import (
	"time"

	"github.com/google/uuid"
)

// RecordDTO is one normalized record in the result JSON and in the
// submission payload.
type RecordDTO struct {
	Vulnerability string     `json:"vulnerability"`
	Options       []string   `json:"options"`
	Discipline    *string    `json:"discipline"`
	DisciplineId  *uuid.UUID `json:"discipline_id"`
	Subtype       *string    `json:"subtype,omitempty"`
	Sector        *string    `json:"sector"`
	SectorId      *uuid.UUID `json:"sector_id"`
	Subsector     *string    `json:"subsector"`
	SubsectorId   *uuid.UUID `json:"subsector_id"`
	Confidence    string     `json:"confidence"`
	ImpactLevel   string     `json:"impact_level"`
	PageRef       *string    `json:"page_ref"`
	ChunkId       *string    `json:"chunk_id"`
	DedupeKey     string     `json:"dedupe_key"`
	Error         string     `json:"error,omitempty"`
}

// ClassificationDTO is the document-level sector/subsector result.
type ClassificationDTO struct {
	Sector      *string    `json:"sector"`
	SectorId    *uuid.UUID `json:"sector_id"`
	Subsector   *string    `json:"subsector"`
	SubsectorId *uuid.UUID `json:"subsector_id"`
	Confidence  float64    `json:"confidence"`
}

// ChunkErrorDTO captures a per-chunk failure that did not stop the run.
type ChunkErrorDTO struct {
	ChunkId string `json:"chunk_id"`
	Error   string `json:"error"`
}

// ResultDTO is the per-file result JSON written to processed/ and
// stored as the submission payload.
type ResultDTO struct {
	Source            string             `json:"source"`
	ProcessedAt       time.Time          `json:"processed_at"`
	ModelVersion      string             `json:"model_version,omitempty"`
	TotalRecords      int                `json:"total_records"`
	Records           []RecordDTO        `json:"records"`
	Classification    *ClassificationDTO `json:"document_classification,omitempty"`
	ChunkErrors       []ChunkErrorDTO    `json:"chunk_errors,omitempty"`
	DroppedRecords    []string           `json:"dropped_records,omitempty"`
	PersistenceErrors []string           `json:"persistence_errors,omitempty"`
}

// PersistCountsDTO summarizes one persistence pass.
type PersistCountsDTO struct {
	Inserted int `json:"inserted"`
	Linked   int `json:"linked"`
	Skipped  int `json:"skipped"`
}

// PersistResultDTO is what the persistence layer returns to the
// pipeline.
type PersistResultDTO struct {
	SubmissionId uuid.UUID        `json:"submission_id"`
	Counts       PersistCountsDTO `json:"counts"`
}
