package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByDedupeKey struct {
	DedupeKey string
}

func (s ByDedupeKey) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("dedupe_key = ?", s.DedupeKey)
}

// ByOptionText matches OFC rows by exact option text.
type ByOptionText struct {
	OptionText string
}

func (s ByOptionText) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("option_text = ?", s.OptionText)
}

// ByName matches taxonomy rows case-insensitively.
type ByName struct {
	Name string
}

func (s ByName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("name ILIKE ?", s.Name)
}

type BySubmissionID struct {
	SubmissionID uuid.UUID
}

func (s BySubmissionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("submission_id = ?", s.SubmissionID)
}

type BySourceFile struct {
	SourceFile string
}

func (s BySourceFile) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("source_file = ?", s.SourceFile)
}

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

type ByModelVersion struct {
	ModelVersion string
}

func (s ByModelVersion) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("model_version = ?", s.ModelVersion)
}

// ByLabel matches taxonomy embedding rows for one resolver label.
type ByLabel struct {
	Label string
}

func (s ByLabel) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("label = ?", s.Label)
}

// BySourceSubmission matches ofc_source rows whose source belongs to a
// submission. The link table itself carries no submission_id.
type BySourceSubmission struct {
	SubmissionID uuid.UUID
}

func (s BySourceSubmission) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("source_id IN (SELECT id FROM submission_sources WHERE submission_id = ?)", s.SubmissionID)
}

type ByDisciplineID struct {
	DisciplineID uuid.UUID
}

func (s ByDisciplineID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("discipline_id = ?", s.DisciplineID)
}

type BySectorID struct {
	SectorID uuid.UUID
}

func (s BySectorID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("sector_id = ?", s.SectorID)
}
