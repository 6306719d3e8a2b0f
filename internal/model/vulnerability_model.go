package model

import (
	"time"

	"github.com/google/uuid"
)

type Vulnerability struct {
	Id                uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SubmissionId      uuid.UUID  `gorm:"type:uuid;not null;index"`
	DedupeKey         string     `gorm:"type:char(64);not null;uniqueIndex"`
	VulnerabilityText string     `gorm:"type:text;not null"`
	DisciplineId      *uuid.UUID `gorm:"type:uuid;index"`
	SubtypeName       *string    `gorm:"type:varchar(255)"`
	SectorId          *uuid.UUID `gorm:"type:uuid;index"`
	SubsectorId       *uuid.UUID `gorm:"type:uuid;index"`
	Confidence        string     `gorm:"type:varchar(16);not null;default:'Medium'"`
	ImpactLevel       string     `gorm:"type:varchar(16);not null;default:'Moderate'"`
	CreatedAt         time.Time  `gorm:"autoCreateTime"`
}

func (Vulnerability) TableName() string {
	return "submission_vulnerabilities"
}
