package model

import (
	"time"

	"github.com/google/uuid"
)

type LearningEvent struct {
	Id                       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ModelVersion             string    `gorm:"type:varchar(128);not null;index"`
	SourceFile               string    `gorm:"type:varchar(512);not null"`
	VulnerabilitiesExtracted int       `gorm:"not null;default:0"`
	OfcsExtracted            int       `gorm:"not null;default:0"`
	ElapsedSeconds           float64   `gorm:"not null;default:0"`
	CreatedAt                time.Time `gorm:"autoCreateTime"`
}

func (LearningEvent) TableName() string {
	return "learning_events"
}

type ModelStats struct {
	ModelVersion         string    `gorm:"type:varchar(128);primaryKey"`
	TotalRuns            int64     `gorm:"not null;default:0"`
	TotalVulnerabilities int64     `gorm:"not null;default:0"`
	TotalOfcs            int64     `gorm:"not null;default:0"`
	AvgVulnerabilities   float64   `gorm:"not null;default:0"`
	AvgOfcs              float64   `gorm:"not null;default:0"`
	AvgElapsedSeconds    float64   `gorm:"not null;default:0"`
	UpdatedAt            time.Time `gorm:"autoUpdateTime"`
}

func (ModelStats) TableName() string {
	return "model_stats"
}
