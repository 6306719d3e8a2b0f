package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Submission struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SourceFile   string         `gorm:"type:varchar(512);not null;index"`
	Status       string         `gorm:"type:varchar(32);not null;default:'pending_review';index"`
	ModelVersion string         `gorm:"type:varchar(128)"`
	Payload      datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
}

func (Submission) TableName() string {
	return "submissions"
}
