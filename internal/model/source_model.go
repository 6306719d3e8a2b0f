package model

import (
	"time"

	"github.com/google/uuid"
)

type Source struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SubmissionId uuid.UUID `gorm:"type:uuid;not null;index"`
	FileName     string    `gorm:"type:varchar(512);not null;index"`
	Title        string    `gorm:"type:varchar(512)"`
	PageCount    int       `gorm:"not null;default:0"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (Source) TableName() string {
	return "submission_sources"
}
