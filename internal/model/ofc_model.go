package model

import (
	"time"

	"github.com/google/uuid"
)

type Ofc struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SubmissionId uuid.UUID `gorm:"type:uuid;not null;index"`
	OptionText   string    `gorm:"type:text;not null;index:idx_ofc_option_text,length:256"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (Ofc) TableName() string {
	return "submission_ofcs"
}

type VulnerabilityOfcLink struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SubmissionId    uuid.UUID `gorm:"type:uuid;not null;index"`
	VulnerabilityId uuid.UUID `gorm:"type:uuid;not null;index:idx_vuln_ofc,unique"`
	OfcId           uuid.UUID `gorm:"type:uuid;not null;index:idx_vuln_ofc,unique"`
	Position        int       `gorm:"not null;default:0"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
}

func (VulnerabilityOfcLink) TableName() string {
	return "submission_vulnerability_ofc_links"
}

type OfcSource struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OfcId     uuid.UUID `gorm:"type:uuid;not null;index"`
	SourceId  uuid.UUID `gorm:"type:uuid;not null;index"`
	PageRef   *string   `gorm:"type:varchar(32)"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (OfcSource) TableName() string {
	return "submission_ofc_sources"
}
