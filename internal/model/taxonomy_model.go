package model

import (
	"time"

	"github.com/google/uuid"
)

type Sector struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Sector) TableName() string {
	return "sectors"
}

type Subsector struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SectorId  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Subsector) TableName() string {
	return "subsectors"
}

type Discipline struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Category  string    `gorm:"type:varchar(32);not null;default:'physical'"`
	Active    bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Discipline) TableName() string {
	return "disciplines"
}

type DisciplineSubtype struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DisciplineId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_subtype_discipline_name"`
	Name         string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_subtype_discipline_name"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (DisciplineSubtype) TableName() string {
	return "discipline_subtypes"
}
