package entity

import (
	"time"

	"github.com/google/uuid"
)

type Sector struct {
	Id        uuid.UUID
	Name      string
	CreatedAt time.Time
}

type Subsector struct {
	Id        uuid.UUID
	SectorId  uuid.UUID
	Name      string
	CreatedAt time.Time
}

type Discipline struct {
	Id        uuid.UUID
	Name      string
	Category  string
	Active    bool
	CreatedAt time.Time
}

type DisciplineSubtype struct {
	Id           uuid.UUID
	DisciplineId uuid.UUID
	Name         string
	CreatedAt    time.Time
}
