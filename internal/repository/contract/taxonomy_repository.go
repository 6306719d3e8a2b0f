package contract

import (
	"context"

	"vofc-ingest-be/internal/entity"
	"vofc-ingest-be/internal/repository/specification"
)

// TaxonomyRepository serves the canonical taxonomy tables. Read-mostly;
// the Upsert methods exist for seeding.
type TaxonomyRepository interface {
	FindSectors(ctx context.Context, specs ...specification.Specification) ([]*entity.Sector, error)
	FindSubsectors(ctx context.Context, specs ...specification.Specification) ([]*entity.Subsector, error)
	FindDisciplines(ctx context.Context, specs ...specification.Specification) ([]*entity.Discipline, error)
	FindSubtypes(ctx context.Context, specs ...specification.Specification) ([]*entity.DisciplineSubtype, error)

	UpsertSector(ctx context.Context, sector *entity.Sector) error
	UpsertSubsector(ctx context.Context, subsector *entity.Subsector) error
	UpsertDiscipline(ctx context.Context, discipline *entity.Discipline) error
	UpsertSubtype(ctx context.Context, subtype *entity.DisciplineSubtype) error
}
