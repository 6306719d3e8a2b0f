package implementation

import (
	"context"

	"vofc-ingest-be/internal/entity"
	"vofc-ingest-be/internal/mapper"
	"vofc-ingest-be/internal/model"
	"vofc-ingest-be/internal/repository/contract"
	"vofc-ingest-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TaxonomyRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TaxonomyMapper
}

func NewTaxonomyRepository(db *gorm.DB) contract.TaxonomyRepository {
	return &TaxonomyRepositoryImpl{
		db:     db,
		mapper: mapper.NewTaxonomyMapper(),
	}
}

func (r *TaxonomyRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TaxonomyRepositoryImpl) FindSectors(ctx context.Context, specs ...specification.Specification) ([]*entity.Sector, error) {
	var models []*model.Sector
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.SectorsToEntities(models), nil
}

func (r *TaxonomyRepositoryImpl) FindSubsectors(ctx context.Context, specs ...specification.Specification) ([]*entity.Subsector, error) {
	var models []*model.Subsector
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.SubsectorsToEntities(models), nil
}

func (r *TaxonomyRepositoryImpl) FindDisciplines(ctx context.Context, specs ...specification.Specification) ([]*entity.Discipline, error) {
	var models []*model.Discipline
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.DisciplinesToEntities(models), nil
}

func (r *TaxonomyRepositoryImpl) FindSubtypes(ctx context.Context, specs ...specification.Specification) ([]*entity.DisciplineSubtype, error) {
	var models []*model.DisciplineSubtype
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.SubtypesToEntities(models), nil
}

func (r *TaxonomyRepositoryImpl) UpsertSector(ctx context.Context, sector *entity.Sector) error {
	m := r.mapper.SectorToModel(sector)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(m).Error
	if err != nil {
		return err
	}
	// A conflicting insert returns no row, so the generated id stays
	// zero. Fetch the existing row before callers wire children to it.
	if m.Id == uuid.Nil {
		if err := r.db.WithContext(ctx).Where("name = ?", m.Name).First(m).Error; err != nil {
			return err
		}
	}
	*sector = *r.mapper.SectorToEntity(m)
	return nil
}

func (r *TaxonomyRepositoryImpl) UpsertSubsector(ctx context.Context, subsector *entity.Subsector) error {
	m := r.mapper.SubsectorToModel(subsector)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"sector_id"}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	if m.Id == uuid.Nil {
		if err := r.db.WithContext(ctx).Where("name = ?", m.Name).First(m).Error; err != nil {
			return err
		}
	}
	*subsector = *r.mapper.SubsectorToEntity(m)
	return nil
}

func (r *TaxonomyRepositoryImpl) UpsertDiscipline(ctx context.Context, discipline *entity.Discipline) error {
	m := r.mapper.DisciplineToModel(discipline)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"category", "active"}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	if m.Id == uuid.Nil {
		if err := r.db.WithContext(ctx).Where("name = ?", m.Name).First(m).Error; err != nil {
			return err
		}
	}
	*discipline = *r.mapper.DisciplineToEntity(m)
	return nil
}

func (r *TaxonomyRepositoryImpl) UpsertSubtype(ctx context.Context, subtype *entity.DisciplineSubtype) error {
	m := r.mapper.SubtypeToModel(subtype)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "discipline_id"}, {Name: "name"}},
		DoNothing: true,
	}).Create(m).Error
	if err != nil {
		return err
	}
	if m.Id == uuid.Nil {
		if err := r.db.WithContext(ctx).
			Where("discipline_id = ? AND name = ?", m.DisciplineId, m.Name).
			First(m).Error; err != nil {
			return err
		}
	}
	*subtype = *r.mapper.SubtypeToEntity(m)
	return nil
}
