package implementation

import (
	"context"
	"errors"

	"vofc-ingest-be/internal/entity"
	"vofc-ingest-be/internal/mapper"
	"vofc-ingest-be/internal/model"
	"vofc-ingest-be/internal/repository/contract"
	"vofc-ingest-be/internal/repository/specification"

	"gorm.io/gorm"
)

type VulnerabilityRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.VulnerabilityMapper
}

func NewVulnerabilityRepository(db *gorm.DB) contract.VulnerabilityRepository {
	return &VulnerabilityRepositoryImpl{
		db:     db,
		mapper: mapper.NewVulnerabilityMapper(),
	}
}

func (r *VulnerabilityRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *VulnerabilityRepositoryImpl) Create(ctx context.Context, vulnerability *entity.Vulnerability) error {
	m := r.mapper.ToModel(vulnerability)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*vulnerability = *r.mapper.ToEntity(m)
	return nil
}

func (r *VulnerabilityRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Vulnerability, error) {
	var m model.Vulnerability
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *VulnerabilityRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Vulnerability, error) {
	var models []*model.Vulnerability
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *VulnerabilityRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Vulnerability{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *VulnerabilityRepositoryImpl) Delete(ctx context.Context, specs ...specification.Specification) (int64, error) {
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	result := query.Delete(&model.Vulnerability{})
	return result.RowsAffected, result.Error
}
