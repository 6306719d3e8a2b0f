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

type OfcRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.OfcMapper
}

func NewOfcRepository(db *gorm.DB) contract.OfcRepository {
	return &OfcRepositoryImpl{
		db:     db,
		mapper: mapper.NewOfcMapper(),
	}
}

func (r *OfcRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *OfcRepositoryImpl) Create(ctx context.Context, ofc *entity.Ofc) error {
	m := r.mapper.ToModel(ofc)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*ofc = *r.mapper.ToEntity(m)
	return nil
}

func (r *OfcRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Ofc, error) {
	var m model.Ofc
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *OfcRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Ofc{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *OfcRepositoryImpl) Delete(ctx context.Context, specs ...specification.Specification) (int64, error) {
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	result := query.Delete(&model.Ofc{})
	return result.RowsAffected, result.Error
}

func (r *OfcRepositoryImpl) CreateLink(ctx context.Context, link *entity.VulnerabilityOfcLink) error {
	m := r.mapper.LinkToModel(link)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*link = *r.mapper.LinkToEntity(m)
	return nil
}

func (r *OfcRepositoryImpl) LinkExists(ctx context.Context, link *entity.VulnerabilityOfcLink) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.VulnerabilityOfcLink{}).
		Where("vulnerability_id = ? AND ofc_id = ?", link.VulnerabilityId, link.OfcId).
		Count(&count).Error
	return count > 0, err
}

func (r *OfcRepositoryImpl) CreateSourceLink(ctx context.Context, link *entity.OfcSource) error {
	m := r.mapper.SourceLinkToModel(link)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*link = *r.mapper.SourceLinkToEntity(m)
	return nil
}

func (r *OfcRepositoryImpl) DeleteLinks(ctx context.Context, specs ...specification.Specification) (int64, error) {
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	result := query.Delete(&model.VulnerabilityOfcLink{})
	return result.RowsAffected, result.Error
}

func (r *OfcRepositoryImpl) DeleteSourceLinks(ctx context.Context, specs ...specification.Specification) (int64, error) {
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	result := query.Delete(&model.OfcSource{})
	return result.RowsAffected, result.Error
}
