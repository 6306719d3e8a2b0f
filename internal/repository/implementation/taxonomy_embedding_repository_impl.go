package implementation

import (
	"context"

	"vofc-ingest-be/internal/entity"
	"vofc-ingest-be/internal/mapper"
	"vofc-ingest-be/internal/model"
	"vofc-ingest-be/internal/repository/contract"

	"gorm.io/gorm"
)

type TaxonomyEmbeddingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TaxonomyEmbeddingMapper
}

func NewTaxonomyEmbeddingRepository(db *gorm.DB) contract.TaxonomyEmbeddingRepository {
	return &TaxonomyEmbeddingRepositoryImpl{
		db:     db,
		mapper: mapper.NewTaxonomyEmbeddingMapper(),
	}
}

func (r *TaxonomyEmbeddingRepositoryImpl) FindByLabel(ctx context.Context, label string) ([]*entity.TaxonomyEmbedding, error) {
	var models []*model.TaxonomyEmbedding
	err := r.db.WithContext(ctx).
		Where("label = ?", label).
		Order("seed_index ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

// ReplaceLabel swaps all seed rows for a label in one transaction so
// readers never see a half-written seed set.
func (r *TaxonomyEmbeddingRepositoryImpl) ReplaceLabel(ctx context.Context, label string, embeddings []*entity.TaxonomyEmbedding) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("label = ?", label).Delete(&model.TaxonomyEmbedding{}).Error; err != nil {
			return err
		}
		for i, e := range embeddings {
			m := r.mapper.ToModel(e)
			m.Label = label
			m.SeedIndex = i
			if err := tx.Create(m).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
