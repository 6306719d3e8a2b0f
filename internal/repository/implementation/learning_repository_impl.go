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
	"gorm.io/gorm/clause"
)

type LearningRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LearningMapper
}

func NewLearningRepository(db *gorm.DB) contract.LearningRepository {
	return &LearningRepositoryImpl{
		db:     db,
		mapper: mapper.NewLearningMapper(),
	}
}

func (r *LearningRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *LearningRepositoryImpl) AppendEvent(ctx context.Context, event *entity.LearningEvent) error {
	m := r.mapper.EventToModel(event)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*event = *r.mapper.EventToEntity(m)
	return nil
}

func (r *LearningRepositoryImpl) FindEvents(ctx context.Context, specs ...specification.Specification) ([]*entity.LearningEvent, error) {
	var models []*model.LearningEvent
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.LearningEvent, len(models))
	for i, m := range models {
		entities[i] = r.mapper.EventToEntity(m)
	}
	return entities, nil
}

func (r *LearningRepositoryImpl) FindStats(ctx context.Context, modelVersion string) (*entity.ModelStats, error) {
	var m model.ModelStats
	err := r.db.WithContext(ctx).Where("model_version = ?", modelVersion).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.StatsToEntity(&m), nil
}

func (r *LearningRepositoryImpl) SaveStats(ctx context.Context, stats *entity.ModelStats) error {
	m := r.mapper.StatsToModel(stats)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "model_version"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_runs", "total_vulnerabilities", "total_ofcs",
			"avg_vulnerabilities", "avg_ofcs", "avg_elapsed_seconds",
		}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*stats = *r.mapper.StatsToEntity(m)
	return nil
}
