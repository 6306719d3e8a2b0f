package implementation

import (
	"context"
	"errors"

	"vofc-ingest-be/internal/entity"
	"vofc-ingest-be/internal/mapper"
	"vofc-ingest-be/internal/model"
	"vofc-ingest-be/internal/repository/contract"
	"vofc-ingest-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SubmissionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SubmissionMapper
}

func NewSubmissionRepository(db *gorm.DB) contract.SubmissionRepository {
	return &SubmissionRepositoryImpl{
		db:     db,
		mapper: mapper.NewSubmissionMapper(),
	}
}

func (r *SubmissionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SubmissionRepositoryImpl) Create(ctx context.Context, submission *entity.Submission) error {
	m := r.mapper.ToModel(submission)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*submission = *r.mapper.ToEntity(m)
	return nil
}

func (r *SubmissionRepositoryImpl) UpdatePayload(ctx context.Context, id uuid.UUID, payload []byte) error {
	return r.db.WithContext(ctx).
		Model(&model.Submission{}).
		Where("id = ?", id).
		Update("payload", datatypes.JSON(payload)).Error
}

func (r *SubmissionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Submission, error) {
	var m model.Submission
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SubmissionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Submission, error) {
	var models []*model.Submission
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *SubmissionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Submission{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *SubmissionRepositoryImpl) Delete(ctx context.Context, specs ...specification.Specification) (int64, error) {
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	result := query.Delete(&model.Submission{})
	return result.RowsAffected, result.Error
}
