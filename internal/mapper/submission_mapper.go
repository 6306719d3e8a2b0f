package mapper

import (
	"time"

	"vofc-ingest-be/internal/entity"
	"vofc-ingest-be/internal/model"

	"gorm.io/datatypes"
)

type SubmissionMapper struct{}

func NewSubmissionMapper() *SubmissionMapper {
	return &SubmissionMapper{}
}

func (m *SubmissionMapper) ToEntity(s *model.Submission) *entity.Submission {
	if s == nil {
		return nil
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	return &entity.Submission{
		Id:           s.Id,
		SourceFile:   s.SourceFile,
		Status:       s.Status,
		ModelVersion: s.ModelVersion,
		Payload:      []byte(s.Payload),
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *SubmissionMapper) ToModel(s *entity.Submission) *model.Submission {
	if s == nil {
		return nil
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	return &model.Submission{
		Id:           s.Id,
		SourceFile:   s.SourceFile,
		Status:       s.Status,
		ModelVersion: s.ModelVersion,
		Payload:      datatypes.JSON(s.Payload),
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *SubmissionMapper) ToEntities(submissions []*model.Submission) []*entity.Submission {
	entities := make([]*entity.Submission, len(submissions))
	for i, s := range submissions {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
