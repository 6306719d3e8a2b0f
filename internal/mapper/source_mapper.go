package mapper

import (
	"vofc-ingest-be/internal/entity"
	"vofc-ingest-be/internal/model"
)

type SourceMapper struct{}

func NewSourceMapper() *SourceMapper {
	return &SourceMapper{}
}

func (m *SourceMapper) ToEntity(s *model.Source) *entity.Source {
	if s == nil {
		return nil
	}
	return &entity.Source{
		Id:           s.Id,
		SubmissionId: s.SubmissionId,
		FileName:     s.FileName,
		Title:        s.Title,
		PageCount:    s.PageCount,
		CreatedAt:    s.CreatedAt,
	}
}

func (m *SourceMapper) ToModel(s *entity.Source) *model.Source {
	if s == nil {
		return nil
	}
	return &model.Source{
		Id:           s.Id,
		SubmissionId: s.SubmissionId,
		FileName:     s.FileName,
		Title:        s.Title,
		PageCount:    s.PageCount,
		CreatedAt:    s.CreatedAt,
	}
}
