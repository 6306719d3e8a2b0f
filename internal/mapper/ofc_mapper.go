package mapper

import (
	"vofc-ingest-be/internal/entity"
	"vofc-ingest-be/internal/model"
)

type OfcMapper struct{}

func NewOfcMapper() *OfcMapper {
	return &OfcMapper{}
}

func (m *OfcMapper) ToEntity(o *model.Ofc) *entity.Ofc {
	if o == nil {
		return nil
	}
	return &entity.Ofc{
		Id:           o.Id,
		SubmissionId: o.SubmissionId,
		OptionText:   o.OptionText,
		CreatedAt:    o.CreatedAt,
	}
}

func (m *OfcMapper) ToModel(o *entity.Ofc) *model.Ofc {
	if o == nil {
		return nil
	}
	return &model.Ofc{
		Id:           o.Id,
		SubmissionId: o.SubmissionId,
		OptionText:   o.OptionText,
		CreatedAt:    o.CreatedAt,
	}
}

func (m *OfcMapper) LinkToEntity(l *model.VulnerabilityOfcLink) *entity.VulnerabilityOfcLink {
	if l == nil {
		return nil
	}
	return &entity.VulnerabilityOfcLink{
		Id:              l.Id,
		SubmissionId:    l.SubmissionId,
		VulnerabilityId: l.VulnerabilityId,
		OfcId:           l.OfcId,
		Position:        l.Position,
		CreatedAt:       l.CreatedAt,
	}
}

func (m *OfcMapper) LinkToModel(l *entity.VulnerabilityOfcLink) *model.VulnerabilityOfcLink {
	if l == nil {
		return nil
	}
	return &model.VulnerabilityOfcLink{
		Id:              l.Id,
		SubmissionId:    l.SubmissionId,
		VulnerabilityId: l.VulnerabilityId,
		OfcId:           l.OfcId,
		Position:        l.Position,
		CreatedAt:       l.CreatedAt,
	}
}

func (m *OfcMapper) SourceLinkToEntity(l *model.OfcSource) *entity.OfcSource {
	if l == nil {
		return nil
	}
	return &entity.OfcSource{
		Id:        l.Id,
		OfcId:     l.OfcId,
		SourceId:  l.SourceId,
		PageRef:   l.PageRef,
		CreatedAt: l.CreatedAt,
	}
}

func (m *OfcMapper) SourceLinkToModel(l *entity.OfcSource) *model.OfcSource {
	if l == nil {
		return nil
	}
	return &model.OfcSource{
		Id:        l.Id,
		OfcId:     l.OfcId,
		SourceId:  l.SourceId,
		PageRef:   l.PageRef,
		CreatedAt: l.CreatedAt,
	}
}
