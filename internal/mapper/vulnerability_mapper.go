package mapper

import (
	"vofc-ingest-be/internal/entity"
	"vofc-ingest-be/internal/model"
)

type VulnerabilityMapper struct{}

func NewVulnerabilityMapper() *VulnerabilityMapper {
	return &VulnerabilityMapper{}
}

func (m *VulnerabilityMapper) ToEntity(v *model.Vulnerability) *entity.Vulnerability {
	if v == nil {
		return nil
	}
	return &entity.Vulnerability{
		Id:                v.Id,
		SubmissionId:      v.SubmissionId,
		DedupeKey:         v.DedupeKey,
		VulnerabilityText: v.VulnerabilityText,
		DisciplineId:      v.DisciplineId,
		SubtypeName:       v.SubtypeName,
		SectorId:          v.SectorId,
		SubsectorId:       v.SubsectorId,
		Confidence:        v.Confidence,
		ImpactLevel:       v.ImpactLevel,
		CreatedAt:         v.CreatedAt,
	}
}

func (m *VulnerabilityMapper) ToModel(v *entity.Vulnerability) *model.Vulnerability {
	if v == nil {
		return nil
	}
	return &model.Vulnerability{
		Id:                v.Id,
		SubmissionId:      v.SubmissionId,
		DedupeKey:         v.DedupeKey,
		VulnerabilityText: v.VulnerabilityText,
		DisciplineId:      v.DisciplineId,
		SubtypeName:       v.SubtypeName,
		SectorId:          v.SectorId,
		SubsectorId:       v.SubsectorId,
		Confidence:        v.Confidence,
		ImpactLevel:       v.ImpactLevel,
		CreatedAt:         v.CreatedAt,
	}
}

func (m *VulnerabilityMapper) ToEntities(vulns []*model.Vulnerability) []*entity.Vulnerability {
	entities := make([]*entity.Vulnerability, len(vulns))
	for i, v := range vulns {
		entities[i] = m.ToEntity(v)
	}
	return entities
}
