package mapper

import (
	"vofc-ingest-be/internal/entity"
	"vofc-ingest-be/internal/model"
)

type LearningMapper struct{}

func NewLearningMapper() *LearningMapper {
	return &LearningMapper{}
}

func (m *LearningMapper) EventToEntity(e *model.LearningEvent) *entity.LearningEvent {
	if e == nil {
		return nil
	}
	return &entity.LearningEvent{
		Id:                       e.Id,
		ModelVersion:             e.ModelVersion,
		SourceFile:               e.SourceFile,
		VulnerabilitiesExtracted: e.VulnerabilitiesExtracted,
		OfcsExtracted:            e.OfcsExtracted,
		ElapsedSeconds:           e.ElapsedSeconds,
		CreatedAt:                e.CreatedAt,
	}
}

func (m *LearningMapper) EventToModel(e *entity.LearningEvent) *model.LearningEvent {
	if e == nil {
		return nil
	}
	return &model.LearningEvent{
		Id:                       e.Id,
		ModelVersion:             e.ModelVersion,
		SourceFile:               e.SourceFile,
		VulnerabilitiesExtracted: e.VulnerabilitiesExtracted,
		OfcsExtracted:            e.OfcsExtracted,
		ElapsedSeconds:           e.ElapsedSeconds,
		CreatedAt:                e.CreatedAt,
	}
}

func (m *LearningMapper) StatsToEntity(s *model.ModelStats) *entity.ModelStats {
	if s == nil {
		return nil
	}
	return &entity.ModelStats{
		ModelVersion:         s.ModelVersion,
		TotalRuns:            s.TotalRuns,
		TotalVulnerabilities: s.TotalVulnerabilities,
		TotalOfcs:            s.TotalOfcs,
		AvgVulnerabilities:   s.AvgVulnerabilities,
		AvgOfcs:              s.AvgOfcs,
		AvgElapsedSeconds:    s.AvgElapsedSeconds,
		UpdatedAt:            s.UpdatedAt,
	}
}

func (m *LearningMapper) StatsToModel(s *entity.ModelStats) *model.ModelStats {
	if s == nil {
		return nil
	}
	return &model.ModelStats{
		ModelVersion:         s.ModelVersion,
		TotalRuns:            s.TotalRuns,
		TotalVulnerabilities: s.TotalVulnerabilities,
		TotalOfcs:            s.TotalOfcs,
		AvgVulnerabilities:   s.AvgVulnerabilities,
		AvgOfcs:              s.AvgOfcs,
		AvgElapsedSeconds:    s.AvgElapsedSeconds,
		UpdatedAt:            s.UpdatedAt,
	}
}
