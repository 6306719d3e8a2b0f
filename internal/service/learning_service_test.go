package service

import (
	"context"
	"testing"

	"vofc-ingest-be/internal/dto"
	"vofc-ingest-be/internal/entity"
	"vofc-ingest-be/internal/repository/specification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLearningRepository struct {
	events []*entity.LearningEvent
	stats  map[string]*entity.ModelStats
}

func newFakeLearningRepository() *fakeLearningRepository {
	return &fakeLearningRepository{stats: make(map[string]*entity.ModelStats)}
}

func (r *fakeLearningRepository) AppendEvent(ctx context.Context, event *entity.LearningEvent) error {
	r.events = append(r.events, event)
	return nil
}

func (r *fakeLearningRepository) FindEvents(ctx context.Context, specs ...specification.Specification) ([]*entity.LearningEvent, error) {
	return r.events, nil
}

func (r *fakeLearningRepository) FindStats(ctx context.Context, modelVersion string) (*entity.ModelStats, error) {
	return r.stats[modelVersion], nil
}

func (r *fakeLearningRepository) SaveStats(ctx context.Context, stats *entity.ModelStats) error {
	r.stats[stats.ModelVersion] = stats
	return nil
}

func TestUpdateStatsFirstRun(t *testing.T) {
	repo := newFakeLearningRepository()
	ls := &learningService{}

	err := ls.updateStats(context.Background(), repo, dto.PublishRunCompletedMessage{
		ModelVersion:    "llama3:latest",
		SourceFile:      "site-guide.pdf",
		Vulnerabilities: 10,
		Ofcs:            24,
		ElapsedSeconds:  42.5,
	})
	require.NoError(t, err)

	stats := repo.stats["llama3:latest"]
	require.NotNil(t, stats)
	assert.Equal(t, int64(1), stats.TotalRuns)
	assert.Equal(t, int64(10), stats.TotalVulnerabilities)
	assert.Equal(t, int64(24), stats.TotalOfcs)
	assert.InDelta(t, 10.0, stats.AvgVulnerabilities, 1e-9)
	assert.InDelta(t, 24.0, stats.AvgOfcs, 1e-9)
	assert.InDelta(t, 42.5, stats.AvgElapsedSeconds, 1e-9)
}

func TestUpdateStatsRollingAverage(t *testing.T) {
	repo := newFakeLearningRepository()
	ls := &learningService{}

	runs := []dto.PublishRunCompletedMessage{
		{ModelVersion: "llama3:latest", Vulnerabilities: 10, Ofcs: 20, ElapsedSeconds: 30},
		{ModelVersion: "llama3:latest", Vulnerabilities: 20, Ofcs: 40, ElapsedSeconds: 60},
		{ModelVersion: "llama3:latest", Vulnerabilities: 30, Ofcs: 60, ElapsedSeconds: 90},
	}
	for _, run := range runs {
		require.NoError(t, ls.updateStats(context.Background(), repo, run))
	}

	stats := repo.stats["llama3:latest"]
	require.NotNil(t, stats)
	assert.Equal(t, int64(3), stats.TotalRuns)
	assert.Equal(t, int64(60), stats.TotalVulnerabilities)
	assert.Equal(t, int64(120), stats.TotalOfcs)
	assert.InDelta(t, 20.0, stats.AvgVulnerabilities, 1e-9)
	assert.InDelta(t, 40.0, stats.AvgOfcs, 1e-9)
	assert.InDelta(t, 60.0, stats.AvgElapsedSeconds, 1e-9)
}

func TestUpdateStatsKeepsModelsSeparate(t *testing.T) {
	repo := newFakeLearningRepository()
	ls := &learningService{}

	require.NoError(t, ls.updateStats(context.Background(), repo, dto.PublishRunCompletedMessage{
		ModelVersion: "llama3:latest", Vulnerabilities: 10,
	}))
	require.NoError(t, ls.updateStats(context.Background(), repo, dto.PublishRunCompletedMessage{
		ModelVersion: "mistral:7b", Vulnerabilities: 4,
	}))

	assert.Equal(t, int64(1), repo.stats["llama3:latest"].TotalRuns)
	assert.Equal(t, int64(1), repo.stats["mistral:7b"].TotalRuns)
	assert.InDelta(t, 4.0, repo.stats["mistral:7b"].AvgVulnerabilities, 1e-9)
}
