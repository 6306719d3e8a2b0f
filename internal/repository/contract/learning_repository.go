package contract

import (
	"context"

	"vofc-ingest-be/internal/entity"
	"vofc-ingest-be/internal/repository/specification"
)

type LearningRepository interface {
	AppendEvent(ctx context.Context, event *entity.LearningEvent) error
	FindEvents(ctx context.Context, specs ...specification.Specification) ([]*entity.LearningEvent, error)
	FindStats(ctx context.Context, modelVersion string) (*entity.ModelStats, error)
	SaveStats(ctx context.Context, stats *entity.ModelStats) error
}
