package contract

import (
	"context"

	"vofc-ingest-be/internal/entity"
	"vofc-ingest-be/internal/repository/specification"
)

type SourceRepository interface {
	Create(ctx context.Context, source *entity.Source) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Source, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Source, error)
	Delete(ctx context.Context, specs ...specification.Specification) (int64, error)
}
