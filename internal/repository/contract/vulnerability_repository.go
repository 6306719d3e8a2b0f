package contract

import (
	"context"

	"vofc-ingest-be/internal/entity"
	"vofc-ingest-be/internal/repository/specification"
)

type VulnerabilityRepository interface {
	Create(ctx context.Context, vulnerability *entity.Vulnerability) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Vulnerability, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Vulnerability, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	Delete(ctx context.Context, specs ...specification.Specification) (int64, error)
}
