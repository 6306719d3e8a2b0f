package contract

import (
	"context"

	"vofc-ingest-be/internal/entity"
	"vofc-ingest-be/internal/repository/specification"
)

type OfcRepository interface {
	Create(ctx context.Context, ofc *entity.Ofc) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Ofc, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	Delete(ctx context.Context, specs ...specification.Specification) (int64, error)

	CreateLink(ctx context.Context, link *entity.VulnerabilityOfcLink) error
	LinkExists(ctx context.Context, link *entity.VulnerabilityOfcLink) (bool, error)
	CreateSourceLink(ctx context.Context, link *entity.OfcSource) error
	DeleteLinks(ctx context.Context, specs ...specification.Specification) (int64, error)
	DeleteSourceLinks(ctx context.Context, specs ...specification.Specification) (int64, error)
}
