package contract

import (
	"context"

	"vofc-ingest-be/internal/entity"
)

type TaxonomyEmbeddingRepository interface {
	FindByLabel(ctx context.Context, label string) ([]*entity.TaxonomyEmbedding, error)
	ReplaceLabel(ctx context.Context, label string, embeddings []*entity.TaxonomyEmbedding) error
}
