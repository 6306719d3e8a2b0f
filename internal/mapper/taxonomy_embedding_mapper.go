package mapper

import (
	"vofc-ingest-be/internal/entity"
	"vofc-ingest-be/internal/model"

	"github.com/pgvector/pgvector-go"
)

type TaxonomyEmbeddingMapper struct{}

func NewTaxonomyEmbeddingMapper() *TaxonomyEmbeddingMapper {
	return &TaxonomyEmbeddingMapper{}
}

func (m *TaxonomyEmbeddingMapper) ToEntity(e *model.TaxonomyEmbedding) *entity.TaxonomyEmbedding {
	if e == nil {
		return nil
	}
	return &entity.TaxonomyEmbedding{
		Id:        e.Id,
		Label:     e.Label,
		SeedIndex: e.SeedIndex,
		Embedding: e.Embedding.Slice(),
		CreatedAt: e.CreatedAt,
	}
}

func (m *TaxonomyEmbeddingMapper) ToModel(e *entity.TaxonomyEmbedding) *model.TaxonomyEmbedding {
	if e == nil {
		return nil
	}
	return &model.TaxonomyEmbedding{
		Id:        e.Id,
		Label:     e.Label,
		SeedIndex: e.SeedIndex,
		Embedding: pgvector.NewVector(e.Embedding),
		CreatedAt: e.CreatedAt,
	}
}

func (m *TaxonomyEmbeddingMapper) ToEntities(embeddings []*model.TaxonomyEmbedding) []*entity.TaxonomyEmbedding {
	entities := make([]*entity.TaxonomyEmbedding, len(embeddings))
	for i, e := range embeddings {
		entities[i] = m.ToEntity(e)
	}
	return entities
}
