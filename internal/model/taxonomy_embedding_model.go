package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

type TaxonomyEmbedding struct {
	Id        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Label     string          `gorm:"type:varchar(255);not null;index:idx_taxonomy_embedding_label_seed,unique"`
	SeedIndex int             `gorm:"not null;default:0;index:idx_taxonomy_embedding_label_seed,unique"`
	Embedding pgvector.Vector `gorm:"type:vector(768)"`
	CreatedAt time.Time       `gorm:"autoCreateTime"`
}

func (TaxonomyEmbedding) TableName() string {
	return "taxonomy_embeddings"
}
