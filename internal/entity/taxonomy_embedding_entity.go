package entity

import (
	"time"

	"github.com/google/uuid"
)

// TaxonomyEmbedding is a cached seed embedding for a resolver label, so
// restarts skip re-embedding the vocabulary.
type TaxonomyEmbedding struct {
	Id        uuid.UUID
	Label     string
	SeedIndex int
	Embedding []float32
	CreatedAt time.Time
}
