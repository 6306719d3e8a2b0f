package taxonomy

import (
	"log"
	"sync"

	"vofc-ingest-be/pkg/embedding"
)

// SeedCache persists precomputed seed embeddings so a restart does not
// re-embed the whole vocabulary. Implemented by the taxonomy embedding
// repository; a nil cache just recomputes.
type SeedCache interface {
	Load(label string) ([][]float32, bool)
	Save(label string, vectors [][]float32)
}

// SemanticScorer holds unit-normalized seed embeddings per label and
// scores query text by maximum cosine similarity. Construction is
// expensive (one embedding call per seed); after Prime it is read-only
// and safe for concurrent use.
type SemanticScorer struct {
	provider embedding.EmbeddingProvider
	cache    SeedCache

	mu    sync.RWMutex
	seeds map[string][][]float32
}

func NewSemanticScorer(provider embedding.EmbeddingProvider, cache SeedCache) *SemanticScorer {
	return &SemanticScorer{
		provider: provider,
		cache:    cache,
		seeds:    make(map[string][][]float32),
	}
}

// Prime computes (or loads) seed embeddings for a label. Embedding
// failures disable the label silently: semantic scoring is best-effort
// on top of keyword scoring, never a gate.
func (s *SemanticScorer) Prime(label string, seedTexts []string) {
	if s == nil || s.provider == nil {
		return
	}

	if s.cache != nil {
		if vectors, ok := s.cache.Load(label); ok && len(vectors) > 0 {
			s.mu.Lock()
			s.seeds[label] = vectors
			s.mu.Unlock()
			return
		}
	}

	var vectors [][]float32
	for _, text := range seedTexts {
		vec, err := s.provider.Generate(text)
		if err != nil {
			log.Printf("[WARN] Semantic seed embedding failed for %q: %v", label, err)
			return
		}
		vectors = append(vectors, vec)
	}

	s.mu.Lock()
	s.seeds[label] = vectors
	s.mu.Unlock()

	if s.cache != nil {
		s.cache.Save(label, vectors)
	}
}

// Embed returns the unit-normalized embedding of query text, or nil if
// the provider is unavailable.
func (s *SemanticScorer) Embed(text string) []float32 {
	if s == nil || s.provider == nil {
		return nil
	}
	vec, err := s.provider.Generate(text)
	if err != nil {
		return nil
	}
	return vec
}

// Score returns the maximum cosine similarity between the query vector
// and the label's seeds; zero when either side is missing.
func (s *SemanticScorer) Score(query []float32, label string) float64 {
	if s == nil || len(query) == 0 {
		return 0
	}
	s.mu.RLock()
	vectors := s.seeds[label]
	s.mu.RUnlock()

	best := 0.0
	for _, vec := range vectors {
		if sim := embedding.CosineSimilarity(query, vec); sim > best {
			best = sim
		}
	}
	return best
}
