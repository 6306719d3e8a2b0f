package taxonomy

import (
	"errors"
	"testing"
)

// stubEmbedder returns canned vectors by exact text.
type stubEmbedder struct {
	vectors map[string][]float32
}

func (s *stubEmbedder) Generate(text string) ([]float32, error) {
	if vec, ok := s.vectors[text]; ok {
		return vec, nil
	}
	return nil, errors.New("no embedding for text")
}

// memorySeedCache is an in-memory SeedCache for tests.
type memorySeedCache struct {
	entries map[string][][]float32
	saves   int
}

func (m *memorySeedCache) Load(label string) ([][]float32, bool) {
	vecs, ok := m.entries[label]
	return vecs, ok
}

func (m *memorySeedCache) Save(label string, vectors [][]float32) {
	if m.entries == nil {
		m.entries = make(map[string][][]float32)
	}
	m.entries[label] = vectors
	m.saves++
}

func TestSemanticScorerScoresByBestSeed(t *testing.T) {
	provider := &stubEmbedder{vectors: map[string][]float32{
		"fence":  {1, 0},
		"camera": {0, 1},
		"query":  {0.8, 0.6},
	}}
	s := NewSemanticScorer(provider, nil)
	s.Prime("perimeter", []string{"fence"})
	s.Prime("video", []string{"camera"})

	query := s.Embed("query")
	if query == nil {
		t.Fatal("Embed returned nil")
	}

	perimeter := s.Score(query, "perimeter")
	video := s.Score(query, "video")
	if perimeter <= video {
		t.Errorf("perimeter %.2f should outscore video %.2f", perimeter, video)
	}
}

func TestSemanticScorerFailedSeedDisablesLabel(t *testing.T) {
	provider := &stubEmbedder{vectors: map[string][]float32{
		"query": {1, 0},
	}}
	s := NewSemanticScorer(provider, nil)
	s.Prime("broken", []string{"missing seed"})

	if score := s.Score(s.Embed("query"), "broken"); score != 0 {
		t.Errorf("score = %.2f, want 0 for disabled label", score)
	}
}

func TestSemanticScorerUsesCache(t *testing.T) {
	cache := &memorySeedCache{entries: map[string][][]float32{
		"cached": {{1, 0}},
	}}
	// The provider cannot embed the seed text, so a cache miss would
	// disable the label.
	provider := &stubEmbedder{vectors: map[string][]float32{
		"query": {1, 0},
	}}
	s := NewSemanticScorer(provider, cache)
	s.Prime("cached", []string{"never embedded"})

	if score := s.Score(s.Embed("query"), "cached"); score != 1 {
		t.Errorf("score = %.2f, want 1 from cached seed", score)
	}

	s.Prime("fresh", []string{"query"})
	if cache.saves != 1 {
		t.Errorf("saves = %d, want 1", cache.saves)
	}
}

func TestSemanticScorerNilSafety(t *testing.T) {
	var s *SemanticScorer
	s.Prime("label", []string{"text"})
	if got := s.Embed("text"); got != nil {
		t.Errorf("Embed on nil scorer = %v", got)
	}
	if got := s.Score([]float32{1}, "label"); got != 0 {
		t.Errorf("Score on nil scorer = %.2f", got)
	}
}
