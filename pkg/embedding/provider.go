package embedding

import "math"

// EmbeddingProvider generates sentence embeddings for the semantic
// taxonomy scorers. Implementations must return unit-normalized vectors
// so cosine similarity reduces to a dot product.
type EmbeddingProvider interface {
	Generate(text string) ([]float32, error)
}

// CosineSimilarity assumes both vectors are unit-normalized.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
	}
	return dot
}

// NormalizeVector normalizes a vector to unit length (magnitude = 1).
// Cosine distance over pgvector columns requires normalized vectors.
func NormalizeVector(vec []float32) []float32 {
	var magnitude float64
	for _, v := range vec {
		magnitude += float64(v) * float64(v)
	}
	magnitude = math.Sqrt(magnitude)

	if magnitude == 0 {
		return vec
	}

	normalized := make([]float32, len(vec))
	for i, v := range vec {
		normalized[i] = float32(float64(v) / magnitude)
	}
	return normalized
}
