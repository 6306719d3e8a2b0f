package embedding

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// CachedProvider wraps another provider with an in-memory TTL cache.
// Taxonomy resolution embeds the same vulnerability text repeatedly
// across retries and reprocessing; the cache keeps those calls local.
type CachedProvider struct {
	inner EmbeddingProvider
	cache *gocache.Cache
}

func NewCachedProvider(inner EmbeddingProvider, ttl time.Duration) *CachedProvider {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &CachedProvider{
		inner: inner,
		cache: gocache.New(ttl, 10*time.Minute),
	}
}

func (p *CachedProvider) Generate(text string) ([]float32, error) {
	key := cacheKey(text)
	if cached, found := p.cache.Get(key); found {
		if vec, ok := cached.([]float32); ok {
			return vec, nil
		}
	}

	vec, err := p.inner.Generate(text)
	if err != nil {
		return nil, err
	}
	p.cache.Set(key, vec, gocache.DefaultExpiration)
	return vec, nil
}

func cacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
