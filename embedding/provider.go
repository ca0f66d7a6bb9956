package embedding

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/finovai/finov/cache"
	"github.com/finovai/finov/config"
)

// Provider turns free text into a fixed-dimension vector. The
// dimensionality must match the configured index.
type Provider interface {
	GetEmbedding(ctx context.Context, text string) ([]float32, error)
	Dimensions() int
}

// NewEmbeddingProvider creates an embedding provider from config.
func NewEmbeddingProvider(cfg config.EmbeddingConfig) (Provider, error) {
	switch strings.ToLower(cfg.Provider) {
	case "openai":
		return newOpenAIProvider(cfg)
	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", cfg.Provider)
	}
}

const cacheTTL = 10 * time.Minute

type cachedProvider struct {
	inner Provider
	cache cache.Cache
}

// NewCached wraps a provider with an in-process LRU keyed by the embedded
// text. Reuse only; a miss always falls through to the inner provider.
func NewCached(inner Provider, c cache.Cache) Provider {
	return &cachedProvider{inner: inner, cache: c}
}

func (p *cachedProvider) GetEmbedding(ctx context.Context, text string) ([]float32, error) {
	key := cache.Key(text)
	if v, ok := p.cache.Get(key); ok {
		if vec, ok := v.([]float32); ok {
			return vec, nil
		}
	}
	vec, err := p.inner.GetEmbedding(ctx, text)
	if err != nil {
		return nil, err
	}
	p.cache.Set(key, vec, cacheTTL)
	return vec, nil
}

func (p *cachedProvider) Dimensions() int { return p.inner.Dimensions() }
