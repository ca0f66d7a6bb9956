package retriever

import (
	"context"
	"fmt"

	"github.com/finovai/finov/embedding"
	"github.com/finovai/finov/schema"
	"github.com/finovai/finov/vectordb"
)

// VectorRetriever implements Retriever on an embedding + vector store
// pair, bound to one collection.
type VectorRetriever struct {
	Embed      embedding.Provider
	Store      vectordb.VectorStoreProvider
	Collection string
	TopK       int
	// Threshold may drop low-scoring hits in the underlying search.
	Threshold float64
}

func (r *VectorRetriever) Type() string { return "vector" }

func (r *VectorRetriever) Search(ctx context.Context, query string, opts *schema.SearchOptions) ([]schema.SearchResult, error) {
	if opts == nil {
		opts = &schema.SearchOptions{}
	}
	if opts.TopK <= 0 {
		if r.TopK > 0 {
			opts.TopK = r.TopK
		} else {
			opts.TopK = 10
		}
	}
	if opts.Threshold == 0 {
		opts.Threshold = r.Threshold
	}

	vec, err := r.Embed.GetEmbedding(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	return r.Store.SearchDocs(ctx, r.Collection, vec, opts)
}
