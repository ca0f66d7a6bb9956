package vectordb

import (
	"context"
	"fmt"
	"strings"

	"github.com/finovai/finov/config"
	"github.com/finovai/finov/schema"
)

// VectorStoreProvider runs metadata-filtered nearest-neighbor search over
// stored vectors. Results come back in rank order with raw metadata; the
// formatting boundary is responsible for typing it.
type VectorStoreProvider interface {
	SearchDocs(ctx context.Context, collection string, vector []float32, opts *schema.SearchOptions) ([]schema.SearchResult, error)
	Close() error
}

// NewVectorDBProvider creates a vector store provider from config.
func NewVectorDBProvider(cfg *config.VectorDBConfig) (VectorStoreProvider, error) {
	switch strings.ToLower(cfg.Provider) {
	case "milvus":
		return newMilvusStore(cfg)
	default:
		return nil, fmt.Errorf("unsupported vectordb provider: %s", cfg.Provider)
	}
}
