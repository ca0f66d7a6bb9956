package retriever

import (
	"context"

	"github.com/finovai/finov/schema"
)

// Retriever defines a unified search interface over a knowledge source.
type Retriever interface {
	Type() string
	Search(ctx context.Context, query string, opts *schema.SearchOptions) ([]schema.SearchResult, error)
}
