package retriever

import (
	"context"
	"errors"
	"testing"

	"github.com/finovai/finov/schema"
)

type fakeEmbedder struct {
	vec   []float32
	err   error
	texts []string
}

func (f *fakeEmbedder) GetEmbedding(ctx context.Context, text string) ([]float32, error) {
	f.texts = append(f.texts, text)
	if f.err != nil {
		return nil, f.err
	}
	return f.vec, nil
}

func (f *fakeEmbedder) Dimensions() int { return len(f.vec) }

type fakeStore struct {
	results     []schema.SearchResult
	err         error
	collections []string
	vectors     [][]float32
	opts        []*schema.SearchOptions
}

func (f *fakeStore) SearchDocs(ctx context.Context, collection string, vector []float32, opts *schema.SearchOptions) ([]schema.SearchResult, error) {
	f.collections = append(f.collections, collection)
	f.vectors = append(f.vectors, vector)
	f.opts = append(f.opts, opts)
	if f.err != nil {
		return nil, f.err
	}
	return f.results, nil
}

func (f *fakeStore) Close() error { return nil }

func TestVectorRetriever_EmbedsThenSearches(t *testing.T) {
	embed := &fakeEmbedder{vec: []float32{0.1, 0.2}}
	store := &fakeStore{results: []schema.SearchResult{{Score: 0.9}}}
	r := &VectorRetriever{Embed: embed, Store: store, Collection: "stocks", TopK: 12}

	out, err := r.Search(context.Background(), "tech stocks", &schema.SearchOptions{Namespace: "ns", Filter: "week52_change > 0"})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 result, got %d", len(out))
	}

	if len(embed.texts) != 1 || embed.texts[0] != "tech stocks" {
		t.Errorf("query not embedded: %v", embed.texts)
	}
	if store.collections[0] != "stocks" {
		t.Errorf("wrong collection: %s", store.collections[0])
	}
	opts := store.opts[0]
	if opts.TopK != 12 || opts.Namespace != "ns" || opts.Filter != "week52_change > 0" {
		t.Errorf("options not forwarded: %+v", opts)
	}
}

func TestVectorRetriever_DefaultTopK(t *testing.T) {
	embed := &fakeEmbedder{vec: []float32{0.1}}
	store := &fakeStore{}
	r := &VectorRetriever{Embed: embed, Store: store, Collection: "finov1"}

	if _, err := r.Search(context.Background(), "q", nil); err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if store.opts[0].TopK != 10 {
		t.Errorf("expected default top_k 10, got %d", store.opts[0].TopK)
	}
}

func TestVectorRetriever_EmbedFailureShortCircuits(t *testing.T) {
	embed := &fakeEmbedder{err: errors.New("embedding endpoint down")}
	store := &fakeStore{}
	r := &VectorRetriever{Embed: embed, Store: store, Collection: "finov1"}

	_, err := r.Search(context.Background(), "q", nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if len(store.opts) != 0 {
		t.Error("search must not run when embedding fails")
	}
}
