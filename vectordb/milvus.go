package vectordb

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/milvus-io/milvus-sdk-go/v2/client"
	"github.com/milvus-io/milvus-sdk-go/v2/entity"

	"github.com/finovai/finov/config"
	"github.com/finovai/finov/metrics"
	"github.com/finovai/finov/schema"
)

const (
	vectorField  = "vector"
	contentField = "text"

	connectTimeout = 10 * time.Second
	defaultTopK    = 10
)

type milvusStore struct {
	cli        client.Client
	metricType entity.MetricType
	searchEf   int
}

func newMilvusStore(cfg *config.VectorDBConfig) (*milvusStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	cli, err := client.NewClient(ctx, client.Config{
		Address:  fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Username: cfg.Username,
		Password: cfg.Password,
		DBName:   cfg.Database,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to milvus at %s:%d: %w", cfg.Host, cfg.Port, err)
	}

	metricType := entity.IP
	if cfg.MetricType != "" {
		metricType = entity.MetricType(cfg.MetricType)
	}
	ef := cfg.SearchEf
	if ef <= 0 {
		ef = 64
	}
	return &milvusStore{cli: cli, metricType: metricType, searchEf: ef}, nil
}

func (s *milvusStore) SearchDocs(ctx context.Context, collection string, vector []float32, opts *schema.SearchOptions) ([]schema.SearchResult, error) {
	if opts == nil {
		opts = &schema.SearchOptions{}
	}
	topK := opts.TopK
	if topK <= 0 {
		topK = defaultTopK
	}
	var partitions []string
	if opts.Namespace != "" {
		partitions = []string{opts.Namespace}
	}

	sp, err := entity.NewIndexHNSWSearchParam(s.searchEf)
	if err != nil {
		return nil, &schema.SearchError{Op: collection, Err: err}
	}

	start := time.Now()
	results, err := s.cli.Search(
		ctx,
		collection,
		partitions,
		opts.Filter,
		[]string{"*"},
		[]entity.Vector{entity.FloatVector(vector)},
		vectorField,
		s.metricType,
		topK,
		sp,
	)
	if err != nil {
		return nil, &schema.SearchError{Op: collection, Err: err}
	}

	out := make([]schema.SearchResult, 0, topK)
	for _, rs := range results {
		for i := 0; i < rs.ResultCount; i++ {
			doc, err := rowToDocument(&rs, i)
			if err != nil {
				return nil, &schema.SearchError{Op: collection, Err: err}
			}
			score := float64(rs.Scores[i])
			if opts.Threshold > 0 && score < opts.Threshold {
				continue
			}
			out = append(out, schema.SearchResult{Document: doc, Score: score})
		}
	}
	metrics.ObserveSearch(collection, start, len(out))
	return out, nil
}

// rowToDocument flattens one search hit. The dynamic field comes back as
// a JSON column and is merged into the metadata map.
func rowToDocument(rs *client.SearchResult, idx int) (schema.Document, error) {
	doc := schema.Document{Metadata: make(map[string]any)}

	if rs.IDs != nil {
		if id, err := rs.IDs.GetAsString(idx); err == nil {
			doc.ID = id
		} else if iv, err := rs.IDs.GetAsInt64(idx); err == nil {
			doc.ID = strconv.FormatInt(iv, 10)
		}
	}

	for _, col := range rs.Fields {
		if col.Name() == vectorField {
			continue
		}
		val, err := col.Get(idx)
		if err != nil {
			return doc, fmt.Errorf("read field %s: %w", col.Name(), err)
		}
		if raw, ok := val.([]byte); ok {
			// dynamic ($meta) or JSON field
			var fields map[string]any
			if err := json.Unmarshal(raw, &fields); err == nil {
				for k, v := range fields {
					doc.Metadata[k] = v
				}
				continue
			}
		}
		if col.Name() == contentField {
			if s, ok := val.(string); ok {
				doc.Content = s
				doc.Metadata[contentField] = s
				continue
			}
		}
		doc.Metadata[col.Name()] = val
	}

	if doc.Content == "" {
		if s, ok := doc.Metadata[contentField].(string); ok {
			doc.Content = s
		}
	}
	return doc, nil
}

func (s *milvusStore) Close() error {
	return s.cli.Close()
}
