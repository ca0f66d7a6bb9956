package finov

import (
	"context"
	"fmt"
	"time"

	"github.com/finovai/finov/cache"
	"github.com/finovai/finov/config"
	"github.com/finovai/finov/embedding"
	"github.com/finovai/finov/llm"
	"github.com/finovai/finov/memory"
	"github.com/finovai/finov/orchestrator"
	"github.com/finovai/finov/profile"
	"github.com/finovai/finov/retriever"
	"github.com/finovai/finov/schema"
	"github.com/finovai/finov/screener"
	"github.com/finovai/finov/vectordb"
)

// Client wires the advisory pipeline from configuration: embedding and
// LLM providers, the vector store, the orchestrator and per-session chat
// history. One client is shared across requests; only expensive
// resources are process-wide, never request state.
type Client struct {
	cfg      *config.Config
	store    vectordb.VectorStoreProvider
	orch     *orchestrator.Orchestrator
	sessions memory.ConversationStore
}

// NewClient builds a client from a validated config.
func NewClient(cfg *config.Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	embedder, err := embedding.NewEmbeddingProvider(cfg.Embedding)
	if err != nil {
		return nil, fmt.Errorf("create embedding provider failed: %w", err)
	}
	if cfg.Advisor.EmbeddingCacheSize > 0 {
		embedder = embedding.NewCached(embedder, cache.NewLRU(cfg.Advisor.EmbeddingCacheSize, 10*time.Minute))
	}

	llmProvider, err := llm.NewLLMProvider(cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("create llm provider failed: %w", err)
	}
	completer := llm.NewCompleter(llmProvider, cfg.LLM.Model, cfg.LLM.FallbackModel)

	store, err := vectordb.NewVectorDBProvider(&cfg.VectorDB)
	if err != nil {
		return nil, fmt.Errorf("create vector store provider failed: %w", err)
	}

	orch := &orchestrator.Orchestrator{
		Profiles: &retriever.VectorRetriever{
			Embed:      embedder,
			Store:      store,
			Collection: cfg.VectorDB.ProfileCollection,
			TopK:       cfg.Advisor.ProfileTopK,
			Threshold:  cfg.Advisor.Threshold,
		},
		Stocks: &retriever.VectorRetriever{
			Embed:      embedder,
			Store:      store,
			Collection: cfg.VectorDB.StockCollection,
			TopK:       cfg.Advisor.StockTopK,
			Threshold:  cfg.Advisor.Threshold,
		},
		Completer:        completer,
		ProfileTopK:      cfg.Advisor.ProfileTopK,
		StockTopK:        cfg.Advisor.StockTopK,
		StockNamespace:   cfg.VectorDB.StockNamespace,
		MaxContextTokens: cfg.Advisor.MaxContextTokens,
	}

	return &Client{
		cfg:      cfg,
		store:    store,
		orch:     orch,
		sessions: memory.NewInMemoryStore(cfg.Advisor.HistoryRounds),
	}, nil
}

// NewSession allocates a fresh advisory chat session.
func (c *Client) NewSession() string {
	return c.sessions.NewSession()
}

// Chat answers one advisory question for the given profile, replaying
// the session's history and recording the new round on success.
func (c *Client) Chat(ctx context.Context, sessionID string, p profile.Profile, question string) (string, error) {
	history := memory.ToMessages(c.sessions.LastNRounds(sessionID, c.cfg.Advisor.HistoryRounds))

	answer, err := c.orch.AnswerProfileQuestion(ctx, p, question, history)
	if err != nil {
		return "", err
	}

	c.sessions.AppendRound(sessionID, memory.Round{
		Question: question,
		Answer:   answer,
		At:       time.Now(),
	})
	return answer, nil
}

// ResetSession drops a session's chat history.
func (c *Client) ResetSession(sessionID string) {
	c.sessions.Clear(sessionID)
}

// FindStocks screens the stock index for the described characteristics
// and returns the qualifying candidates with a comparative analysis.
func (c *Client) FindStocks(ctx context.Context, query string, f *screener.Filter) ([]schema.StockCandidate, string, error) {
	return c.orch.FindStocks(ctx, query, f)
}

// Close releases the vector store connection.
func (c *Client) Close() error {
	return c.store.Close()
}
