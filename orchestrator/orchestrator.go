package orchestrator

import (
	"context"

	"github.com/finovai/finov/common/logger"
	"github.com/finovai/finov/llm"
	"github.com/finovai/finov/metrics"
	"github.com/finovai/finov/profile"
	"github.com/finovai/finov/prompt"
	"github.com/finovai/finov/retriever"
	"github.com/finovai/finov/schema"
	"github.com/finovai/finov/screener"
)

// NoStocksAnalysis is returned alongside an empty candidate list when a
// screen matches nothing. Zero matches is a valid outcome, not an error.
const NoStocksAnalysis = "No stocks found. Please refine your query."

// Orchestrator ties embedding, filtered vector search, context assembly,
// prompt construction and model invocation into the two advisory flows.
// All collaborators are injected; the orchestrator holds no mutable
// request state.
type Orchestrator struct {
	// Profiles searches the investor-knowledge index backing the
	// advisory chat.
	Profiles retriever.Retriever
	// Stocks searches the stock-description index.
	Stocks    retriever.Retriever
	Completer *llm.Completer

	ProfileTopK      int
	StockTopK        int
	StockNamespace   string
	MaxContextTokens int
}

// AnswerProfileQuestion runs the advisory chat flow: validate the
// profile, retrieve similar investment patterns, build the rule-bearing
// advisory prompt and complete it. History is replayed as prior chat
// turns; it may be nil.
func (o *Orchestrator) AnswerProfileQuestion(ctx context.Context, p profile.Profile, question string, history []schema.ChatMessage) (string, error) {
	// Fail fast: a bad profile never reaches the index or the model.
	if err := p.Validate(); err != nil {
		return "", err
	}

	matches, err := o.Profiles.Search(ctx, question, &schema.SearchOptions{TopK: o.profileTopK()})
	if err != nil {
		return "", err
	}
	logger.Debugf("advisory retrieval: %d matches for question", len(matches))

	augmented := prompt.AssembleAdvisoryContext(question, matches)
	systemPrompt := prompt.BuildAdvisoryPrompt(p, augmented)

	return o.Completer.Complete(ctx, systemPrompt, history)
}

// FindStocks runs the screening flow: translate constraints into the
// index filter, retrieve and format candidates, assemble the context
// block and ask the model for a comparative analysis. A nil filter uses
// the default positive-momentum screen.
func (o *Orchestrator) FindStocks(ctx context.Context, query string, f *screener.Filter) ([]schema.StockCandidate, string, error) {
	// Filter validation happens before any search executes.
	expr, err := screener.BuildExpr(f)
	if err != nil {
		return nil, "", err
	}

	matches, err := o.Stocks.Search(ctx, query, &schema.SearchOptions{
		TopK:      o.stockTopK(),
		Filter:    expr,
		Namespace: o.StockNamespace,
	})
	if err != nil {
		return nil, "", err
	}

	candidates := screener.FormatMatches(matches)
	if len(candidates) == 0 {
		metrics.IncEmptyScreen()
		return []schema.StockCandidate{}, NoStocksAnalysis, nil
	}

	augmented := prompt.AssembleStockContext(query, candidates, o.MaxContextTokens)
	systemPrompt, userPrompt := prompt.BuildStockAnalysisPrompt(augmented)

	analysis, err := o.Completer.Complete(ctx, systemPrompt, []schema.ChatMessage{
		{Role: schema.RoleUser, Content: userPrompt},
	})
	if err != nil {
		return nil, "", err
	}
	return candidates, analysis, nil
}

func (o *Orchestrator) profileTopK() int {
	if o.ProfileTopK > 0 {
		return o.ProfileTopK
	}
	return 5
}

func (o *Orchestrator) stockTopK() int {
	if o.StockTopK > 0 {
		return o.StockTopK
	}
	return 12
}
