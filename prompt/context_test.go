package prompt

import (
	"math"
	"strings"
	"testing"

	"github.com/finovai/finov/schema"
)

func TestAssembleStockContext_ExactLayout(t *testing.T) {
	candidates := []schema.StockCandidate{
		{
			Ticker:    "ACME",
			Text:      "Acme Corp makes widgets.",
			Sector:    "Industrials",
			MarketCap: 3_000_000_000,
			Volume:    50_000,
		},
	}

	got := AssembleStockContext("stable dividend stocks", candidates, 0)
	want := "<CONTEXT>\n" +
		"\n\n--------\n\n Acme Corp makes widgets.\n Sector is Industrials. \n Market Cap is 3000000000. \n Volume is 50000." +
		" \nMY QUESTION:\n stable dividend stocks"
	if got != want {
		t.Errorf("context layout changed:\n got:  %q\n want: %q", got, want)
	}
}

func TestAssembleStockContext_Idempotent(t *testing.T) {
	candidates := []schema.StockCandidate{
		{Ticker: "A", Text: "first", Sector: "Tech", MarketCap: 1e9, Volume: 1000},
		{Ticker: "B", Text: "second", Sector: "Energy", MarketCap: 2e9, Volume: 2000},
	}
	a := AssembleStockContext("query", candidates, 0)
	b := AssembleStockContext("query", candidates, 0)
	if a != b {
		t.Error("assembling the same input twice must be byte-identical")
	}
}

func TestAssembleStockContext_MissingNumbersRenderNA(t *testing.T) {
	candidates := []schema.StockCandidate{
		{Ticker: "X", Text: "snippet", Sector: schema.NA, MarketCap: math.NaN(), Volume: math.NaN()},
	}
	got := AssembleStockContext("q", candidates, 0)
	if !strings.Contains(got, "Market Cap is N/A.") || !strings.Contains(got, "Volume is N/A.") {
		t.Errorf("missing numerics should render as N/A, got: %q", got)
	}
}

func TestAssembleStockContext_TokenBudgetDropsTail(t *testing.T) {
	long := strings.Repeat("lorem ipsum dolor sit amet ", 40)
	candidates := []schema.StockCandidate{
		{Ticker: "A", Text: long, Sector: "Tech", MarketCap: 1e9, Volume: 1000},
		{Ticker: "B", Text: long, Sector: "Tech", MarketCap: 1e9, Volume: 1000},
		{Ticker: "C", Text: long, Sector: "Tech", MarketCap: 1e9, Volume: 1000},
	}

	bounded := AssembleStockContext("query", candidates, 120)
	unbounded := AssembleStockContext("query", candidates, 0)

	if len(bounded) >= len(unbounded) {
		t.Error("expected the budget to drop tail candidates")
	}
	// The skeleton survives trimming.
	if !strings.HasPrefix(bounded, "<CONTEXT>\n") || !strings.HasSuffix(bounded, " \nMY QUESTION:\n query") {
		t.Errorf("trimmed context lost its markers: %q", bounded)
	}
}

func TestAssembleAdvisoryContext(t *testing.T) {
	matches := []schema.SearchResult{
		{Document: schema.Document{Content: "Profile: Male, Age: 34"}},
		{Document: schema.Document{Content: ""}}, // no text: skipped
		{Document: schema.Document{Content: "Objectives: Growth"}},
	}

	got := AssembleAdvisoryContext("How should I invest?", matches)
	want := "How should I invest?\n\nAdditional Context:\nBased on our financial database:\n" +
		"\n- Profile: Male, Age: 34" +
		"\n- Objectives: Growth"
	if got != want {
		t.Errorf("advisory context mismatch:\n got:  %q\n want: %q", got, want)
	}
}
