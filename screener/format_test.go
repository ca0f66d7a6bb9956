package screener

import (
	"math"
	"testing"

	"github.com/finovai/finov/schema"
)

func hit(ticker string, extra map[string]any) schema.SearchResult {
	md := map[string]any{
		"ticker":             ticker,
		"name":               ticker + " Inc",
		"business_summary":   "summary",
		"website":            "https://example.com",
		"revenue_growth":     0.12,
		"gross_margins":      0.4,
		"target_mean_price":  120.0,
		"current_price":      100.0,
		"week52_change":      0.3,
		"sector":             "Technology",
		"market_cap":         3e9,
		"volume":             50_000.0,
		"recommendation_key": "buy",
		"text":               ticker + " description",
	}
	for k, v := range extra {
		if v == nil {
			delete(md, k)
		} else {
			md[k] = v
		}
	}
	return schema.SearchResult{Document: schema.Document{ID: ticker, Metadata: md}}
}

func TestFormatMatches_DeduplicatesFirstSeenWins(t *testing.T) {
	in := []schema.SearchResult{
		hit("AAPL", map[string]any{"name": "Apple"}),
		hit("MSFT", nil),
		hit("AAPL", map[string]any{"name": "Apple duplicate"}),
		hit("NVDA", nil),
	}

	out := FormatMatches(in)
	if len(out) != 3 {
		t.Fatalf("expected 3 candidates, got %d", len(out))
	}
	if out[0].Ticker != "AAPL" || out[1].Ticker != "MSFT" || out[2].Ticker != "NVDA" {
		t.Errorf("rank order not preserved: %v, %v, %v", out[0].Ticker, out[1].Ticker, out[2].Ticker)
	}
	if out[0].Name != "Apple" {
		t.Errorf("first occurrence should win, got name %q", out[0].Name)
	}
}

func TestFormatMatches_MissingMetadataDegradesToSentinel(t *testing.T) {
	in := []schema.SearchResult{
		hit("AAPL", map[string]any{"sector": nil, "market_cap": nil, "revenue_growth": "not-a-number"}),
	}

	out := FormatMatches(in)
	if len(out) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(out))
	}
	c := out[0]
	if c.Sector != schema.NA {
		t.Errorf("expected sector sentinel, got %q", c.Sector)
	}
	if !math.IsNaN(c.MarketCap) {
		t.Errorf("expected NaN market cap, got %v", c.MarketCap)
	}
	if !math.IsNaN(c.RevenueGrowth) {
		t.Errorf("expected NaN revenue growth for malformed value, got %v", c.RevenueGrowth)
	}
}

func TestFormatMatches_MalformedRecordDoesNotAbortBatch(t *testing.T) {
	in := []schema.SearchResult{
		hit("AAPL", nil),
		{Document: schema.Document{ID: "broken", Metadata: map[string]any{}}}, // no ticker
		hit("MSFT", nil),
	}

	out := FormatMatches(in)
	if len(out) != 2 {
		t.Fatalf("expected the two well-formed candidates, got %d", len(out))
	}
	if out[0].Ticker != "AAPL" || out[1].Ticker != "MSFT" {
		t.Errorf("unexpected candidates: %+v", out)
	}
}

func TestFormatLargeNumber(t *testing.T) {
	for _, tc := range []struct {
		in   float64
		want string
	}{
		{2.5e12, "2.5T"},
		{3e9, "3.0B"},
		{1_500_000, "1.5M"},
		{50_000, "50.0K"},
		{999, "999"},
		{math.NaN(), schema.NA},
	} {
		if got := FormatLargeNumber(tc.in); got != tc.want {
			t.Errorf("FormatLargeNumber(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(0.123); got != "12.3%" {
		t.Errorf("FormatPercent(0.123) = %q", got)
	}
	if got := FormatPercent(math.NaN()); got != schema.NA {
		t.Errorf("FormatPercent(NaN) = %q", got)
	}
}

func TestValuation(t *testing.T) {
	c := schema.StockCandidate{TargetMeanPrice: 120, CurrentPrice: 100}
	if v := c.Valuation(); math.Abs(v-0.2) > 1e-9 {
		t.Errorf("Valuation() = %v, want 0.2", v)
	}
	c.CurrentPrice = math.NaN()
	if !math.IsNaN(c.Valuation()) {
		t.Error("expected NaN valuation when price is missing")
	}
}
