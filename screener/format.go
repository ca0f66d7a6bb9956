package screener

import (
	"math"
	"strings"

	"github.com/spf13/cast"

	"github.com/finovai/finov/common/logger"
	"github.com/finovai/finov/schema"
)

// FormatMatches projects raw search hits into typed candidates.
// Tickers are deduplicated, first occurrence wins, rank order preserved.
// Missing or malformed metadata degrades to the N/A sentinel instead of
// failing the batch: a single bad record must not abort a user-facing
// recommendation list.
func FormatMatches(matches []schema.SearchResult) []schema.StockCandidate {
	out := make([]schema.StockCandidate, 0, len(matches))
	seen := make(map[string]struct{}, len(matches))

	for _, m := range matches {
		md := m.Document.Metadata
		ticker := strings.TrimSpace(cast.ToString(md["ticker"]))
		if ticker == "" {
			logger.Warnf("dropping search hit %s: no ticker in metadata", m.Document.ID)
			continue
		}
		if _, dup := seen[ticker]; dup {
			continue
		}
		seen[ticker] = struct{}{}

		out = append(out, schema.StockCandidate{
			Ticker:            ticker,
			Name:              stringField(md, "name"),
			BusinessSummary:   stringField(md, "business_summary"),
			Website:           stringField(md, "website"),
			RevenueGrowth:     numericField(md, "revenue_growth"),
			GrossMargins:      numericField(md, "gross_margins"),
			TargetMeanPrice:   numericField(md, "target_mean_price"),
			CurrentPrice:      numericField(md, "current_price"),
			Week52Change:      numericField(md, "week52_change"),
			Sector:            stringField(md, "sector"),
			MarketCap:         numericField(md, "market_cap"),
			Volume:            numericField(md, "volume"),
			RecommendationKey: stringField(md, "recommendation_key"),
			Text:              cast.ToString(md["text"]),
		})
	}
	return out
}

func stringField(md map[string]any, key string) string {
	s := strings.TrimSpace(cast.ToString(md[key]))
	if s == "" {
		return schema.NA
	}
	return s
}

func numericField(md map[string]any, key string) float64 {
	v, ok := md[key]
	if !ok || v == nil {
		return math.NaN()
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return math.NaN()
	}
	return f
}
