package schema

import "math"

// NA marks string metadata the index did not carry for a candidate.
// Numeric fields use NaN for the same purpose; render helpers map both
// back to "N/A" for display.
const NA = "N/A"

// StockCandidate is one screened stock, projected from raw search-hit
// metadata at the formatting boundary. Within one result set tickers are
// unique; the first occurrence by rank wins.
type StockCandidate struct {
	Ticker            string
	Name              string
	BusinessSummary   string
	Website           string
	RevenueGrowth     float64
	GrossMargins      float64
	TargetMeanPrice   float64
	CurrentPrice      float64
	Week52Change      float64
	Sector            string
	MarketCap         float64
	Volume            float64
	RecommendationKey string
	// Text is the descriptive snippet stored alongside the vector. It is
	// what the model sees in the assembled context.
	Text string
}

// Valuation is the upside implied by the analyst mean target,
// (target - current) / current. NaN when either price is missing.
func (c StockCandidate) Valuation() float64 {
	if math.IsNaN(c.TargetMeanPrice) || math.IsNaN(c.CurrentPrice) || c.CurrentPrice == 0 {
		return math.NaN()
	}
	return (c.TargetMeanPrice - c.CurrentPrice) / c.CurrentPrice
}
