package screener

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/finovai/finov/schema"
)

// FormatLargeNumber renders a value with a K/M/B/T suffix for display.
func FormatLargeNumber(v float64) string {
	if math.IsNaN(v) {
		return schema.NA
	}
	switch {
	case v >= 1_000_000_000_000:
		return fmt.Sprintf("%.1fT", v/1_000_000_000_000)
	case v >= 1_000_000_000:
		return fmt.Sprintf("%.1fB", v/1_000_000_000)
	case v >= 1_000_000:
		return fmt.Sprintf("%.1fM", v/1_000_000)
	case v >= 1_000:
		return fmt.Sprintf("%.1fK", v/1_000)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatPercent renders a ratio as a percentage, N/A when missing.
func FormatPercent(v float64) string {
	if math.IsNaN(v) {
		return schema.NA
	}
	return fmt.Sprintf("%.1f%%", v*100)
}

// RenderCandidate renders one candidate as a markdown block for tool
// output.
func RenderCandidate(c schema.StockCandidate) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#### %s (%s)\n", c.Name, c.Ticker)
	fmt.Fprintf(&b, "Website: %s\n", c.Website)
	fmt.Fprintf(&b, "- Revenue Growth: %s\n", FormatPercent(c.RevenueGrowth))
	fmt.Fprintf(&b, "- Gross Margins: %s\n", FormatPercent(c.GrossMargins))
	fmt.Fprintf(&b, "- Market Cap: %s\n", FormatLargeNumber(c.MarketCap))
	fmt.Fprintf(&b, "- Volume: %s\n", FormatLargeNumber(c.Volume))
	fmt.Fprintf(&b, "- Valuation: %s\n", FormatPercent(c.Valuation()))
	fmt.Fprintf(&b, "- 52 Week Change: %s\n", FormatPercent(c.Week52Change))
	fmt.Fprintf(&b, "- Recommendation: %s\n", c.RecommendationKey)
	return b.String()
}
