package screener

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/finovai/finov/schema"
)

// Filter is the user-supplied stock screen: a conjunction of numeric
// floors and an allowed set of analyst recommendation keys.
type Filter struct {
	MinMarketCap       float64
	MinVolume          float64
	RecommendationKeys []string
}

// week52Floor keeps stocks in free-fall out of every custom screen, no
// matter how far the caller relaxes the other constraints.
const week52Floor = -0.2

// DefaultRecommendationKeys back the no-filter screen together with a
// positive-momentum requirement.
var DefaultRecommendationKeys = []string{"buy", "strong buy", "hold"}

var validRecommendationKeys = map[string]struct{}{
	"strong buy":  {},
	"buy":         {},
	"hold":        {},
	"sell":        {},
	"strong sell": {},
}

// BuildExpr translates the filter into the index's boolean expression
// language. A nil filter produces the default positive-momentum screen.
// Malformed input fails before any search executes.
func BuildExpr(f *Filter) (string, error) {
	if f == nil {
		return fmt.Sprintf("week52_change > 0 and recommendation_key in [%s]",
			quoteKeys(DefaultRecommendationKeys)), nil
	}

	if f.MinMarketCap < 0 {
		return "", &schema.FilterError{Message: fmt.Sprintf("market cap must not be negative, got %s", formatNum(f.MinMarketCap))}
	}
	if f.MinVolume < 0 {
		return "", &schema.FilterError{Message: fmt.Sprintf("volume must not be negative, got %s", formatNum(f.MinVolume))}
	}
	if len(f.RecommendationKeys) == 0 {
		return "", &schema.FilterError{Message: "at least one recommendation key is required"}
	}
	for _, key := range f.RecommendationKeys {
		if _, ok := validRecommendationKeys[key]; !ok {
			return "", &schema.FilterError{Message: fmt.Sprintf("unknown recommendation key %q", key)}
		}
	}

	return fmt.Sprintf("market_cap >= %s and volume >= %s and week52_change >= %s and recommendation_key in [%s]",
		formatNum(f.MinMarketCap),
		formatNum(f.MinVolume),
		formatNum(week52Floor),
		quoteKeys(f.RecommendationKeys)), nil
}

func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func quoteKeys(keys []string) string {
	quoted := make([]string, len(keys))
	for i, k := range keys {
		quoted[i] = strconv.Quote(k)
	}
	return strings.Join(quoted, ", ")
}
