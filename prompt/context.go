package prompt

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/pkoukk/tiktoken-go"

	"github.com/finovai/finov/common/logger"
	"github.com/finovai/finov/schema"
)

// The context layout below is load-bearing: prompt regression tests
// depend on it staying byte-stable across model swaps.

const (
	contextMarker  = "<CONTEXT>\n"
	blockDelimiter = "\n\n--------\n\n"
	questionMarker = " \nMY QUESTION:\n "
)

// AssembleStockContext builds the augmented query for stock analysis:
// a <CONTEXT> marker, one block per candidate with its snippet, sector,
// market cap and volume, then the literal question. Candidates that would
// push the block past maxTokens are dropped from the tail; zero means
// unbounded. Deterministic for identical input.
func AssembleStockContext(query string, candidates []schema.StockCandidate, maxTokens int) string {
	var b strings.Builder
	b.WriteString(contextMarker)

	budget := maxTokens
	if budget > 0 {
		budget -= countTokens(contextMarker + questionMarker + query)
	}

	for _, c := range candidates {
		block := fmt.Sprintf("%s %s\n Sector is %s. \n Market Cap is %s. \n Volume is %s.",
			blockDelimiter, c.Text, c.Sector, contextNumber(c.MarketCap), contextNumber(c.Volume))
		if maxTokens > 0 {
			cost := countTokens(block)
			if cost > budget {
				logger.Debugf("context budget reached, dropping %s and later candidates", c.Ticker)
				break
			}
			budget -= cost
		}
		b.WriteString(block)
	}

	b.WriteString(questionMarker)
	b.WriteString(query)
	return b.String()
}

// AssembleAdvisoryContext appends profile-matched snippets to the user's
// question for the advisory flow. Hits without descriptive text are
// skipped.
func AssembleAdvisoryContext(question string, matches []schema.SearchResult) string {
	var b strings.Builder
	b.WriteString("Based on our financial database:\n")
	for _, m := range matches {
		text := m.Document.Content
		if text == "" {
			continue
		}
		b.WriteString("\n- ")
		b.WriteString(text)
	}
	return fmt.Sprintf("%s\n\nAdditional Context:\n%s", question, b.String())
}

func contextNumber(v float64) string {
	if math.IsNaN(v) {
		return schema.NA
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var (
	encoderOnce sync.Once
	encoder     *tiktoken.Tiktoken
)

// countTokens uses cl100k_base, falling back to a bytes/4 estimate when
// the encoding cannot be loaded (e.g. offline).
func countTokens(text string) int {
	encoderOnce.Do(func() {
		enc, err := tiktoken.GetEncoding(tiktoken.MODEL_CL100K_BASE)
		if err != nil {
			logger.Warnf("tiktoken unavailable, estimating token counts: %v", err)
			return
		}
		encoder = enc
	})
	if encoder == nil {
		return len(text) / 4
	}
	return len(encoder.Encode(text, nil, nil))
}
