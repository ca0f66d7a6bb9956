package llm

import (
	"context"
	"errors"

	"github.com/finovai/finov/common/logger"
	"github.com/finovai/finov/metrics"
	"github.com/finovai/finov/schema"
)

// Completer runs the two-tier completion strategy: attempt the primary
// model, on any failure retry once on the smaller fallback model with the
// identical prompt, and on a double failure surface ModelUnavailable.
// This favors completing the user's request over rejecting it, at the
// cost of fallback-tier quality.
type Completer struct {
	provider Provider
	primary  string
	fallback string
}

// NewCompleter builds a completer. Fallback may be empty, in which case
// a primary failure is terminal.
func NewCompleter(provider Provider, primary, fallback string) *Completer {
	return &Completer{provider: provider, primary: primary, fallback: fallback}
}

// Complete returns the model's text, never an empty string on success.
func (c *Completer) Complete(ctx context.Context, systemPrompt string, messages []schema.ChatMessage) (string, error) {
	text, primaryErr := c.provider.ChatCompletion(ctx, c.primary, systemPrompt, messages)
	if primaryErr == nil && text != "" {
		metrics.IncCompletion(c.primary, "ok")
		return text, nil
	}
	if primaryErr == nil {
		primaryErr = errors.New("primary model returned an empty completion")
	}
	metrics.IncCompletion(c.primary, "error")

	if c.fallback == "" {
		return "", &schema.ModelUnavailableError{Primary: primaryErr, Fallback: errors.New("no fallback model configured")}
	}

	logger.Warnf("primary model %s failed, retrying on %s: %v", c.primary, c.fallback, primaryErr)
	metrics.IncFallback()

	text, fallbackErr := c.provider.ChatCompletion(ctx, c.fallback, systemPrompt, messages)
	if fallbackErr == nil && text != "" {
		metrics.IncCompletion(c.fallback, "ok")
		return text, nil
	}
	if fallbackErr == nil {
		fallbackErr = errors.New("fallback model returned an empty completion")
	}
	metrics.IncCompletion(c.fallback, "error")

	return "", &schema.ModelUnavailableError{Primary: primaryErr, Fallback: fallbackErr}
}
