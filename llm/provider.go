package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/finovai/finov/config"
	"github.com/finovai/finov/schema"
)

// Provider invokes a chat-completion model. The model id is passed per
// call so the fallback tier can reuse the same transport.
type Provider interface {
	ChatCompletion(ctx context.Context, model, systemPrompt string, messages []schema.ChatMessage) (string, error)
}

// NewLLMProvider creates a chat-completion provider from config.
func NewLLMProvider(cfg config.LLMConfig) (Provider, error) {
	switch strings.ToLower(cfg.Provider) {
	case "openai":
		return newOpenAIProvider(cfg)
	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", cfg.Provider)
	}
}
