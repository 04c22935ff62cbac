package services

import (
	"context"
	"fmt"

	"alfredoptarigan/assessment-gateway/internal/config"
)

// CompletionProvider sends one system + user prompt pair to a chat-completion
// API and returns the text of the first choice.
type CompletionProvider interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
	ModelID() string
}

type CompletionRequest struct {
	System      string
	Prompt      string
	MaxTokens   int
	Temperature float32
}

var defaultModels = map[string]string{
	"openai":    "gpt-4o-mini",
	"gemini":    "gemini-2.5-flash",
	"anthropic": "claude-haiku-4-5-20251001",
}

// NewCompletionProvider builds the provider selected by COMPLETION_PROVIDER.
func NewCompletionProvider(ctx context.Context, cfg config.CompletionConfig) (CompletionProvider, error) {
	model := cfg.Model
	if model == "" {
		model = defaultModels[cfg.Provider]
	}

	switch cfg.Provider {
	case "openai":
		return NewOpenAIProvider(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, model)
	case "gemini":
		return NewGeminiProvider(ctx, cfg.Gemini.APIKey, model)
	case "anthropic":
		return NewAnthropicProvider(cfg.Anthropic.APIKey, cfg.Anthropic.BaseURL, model)
	case "mock":
		return NewSampleCompletionProvider(), nil
	default:
		return nil, fmt.Errorf("unknown completion provider: %q", cfg.Provider)
	}
}
