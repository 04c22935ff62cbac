package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type anthropicProvider struct {
	client *anthropic.Client
	model  string
}

func NewAnthropicProvider(apiKey, baseURL, model string) (CompletionProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("anthropic API key is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	client := anthropic.NewClient(opts...)

	return &anthropicProvider{
		client: &client,
		model:  model,
	}, nil
}

// Complete implements CompletionProvider.
func (p *anthropicProvider) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: int64(req.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
		System: []anthropic.TextBlockParam{
			{Text: req.System},
		},
		Temperature: anthropic.Float(float64(req.Temperature)),
	}

	msg, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return "", mapAnthropicError(err)
	}

	var parts []string
	for _, block := range msg.Content {
		if block.Type == "text" {
			parts = append(parts, block.Text)
		}
	}
	if len(parts) == 0 {
		return "", &DownstreamError{
			Service: "anthropic",
			Message: msgGenerationFailed,
			Err:     fmt.Errorf("no text content in Anthropic response"),
		}
	}

	return strings.Join(parts, ""), nil
}

func (p *anthropicProvider) ModelID() string {
	return p.model
}

func mapAnthropicError(err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		return &DownstreamError{
			Service:    "anthropic",
			StatusCode: apiErr.StatusCode,
			Message:    anthropicErrorMessage(apiErr),
			Err:        err,
		}
	}
	return &DownstreamError{Service: "anthropic", Message: msgGenerationFailed, Err: err}
}

// anthropicErrorMessage pulls error.message out of the raw error envelope.
func anthropicErrorMessage(apiErr *anthropic.Error) string {
	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal([]byte(apiErr.RawJSON()), &envelope); err == nil && envelope.Error.Message != "" {
		return envelope.Error.Message
	}
	return msgGenerationFailed
}
