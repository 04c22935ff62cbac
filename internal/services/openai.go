package services

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

type openAIProvider struct {
	client *openai.Client
	model  string
}

func NewOpenAIProvider(apiKey, baseURL, model string) (CompletionProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai API key is required")
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return &openAIProvider{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}, nil
}

// Complete implements CompletionProvider.
func (p *openAIProvider) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	})
	if err != nil {
		return "", mapOpenAIError(err)
	}

	if len(resp.Choices) == 0 {
		return "", &DownstreamError{
			Service: "openai",
			Message: msgGenerationFailed,
			Err:     fmt.Errorf("no choices in OpenAI response"),
		}
	}

	return resp.Choices[0].Message.Content, nil
}

func (p *openAIProvider) ModelID() string {
	return p.model
}

func mapOpenAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		msg := apiErr.Message
		if msg == "" {
			msg = msgGenerationFailed
		}
		return &DownstreamError{
			Service:    "openai",
			StatusCode: apiErr.HTTPStatusCode,
			Message:    msg,
			Err:        err,
		}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &DownstreamError{
			Service:    "openai",
			StatusCode: reqErr.HTTPStatusCode,
			Message:    msgGenerationFailed,
			Err:        err,
		}
	}

	return &DownstreamError{Service: "openai", Message: msgGenerationFailed, Err: err}
}
