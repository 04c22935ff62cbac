package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"google.golang.org/genai"
)

type geminiProvider struct {
	client    *genai.Client
	modelName string
}

func NewGeminiProvider(ctx context.Context, apiKey, model string) (CompletionProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiProvider{
		client:    client,
		modelName: model,
	}, nil
}

// Complete implements CompletionProvider.
func (g *geminiProvider) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	temperature := req.Temperature
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: int32(req.MaxTokens),
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: req.System}},
		},
		ResponseMIMEType: "application/json",
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(req.Prompt), config)
	if err != nil {
		log.Printf("❌ Gemini API error: %v", err)
		return "", mapGeminiError(err)
	}

	if resp == nil {
		return "", &DownstreamError{
			Service: "gemini",
			Message: msgGenerationFailed,
			Err:     fmt.Errorf("no response generated (nil response)"),
		}
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", &DownstreamError{
			Service: "gemini",
			Message: msgGenerationFailed,
			Err:     fmt.Errorf("no text content in response"),
		}
	}

	return text, nil
}

func (g *geminiProvider) ModelID() string {
	return g.modelName
}

func mapGeminiError(err error) error {
	if apiErr, ok := asGeminiAPIError(err); ok && apiErr.Message != "" {
		return &DownstreamError{
			Service:    "gemini",
			StatusCode: apiErr.Code,
			Message:    apiErr.Message,
			Err:        err,
		}
	}
	return &DownstreamError{Service: "gemini", Message: msgGenerationFailed, Err: err}
}

// asGeminiAPIError accepts both value and pointer forms of genai.APIError.
func asGeminiAPIError(err error) (genai.APIError, bool) {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	var ptr *genai.APIError
	if errors.As(err, &ptr) && ptr != nil {
		return *ptr, true
	}
	return genai.APIError{}, false
}
