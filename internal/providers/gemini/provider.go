// Package gemini adapts the Gemini API to the pipeline's ModelProvider
// contract. The model is a black box here: it receives one compiled prompt
// and returns text that the orchestrator validates.
package gemini

import (
	"context"
	"errors"

	"google.golang.org/genai"
)

type Provider struct {
	client *genai.Client
	model  string
}

func NewProvider(ctx context.Context, apiKey, model string) (*Provider, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &Provider{client: client, model: model}, nil
}

func NewProviderFromClient(client *genai.Client, model string) *Provider {
	return &Provider{client: client, model: model}
}

// Generate implements domain.ModelProvider. Single attempt, no retry; the
// caller owns the timeout.
func (p *Provider) Generate(ctx context.Context, prompt string) (string, error) {
	result, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return "", err
	}
	if len(result.Candidates) == 0 ||
		result.Candidates[0].Content == nil ||
		len(result.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("empty model response")
	}
	return result.Candidates[0].Content.Parts[0].Text, nil
}
