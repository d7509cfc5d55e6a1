package llm

import (
	"context"
	"fmt"
	"strings"

	legacy "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GenerativeAIProvider talks to Gemini through the older generative-ai-go SDK.
// Selected with `backend: generativeai`.
type GenerativeAIProvider struct {
	Model       string
	Temperature *float32

	client *legacy.Client
}

var _ Provider = (*GenerativeAIProvider)(nil)

// NewGenerativeAIProvider creates a client bound to apiKey. Extra client options are
// appended after the key (endpoint overrides, custom HTTP clients).
func NewGenerativeAIProvider(ctx context.Context, apiKey, model string, temperature *float32, opts ...option.ClientOption) (*GenerativeAIProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("generativeai: empty API key")
	}

	clientOpts := append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	client, err := legacy.NewClient(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GenerativeAIProvider{
		Model:       model,
		Temperature: temperature,
		client:      client,
	}, nil
}

func (p *GenerativeAIProvider) Name() string {
	return "gemini-generativeai"
}

func (p *GenerativeAIProvider) GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error) {
	model := p.client.GenerativeModel(optionString(options, "model", p.Model))
	if t := optionFloat32(options, "temperature", p.Temperature); t != nil {
		model.SetTemperature(*t)
	}
	if systemPrompt != "" {
		model.SystemInstruction = legacy.NewUserContent(legacy.Text(systemPrompt))
	}

	resp, err := model.GenerateContent(ctx, legacy.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}

	text := responseText(resp)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// Close releases the underlying connection.
func (p *GenerativeAIProvider) Close() error {
	return p.client.Close()
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *legacy.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(legacy.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	return sb.String()
}
