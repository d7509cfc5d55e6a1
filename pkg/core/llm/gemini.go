package llm

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/genai"
)

// GeminiProvider implements the Provider interface for Google's Gemini models
// using the official GenAI SDK.
type GeminiProvider struct {
	Model       string   // e.g. "gemini-2.0-flash"
	Temperature *float32 // nil keeps the model default

	client *genai.Client
}

// GeminiOptions carries the optional knobs of NewGeminiProvider.
type GeminiOptions struct {
	Temperature *float32
	BaseURL     string       // overrides the API endpoint, used by tests
	HTTPClient  *http.Client // nil uses the SDK default
}

// Ensure interface compliance
var _ Provider = (*GeminiProvider)(nil)

// NewGeminiProvider creates a client bound to apiKey. The key is handed to the SDK
// directly; nothing is read from or written to the environment.
func NewGeminiProvider(ctx context.Context, apiKey, model string, opts GeminiOptions) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: empty API key")
	}

	cc := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: opts.HTTPClient,
	}
	if opts.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: opts.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GeminiProvider{
		Model:       model,
		Temperature: opts.Temperature,
		client:      client,
	}, nil
}

func (p *GeminiProvider) Name() string {
	return "gemini"
}

// GenerateResponse sends a generateContent request to the Gemini API.
func (p *GeminiProvider) GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error) {
	model := optionString(options, "model", p.Model)

	config := &genai.GenerateContentConfig{
		Temperature: optionFloat32(options, "temperature", p.Temperature),
	}
	if systemPrompt != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{
				{Text: systemPrompt},
			},
		}
	}

	result, err := p.client.Models.GenerateContent(ctx, model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}

	text := result.Text()
	if text == "" {
		reason := "no candidates"
		if len(result.Candidates) > 0 && result.Candidates[0].FinishReason != "" {
			reason = "finish reason " + string(result.Candidates[0].FinishReason)
		}
		return "", fmt.Errorf("%w (%s)", ErrEmptyResponse, reason)
	}
	return text, nil
}
