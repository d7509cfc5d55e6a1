package llm

import (
	"context"
)

// Provider is the interface for the model backends that can write a report.
type Provider interface {
	// GenerateResponse sends one prompt and returns the model's text.
	GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error)
	// Name identifies the backend in logs and in the config endpoint.
	Name() string
}

// optionString reads a string override from the per-call options.
func optionString(options map[string]interface{}, key, fallback string) string {
	if val, ok := options[key].(string); ok && val != "" {
		return val
	}
	return fallback
}

// optionFloat32 reads a temperature-like override from the per-call options.
func optionFloat32(options map[string]interface{}, key string, fallback *float32) *float32 {
	switch v := options[key].(type) {
	case float32:
		return &v
	case float64:
		f := float32(v)
		return &f
	}
	return fallback
}
