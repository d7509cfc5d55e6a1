// Package agent owns the single configured model backend.
package agent

import (
	"context"
	"fmt"
	"io"

	"financial_report/pkg/core/config"
	"financial_report/pkg/core/llm"
)

// Manager holds the provider built from the process configuration.
type Manager struct {
	backend  string
	model    string
	provider llm.Provider
}

// NewManager builds the provider selected by cfg.Backend with the configured credential.
func NewManager(ctx context.Context, cfg *config.Config) (*Manager, error) {
	var (
		provider llm.Provider
		err      error
	)

	switch cfg.Backend {
	case config.BackendGenAI:
		provider, err = llm.NewGeminiProvider(ctx, cfg.GoogleAPIKey, cfg.Model, llm.GeminiOptions{
			Temperature: cfg.Temperature,
		})
	case config.BackendGenerativeAI:
		provider, err = llm.NewGenerativeAIProvider(ctx, cfg.GoogleAPIKey, cfg.Model, cfg.Temperature)
	default:
		return nil, fmt.Errorf("backend %s not found", cfg.Backend)
	}
	if err != nil {
		return nil, err
	}

	return NewManagerWithProvider(cfg.Backend, cfg.Model, provider), nil
}

// NewManagerWithProvider wraps an already built provider (tests, alternative wiring).
func NewManagerWithProvider(backend, model string, provider llm.Provider) *Manager {
	return &Manager{backend: backend, model: model, provider: provider}
}

func (m *Manager) Provider() llm.Provider {
	return m.provider
}

func (m *Manager) GetActiveBackend() string {
	return m.backend
}

func (m *Manager) GetModel() string {
	return m.model
}

// Close releases the provider's connection if it holds one.
func (m *Manager) Close() error {
	if c, ok := m.provider.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
