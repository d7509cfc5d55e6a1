package config

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"financial_report/pkg/core/agent"
	"financial_report/pkg/core/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct{}

func (stubProvider) GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error) {
	return "", nil
}

func (stubProvider) Name() string { return "stub" }

func TestHandleConfig(t *testing.T) {
	mgr := agent.NewManagerWithProvider("genai", "gemini-2.0-flash", stubProvider{})
	h := NewHandler(mgr, report.NewGenerator(mgr.Provider(), mgr.GetModel(), nil), true)

	w := httptest.NewRecorder()
	h.HandleConfig(w, httptest.NewRequest(http.MethodGet, "/api/config", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp Response
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, Response{
		Backend:        "genai",
		Provider:       "stub",
		Model:          "gemini-2.0-flash",
		ArchiveEnabled: true,
		InFlight:       false,
	}, resp)
	assert.NotContains(t, w.Body.String(), "GOOGLE_API_KEY")
}
