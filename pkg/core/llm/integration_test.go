package llm

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestGemini_Live calls the real API. Set GEMINI_LIVE_KEY to run it.
func TestGemini_Live(t *testing.T) {
	apiKey := os.Getenv("GEMINI_LIVE_KEY")
	if apiKey == "" {
		t.Skip("GEMINI_LIVE_KEY not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	p, err := NewGeminiProvider(ctx, apiKey, "gemini-2.0-flash", GeminiOptions{})
	require.NoError(t, err)

	text, err := p.GenerateResponse(ctx, "Responda apenas com a palavra: ok", "", nil)
	require.NoError(t, err)
	require.NotEmpty(t, text)
	t.Logf("[LIVE] %q", text)
}
