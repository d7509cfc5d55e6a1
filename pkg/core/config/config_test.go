package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Valid(t *testing.T) {
	path := writeConfig(t, "config.yaml", "GOOGLE_API_KEY: abc123\nunrelated: value\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "abc123", cfg.GoogleAPIKey)
	assert.Equal(t, DefaultModel, cfg.Model)
	assert.Equal(t, BackendGenAI, cfg.Backend)
	assert.Equal(t, DefaultListenAddr, cfg.ListenAddr)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Nil(t, cfg.Temperature)
	assert.False(t, cfg.ArchiveEnabled())
}

func TestLoad_Overrides(t *testing.T) {
	path := writeConfig(t, "config.yml", `
GOOGLE_API_KEY: "  key-with-spaces  "
model: gemini-1.5-pro
backend: GenerativeAI
temperature: 0.3
listen_addr: 127.0.0.1:9000
database_url: postgres://localhost/reports
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "key-with-spaces", cfg.GoogleAPIKey)
	assert.Equal(t, "gemini-1.5-pro", cfg.Model)
	assert.Equal(t, BackendGenerativeAI, cfg.Backend)
	require.NotNil(t, cfg.Temperature)
	assert.InDelta(t, 0.3, *cfg.Temperature, 0.0001)
	assert.Equal(t, "127.0.0.1:9000", cfg.ListenAddr)
	assert.True(t, cfg.ArchiveEnabled())
}

func TestLoad_Hjson(t *testing.T) {
	path := writeConfig(t, "config.hjson", `{
  # comments are allowed
  GOOGLE_API_KEY: hjson-key
  model: gemini-2.0-flash-lite
}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "hjson-key", cfg.GoogleAPIKey)
	assert.Equal(t, "gemini-2.0-flash-lite", cfg.Model)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfigMissing))
	assert.Equal(t, "Arquivo de configuração não encontrado.", UserMessage(err))
}

func TestLoad_Malformed(t *testing.T) {
	path := writeConfig(t, "config.yaml", "GOOGLE_API_KEY: [unterminated\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfigMalformed))
	assert.Equal(t, "Erro ao ler o arquivo de configuração.", UserMessage(err))
}

func TestLoad_NotAMapping(t *testing.T) {
	path := writeConfig(t, "config.yaml", "- just\n- a list\n")

	_, err := Load(path)
	assert.True(t, errors.Is(err, ErrConfigMalformed))
}

func TestLoad_CredentialAbsentOrEmpty(t *testing.T) {
	cases := map[string]string{
		"absent":     "model: gemini-2.0-flash\n",
		"empty":      "GOOGLE_API_KEY: \"\"\n",
		"blank":      "GOOGLE_API_KEY: \"   \"\n",
		"empty file": "",
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := writeConfig(t, "config.yaml", body)
			_, err := Load(path)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrCredentialMissing))
			assert.Equal(t, "Chave da API do Google não encontrada no arquivo de configuração.", UserMessage(err))
		})
	}
}

func TestLoad_UnknownBackend(t *testing.T) {
	path := writeConfig(t, "config.yaml", "GOOGLE_API_KEY: k\nbackend: openai\n")

	_, err := Load(path)
	assert.True(t, errors.Is(err, ErrConfigMalformed))
}
