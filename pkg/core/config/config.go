// Package config loads the settings file the report generator needs at startup.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	hjson "github.com/hjson/hjson-go/v4"
	"gopkg.in/yaml.v2"
)

const (
	DefaultPath       = "config.yaml"
	DefaultModel      = "gemini-2.0-flash"
	DefaultListenAddr = ":8080"
	DefaultLogLevel   = "info"

	BackendGenAI        = "genai"
	BackendGenerativeAI = "generativeai"
)

var (
	// ErrConfigMissing is returned when the settings file does not exist.
	ErrConfigMissing = errors.New("configuration file not found")
	// ErrConfigMalformed is returned when the settings file cannot be read or parsed.
	ErrConfigMalformed = errors.New("configuration file is malformed")
	// ErrCredentialMissing is returned when GOOGLE_API_KEY is absent or blank.
	ErrCredentialMissing = errors.New("GOOGLE_API_KEY not found in configuration")
)

// Config is the immutable process configuration.
// Only GOOGLE_API_KEY is required; everything else has a default.
type Config struct {
	GoogleAPIKey string   `yaml:"GOOGLE_API_KEY" json:"GOOGLE_API_KEY"`
	Model        string   `yaml:"model" json:"model"`
	Backend      string   `yaml:"backend" json:"backend"`
	Temperature  *float32 `yaml:"temperature" json:"temperature"`
	ListenAddr   string   `yaml:"listen_addr" json:"listen_addr"`
	DatabaseURL  string   `yaml:"database_url" json:"database_url"`
	LogLevel     string   `yaml:"log_level" json:"log_level"`
	LogFile      string   `yaml:"log_file" json:"log_file"`
}

// Load reads and validates the settings file at path.
// The returned error always wraps one of ErrConfigMissing, ErrConfigMalformed
// or ErrCredentialMissing.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigMissing, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrConfigMalformed, err)
	}

	cfg, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes raw settings. ext selects the decoder: ".hjson" and ".json" use
// Hjson, anything else is treated as YAML.
func Parse(data []byte, ext string) (*Config, error) {
	var cfg Config

	switch strings.ToLower(ext) {
	case ".hjson", ".json":
		if err := hjson.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfigMalformed, err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfigMalformed, err)
		}
	}

	cfg.GoogleAPIKey = strings.TrimSpace(cfg.GoogleAPIKey)
	if cfg.GoogleAPIKey == "" {
		return nil, ErrCredentialMissing
	}

	cfg.applyDefaults()
	if cfg.Backend != BackendGenAI && cfg.Backend != BackendGenerativeAI {
		return nil, fmt.Errorf("%w: unknown backend %q", ErrConfigMalformed, cfg.Backend)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.Backend == "" {
		c.Backend = BackendGenAI
	}
	c.Backend = strings.ToLower(c.Backend)
	if c.ListenAddr == "" {
		c.ListenAddr = DefaultListenAddr
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

// ArchiveEnabled reports whether generated reports should be persisted.
func (c *Config) ArchiveEnabled() bool {
	return c.DatabaseURL != ""
}

// UserMessage turns a Load error into the message shown before the process halts.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrConfigMissing):
		return "Arquivo de configuração não encontrado."
	case errors.Is(err, ErrCredentialMissing):
		return "Chave da API do Google não encontrada no arquivo de configuração."
	case errors.Is(err, ErrConfigMalformed):
		return "Erro ao ler o arquivo de configuração."
	default:
		return fmt.Sprintf("Erro de configuração: %v", err)
	}
}
