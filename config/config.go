// Package config loads application configuration from the environment, with
// an optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Providers the model layer knows how to construct.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Config holds all application configuration.
type Config struct {
	// Server settings.
	Addr string

	// Model settings.
	Provider        string // "openai" or "anthropic"
	ModelName       string // Provider-specific model identifier; empty uses the provider default.
	OpenAIAPIKey    string
	AnthropicAPIKey string
	Temperature     float64
	MaxTokens       int

	// Operational settings.
	LogLevel  string
	LogFormat string // "json" or "text"
	Debug     bool
}

// Load reads configuration from environment variables with sensible
// defaults. A .env file in the working directory is honored when present.
func Load() (Config, error) {
	// Non-fatal; production won't have a .env file.
	_ = godotenv.Load()

	cfg := Config{
		Addr:            envStr("GOVASSIST_ADDR", ":8080"),
		Provider:        envStr("GOVASSIST_LLM_PROVIDER", ProviderOpenAI),
		ModelName:       envStr("GOVASSIST_LLM_MODEL", ""),
		OpenAIAPIKey:    envStr("OPENAI_API_KEY", ""),
		AnthropicAPIKey: envStr("ANTHROPIC_API_KEY", ""),
		Temperature:     envFloat("GOVASSIST_TEMPERATURE", 0.7),
		MaxTokens:       envInt("GOVASSIST_MAX_TOKENS", 4096),
		LogLevel:        envStr("GOVASSIST_LOG_LEVEL", "info"),
		LogFormat:       envStr("GOVASSIST_LOG_FORMAT", "json"),
		Debug:           envBool("GOVASSIST_DEBUG", false),
	}
	if cfg.Debug {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that required configuration is present.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("config: OPENAI_API_KEY is required for provider %q", c.Provider)
		}
	case ProviderAnthropic:
		if c.AnthropicAPIKey == "" {
			return fmt.Errorf("config: ANTHROPIC_API_KEY is required for provider %q", c.Provider)
		}
	default:
		return fmt.Errorf("config: unknown GOVASSIST_LLM_PROVIDER %q", c.Provider)
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("config: GOVASSIST_MAX_TOKENS must be positive")
	}
	return nil
}

func envStr(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultVal
}

func envFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func envBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultVal
}
