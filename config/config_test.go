package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, ProviderOpenAI, cfg.Provider)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 4096, cfg.MaxTokens)
}

func TestLoad_AnthropicProvider(t *testing.T) {
	t.Setenv("GOVASSIST_LLM_PROVIDER", ProviderAnthropic)
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ProviderAnthropic, cfg.Provider)
}

func TestLoad_MissingKeyFails(t *testing.T) {
	t.Setenv("GOVASSIST_LLM_PROVIDER", ProviderAnthropic)
	t.Setenv("ANTHROPIC_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ANTHROPIC_API_KEY")
}

func TestLoad_UnknownProviderFails(t *testing.T) {
	t.Setenv("GOVASSIST_LLM_PROVIDER", "gemini")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown GOVASSIST_LLM_PROVIDER")
}

func TestLoad_DebugForcesLevel(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("GOVASSIST_DEBUG", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("X_INT", "42")
	assert.Equal(t, 42, envInt("X_INT", 0))
	assert.Equal(t, 7, envInt("X_INT_MISSING", 7))

	t.Setenv("X_INT_BAD", "abc")
	assert.Equal(t, 7, envInt("X_INT_BAD", 7))

	t.Setenv("X_FLOAT", "0.2")
	assert.Equal(t, 0.2, envFloat("X_FLOAT", 0.7))

	t.Setenv("X_BOOL", "true")
	assert.True(t, envBool("X_BOOL", false))
	assert.False(t, envBool("X_BOOL_MISSING", false))
}
