package gateway

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBaseConfig(t *testing.T) {
	cfg := DefaultBaseConfig()

	assert.Equal(t, 800, cfg.MaxTokens)
	assert.Equal(t, 0.7, cfg.Temperature)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Empty(t, cfg.APIKey)
}

func TestBaseConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*BaseConfig)
		wantErr bool
	}{
		{"valid", func(c *BaseConfig) { c.APIKey = "sk-test" }, false},
		{"missing api key", func(c *BaseConfig) {}, true},
		{"zero max tokens", func(c *BaseConfig) { c.APIKey = "sk-test"; c.MaxTokens = 0 }, true},
		{"negative temperature", func(c *BaseConfig) { c.APIKey = "sk-test"; c.Temperature = -0.1 }, true},
		{"temperature too high", func(c *BaseConfig) { c.APIKey = "sk-test"; c.Temperature = 2.1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultBaseConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDefaultProviderConfigs(t *testing.T) {
	or := DefaultOpenRouterConfig()
	assert.Equal(t, "anthropic/claude-3-haiku", or.Model)
	assert.Equal(t, "https://openrouter.ai/api/v1", or.BaseURL)
	assert.NotEmpty(t, or.Referer)

	assert.Equal(t, "gpt-4o-mini", DefaultOpenAIConfig().Model)
	assert.Equal(t, "claude-haiku-4-5-20251001", DefaultAnthropicConfig().Model)
	assert.Equal(t, "gemini-2.0-flash", DefaultGoogleConfig().Model)
}

func TestProviderConstructors_TimeoutApplied(t *testing.T) {
	base := BaseConfig{APIKey: "sk-test", MaxTokens: 800, Temperature: 0.7, Timeout: 5 * time.Second}

	op, err := NewOpenAIProvider(OpenAIConfig{BaseConfig: base})
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, op.config.Timeout)

	orp, err := NewOpenRouterProvider(OpenRouterConfig{BaseConfig: base})
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, orp.config.Timeout)

	ap, err := NewAnthropicProvider(AnthropicConfig{BaseConfig: base})
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, ap.config.Timeout)
}

func TestProviderConstructors_TimeoutDefaulted(t *testing.T) {
	base := BaseConfig{APIKey: "sk-test", MaxTokens: 800, Temperature: 0.7}

	op, err := NewOpenAIProvider(OpenAIConfig{BaseConfig: base})
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, op.config.Timeout)

	ap, err := NewAnthropicProvider(AnthropicConfig{BaseConfig: base})
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, ap.config.Timeout)
}

func TestOpenRouterConfig_ValidateRequiresBaseURL(t *testing.T) {
	cfg := DefaultOpenRouterConfig()
	cfg.APIKey = "sk-test"
	require.NoError(t, cfg.Validate())

	cfg.BaseURL = ""
	assert.Error(t, cfg.Validate())
}
