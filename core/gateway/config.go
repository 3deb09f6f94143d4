package gateway

import (
	"fmt"
	"time"
)

// BaseConfig contains configuration common to all providers.
type BaseConfig struct {
	// APIKey is the authentication key for the provider
	APIKey string `json:"api_key" yaml:"api_key"`

	// Model is the default model to use
	Model string `json:"model" yaml:"model"`

	// MaxTokens is the default maximum tokens to generate
	MaxTokens int `json:"max_tokens" yaml:"max_tokens"`

	// Temperature is the default sampling temperature
	Temperature float64 `json:"temperature" yaml:"temperature"`

	// Timeout bounds a single completion call
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// DefaultBaseConfig returns sensible defaults. The timeout bounds the
// only blocking operation in the system; there is no retry policy.
func DefaultBaseConfig() BaseConfig {
	return BaseConfig{
		MaxTokens:   800,
		Temperature: 0.7,
		Timeout:     30 * time.Second,
	}
}

// Validate checks the base configuration.
func (c *BaseConfig) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("api_key is required")
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be positive")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("temperature must be between 0 and 2")
	}
	return nil
}

// OpenRouterConfig configures the OpenRouter provider, which speaks the
// OpenAI-compatible chat-completions API.
type OpenRouterConfig struct {
	BaseConfig `json:",inline" yaml:",inline"`

	// BaseURL overrides the default API endpoint
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`

	// Referer is sent as the HTTP-Referer attribution header
	Referer string `json:"referer,omitempty" yaml:"referer,omitempty"`
}

// DefaultOpenRouterConfig returns OpenRouter defaults.
func DefaultOpenRouterConfig() OpenRouterConfig {
	base := DefaultBaseConfig()
	base.Model = "anthropic/claude-3-haiku"

	return OpenRouterConfig{
		BaseConfig: base,
		BaseURL:    "https://openrouter.ai/api/v1",
		Referer:    "https://kairos-coach.com",
	}
}

// Validate checks OpenRouter-specific configuration.
func (c *OpenRouterConfig) Validate() error {
	if err := c.BaseConfig.Validate(); err != nil {
		return fmt.Errorf("openrouter config: %w", err)
	}
	if c.BaseURL == "" {
		return fmt.Errorf("openrouter config: base_url is required")
	}
	return nil
}

// OpenAIConfig configures the OpenAI provider.
type OpenAIConfig struct {
	BaseConfig `json:",inline" yaml:",inline"`

	// BaseURL overrides the default API endpoint (for Azure, proxies, etc.)
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`

	// Organization ID for OpenAI
	Organization string `json:"organization,omitempty" yaml:"organization,omitempty"`
}

// DefaultOpenAIConfig returns OpenAI defaults.
func DefaultOpenAIConfig() OpenAIConfig {
	base := DefaultBaseConfig()
	base.Model = "gpt-4o-mini"

	return OpenAIConfig{BaseConfig: base}
}

// Validate checks OpenAI-specific configuration.
func (c *OpenAIConfig) Validate() error {
	if err := c.BaseConfig.Validate(); err != nil {
		return fmt.Errorf("openai config: %w", err)
	}
	return nil
}

// AnthropicConfig configures the Anthropic provider.
type AnthropicConfig struct {
	BaseConfig `json:",inline" yaml:",inline"`

	// BaseURL overrides the default API endpoint
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
}

// DefaultAnthropicConfig returns Anthropic defaults.
func DefaultAnthropicConfig() AnthropicConfig {
	base := DefaultBaseConfig()
	base.Model = "claude-haiku-4-5-20251001"

	return AnthropicConfig{BaseConfig: base}
}

// Validate checks Anthropic-specific configuration.
func (c *AnthropicConfig) Validate() error {
	if err := c.BaseConfig.Validate(); err != nil {
		return fmt.Errorf("anthropic config: %w", err)
	}
	return nil
}

// GoogleConfig configures the Google Gemini provider.
type GoogleConfig struct {
	BaseConfig `json:",inline" yaml:",inline"`
}

// DefaultGoogleConfig returns Google defaults.
func DefaultGoogleConfig() GoogleConfig {
	base := DefaultBaseConfig()
	base.Model = "gemini-2.0-flash"

	return GoogleConfig{BaseConfig: base}
}

// Validate checks Google-specific configuration.
func (c *GoogleConfig) Validate() error {
	if err := c.BaseConfig.Validate(); err != nil {
		return fmt.Errorf("google config: %w", err)
	}
	return nil
}
