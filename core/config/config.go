// Package config loads server configuration from an optional YAML file
// with environment-variable overrides. A missing file and absent
// provider credentials are both valid: the server then runs in offline
// fallback mode.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kairos-coach/kairos/core/gateway"
)

// Config is the root configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	LLM       LLMConfig       `yaml:"llm"`
	Providers ProvidersConfig `yaml:"providers"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// LLMConfig configures provider selection and call bounds.
type LLMConfig struct {
	// DefaultProvider picks the provider when several are configured.
	DefaultProvider string `yaml:"default_provider"`

	// Timeout bounds a single completion call. No retry policy exists.
	Timeout time.Duration `yaml:"timeout"`
}

// ProvidersConfig holds per-provider credentials and defaults.
type ProvidersConfig struct {
	OpenRouter gateway.OpenRouterConfig `yaml:"openrouter"`
	OpenAI     gateway.OpenAIConfig     `yaml:"openai"`
	Anthropic  gateway.AnthropicConfig  `yaml:"anthropic"`
	Google     gateway.GoogleConfig     `yaml:"google"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		LLM: LLMConfig{
			DefaultProvider: string(gateway.ProviderTypeOpenRouter),
			Timeout:         30 * time.Second,
		},
		Providers: ProvidersConfig{
			OpenRouter: gateway.DefaultOpenRouterConfig(),
			OpenAI:     gateway.DefaultOpenAIConfig(),
			Anthropic:  gateway.DefaultAnthropicConfig(),
			Google:     gateway.DefaultGoogleConfig(),
		},
	}
}

// Load reads configuration from path, falling back to defaults when
// path is empty or the file does not exist, then applies environment
// overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Optional file; defaults apply.
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overrides file values with environment variables. Provider
// credentials are only ever read from the environment or the file; a
// missing credential disables that provider rather than failing
// startup.
func (c *Config) applyEnv() {
	if v := os.Getenv("KAIROS_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("KAIROS_PROVIDER"); v != "" {
		c.LLM.DefaultProvider = v
	}
	if v := os.Getenv("OPENROUTER_API_KEY"); v != "" {
		c.Providers.OpenRouter.APIKey = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		c.Providers.OpenAI.APIKey = v
	}
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
		c.Providers.Anthropic.APIKey = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.Providers.Google.APIKey = v
	}
}
