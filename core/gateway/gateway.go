// Package gateway is the boundary to external text-completion
// providers. Each provider adapts one vendor SDK to a common request
// and response shape; a registry selects among the configured
// providers. When no provider credential is configured the registry
// stays empty and callers run in offline fallback mode without any
// network I/O.
package gateway

import (
	"context"
)

// Provider adapts one completion vendor.
type Provider interface {
	Name() string
	Complete(ctx context.Context, req *Request) (*Response, error)
	ValidateConfig() error
	Close() error
}

// Request is a provider-neutral completion request.
type Request struct {
	Messages     []Message `json:"messages"`
	Model        string    `json:"model,omitempty"`
	MaxTokens    int       `json:"max_tokens,omitempty"`
	Temperature  *float64  `json:"temperature,omitempty"`
	SystemPrompt string    `json:"system_prompt,omitempty"`
}

// Message is one role-tagged turn in the request history.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Role follows the chat-completion convention.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Response is a provider-neutral completion result.
type Response struct {
	Content string `json:"content"`
	Model   string `json:"model"`
	Usage   Usage  `json:"usage"`
}

// Usage reports token consumption when the provider supplies it.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// ProviderType identifies the provider.
type ProviderType string

const (
	ProviderTypeOpenRouter ProviderType = "openrouter"
	ProviderTypeOpenAI     ProviderType = "openai"
	ProviderTypeAnthropic  ProviderType = "anthropic"
	ProviderTypeGoogle     ProviderType = "google"
)
