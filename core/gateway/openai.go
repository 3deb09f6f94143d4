package gateway

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIProvider implements Provider for OpenAI's chat-completion API.
// The same adapter backs the OpenRouter provider, which exposes an
// OpenAI-compatible endpoint behind a different base URL.
type OpenAIProvider struct {
	client *openai.Client
	config OpenAIConfig
	name   ProviderType
}

// NewOpenAIProvider creates an OpenAI provider with the given
// configuration.
func NewOpenAIProvider(config OpenAIConfig) (*OpenAIProvider, error) {
	if config.Model == "" {
		config.Model = DefaultOpenAIConfig().Model
	}
	if config.MaxTokens == 0 {
		config.MaxTokens = DefaultOpenAIConfig().MaxTokens
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultOpenAIConfig().Timeout
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	opts := []option.RequestOption{
		option.WithAPIKey(config.APIKey),
		option.WithRequestTimeout(config.Timeout),
	}

	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}

	if config.Organization != "" {
		opts = append(opts, option.WithHeader("OpenAI-Organization", config.Organization))
	}

	client := openai.NewClient(opts...)

	return &OpenAIProvider{
		client: &client,
		config: config,
		name:   ProviderTypeOpenAI,
	}, nil
}

// NewOpenRouterProvider creates a provider that routes through
// OpenRouter's OpenAI-compatible API.
func NewOpenRouterProvider(config OpenRouterConfig) (*OpenAIProvider, error) {
	if config.Model == "" {
		config.Model = DefaultOpenRouterConfig().Model
	}
	if config.MaxTokens == 0 {
		config.MaxTokens = DefaultOpenRouterConfig().MaxTokens
	}
	if config.BaseURL == "" {
		config.BaseURL = DefaultOpenRouterConfig().BaseURL
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultOpenRouterConfig().Timeout
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	opts := []option.RequestOption{
		option.WithAPIKey(config.APIKey),
		option.WithBaseURL(config.BaseURL),
		option.WithRequestTimeout(config.Timeout),
	}

	if config.Referer != "" {
		opts = append(opts, option.WithHeader("HTTP-Referer", config.Referer))
	}

	client := openai.NewClient(opts...)

	return &OpenAIProvider{
		client: &client,
		config: OpenAIConfig{BaseConfig: config.BaseConfig, BaseURL: config.BaseURL},
		name:   ProviderTypeOpenRouter,
	}, nil
}

// Name returns the provider identifier.
func (p *OpenAIProvider) Name() string {
	return string(p.name)
}

// Complete performs a non-streaming completion request.
func (p *OpenAIProvider) Complete(ctx context.Context, req *Request) (*Response, error) {
	params := p.buildParams(req)

	completion, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("%s complete: %w", p.name, err)
	}

	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("%s complete: empty response", p.name)
	}

	return &Response{
		Content: strings.TrimSpace(completion.Choices[0].Message.Content),
		Model:   completion.Model,
		Usage: Usage{
			InputTokens:  int(completion.Usage.PromptTokens),
			OutputTokens: int(completion.Usage.CompletionTokens),
			TotalTokens:  int(completion.Usage.TotalTokens),
		},
	}, nil
}

// ValidateConfig checks if the provider configuration is valid.
func (p *OpenAIProvider) ValidateConfig() error {
	return p.config.Validate()
}

// Close cleans up any resources.
func (p *OpenAIProvider) Close() error {
	return nil
}

// buildParams constructs chat-completion parameters from a Request.
func (p *OpenAIProvider) buildParams(req *Request) openai.ChatCompletionNewParams {
	model := req.Model
	if model == "" {
		model = p.config.Model
	}

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = p.config.MaxTokens
	}

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages)+1)
	if req.SystemPrompt != "" {
		messages = append(messages, openai.SystemMessage(req.SystemPrompt))
	}
	for _, msg := range req.Messages {
		switch msg.Role {
		case RoleSystem:
			messages = append(messages, openai.SystemMessage(msg.Content))
		case RoleUser:
			messages = append(messages, openai.UserMessage(msg.Content))
		case RoleAssistant:
			messages = append(messages, openai.AssistantMessage(msg.Content))
		}
	}

	params := openai.ChatCompletionNewParams{
		Model:     openai.ChatModel(model),
		Messages:  messages,
		MaxTokens: openai.Int(int64(maxTokens)),
	}

	if req.Temperature != nil {
		params.Temperature = openai.Float(*req.Temperature)
	} else if p.config.Temperature > 0 {
		params.Temperature = openai.Float(p.config.Temperature)
	}

	return params
}
