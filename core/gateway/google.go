package gateway

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

// GoogleProvider implements Provider for Google's Gemini models.
type GoogleProvider struct {
	client *genai.Client
	config GoogleConfig
}

// NewGoogleProvider creates a Google provider with the given
// configuration.
func NewGoogleProvider(ctx context.Context, config GoogleConfig) (*GoogleProvider, error) {
	if config.Model == "" {
		config.Model = DefaultGoogleConfig().Model
	}
	if config.MaxTokens == 0 {
		config.MaxTokens = DefaultGoogleConfig().MaxTokens
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultGoogleConfig().Timeout
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     config.APIKey,
		HTTPClient: &http.Client{Timeout: config.Timeout},
	})
	if err != nil {
		return nil, fmt.Errorf("google client: %w", err)
	}

	return &GoogleProvider{
		client: client,
		config: config,
	}, nil
}

// Name returns the provider identifier.
func (p *GoogleProvider) Name() string {
	return string(ProviderTypeGoogle)
}

// Complete performs a non-streaming completion request.
func (p *GoogleProvider) Complete(ctx context.Context, req *Request) (*Response, error) {
	model := req.Model
	if model == "" {
		model = p.config.Model
	}

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = p.config.MaxTokens
	}

	genConfig := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(maxTokens),
	}

	if req.SystemPrompt != "" {
		genConfig.SystemInstruction = genai.NewContentFromText(req.SystemPrompt, genai.RoleUser)
	}

	if req.Temperature != nil {
		genConfig.Temperature = genai.Ptr(float32(*req.Temperature))
	} else if p.config.Temperature > 0 {
		genConfig.Temperature = genai.Ptr(float32(p.config.Temperature))
	}

	contents := make([]*genai.Content, 0, len(req.Messages))
	for _, msg := range req.Messages {
		switch msg.Role {
		case RoleUser:
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleUser))
		case RoleAssistant:
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleModel))
		}
	}

	result, err := p.client.Models.GenerateContent(ctx, model, contents, genConfig)
	if err != nil {
		return nil, fmt.Errorf("google complete: %w", err)
	}

	return &Response{
		Content: strings.TrimSpace(result.Text()),
		Model:   model,
	}, nil
}

// ValidateConfig checks if the provider configuration is valid.
func (p *GoogleProvider) ValidateConfig() error {
	return p.config.Validate()
}

// Close cleans up any resources.
func (p *GoogleProvider) Close() error {
	return nil
}
