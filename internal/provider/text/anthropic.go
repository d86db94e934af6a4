package text

import (
	"github.com/davidbz/nepersonaj/internal/domain"
	"github.com/davidbz/nepersonaj/internal/extract"
)

// Anthropic messages API defaults.
const (
	AnthropicEndpoint = "https://api.anthropic.com/v1/messages"
	anthropicVersion  = "2023-06-01"
)

type messagesRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
}

// AnthropicProvider speaks the Anthropic messages contract.
type AnthropicProvider struct{}

// NewAnthropic creates the Anthropic variant.
func NewAnthropic() *AnthropicProvider {
	return &AnthropicProvider{}
}

// Name returns the provider identifier.
func (p *AnthropicProvider) Name() string {
	return "anthropic"
}

// BuildRequest folds the system instruction into a single user message.
func (p *AnthropicProvider) BuildRequest(cfg domain.TextProviderConfig, prompt domain.Prompt) (*domain.ProviderRequest, error) {
	if err := requireKey(cfg); err != nil {
		return nil, err
	}

	return &domain.ProviderRequest{
		URL: endpointOr(cfg, AnthropicEndpoint),
		Headers: map[string]string{
			"x-api-key":         cfg.APIKey,
			"anthropic-version": anthropicVersion,
		},
		Body: messagesRequest{
			Model: cfg.Model,
			Messages: []chatMessage{
				{Role: "user", Content: prompt.System + "\n\n" + prompt.User},
			},
			MaxTokens: maxTokens(cfg),
		},
	}, nil
}

// ParseResponse reads content[0].text before the generic shapes.
func (p *AnthropicProvider) ParseResponse(body []byte) (string, error) {
	return parseWith(extract.TextChain().With(extract.ContentBlockText), body)
}

var _ domain.TextProvider = (*AnthropicProvider)(nil)
