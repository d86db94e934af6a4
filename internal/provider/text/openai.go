package text

import (
	"github.com/davidbz/nepersonaj/internal/domain"
	"github.com/davidbz/nepersonaj/internal/extract"
)

// Default chat completion endpoints.
const (
	OpenAIEndpoint   = "https://api.openai.com/v1/chat/completions"
	DeepSeekEndpoint = "https://api.deepseek.com/v1/chat/completions"
)

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

// ChatProvider speaks the OpenAI chat completions contract. DeepSeek and
// other compatible services are registered as separate instances.
type ChatProvider struct {
	name     string
	endpoint string
}

// NewOpenAI creates the OpenAI chat variant.
func NewOpenAI() *ChatProvider {
	return &ChatProvider{name: "openai", endpoint: OpenAIEndpoint}
}

// NewDeepSeek creates the DeepSeek chat variant.
func NewDeepSeek() *ChatProvider {
	return &ChatProvider{name: "deepseek", endpoint: DeepSeekEndpoint}
}

// Name returns the provider identifier.
func (p *ChatProvider) Name() string {
	return p.name
}

// BuildRequest renders a system and a user message.
func (p *ChatProvider) BuildRequest(cfg domain.TextProviderConfig, prompt domain.Prompt) (*domain.ProviderRequest, error) {
	if err := requireKey(cfg); err != nil {
		return nil, err
	}

	return &domain.ProviderRequest{
		URL:     endpointOr(cfg, p.endpoint),
		Headers: bearer(cfg.APIKey),
		Body: chatRequest{
			Model: cfg.Model,
			Messages: []chatMessage{
				{Role: "system", Content: prompt.System},
				{Role: "user", Content: prompt.User},
			},
			Temperature: cfg.Temperature,
			MaxTokens:   maxTokens(cfg),
		},
	}, nil
}

// ParseResponse reads choices[0].message.content or a compatible fallback.
func (p *ChatProvider) ParseResponse(body []byte) (string, error) {
	return parseWith(extract.TextChain(), body)
}

var _ domain.TextProvider = (*ChatProvider)(nil)
