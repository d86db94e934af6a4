package text

import (
	"fmt"

	"github.com/davidbz/nepersonaj/internal/domain"
	"github.com/davidbz/nepersonaj/internal/extract"
)

type customRequest struct {
	Prompt      string  `json:"prompt"`
	Type        string  `json:"type"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
}

// CustomProvider posts to a user supplied endpoint that answers {"text": ...}.
type CustomProvider struct{}

// NewCustom creates the custom endpoint variant.
func NewCustom() *CustomProvider {
	return &CustomProvider{}
}

// Name returns the provider identifier.
func (p *CustomProvider) Name() string {
	return "custom"
}

// BuildRequest requires an endpoint override.
func (p *CustomProvider) BuildRequest(cfg domain.TextProviderConfig, prompt domain.Prompt) (*domain.ProviderRequest, error) {
	if cfg.EndpointURL == "" {
		return nil, fmt.Errorf("custom text provider: %w", domain.ErrMissingEndpoint)
	}
	if err := requireKey(cfg); err != nil {
		return nil, err
	}

	return &domain.ProviderRequest{
		URL:     cfg.EndpointURL,
		Headers: bearer(cfg.APIKey),
		Body: customRequest{
			Prompt:      prompt.User,
			Type:        string(prompt.Field),
			Temperature: cfg.Temperature,
			MaxTokens:   maxTokens(cfg),
		},
	}, nil
}

// ParseResponse prefers a top level "text" and falls back to chat shapes.
func (p *CustomProvider) ParseResponse(body []byte) (string, error) {
	return parseWith(extract.TextChain().With(extract.TopLevelText), body)
}

var _ domain.TextProvider = (*CustomProvider)(nil)
