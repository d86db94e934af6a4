// Package image implements the JSON image generation variants that travel
// through the shared provider transport.
package image

import (
	"context"
	"errors"
	"fmt"

	"github.com/davidbz/nepersonaj/internal/domain"
	"github.com/davidbz/nepersonaj/internal/extract"
)

// StabilityEndpoint is the default Stability AI text-to-image endpoint.
const StabilityEndpoint = "https://api.stability.ai/v1/generation/stable-diffusion-xl-1024-v1-0/text-to-image"

// Stability render parameters.
const (
	stabilitySize    = 1024
	stabilitySteps   = 30
	stabilitySamples = 1
)

type textPrompt struct {
	Text string `json:"text"`
}

type stabilityRequest struct {
	TextPrompts []textPrompt `json:"text_prompts"`
	Model       string       `json:"model,omitempty"`
	Height      int          `json:"height"`
	Width       int          `json:"width"`
	Steps       int          `json:"steps"`
	Samples     int          `json:"samples"`
}

type customRequest struct {
	Prompt string `json:"prompt"`
	Model  string `json:"model"`
}

// StabilityProvider implements domain.ImageProvider for Stability AI.
type StabilityProvider struct {
	transport domain.Transport
}

// NewStability creates the Stability AI variant (DI constructor).
func NewStability(transport domain.Transport) (*StabilityProvider, error) {
	if transport == nil {
		return nil, errors.New("transport cannot be nil")
	}
	return &StabilityProvider{transport: transport}, nil
}

// Name returns the provider identifier.
func (p *StabilityProvider) Name() string {
	return "stability"
}

// Generate returns the first artifact as a PNG data URI.
func (p *StabilityProvider) Generate(ctx context.Context, cfg domain.ImageProviderConfig, prompt string) (string, error) {
	if cfg.APIKey == "" {
		return "", fmt.Errorf("stability: %w", domain.ErrMissingAPIKey)
	}

	endpoint := cfg.EndpointURL
	if endpoint == "" {
		endpoint = StabilityEndpoint
	}

	body, err := p.transport.Send(ctx, &domain.ProviderRequest{
		URL: endpoint,
		Headers: map[string]string{
			"Authorization": "Bearer " + cfg.APIKey,
			"Accept":        "application/json",
		},
		Body: stabilityRequest{
			TextPrompts: []textPrompt{{Text: prompt}},
			Model:       cfg.Model,
			Height:      stabilitySize,
			Width:       stabilitySize,
			Steps:       stabilitySteps,
			Samples:     stabilitySamples,
		},
	})
	if err != nil {
		return "", err
	}

	decoded, err := extract.Decode(body)
	if err != nil {
		return "", err
	}

	if b64, ok := extract.StringAt("artifacts[0].base64", "artifacts", 0, "base64").Match(decoded); ok && b64 != "" {
		return "data:image/png;base64," + b64, nil
	}

	if url, ok := extract.ImageURLFromJSON(body); ok {
		return url, nil
	}

	return "", domain.ErrUnsupportedFormat
}

// CustomProvider posts {prompt, model} to a user supplied endpoint and
// locates the image URL with the extraction chain.
type CustomProvider struct {
	transport domain.Transport
}

// NewCustom creates the custom endpoint variant (DI constructor).
func NewCustom(transport domain.Transport) (*CustomProvider, error) {
	if transport == nil {
		return nil, errors.New("transport cannot be nil")
	}
	return &CustomProvider{transport: transport}, nil
}

// Name returns the provider identifier.
func (p *CustomProvider) Name() string {
	return "custom"
}

// Generate requires an endpoint override.
func (p *CustomProvider) Generate(ctx context.Context, cfg domain.ImageProviderConfig, prompt string) (string, error) {
	if cfg.EndpointURL == "" {
		return "", fmt.Errorf("custom image provider: %w", domain.ErrMissingEndpoint)
	}
	if cfg.APIKey == "" {
		return "", fmt.Errorf("custom image provider: %w", domain.ErrMissingAPIKey)
	}

	body, err := p.transport.Send(ctx, &domain.ProviderRequest{
		URL:     cfg.EndpointURL,
		Headers: map[string]string{"Authorization": "Bearer " + cfg.APIKey},
		Body:    customRequest{Prompt: prompt, Model: cfg.Model},
	})
	if err != nil {
		return "", err
	}

	if url, ok := extract.ImageURLFromJSON(body); ok {
		return url, nil
	}

	return "", domain.ErrUnsupportedFormat
}

var (
	_ domain.ImageProvider = (*StabilityProvider)(nil)
	_ domain.ImageProvider = (*CustomProvider)(nil)
)
