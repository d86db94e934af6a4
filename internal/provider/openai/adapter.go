// Package openai provides the OpenAI image generation variant using the
// official SDK. Credentials are read from site settings on each call, so a
// client is built per request.
package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/davidbz/nepersonaj/internal/domain"
	"github.com/davidbz/nepersonaj/internal/extract"
	"github.com/davidbz/nepersonaj/internal/observability"
	"github.com/davidbz/nepersonaj/internal/provider/transport"
)

const (
	// DefaultBaseURL is used when settings carry no endpoint override.
	DefaultBaseURL = "https://api.openai.com/v1/"

	imagesPath   = "/images/generations"
	defaultModel = "dall-e-3"
)

// Provider implements domain.ImageProvider for OpenAI.
type Provider struct {
	config Config
	name   string
}

// NewProvider creates a new OpenAI image provider (DI constructor).
func NewProvider(config Config) *Provider {
	return &Provider{
		config: config,
		name:   "openai",
	}
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return p.name
}

// Generate creates one 1024x1024 image and returns its URL.
// Base64 answers are returned as a PNG data URI.
func (p *Provider) Generate(ctx context.Context, cfg domain.ImageProviderConfig, prompt string) (string, error) {
	if cfg.APIKey == "" {
		return "", fmt.Errorf("openai: %w", domain.ErrMissingAPIKey)
	}

	logger := observability.FromContext(ctx)
	logger.Debug("calling OpenAI images API")

	client := openai.NewClient(p.options(cfg)...)

	resp, err := client.Images.Generate(ctx, p.toSDKParams(cfg, prompt))
	if err != nil {
		logger.Error("OpenAI images API call failed", observability.Error(err))
		return "", toDomainError(err)
	}

	if len(resp.Data) > 0 {
		if url := resp.Data[0].URL; url != "" {
			return url, nil
		}
		if b64 := resp.Data[0].B64JSON; b64 != "" {
			return "data:image/png;base64," + b64, nil
		}
	}

	if url, ok := extract.ImageURLFromJSON([]byte(resp.RawJSON())); ok {
		return url, nil
	}

	return "", domain.ErrUnsupportedFormat
}

func (p *Provider) options(cfg domain.ImageProviderConfig) []option.RequestOption {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(baseURL(cfg.EndpointURL)),
		option.WithMaxRetries(p.config.MaxRetries),
	}

	if p.config.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(time.Duration(p.config.Timeout)*time.Second))
	}

	return opts
}

// toSDKParams converts settings and prompt to SDK ImageGenerateParams.
func (p *Provider) toSDKParams(cfg domain.ImageProviderConfig, prompt string) openai.ImageGenerateParams {
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	return openai.ImageGenerateParams{
		Prompt:  prompt,
		Model:   openai.ImageModel(model),
		N:       openai.Int(1),
		Size:    openai.ImageGenerateParamsSize1024x1024,
		Quality: openai.ImageGenerateParamsQualityStandard,
		Style:   openai.ImageGenerateParamsStyleNatural,
	}
}

// baseURL turns an endpoint override into an SDK base URL.
// A full ".../images/generations" endpoint is accepted as well.
func baseURL(endpoint string) string {
	if endpoint == "" {
		return DefaultBaseURL
	}

	endpoint = strings.TrimSuffix(strings.TrimRight(endpoint, "/"), imagesPath)
	return endpoint + "/"
}

func toDomainError(err error) error {
	var apiErr *openai.Error
	if !errors.As(err, &apiErr) {
		return fmt.Errorf("%w: %w", domain.ErrProviderRequest, err)
	}

	if apiErr.Message != "" {
		return &domain.APIError{Status: apiErr.StatusCode, Message: apiErr.Message}
	}

	return transport.NewAPIError(apiErr.StatusCode, []byte(apiErr.RawJSON()))
}

var _ domain.ImageProvider = (*Provider)(nil)
