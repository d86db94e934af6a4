// Package imgbb uploads images to ImgBB or any endpoint speaking its
// multipart contract.
package imgbb

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/davidbz/nepersonaj/internal/domain"
	"github.com/davidbz/nepersonaj/internal/extract"
	"github.com/davidbz/nepersonaj/internal/observability"
	"github.com/davidbz/nepersonaj/internal/provider/transport"
	"github.com/davidbz/nepersonaj/internal/retry"
)

// DefaultEndpoint is the public ImgBB upload API.
const DefaultEndpoint = "https://api.imgbb.com/1/upload"

// Config contains upload client configuration.
type Config struct {
	Timeout      time.Duration `env:"IMAGE_HOST_TIMEOUT"       envDefault:"30s"`
	MaxRetries   int           `env:"IMAGE_HOST_MAX_RETRIES"   envDefault:"2"`
	InitialDelay time.Duration `env:"IMAGE_HOST_RETRY_DELAY"   envDefault:"1s"`
	MaxDelay     time.Duration `env:"IMAGE_HOST_RETRY_MAX_DELAY" envDefault:"8s"`
}

// Uploader implements domain.ImageHost.
type Uploader struct {
	http  *http.Client
	retry retry.Options
}

// NewUploader creates a new image uploader (DI constructor).
func NewUploader(cfg Config) *Uploader {
	return &Uploader{
		http: &http.Client{Timeout: cfg.Timeout},
		retry: retry.Options{
			MaxRetries:   cfg.MaxRetries,
			InitialDelay: cfg.InitialDelay,
			MaxDelay:     cfg.MaxDelay,
		},
	}
}

// Upload posts data and returns the hosted URL from data.url.
func (u *Uploader) Upload(ctx context.Context, cfg domain.StorageConfig, filename string, data []byte) (string, error) {
	if cfg.APIKey == "" {
		return "", fmt.Errorf("image host: %w", domain.ErrMissingAPIKey)
	}
	if len(data) == 0 {
		return "", errors.New("image data cannot be empty")
	}

	endpoint := cfg.EndpointURL
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	logger := observability.FromContext(ctx)

	url, err := retry.Do(ctx, u.retry, func(ctx context.Context) (string, error) {
		return u.upload(ctx, endpoint, cfg.APIKey, filename, data)
	})
	if err != nil {
		logger.Error("image upload failed", observability.Error(err))
		return "", err
	}

	logger.Info("image uploaded", observability.Int("bytes", len(data)))
	return url, nil
}

func (u *Uploader) upload(ctx context.Context, endpoint, apiKey, filename string, data []byte) (string, error) {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)

	if err := form.WriteField("key", apiKey); err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}
	part, err := form.CreateFormFile("image", filename)
	if err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}
	if err := form.Close(); err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := u.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrProviderRequest, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read upload response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", transport.NewAPIError(resp.StatusCode, raw)
	}

	decoded, err := extract.Decode(raw)
	if err != nil {
		return "", err
	}

	url, ok := extract.StringAt("data.url", "data", "url").Match(decoded)
	if !ok || url == "" {
		return "", domain.ErrUnsupportedFormat
	}

	return url, nil
}

var _ domain.ImageHost = (*Uploader)(nil)
