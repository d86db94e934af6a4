// Package transport sends provider requests over HTTP and turns non-2xx
// answers into domain.APIError values.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/davidbz/nepersonaj/internal/domain"
	"github.com/davidbz/nepersonaj/internal/extract"
	"github.com/davidbz/nepersonaj/internal/observability"
)

const maxResponseBytes = 10 << 20

// Config holds the outbound HTTP settings. Timeout also bounds how long a
// hung provider holds the generation queue.
type Config struct {
	Timeout time.Duration `env:"GENERATION_TIMEOUT" envDefault:"60s"`
}

// Client implements domain.Transport.
type Client struct {
	http *http.Client
}

// NewClient creates a new provider HTTP client (DI constructor).
func NewClient(cfg Config) *Client {
	return &Client{
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

// errorMessageChain reads the human readable message of an error body.
func errorMessageChain() extract.Chain {
	return extract.Chain{
		extract.StringAt("error.message", "error", "message"),
		extract.StringAt("message", "message"),
		extract.StringAt("error", "error"),
	}
}

// Send posts req.Body as JSON and returns the raw response body.
func (c *Client) Send(ctx context.Context, req *domain.ProviderRequest) ([]byte, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}

	logger := observability.FromContext(ctx)

	payload, err := json.Marshal(req.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, req.URL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	for name, value := range req.Headers {
		httpReq.Header.Set(name, value)
	}

	started := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		redactURLError(err, req.Headers)
		logger.Error("provider request failed", observability.Error(err))
		return nil, fmt.Errorf("%w: %w", domain.ErrProviderRequest, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	logger.Debug("provider responded",
		observability.Int("status", resp.StatusCode),
		observability.Duration("latency", time.Since(started)),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, NewAPIError(resp.StatusCode, body)
	}

	return body, nil
}

// NewAPIError builds a domain.APIError from a non-2xx response body.
func NewAPIError(status int, body []byte) *domain.APIError {
	apiErr := &domain.APIError{Status: status}

	if decoded, err := extract.Decode(body); err == nil {
		if message, ok := errorMessageChain().First(decoded); ok {
			apiErr.Message = message
		}
	}

	return apiErr
}

const redacted = "REDACTED"

// redactURLError removes query values, userinfo and header secrets from the
// URL carried by a network error. Custom endpoints may embed keys there.
func redactURLError(err error, headers map[string]string) {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return
	}

	if u, parseErr := url.Parse(urlErr.URL); parseErr == nil {
		if u.User != nil {
			u.User = url.User(redacted)
		}
		if u.RawQuery != "" {
			query := u.Query()
			for key := range query {
				query.Set(key, redacted)
			}
			u.RawQuery = query.Encode()
		}
		urlErr.URL = u.String()
	}

	for _, value := range headers {
		secret := strings.TrimSpace(strings.TrimPrefix(value, "Bearer "))
		if secret != "" {
			urlErr.URL = strings.ReplaceAll(urlErr.URL, secret, redacted)
		}
	}
}

var _ domain.Transport = (*Client)(nil)
