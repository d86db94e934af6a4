// Package text implements the text generation provider variants. Each
// variant renders its own request envelope and parses the response with an
// extraction chain; dispatch goes through the shared transport and queue.
package text

import (
	"fmt"

	"github.com/davidbz/nepersonaj/internal/domain"
	"github.com/davidbz/nepersonaj/internal/extract"
)

// defaultMaxTokens applies when settings leave the limit unset.
const defaultMaxTokens = 1000

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func parseWith(chain extract.Chain, body []byte) (string, error) {
	decoded, err := extract.Decode(body)
	if err != nil {
		return "", err
	}

	text, ok := chain.First(decoded)
	if !ok {
		return "", domain.ErrUnsupportedFormat
	}

	return text, nil
}

func bearer(apiKey string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + apiKey}
}

func requireKey(cfg domain.TextProviderConfig) error {
	if cfg.APIKey == "" {
		return fmt.Errorf("%s: %w", cfg.Provider, domain.ErrMissingAPIKey)
	}
	return nil
}

func endpointOr(cfg domain.TextProviderConfig, fallback string) string {
	if cfg.EndpointURL != "" {
		return cfg.EndpointURL
	}
	return fallback
}

func maxTokens(cfg domain.TextProviderConfig) int {
	if cfg.MaxTokens <= 0 {
		return defaultMaxTokens
	}
	return cfg.MaxTokens
}
