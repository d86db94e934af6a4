// Package telegram delivers contact form messages through the Telegram Bot API.
package telegram

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
	"github.com/davidbz/nepersonaj/internal/observability"
	"github.com/davidbz/nepersonaj/internal/retry"
)

// Config contains Bot API client configuration.
type Config struct {
	APIURL       string        `env:"TELEGRAM_API_URL"         envDefault:"https://api.telegram.org"`
	Timeout      time.Duration `env:"TELEGRAM_TIMEOUT"         envDefault:"10s"`
	MaxRetries   int           `env:"TELEGRAM_MAX_RETRIES"     envDefault:"2"`
	InitialDelay time.Duration `env:"TELEGRAM_RETRY_DELAY"     envDefault:"500ms"`
	MaxDelay     time.Duration `env:"TELEGRAM_RETRY_MAX_DELAY" envDefault:"4s"`
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// Client implements domain.Messenger.
type Client struct {
	apiURL string
	http   *http.Client
	retry  retry.Options
}

// NewClient creates a new Telegram client (DI constructor).
func NewClient(cfg Config) *Client {
	return &Client{
		apiURL: strings.TrimRight(cfg.APIURL, "/"),
		http:   &http.Client{Timeout: cfg.Timeout},
		retry: retry.Options{
			MaxRetries:   cfg.MaxRetries,
			InitialDelay: cfg.InitialDelay,
			MaxDelay:     cfg.MaxDelay,
		},
	}
}

// Send posts text as HTML to the configured chat. It reports false without
// an error when the bot token or chat id is missing.
func (c *Client) Send(ctx context.Context, cfg domain.TelegramConfig, text string) (bool, error) {
	logger := observability.FromContext(ctx)

	if cfg.BotToken == "" || cfg.ChatID == "" {
		logger.Warn("telegram delivery is not configured")
		return false, nil
	}

	payload, err := json.Marshal(sendMessageRequest{ChatID: cfg.ChatID, Text: text, ParseMode: "HTML"})
	if err != nil {
		return false, fmt.Errorf("failed to encode message: %w", err)
	}

	endpoint := c.apiURL + "/bot" + cfg.BotToken + "/sendMessage"

	ok, err := retry.Do(ctx, c.retry, func(ctx context.Context) (bool, error) {
		return c.post(ctx, endpoint, payload)
	})
	if err != nil {
		err = redactToken(err, cfg.BotToken)
		logger.Error("telegram delivery failed", observability.Error(err))
		return false, err
	}

	return ok, nil
}

func (c *Client) post(ctx context.Context, endpoint string, payload []byte) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return false, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return false, fmt.Errorf("telegram request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("failed to read telegram response: %w", err)
	}

	var result apiResponse
	decodeErr := json.Unmarshal(raw, &result)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		message := result.Description
		if decodeErr != nil || message == "" {
			message = fmt.Sprintf("telegram API error (%d)", resp.StatusCode)
		}
		return false, &domain.APIError{Status: resp.StatusCode, Message: message}
	}

	if decodeErr != nil {
		return false, fmt.Errorf("failed to decode telegram response: %w", decodeErr)
	}

	return result.OK, nil
}

// redactToken removes the bot token, which is part of the request URL,
// from error messages.
func redactToken(err error, token string) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		urlErr.URL = strings.ReplaceAll(urlErr.URL, token, "[REDACTED]")
	}
	if strings.Contains(err.Error(), token) {
		return errors.New(strings.ReplaceAll(err.Error(), token, "[REDACTED]"))
	}
	return err
}

var _ domain.Messenger = (*Client)(nil)
