package domain

import (
	"errors"
	"fmt"
)

// Configuration errors. These are surfaced immediately and never retried.
var (
	ErrMissingAPIKey       = errors.New("API key is not configured")
	ErrMissingEndpoint     = errors.New("custom endpoint URL is not configured")
	ErrUnsupportedProvider = errors.New("unsupported provider")
)

// Request and response errors.
var (
	ErrUnknownField      = errors.New("unknown field")
	ErrEmptyTopic        = errors.New("topic cannot be empty")
	ErrProviderRequest   = errors.New("provider request failed")
	ErrUnsupportedFormat = errors.New("unsupported response format")
)

// Gateway and contact errors.
var (
	ErrNotFound       = errors.New("not found")
	ErrRateLimited    = errors.New("too many requests")
	ErrMessageNotSent = errors.New("message was not sent")
)

// APIError is a non-2xx answer from a provider.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("API error (%d)", e.Status)
	}
	return e.Message
}

// Unwrap lets callers match provider failures with errors.Is(err, ErrProviderRequest).
func (e *APIError) Unwrap() error {
	return ErrProviderRequest
}
