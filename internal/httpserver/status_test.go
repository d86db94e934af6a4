package httpserver //nolint:testpackage // Need access to unexported statusFor function

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/davidbz/nepersonaj/internal/domain"
)

func TestStatusFor(t *testing.T) {
	type contact struct {
		Email string `validate:"required,email"`
	}
	validationErr := validator.New().Struct(contact{Email: "x"})
	require.Error(t, validationErr)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", fmt.Errorf("invalid contact message: %w", validationErr), http.StatusBadRequest},
		{"malformed body", fmt.Errorf("%w: unexpected EOF", errInvalidRequest), http.StatusBadRequest},
		{"unknown field", domain.ErrUnknownField, http.StatusBadRequest},
		{"empty topic", domain.ErrEmptyTopic, http.StatusBadRequest},
		{"not found", fmt.Errorf("post x: %w", domain.ErrNotFound), http.StatusNotFound},
		{"rate limited", domain.ErrRateLimited, http.StatusTooManyRequests},
		{"missing key", fmt.Errorf("text generation: %w", domain.ErrMissingAPIKey), http.StatusUnprocessableEntity},
		{"missing endpoint", domain.ErrMissingEndpoint, http.StatusUnprocessableEntity},
		{"unsupported provider", domain.ErrUnsupportedProvider, http.StatusUnprocessableEntity},
		{"message not sent", domain.ErrMessageNotSent, http.StatusUnprocessableEntity},
		{"api error", &domain.APIError{Status: 500, Message: "overloaded"}, http.StatusBadGateway},
		{"network error", fmt.Errorf("%w: %w", domain.ErrProviderRequest, errors.New("dial tcp")), http.StatusBadGateway},
		{"unsupported format", domain.ErrUnsupportedFormat, http.StatusBadGateway},
		{"anything else", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}
