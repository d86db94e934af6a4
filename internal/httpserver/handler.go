package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/davidbz/nepersonaj/internal/config"
	"github.com/davidbz/nepersonaj/internal/domain"
	"github.com/davidbz/nepersonaj/internal/observability"
)

const (
	bytesPerMB       = 1 << 20
	maxJSONBodyBytes = 4 * bytesPerMB
)

var errInvalidRequest = errors.New("invalid request")

// Handler handles HTTP requests.
type Handler struct {
	settings    domain.SettingsStore
	posts       domain.PostStore
	projects    domain.ProjectStore
	generation  *domain.GenerationService
	contact     *domain.ContactService
	validate    *validator.Validate
	maxUploadMB int
}

// NewHandler creates a new HTTP handler (DI constructor).
func NewHandler(
	settings domain.SettingsStore,
	posts domain.PostStore,
	projects domain.ProjectStore,
	generation *domain.GenerationService,
	contact *domain.ContactService,
	validate *validator.Validate,
	cfg *config.ServerConfig,
) *Handler {
	maxUploadMB := 10
	if cfg != nil && cfg.MaxUploadMB > 0 {
		maxUploadMB = cfg.MaxUploadMB
	}

	return &Handler{
		settings:    settings,
		posts:       posts,
		projects:    projects,
		generation:  generation,
		contact:     contact,
		validate:    validate,
		maxUploadMB: maxUploadMB,
	}
}

// HandleHealth handles health check requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

// errorResponse is the body of every failed request.
type errorResponse struct {
	Error string `json:"error"`
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	var validationErrs validator.ValidationErrors
	var apiErr *domain.APIError

	switch {
	case errors.As(err, &validationErrs),
		errors.Is(err, errInvalidRequest),
		errors.Is(err, domain.ErrUnknownField),
		errors.Is(err, domain.ErrEmptyTopic):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, domain.ErrMissingAPIKey),
		errors.Is(err, domain.ErrMissingEndpoint),
		errors.Is(err, domain.ErrUnsupportedProvider),
		errors.Is(err, domain.ErrMessageNotSent):
		return http.StatusUnprocessableEntity
	case errors.As(err, &apiErr),
		errors.Is(err, domain.ErrProviderRequest),
		errors.Is(err, domain.ErrUnsupportedFormat):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeError logs err and writes it with the mapped status.
// Internal errors are not echoed to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	logger := observability.FromContext(r.Context())

	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error("request failed", observability.Error(err))
		message = http.StatusText(status)
	} else {
		logger.Info("request rejected",
			observability.Int("status", status),
			observability.Error(err),
		)
	}

	writeJSON(w, r, status, errorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		// Already written status, can't change it, just log.
		observability.FromContext(r.Context()).Error("failed to encode response", observability.Error(err))
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", errInvalidRequest)
		}
		return fmt.Errorf("%w: %w", errInvalidRequest, err)
	}
	return nil
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s has invalid format", errInvalidRequest, name)
	}
	return id, nil
}
