package middleware

import (
	"net/http"
	"slices"
	"strings"

	"github.com/rs/cors"

	"github.com/davidbz/nepersonaj/internal/config"
)

// Admin requests carry a bearer token and JSON bodies, so these headers are
// allowed even when CORS_ALLOWED_HEADERS omits them.
var requiredHeaders = []string{"Authorization", "Content-Type"}

// Browser clients read these to correlate a failed request with server logs.
var exposedHeaders = []string{"X-Request-Id", "X-Trace-Id"}

// CORS applies the site's cross-origin policy with github.com/rs/cors.
func CORS(cfg *config.CORSConfig) Middleware {
	if cfg == nil {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   cfg.AllowedMethods,
		AllowedHeaders:   allowedHeaders(cfg.AllowedHeaders),
		ExposedHeaders:   exposedHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})

	return c.Handler
}

// allowedHeaders merges the configured headers with requiredHeaders,
// dropping blanks and case-insensitive duplicates.
func allowedHeaders(configured []string) []string {
	out := make([]string, 0, len(configured)+len(requiredHeaders))
	seen := make(map[string]struct{}, cap(out))
	for _, h := range slices.Concat(configured, requiredHeaders) {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		key := strings.ToLower(h)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, h)
	}
	return out
}
