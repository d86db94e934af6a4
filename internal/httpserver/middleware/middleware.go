package middleware

import (
	"net/http"
	"time"

	"github.com/davidbz/nepersonaj/internal/config"
)

// Middleware wraps an http.Handler with additional functionality.
// Middlewares can be composed using the Chain function.
type Middleware func(http.Handler) http.Handler

// HTTPRecorder records request metrics.
type HTTPRecorder interface {
	ObserveHTTP(method, route string, code int, d time.Duration)
}

// Chain composes multiple middlewares into a single middleware.
// Middlewares are applied in the order they are provided, with the first
// middleware being the outermost wrapper (executed first on request).
//
// Example:
//
//	chain := Chain(Recovery(), CORS(corsConfig), Trace())
//	handler := chain(router)
func Chain(middlewares ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		// Apply in reverse order so first middleware wraps outermost.
		for i := len(middlewares) - 1; i >= 0; i-- {
			final = middlewares[i](final)
		}
		return final
	}
}

// BuildMiddlewareChain composes the middleware chain for production.
// Order matters: Recovery -> RealIP -> CORS -> Trace -> Metrics.
// The chain is installed inside the router so Metrics can read the matched route.
func BuildMiddlewareChain(
	corsConfig *config.CORSConfig,
	serverConfig *config.ServerConfig,
	recorder HTTPRecorder,
) Middleware {
	return Chain(
		Recovery(),
		RealIP(serverConfig != nil && serverConfig.TrustProxy),
		CORS(corsConfig),
		Trace(),
		Metrics(recorder),
	)
}
