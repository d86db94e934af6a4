package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

const unmatchedRoute = "unmatched"

// Metrics records the count and latency of every request by route pattern.
// It must run inside the chi router for the pattern to be known.
func Metrics(recorder HTTPRecorder) Middleware {
	return func(next http.Handler) http.Handler {
		if recorder == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			route := unmatchedRoute
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					route = pattern
				}
			}

			code := ww.Status()
			if code == 0 {
				code = http.StatusOK
			}

			recorder.ObserveHTTP(r.Method, route, code, time.Since(started))
		})
	}
}
