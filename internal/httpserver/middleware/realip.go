package middleware

import (
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// RealIP rewrites RemoteAddr from True-Client-IP, X-Real-IP or X-Forwarded-For.
// Without a trusted proxy those headers are client controlled and left alone.
func RealIP(trustProxy bool) Middleware {
	if !trustProxy {
		return func(next http.Handler) http.Handler {
			return next
		}
	}
	return chimw.RealIP
}
