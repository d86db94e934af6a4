package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/davidbz/nepersonaj/internal/config"
	"github.com/davidbz/nepersonaj/internal/observability"
)

const clockSkew = time.Minute

var (
	errMissingToken = errors.New("authorization header required")
	errInvalidToken = errors.New("invalid token")
	errExpiredToken = errors.New("token expired")
	errForbidden    = errors.New("insufficient role")
	errAuthDisabled = errors.New("admin authentication is not configured")
)

// AdminClaims are the claims of an admin access token.
type AdminClaims struct {
	Role  string `json:"role"`
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Auth verifies admin bearer tokens signed with the auth backend's HS256 secret.
type Auth struct {
	secret       []byte
	requiredRole string
	parser       *jwt.Parser
}

// NewAuth creates the admin authentication middleware (DI constructor).
func NewAuth(cfg *config.AuthConfig) *Auth {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithLeeway(clockSkew),
		jwt.WithExpirationRequired(),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}

	return &Auth{
		secret:       []byte(cfg.JWTSecret),
		requiredRole: cfg.RequiredRole,
		parser:       jwt.NewParser(opts...),
	}
}

// Authenticate rejects requests without a valid admin token and adds the
// token subject to the request context.
func (a *Auth) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := a.verify(r)
		if err != nil {
			status := http.StatusUnauthorized
			if errors.Is(err, errForbidden) {
				status = http.StatusForbidden
			}

			observability.FromContext(r.Context()).Info("admin request rejected",
				observability.Int("status", status),
				observability.Error(err),
			)
			respondError(w, status, err)
			return
		}

		ctx := observability.WithSubject(r.Context(), claims.Subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (a *Auth) verify(r *http.Request) (*AdminClaims, error) {
	if len(a.secret) == 0 {
		return nil, errAuthDisabled
	}

	header := r.Header.Get("Authorization")
	if header == "" {
		return nil, errMissingToken
	}

	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return nil, errInvalidToken
	}

	var claims AdminClaims
	_, err := a.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return a.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errExpiredToken
		}
		return nil, errInvalidToken
	}

	if a.requiredRole != "" && claims.Role != a.requiredRole {
		return nil, errForbidden
	}

	return &claims, nil
}

func respondError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"error":"` + err.Error() + `"}` + "\n"))
}
