package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/davidbz/nepersonaj/internal/config"
	"github.com/davidbz/nepersonaj/internal/observability"
)

// Server represents the HTTP server.
type Server struct {
	config config.ServerConfig
	srv    *http.Server
}

// NewServer creates a new HTTP server.
func NewServer(cfg *config.ServerConfig, router http.Handler) *Server {
	return &Server{
		config: *cfg,
		srv: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           router,
			ReadHeaderTimeout: time.Duration(cfg.ReadTimeout) * time.Second,
			ReadTimeout:       time.Duration(cfg.ReadTimeout) * time.Second,
			WriteTimeout:      time.Duration(cfg.WriteTimeout) * time.Second,
		},
	}
}

// Start starts the HTTP server. It returns nil after Shutdown.
func (s *Server) Start() error {
	ctx := context.Background()
	observability.FromContext(ctx).Info("starting HTTP server", observability.Int("port", s.config.Port))

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	observability.FromContext(ctx).Info("shutting down HTTP server")

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}

// ShutdownTimeout is the grace period granted to in-flight requests.
func (s *Server) ShutdownTimeout() time.Duration {
	return time.Duration(s.config.ShutdownTimeout) * time.Second
}
