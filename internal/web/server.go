// Package web serves a live browser preview of the current theme: an HTML
// swatch page rendered from the generated CSS variables and a small JSON
// API for tooling.
package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/davidlopes/tinge/internal/logging"
	"github.com/davidlopes/tinge/internal/theme"
)

// Provider supplies the theme to preview. Implementations regenerate from
// the source image or read the stored history.
type Provider interface {
	Current(ctx context.Context) (theme.Theme, string, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(ctx context.Context) (theme.Theme, string, error)

// Current implements Provider.
func (f ProviderFunc) Current(ctx context.Context) (theme.Theme, string, error) {
	return f(ctx)
}

// Config holds the preview server configuration.
type Config struct {
	Host            string
	Port            int
	CORSOrigins     []string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// DefaultConfig returns the default server configuration.
func DefaultConfig() Config {
	return Config{
		Host:            "localhost",
		Port:            4512,
		CORSOrigins:     []string{"http://localhost:5173"},
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    10 * time.Second,
		ShutdownTimeout: 5 * time.Second,
	}
}

// Server is the preview HTTP server.
type Server struct {
	cfg      Config
	log      *logging.Logger
	provider Provider
	router   chi.Router
}

// New creates a preview server.
func New(cfg Config, log *logging.Logger, provider Provider) *Server {
	if log == nil {
		log = logging.NewNop()
	}
	s := &Server{
		cfg:      cfg,
		log:      log,
		provider: provider,
	}
	s.router = s.buildRouter()
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	c := cors.New(cors.Options{
		AllowedOrigins: s.cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet},
	})
	r.Use(c.Handler)

	r.Get("/", s.handlePreview)
	r.Get("/api/theme", s.handleTheme)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return r
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
}

// Start runs the server until ctx is canceled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("preview server listening", "addr", "http://"+s.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
