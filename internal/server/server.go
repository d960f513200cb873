// Package server provides the web UI server for Midori.
package server

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sustainsearch/midori/internal/config"
	"github.com/sustainsearch/midori/internal/controller"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

// Server is the HTTP server for the search page.
type Server struct {
	ctrl     *controller.Controller
	sessions *controller.SessionManager
	config   *config.ServerConfig
	logger   *zap.Logger
	tmpl     *template.Template
	server   *http.Server
}

// NewServer creates a server with the given dependencies.
func NewServer(ctrl *controller.Controller, cfg *config.ServerConfig, logger *zap.Logger) (*Server, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Server{
		ctrl:     ctrl,
		sessions: controller.NewSessionManager(ctrl),
		config:   cfg,
		logger:   logger,
		tmpl:     tmpl,
	}, nil
}

// Router builds the chi router for the UI.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))

	r.Get("/", s.handleIndex)
	r.Post("/search", s.handleSearch)
	r.Post("/prefs", s.handlePrefs)
	r.Get("/health", s.handleHealth)

	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.Router(),
	}
	s.logger.Info("Starting server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
