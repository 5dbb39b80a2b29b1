// Package server exposes the health check and Prometheus metrics over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/orgball2608/x-relay-telegram-bot/internal/metrics"
	"github.com/orgball2608/x-relay-telegram-bot/pkg/config"
	"github.com/orgball2608/x-relay-telegram-bot/pkg/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config  *config.Config
	Logger  logger.Logger
	Metrics *metrics.Metrics
}

type Server struct {
	http   *http.Server
	logger logger.Logger
}

func New(opts Opts) *Server {
	log := opts.Logger.WithComponent("HTTP")
	return &Server{
		http: &http.Server{
			Addr:         fmt.Sprintf(":%d", opts.Config.App.Port),
			Handler:      NewRouter(log, opts.Metrics),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: log,
	}
}

// NewRouter serves /healthz and, when m is set, /metrics.
func NewRouter(log logger.Logger, m *metrics.Metrics) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		healthCheckHandler(w, r, log)
	})
	if m != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}))
	}
	return r
}

// Start binds the listener synchronously so a busy port fails startup, then
// serves in the background.
func (s *Server) Start(context.Context) error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.http.Addr, err)
	}

	s.logger.Info("Starting server", "addr", ln.Addr().String())
	go func() {
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server stopped", "error", err)
		}
	}()
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request, log logger.Logger) {
	log.Debug("Health check request received", "method", r.Method, "url", r.URL.String())
	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte("ok")); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}
