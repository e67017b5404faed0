// SPDX-License-Identifier: MIT

// Package api provides the HTTP surface of the gallery service.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/soraprompt/gallery/internal/config"
	"github.com/soraprompt/gallery/internal/log"
	"github.com/soraprompt/gallery/internal/service"
)

// Server is the HTTP API server for the gallery service.
type Server struct {
	cfg    *config.Config
	svc    *service.Service
	logger zerolog.Logger
}

// New builds a Server around the given service.
func New(cfg *config.Config, svc *service.Service) *Server {
	return &Server{
		cfg:    cfg,
		svc:    svc,
		logger: log.WithComponent("api"),
	}
}

// Handler assembles the full router with the middleware stack.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(recoverer)
	r.Use(requestMetrics)
	r.Use(requestLogger)

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/videos", s.handleListVideos)
	r.With(rateLimit(s.cfg.RateLimit, s.cfg.RateLimitWindow)).
		Post("/videos", s.handleCreateVideo)
	r.Get("/search", s.handleSearch)

	r.With(rateLimit(s.cfg.RateLimit, s.cfg.RateLimitWindow)).
		Post("/internal/seed", s.handleSeed)

	return r
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully
// within the configured timeout. In-flight store writes always run to
// completion; shutdown only stops accepting new connections.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.ListenAddr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().
			Str(log.FieldEvent, "server.listening").
			Str("addr", s.cfg.ListenAddr).
			Msg("http server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.logger.Info().Str(log.FieldEvent, "server.stopped").Msg("http server stopped")
	return nil
}
