package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/rjsky311/GHS-label-quick-search/internal/config"
	"github.com/rjsky311/GHS-label-quick-search/internal/infrastructure/monitoring/logging"
)

// Server wraps http.Server with the configured timeouts and graceful stop.
type Server struct {
	srv             *http.Server
	router          http.Handler
	logger          logging.Logger
	shutdownTimeout time.Duration
}

// NewServer creates a server for router using the server section of the
// configuration.
func NewServer(cfg config.ServerConfig, router http.Handler, logger logging.Logger) *Server {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	shutdown := cfg.ShutdownTimeout
	if shutdown <= 0 {
		shutdown = 15 * time.Second
	}
	return &Server{
		router:          router,
		logger:          logger.Named("server"),
		shutdownTimeout: shutdown,
		srv: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           router,
			ReadTimeout:       cfg.ReadTimeout,
			ReadHeaderTimeout: 10 * time.Second,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       60 * time.Second,
		},
	}
}

// Start listens on the configured address and blocks until Stop is called.
// A clean shutdown returns nil.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Serve accepts connections on ln.
func (s *Server) Serve(ln net.Listener) error {
	s.logger.Info("HTTP server listening", logging.String("addr", ln.Addr().String()))
	if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop drains in-flight requests, bounded by the shutdown timeout.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(ctx, s.shutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("server shutdown failed", logging.Err(err))
		return err
	}
	s.logger.Info("HTTP server stopped")
	return nil
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.router
}
