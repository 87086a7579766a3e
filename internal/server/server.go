// Package server exposes the string record store over HTTP.
package server

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/rcliao/string-analyzer/internal/errors"
	"github.com/rcliao/string-analyzer/internal/store"
)

const shutdownTimeout = 5 * time.Second

// Options configures the HTTP server.
type Options struct {
	RequestsPerSecond float64 // 0 disables rate limiting
	Burst             int
}

// Server routes HTTP requests to a Store.
type Server struct {
	store   store.Store
	logger  *zap.SugaredLogger
	limiter *rate.Limiter
	handler http.Handler
}

// New creates a Server backed by st. If logger is nil, requests are not logged.
func New(st store.Store, logger *zap.SugaredLogger, opts Options) *Server {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	s := &Server{store: st, logger: logger}

	if opts.RequestsPerSecond > 0 {
		burst := opts.Burst
		if burst <= 0 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), burst)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /strings", s.handleCreate)
	mux.HandleFunc("GET /strings", s.handleList)
	mux.HandleFunc("GET /strings/filter-by-natural-language", s.handleNaturalLanguage)
	mux.HandleFunc("GET /strings/{value...}", s.handleGet)
	mux.HandleFunc("DELETE /strings/{value...}", s.handleDelete)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.handler = s.withRequestID(s.withAccessLog(s.withRateLimit(mux)))
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Infow("Server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "listen")
	case <-ctx.Done():
	}

	s.logger.Infow("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutdown")
	}
	return nil
}
