// Package server is the reference chat backend: it accepts
// {"message": "..."} on POST /chat and answers {"reply": "..."} using a
// configured provider.
package server

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"chatbox/provider"
)

const (
	DefaultReplyTimeout    = 2 * time.Minute
	DefaultShutdownTimeout = 10 * time.Second

	maxRequestBytes = 64 << 10
)

type Options struct {
	// ReplyTimeout bounds a single provider call. Zero selects DefaultReplyTimeout.
	ReplyTimeout time.Duration
	// AllowedOrigin is sent as Access-Control-Allow-Origin. Empty means "*".
	AllowedOrigin string
}

type Server struct {
	replier provider.Replier
	logger  zerolog.Logger
	opts    Options
	router  chi.Router
}

func New(replier provider.Replier, logger zerolog.Logger, opts Options) *Server {
	if opts.ReplyTimeout <= 0 {
		opts.ReplyTimeout = DefaultReplyTimeout
	}
	if opts.AllowedOrigin == "" {
		opts.AllowedOrigin = "*"
	}

	s := &Server{
		replier: replier,
		logger:  logger,
		opts:    opts,
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(cors(s.opts.AllowedOrigin))

	r.Get("/", s.handleHome)
	r.Get("/health", s.handleHealth)
	r.Post("/chat", s.handleChat)

	return r
}

// Handler returns the HTTP handler serving all routes.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully. ready, when not nil, receives the bound address once the
// listener is open.
func (s *Server) ListenAndServe(ctx context.Context, addr string, ready chan<- net.Addr) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Wrapf(err, "failed to listen on %s", addr)
	}

	httpServer := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	s.logger.Info().
		Str("addr", ln.Addr().String()).
		Str("provider", s.replier.Name()).
		Str("model", s.replier.Model()).
		Msg("chat server listening")
	if ready != nil {
		ready <- ln.Addr()
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "server error")
	case <-ctx.Done():
	}

	s.logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutdown failed")
	}
	return nil
}
